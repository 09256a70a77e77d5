package usecase

import (
	"context"
	"fmt"

	"business-admin/internal/listing"
	"business-admin/pkg/spreadsheet"
)

var exportHeaders = []string{
	"Position", "Title", "Type", "Price", "City", "Address", "Image URL", "Active", "Updated At",
}

// Export renders the listings matching input as an xlsx workbook.
func (uc *implUseCase) Export(ctx context.Context, input listing.ListInput) (listing.ExportOutput, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return listing.ExportOutput{}, err
	}

	items, err := uc.repo.ListListings(ctx, uc.listOptions(tenantID, input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export ListListings: %v", err)
		return listing.ExportOutput{}, err
	}

	rows := make([][]any, 0, len(items))
	for _, l := range items {
		rows = append(rows, []any{
			l.SortOrder + 1, l.Title, l.ListingType, l.Price, l.City, l.Address, l.ImageURL, l.IsActive, l.UpdatedAt,
		})
	}

	content, err := spreadsheet.Build("Listings", exportHeaders, rows)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export Build: %v", err)
		return listing.ExportOutput{}, err
	}

	return listing.ExportOutput{
		FileName: fmt.Sprintf("listings-%s.xlsx", uc.now().Format("20060102")),
		Content:  content,
	}, nil
}
