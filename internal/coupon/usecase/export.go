package usecase

import (
	"context"
	"fmt"
	"time"

	"business-admin/internal/coupon"
	repo "business-admin/internal/coupon/repository"
	"business-admin/pkg/spreadsheet"
)

var exportHeaders = []string{
	"Position", "Code", "Discount Type", "Discount Value", "Min Order Value", "Max Uses",
	"Valid From", "Valid To", "Active",
}

// Export renders every coupon of the tenant, in display order, as an xlsx workbook.
func (uc *implUseCase) Export(ctx context.Context) (coupon.ExportOutput, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return coupon.ExportOutput{}, err
	}

	items, err := uc.repo.ListCoupons(ctx, repo.ListCouponsOptions{BusinessID: tenantID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export ListCoupons: %v", err)
		return coupon.ExportOutput{}, err
	}

	rows := make([][]any, 0, len(items))
	for _, c := range items {
		rows = append(rows, []any{
			c.SortOrder + 1, c.Code, c.DiscountType, c.DiscountValue, c.MinOrderValue, c.MaxUses,
			derefTime(c.ValidFrom), derefTime(c.ValidTo), c.IsActive,
		})
	}

	content, err := spreadsheet.Build("Coupons", exportHeaders, rows)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export Build: %v", err)
		return coupon.ExportOutput{}, err
	}

	return coupon.ExportOutput{
		FileName: fmt.Sprintf("coupons-%s.xlsx", uc.now().Format("20060102")),
		Content:  content,
	}, nil
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
