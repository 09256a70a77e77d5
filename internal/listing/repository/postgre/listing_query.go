package postgre

import (
	"fmt"
	"strings"

	repo "business-admin/internal/listing/repository"
)

const selectColumns = `id, business_id, title, description, price, listing_type, city, address, image_url,
	sort_order, is_active, created_at, updated_at`

func (r *implRepository) buildListQuery(columns string, opt repo.ListListingsOptions) (string, []any) {
	conditions := []string{"business_id = $1"}
	args := []any{opt.BusinessID}

	add := func(cond string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}
	if opt.ID != "" {
		add("id = $%d", opt.ID)
	}
	if opt.ListingType != "" {
		add("listing_type = $%d", opt.ListingType)
	}
	if opt.City != "" {
		add("LOWER(city) = LOWER($%d)", opt.City)
	}
	if opt.Active != nil {
		add("is_active = $%d", *opt.Active)
	}

	return fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY sort_order ASC, created_at ASC",
		columns, table, strings.Join(conditions, " AND ")), args
}
