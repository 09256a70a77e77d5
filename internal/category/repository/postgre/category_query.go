package postgre

import (
	"fmt"
	"strings"

	repo "business-admin/internal/category/repository"
)

const selectColumns = `id, business_id, name, description, image_url, sort_order, is_active, created_at, updated_at`

func (r *implRepository) buildGetOneQuery(opt repo.GetOneCategoryOptions) (string, []any) {
	return fmt.Sprintf("SELECT %s FROM %s WHERE business_id = $1 AND id = $2 LIMIT 1", selectColumns, table),
		[]any{opt.BusinessID, opt.ID}
}

// buildListQuery orders by sort_order, falling back to creation time for ties.
func (r *implRepository) buildListQuery(columns string, opt repo.ListCategoriesOptions) (string, []any) {
	conditions := []string{"business_id = $1"}
	args := []any{opt.BusinessID}
	idx := 2

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Active != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", idx))
		args = append(args, *opt.Active)
	}

	return fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY sort_order ASC, created_at ASC",
		columns, table, strings.Join(conditions, " AND ")), args
}
