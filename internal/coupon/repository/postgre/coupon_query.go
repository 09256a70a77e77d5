package postgre

import (
	"fmt"
	"strings"

	repo "business-admin/internal/coupon/repository"
)

const selectColumns = `id, business_id, code, discount_type, discount_value, min_order_value, max_uses,
	valid_from, valid_to, sort_order, is_active, created_at, updated_at`

func (r *implRepository) buildGetOneQuery(opt repo.GetOneCouponOptions) (string, []any) {
	conditions := []string{"business_id = $1"}
	args := []any{opt.BusinessID}
	idx := 2

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Code != "" {
		conditions = append(conditions, fmt.Sprintf("code = $%d", idx))
		args = append(args, opt.Code)
	}

	return fmt.Sprintf("SELECT %s FROM %s WHERE %s LIMIT 1", selectColumns, table, strings.Join(conditions, " AND ")), args
}

func (r *implRepository) buildListQuery(columns string, opt repo.ListCouponsOptions) (string, []any) {
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
