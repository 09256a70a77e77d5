package spreadsheet_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"business-admin/pkg/spreadsheet"
)

func TestBuild(t *testing.T) {
	data, err := spreadsheet.Build("Coupons",
		[]string{"Code", "Discount", "Valid To"},
		[][]any{
			{"SAVE10", 10.0, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
			{"FLAT5", 5.0, time.Time{}},
		},
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Coupons")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Code", "Discount", "Valid To"}, rows[0])
	assert.Equal(t, "SAVE10", rows[1][0])
	assert.Equal(t, "2026-01-02 03:04:05", rows[1][2])
	assert.Equal(t, []string{"FLAT5", "5"}, rows[2])
}
