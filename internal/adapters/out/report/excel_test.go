package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"breakfast/internal/adapters/out/report"
	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/core/domain/model/kernel"
)

func TestExcelRouteWriter_WriteRoute(t *testing.T) {
	route := queries.GetDeliveryRouteQueryResponse{
		SaleID:       kernel.NewUUID(),
		DeliveryDate: time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
		Status:       "in_progress",
		Stops: []queries.DeliveryStopResponse{
			{
				CustomerID:      kernel.NewUUID(),
				CustomerName:    "Ana",
				CustomerPhone:   "+1000",
				CustomerAddress: "1 Main St",
				SequenceOrder:   0,
				Status:          "pending",
				IsNext:          true,
				AmountExpected:  12.5,
				CreditToApply:   2.5,
				AmountToCollect: 10,
			},
			{
				CustomerID:      kernel.NewUUID(),
				CustomerName:    "Bruno",
				CustomerAddress: "2 Main St",
				SequenceOrder:   1,
				Status:          "skipped",
				SkipReason:      "not home",
			},
		},
	}

	var buf bytes.Buffer
	err := report.NewExcelRouteWriter().WriteRoute(&buf, route)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Route")
	require.NoError(t, err)
	require.Len(t, rows, 4, "title, header, and one row per stop")

	assert.Contains(t, rows[0][0], "2025-12-20")
	assert.Equal(t, "Customer", rows[1][1])
	assert.Equal(t, "Ana", rows[2][1])
	assert.Equal(t, "Bruno", rows[3][1])
	assert.Equal(t, "not home", rows[3][10])
}
