// Package report renders delivery route read models as xlsx sheets the
// driver can print or open on a phone.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"breakfast/internal/core/application/usecases/queries"
)

const routeSheet = "Route"

// ExcelRouteWriter renders a delivery route as an xlsx workbook with one
// row per stop in driving order.
type ExcelRouteWriter struct{}

// NewExcelRouteWriter creates a route report writer.
func NewExcelRouteWriter() ExcelRouteWriter {
	return ExcelRouteWriter{}
}

// WriteRoute writes the route workbook to w.
func (ExcelRouteWriter) WriteRoute(w io.Writer, route queries.GetDeliveryRouteQueryResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(routeSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	title := fmt.Sprintf("Delivery %s (%s)", route.DeliveryDate.Format("2006-01-02"), route.Status)
	if err = f.SetCellValue(routeSheet, "A1", title); err != nil {
		return err
	}

	headers := []string{
		"#", "Customer", "Phone", "Address",
		"Expected", "Credit to apply", "To collect",
		"Status", "Collected", "Credit applied", "Skip reason",
	}
	for col, header := range headers {
		cell, cellErr := excelize.CoordinatesToCellName(col+1, 2)
		if cellErr != nil {
			return cellErr
		}
		if err = f.SetCellValue(routeSheet, cell, header); err != nil {
			return err
		}
	}

	for i, stop := range route.Stops {
		values := []any{
			stop.SequenceOrder + 1,
			stop.CustomerName,
			stop.CustomerPhone,
			stop.CustomerAddress,
			stop.AmountExpected,
			stop.CreditToApply,
			stop.AmountToCollect,
			stop.Status,
			stop.AmountCollected,
			stop.CreditApplied,
			stop.SkipReason,
		}

		for col, value := range values {
			cell, cellErr := excelize.CoordinatesToCellName(col+1, i+3)
			if cellErr != nil {
				return cellErr
			}
			if err = f.SetCellValue(routeSheet, cell, value); err != nil {
				return err
			}
		}
	}

	_, err = f.WriteTo(w)
	return err
}
