package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/sale"
)

// GetSalesQueryHandler lists an owner's sales straight from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetSalesQueryHandler struct {
	db          *gorm.DB
	cutoffHours int
	now         func() time.Time
}

// NewGetSalesQueryHandler creates a handler for sale list queries.
// cutoffHours and now feed the IsOpen calculation on each row.
func NewGetSalesQueryHandler(db *gorm.DB, cutoffHours int, now func() time.Time) GetSalesQueryHandler {
	return GetSalesQueryHandler{db: db, cutoffHours: cutoffHours, now: now}
}

// Handle executes the sale list query.
// Rows are sorted by delivery date descending so the upcoming sale comes first.
func (h GetSalesQueryHandler) Handle(ctx context.Context, query GetSalesQuery) ([]GetSalesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			s.id,
			s.delivery_date,
			s.status,
			COUNT(i.id),
			COALESCE(SUM(i.sell_price * i.quantity), 0),
			COALESCE(SUM((i.sell_price - i.buy_price) * i.quantity), 0)
		FROM sales s
		LEFT JOIN sale_items i ON i.sale_id = s.id
		WHERE s.owner_id = ?
	`
	args := []any{query.OwnerID().Bytes()}

	if query.StatusFilter() != sale.StatusUnknown {
		sql += " AND s.status = ?"
		args = append(args, int(query.StatusFilter()))
	}
	if !query.From().IsZero() {
		sql += " AND s.delivery_date >= ?"
		args = append(args, query.From())
	}
	if !query.To().IsZero() {
		sql += " AND s.delivery_date <= ?"
		args = append(args, query.To())
	}

	sql += `
		GROUP BY s.id, s.delivery_date, s.status
		ORDER BY s.delivery_date DESC, s.id
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := h.now()
	sales := make([]GetSalesQueryResponse, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			deliveryDate time.Time
			status       int
			itemCount    int
			expected     float64
			benefit      float64
		)

		if err = rows.Scan(&id, &deliveryDate, &status, &itemCount, &expected, &benefit); err != nil {
			return nil, err
		}

		saleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		saleStatus := sale.Status(status)
		sales = append(sales, GetSalesQueryResponse{
			ID:            saleID,
			DeliveryDate:  deliveryDate,
			Status:        saleStatus.String(),
			ItemCount:     itemCount,
			TotalExpected: expected,
			TotalBenefit:  benefit,
			IsOpen:        sale.AcceptsOrders(saleStatus, deliveryDate, now, h.cutoffHours),
			CutoffAt:      sale.CutoffTime(deliveryDate, h.cutoffHours),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}
