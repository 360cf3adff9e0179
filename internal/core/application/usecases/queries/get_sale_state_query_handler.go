package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/pkg/errs"
)

// GetSaleStateQueryHandler fetches one sale with its items from the database.
type GetSaleStateQueryHandler struct {
	db          *gorm.DB
	cutoffHours int
	now         func() time.Time
}

// NewGetSaleStateQueryHandler creates a handler for sale detail queries.
func NewGetSaleStateQueryHandler(db *gorm.DB, cutoffHours int, now func() time.Time) GetSaleStateQueryHandler {
	return GetSaleStateQueryHandler{db: db, cutoffHours: cutoffHours, now: now}
}

// Handle executes the sale detail query.
// A sale belonging to another owner is reported as not found.
func (h GetSaleStateQueryHandler) Handle(
	ctx context.Context,
	query GetSaleStateQuery,
) (GetSaleStateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSaleStateQueryResponse{}, err
	}

	var (
		deliveryDate time.Time
		status       int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT delivery_date, status
		FROM sales
		WHERE id = ? AND owner_id = ?
	`, query.SaleID().Bytes(), query.OwnerID().Bytes()).Row()

	if err := row.Scan(&deliveryDate, &status); err != nil {
		return GetSaleStateQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"sale", query.SaleID().String(), err)
	}

	now := h.now()
	saleStatus := sale.Status(status)
	response := GetSaleStateQueryResponse{
		ID:             query.SaleID(),
		DeliveryDate:   deliveryDate,
		Status:         saleStatus.String(),
		IsOpen:         sale.AcceptsOrders(saleStatus, deliveryDate, now, h.cutoffHours),
		CutoffAt:       sale.CutoffTime(deliveryDate, h.cutoffHours),
		HoursRemaining: sale.HoursUntilCutoff(deliveryDate, now, h.cutoffHours),
		Items:          make([]SaleItemResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.customer_id,
			c.name,
			i.product_id,
			p.name,
			i.quantity,
			i.sell_price
		FROM sale_items i
		JOIN customers c ON c.id = i.customer_id
		JOIN products p ON p.id = i.product_id
		WHERE i.sale_id = ?
		ORDER BY c.name, p.name
	`, query.SaleID().Bytes()).Rows()
	if err != nil {
		return GetSaleStateQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			itemID       uuid.UUID
			customerID   uuid.UUID
			customerName string
			productID    uuid.UUID
			productName  string
			quantity     int
			sellPrice    float64
		)

		if err = rows.Scan(
			&itemID, &customerID, &customerName,
			&productID, &productName, &quantity, &sellPrice,
		); err != nil {
			return GetSaleStateQueryResponse{}, err
		}

		item := SaleItemResponse{
			CustomerName: customerName,
			ProductName:  productName,
			Quantity:     quantity,
			SellPrice:    sellPrice,
			LineTotal:    sellPrice * float64(quantity),
		}

		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return GetSaleStateQueryResponse{}, err
		}
		if item.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return GetSaleStateQueryResponse{}, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return GetSaleStateQueryResponse{}, err
		}

		response.TotalExpected += item.LineTotal
		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetSaleStateQueryResponse{}, err
	}

	return response, nil
}
