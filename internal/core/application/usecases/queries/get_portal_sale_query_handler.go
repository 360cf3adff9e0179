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

// GetPortalSaleQueryHandler builds the customer-facing ordering form for
// one sale: catalog, current order, and order window state.
type GetPortalSaleQueryHandler struct {
	db          *gorm.DB
	cutoffHours int
	now         func() time.Time
}

// NewGetPortalSaleQueryHandler creates a handler for the ordering form query.
func NewGetPortalSaleQueryHandler(db *gorm.DB, cutoffHours int, now func() time.Time) GetPortalSaleQueryHandler {
	return GetPortalSaleQueryHandler{db: db, cutoffHours: cutoffHours, now: now}
}

// Handle executes the ordering form query. Unknown tokens and sales of
// other accounts are reported as not found.
func (h GetPortalSaleQueryHandler) Handle(
	ctx context.Context,
	query GetPortalSaleQuery,
) (GetPortalSaleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPortalSaleQueryResponse{}, err
	}

	var (
		customerID   uuid.UUID
		ownerID      uuid.UUID
		customerName string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, owner_id, name
		FROM customers
		WHERE access_token = ?
	`, query.AccessToken().Bytes()).Row()

	if err := row.Scan(&customerID, &ownerID, &customerName); err != nil {
		return GetPortalSaleQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"access token", query.AccessToken().String(), err)
	}

	var (
		deliveryDate time.Time
		status       int
	)

	row = h.db.WithContext(ctx).Raw(`
		SELECT delivery_date, status
		FROM sales
		WHERE id = ? AND owner_id = ?
	`, query.SaleID().Bytes(), ownerID).Row()

	if err := row.Scan(&deliveryDate, &status); err != nil {
		return GetPortalSaleQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"sale", query.SaleID().String(), err)
	}

	now := h.now()
	saleStatus := sale.Status(status)
	response := GetPortalSaleQueryResponse{
		SaleID:       query.SaleID(),
		DeliveryDate: deliveryDate,
		Status:       saleStatus.String(),
		IsOpen:       sale.AcceptsOrders(saleStatus, deliveryDate, now, h.cutoffHours),
		CutoffAt:     sale.CutoffTime(deliveryDate, h.cutoffHours),
		CustomerName: customerName,
		Message:      portalMessage(saleStatus),
		Products:     make([]PortalProduct, 0),
		CurrentOrder: make([]PortalOrderLine, 0),
	}

	var err error
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetPortalSaleQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, sell_price
		FROM products
		WHERE owner_id = ?
		ORDER BY LOWER(name), id
	`, ownerID).Rows()
	if err != nil {
		return GetPortalSaleQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID uuid.UUID
			product   PortalProduct
		)

		if err = rows.Scan(&productID, &product.Name, &product.SellPrice); err != nil {
			return GetPortalSaleQueryResponse{}, err
		}

		if product.ID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return GetPortalSaleQueryResponse{}, err
		}

		response.Products = append(response.Products, product)
	}

	if err = rows.Err(); err != nil {
		return GetPortalSaleQueryResponse{}, err
	}

	orderRows, err := h.db.WithContext(ctx).Raw(`
		SELECT i.product_id, p.name, i.quantity, i.sell_price
		FROM sale_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.sale_id = ? AND i.customer_id = ?
		ORDER BY p.name
	`, query.SaleID().Bytes(), customerID).Rows()
	if err != nil {
		return GetPortalSaleQueryResponse{}, err
	}
	defer orderRows.Close()

	for orderRows.Next() {
		var (
			productID uuid.UUID
			line      PortalOrderLine
		)

		if err = orderRows.Scan(&productID, &line.ProductName, &line.Quantity, &line.UnitPrice); err != nil {
			return GetPortalSaleQueryResponse{}, err
		}

		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return GetPortalSaleQueryResponse{}, err
		}

		line.LineTotal = line.UnitPrice * float64(line.Quantity)
		response.OrderTotal += line.LineTotal
		response.CurrentOrder = append(response.CurrentOrder, line)
	}

	if err = orderRows.Err(); err != nil {
		return GetPortalSaleQueryResponse{}, err
	}

	return response, nil
}

// portalMessage maps a sale status to the message code shown on the
// customer's ordering form. Drafts carry no message.
func portalMessage(status sale.Status) string {
	switch status {
	case sale.StatusClosed:
		return PortalMessageSaleClosed
	case sale.StatusInProgress:
		return PortalMessageInProgress
	case sale.StatusCompleted:
		return PortalMessageSaleCompleted
	default:
		return ""
	}
}
