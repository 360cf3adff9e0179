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

// GetPortalOverviewQueryHandler resolves a customer access token and lists
// the account's sales for the self-service page.
type GetPortalOverviewQueryHandler struct {
	db          *gorm.DB
	cutoffHours int
	now         func() time.Time
}

// NewGetPortalOverviewQueryHandler creates a handler for the portal page query.
func NewGetPortalOverviewQueryHandler(db *gorm.DB, cutoffHours int, now func() time.Time) GetPortalOverviewQueryHandler {
	return GetPortalOverviewQueryHandler{db: db, cutoffHours: cutoffHours, now: now}
}

// Handle executes the portal overview query. An unknown token is reported
// as not found.
func (h GetPortalOverviewQueryHandler) Handle(
	ctx context.Context,
	query GetPortalOverviewQuery,
) (GetPortalOverviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPortalOverviewQueryResponse{}, err
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
		return GetPortalOverviewQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"access token", query.AccessToken().String(), err)
	}

	response := GetPortalOverviewQueryResponse{
		CustomerName: customerName,
		Sales:        make([]PortalSaleSummary, 0),
	}

	var err error
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetPortalOverviewQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, delivery_date, status
		FROM sales
		WHERE owner_id = ?
		ORDER BY delivery_date DESC, id
	`, ownerID).Rows()
	if err != nil {
		return GetPortalOverviewQueryResponse{}, err
	}
	defer rows.Close()

	now := h.now()

	for rows.Next() {
		var (
			saleID  uuid.UUID
			summary PortalSaleSummary
			status  int
		)

		if err = rows.Scan(&saleID, &summary.DeliveryDate, &status); err != nil {
			return GetPortalOverviewQueryResponse{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(saleID[:]); err != nil {
			return GetPortalOverviewQueryResponse{}, err
		}

		saleStatus := sale.Status(status)
		summary.Status = saleStatus.String()
		summary.IsOpen = sale.AcceptsOrders(saleStatus, summary.DeliveryDate, now, h.cutoffHours)
		summary.CutoffAt = sale.CutoffTime(summary.DeliveryDate, h.cutoffHours)

		response.Sales = append(response.Sales, summary)
	}

	if err = rows.Err(); err != nil {
		return GetPortalOverviewQueryResponse{}, err
	}

	return response, nil
}
