package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/pkg/errs"
)

// GetDeliveryProgressQueryHandler computes the completion summary of a
// delivery run from the sale's steps and items.
type GetDeliveryProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryProgressQueryHandler creates a handler for progress queries.
func NewGetDeliveryProgressQueryHandler(db *gorm.DB) GetDeliveryProgressQueryHandler {
	return GetDeliveryProgressQueryHandler{db: db}
}

// Handle executes the progress query.
func (h GetDeliveryProgressQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryProgressQuery,
) (GetDeliveryProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryProgressQueryResponse{}, err
	}

	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM sales
		WHERE id = ? AND owner_id = ?
	`, query.SaleID().Bytes(), query.OwnerID().Bytes()).Row()

	if err := row.Scan(&status); err != nil {
		return GetDeliveryProgressQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"sale", query.SaleID().String(), err)
	}

	response := GetDeliveryProgressQueryResponse{
		SaleID: query.SaleID(),
		Status: sale.Status(status).String(),
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE s.status = ?),
			COUNT(*) FILTER (WHERE s.status = ?),
			COUNT(*) FILTER (WHERE s.status = ?),
			COALESCE(SUM(s.amount_collected), 0),
			COALESCE(SUM(s.credit_applied), 0),
			COALESCE(SUM(exp.total), 0),
			COALESCE(SUM(CASE WHEN s.status = ? THEN exp.total ELSE 0 END), 0)
		FROM delivery_steps s
		LEFT JOIN (
			SELECT customer_id, SUM(sell_price * quantity) AS total
			FROM sale_items
			WHERE sale_id = ?
			GROUP BY customer_id
		) exp ON exp.customer_id = s.customer_id
		WHERE s.sale_id = ?
	`,
		int(sale.StepCompleted), int(sale.StepSkipped), int(sale.StepPending),
		int(sale.StepSkipped),
		query.SaleID().Bytes(), query.SaleID().Bytes(),
	).Row()

	if err := row.Scan(
		&response.TotalStops, &response.CompletedStops,
		&response.SkippedStops, &response.PendingStops,
		&response.TotalCollected, &response.TotalCreditApplied,
		&response.TotalExpected, &response.TotalSkippedAmount,
	); err != nil {
		return GetDeliveryProgressQueryResponse{}, err
	}

	response.PercentComplete = sale.PercentComplete(
		response.CompletedStops+response.SkippedStops,
		response.TotalStops,
	)

	var (
		nextID   uuid.UUID
		nextName string
	)

	row = h.db.WithContext(ctx).Raw(`
		SELECT d.customer_id, c.name
		FROM delivery_steps d
		JOIN customers c ON c.id = d.customer_id
		WHERE d.sale_id = ? AND d.is_next
	`, query.SaleID().Bytes()).Row()

	if err := row.Scan(&nextID, &nextName); err == nil {
		customerID, idErr := kernel.UUIDFromBytes(nextID[:])
		if idErr != nil {
			return GetDeliveryProgressQueryResponse{}, idErr
		}
		response.NextCustomerID = &customerID
		response.NextCustomerName = nextName
	}

	return response, nil
}
