package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/pkg/errs"
)

// Rough stop duration used for the customer's ETA. The next stop reports
// two minutes so the page never claims zero.
const (
	portalMinutesPerStop = 5
	portalMinutesNextUp  = 2
)

// GetPortalDeliveryStatusQueryHandler computes the customer's place in a
// sale's delivery run from the step rows.
type GetPortalDeliveryStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetPortalDeliveryStatusQueryHandler creates a handler for the delivery
// tracking query.
func NewGetPortalDeliveryStatusQueryHandler(db *gorm.DB) GetPortalDeliveryStatusQueryHandler {
	return GetPortalDeliveryStatusQueryHandler{db: db}
}

// Handle executes the delivery tracking query. Before the route exists, or
// when the customer is not on it, the response reports a pending stop with
// no queue information.
func (h GetPortalDeliveryStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPortalDeliveryStatusQuery,
) (GetPortalDeliveryStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPortalDeliveryStatusQueryResponse{}, err
	}

	var (
		customerID uuid.UUID
		ownerID    uuid.UUID
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, owner_id
		FROM customers
		WHERE access_token = ?
	`, query.AccessToken().Bytes()).Row()

	if err := row.Scan(&customerID, &ownerID); err != nil {
		return GetPortalDeliveryStatusQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"access token", query.AccessToken().String(), err)
	}

	var status int

	row = h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM sales
		WHERE id = ? AND owner_id = ?
	`, query.SaleID().Bytes(), ownerID).Row()

	if err := row.Scan(&status); err != nil {
		return GetPortalDeliveryStatusQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"sale", query.SaleID().String(), err)
	}

	saleStatus := sale.Status(status)
	response := GetPortalDeliveryStatusQueryResponse{
		SaleStatus: saleStatus.String(),
		StepStatus: sale.StepPending.String(),
	}

	if saleStatus != sale.StatusInProgress && saleStatus != sale.StatusCompleted {
		return response, nil
	}

	var (
		stepStatus      int
		isNext          bool
		sequenceOrder   int
		completedAt     sql.NullTime
		amountCollected sql.NullFloat64
		skipReason      sql.NullString
	)

	row = h.db.WithContext(ctx).Raw(`
		SELECT status, is_next, sequence_order, completed_at, amount_collected, skip_reason
		FROM delivery_steps
		WHERE sale_id = ? AND customer_id = ?
	`, query.SaleID().Bytes(), customerID).Row()

	err := row.Scan(&stepStatus, &isNext, &sequenceOrder, &completedAt, &amountCollected, &skipReason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Customer placed no order for this sale, so they have no stop.
			return response, nil
		}
		return GetPortalDeliveryStatusQueryResponse{}, err
	}

	response.StepStatus = sale.StepStatus(stepStatus).String()
	response.IsNext = isNext

	switch sale.StepStatus(stepStatus) {
	case sale.StepCompleted:
		if completedAt.Valid {
			t := completedAt.Time
			response.CompletedAt = &t
		}
		if amountCollected.Valid {
			amount := amountCollected.Float64
			response.AmountCollected = &amount
		}
	case sale.StepSkipped:
		response.SkipReason = skipReason.String
	case sale.StepPending:
		if err = h.fillQueuePosition(ctx, &response, query, sequenceOrder); err != nil {
			return GetPortalDeliveryStatusQueryResponse{}, err
		}
	}

	return response, nil
}

// fillQueuePosition derives the customer's place in the route and a rough
// ETA from the pending stops ahead of them.
func (h GetPortalDeliveryStatusQueryHandler) fillQueuePosition(
	ctx context.Context,
	response *GetPortalDeliveryStatusQueryResponse,
	query GetPortalDeliveryStatusQuery,
	sequenceOrder int,
) error {
	var (
		position int
		ahead    int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE sequence_order <= ?),
			COUNT(*) FILTER (WHERE sequence_order < ? AND status = ?)
		FROM delivery_steps
		WHERE sale_id = ?
	`, sequenceOrder, sequenceOrder, int(sale.StepPending), query.SaleID().Bytes()).Row()

	if err := row.Scan(&position, &ahead); err != nil {
		return err
	}

	minutes := portalMinutesNextUp
	if ahead > 0 {
		minutes = ahead * portalMinutesPerStop
	}

	response.PositionInQueue = &position
	response.DeliveriesAhead = &ahead
	response.EstimatedMinutes = &minutes
	return nil
}
