package queries

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/pkg/errs"
)

// GetDeliveryRouteQueryHandler fetches a sale's delivery route with the
// customer details the driver needs at each stop.
type GetDeliveryRouteQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryRouteQueryHandler creates a handler for route queries.
func NewGetDeliveryRouteQueryHandler(db *gorm.DB) GetDeliveryRouteQueryHandler {
	return GetDeliveryRouteQueryHandler{db: db}
}

// Handle executes the route query. The sale must belong to the requesting
// owner and have a generated route.
func (h GetDeliveryRouteQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryRouteQuery,
) (GetDeliveryRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryRouteQueryResponse{}, err
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
		return GetDeliveryRouteQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"sale", query.SaleID().String(), err)
	}

	response := GetDeliveryRouteQueryResponse{
		SaleID:       query.SaleID(),
		DeliveryDate: deliveryDate,
		Status:       sale.Status(status).String(),
		Stops:        make([]DeliveryStopResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.customer_id,
			c.name,
			c.phone,
			c.address,
			c.credit_balance,
			s.sequence_order,
			s.status,
			s.is_next,
			COALESCE(exp.total, 0),
			COALESCE(s.amount_collected, 0),
			COALESCE(s.credit_applied, 0),
			s.skip_reason,
			s.completed_at
		FROM delivery_steps s
		JOIN customers c ON c.id = s.customer_id
		LEFT JOIN (
			SELECT customer_id, SUM(sell_price * quantity) AS total
			FROM sale_items
			WHERE sale_id = ?
			GROUP BY customer_id
		) exp ON exp.customer_id = s.customer_id
		WHERE s.sale_id = ?
		ORDER BY s.sequence_order
	`, query.SaleID().Bytes(), query.SaleID().Bytes()).Rows()
	if err != nil {
		return GetDeliveryRouteQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			customerID  uuid.UUID
			stepStatus  int
			skipReason  sql.NullString
			completedAt sql.NullTime
			stop        DeliveryStopResponse
		)

		if err = rows.Scan(
			&customerID, &stop.CustomerName, &stop.CustomerPhone, &stop.CustomerAddress,
			&stop.CustomerCredit, &stop.SequenceOrder, &stepStatus, &stop.IsNext,
			&stop.AmountExpected, &stop.AmountCollected, &stop.CreditApplied,
			&skipReason, &completedAt,
		); err != nil {
			return GetDeliveryRouteQueryResponse{}, err
		}

		if stop.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return GetDeliveryRouteQueryResponse{}, err
		}
		stop.Status = sale.StepStatus(stepStatus).String()
		stop.SkipReason = skipReason.String
		if completedAt.Valid {
			t := completedAt.Time
			stop.CompletedAt = &t
		}

		if sale.StepStatus(stepStatus) == sale.StepPending {
			stop.CreditToApply = math.Min(stop.CustomerCredit, stop.AmountExpected)
			stop.AmountToCollect = stop.AmountExpected - stop.CreditToApply
		}

		response.Stops = append(response.Stops, stop)
	}

	if err = rows.Err(); err != nil {
		return GetDeliveryRouteQueryResponse{}, err
	}

	return response, nil
}
