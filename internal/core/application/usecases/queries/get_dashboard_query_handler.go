package queries

import (
	"context"

	"gorm.io/gorm"

	"breakfast/internal/core/domain/model/sale"
)

// GetDashboardQueryHandler aggregates account-wide counters and revenue
// totals for the dashboard screen.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle executes the dashboard query.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	var response GetDashboardQueryResponse
	ownerID := query.OwnerID().Bytes()

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM customers WHERE owner_id = ?),
			(SELECT COUNT(*) FROM products WHERE owner_id = ?),
			(SELECT COALESCE(SUM(credit_balance), 0) FROM customers WHERE owner_id = ?)
	`, ownerID, ownerID, ownerID).Row()

	if err := row.Scan(
		&response.CustomerCount, &response.ProductCount, &response.OutstandingCredit,
	); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM sales
		WHERE owner_id = ?
	`,
		int(sale.StatusDraft), int(sale.StatusClosed),
		int(sale.StatusInProgress), int(sale.StatusCompleted),
		ownerID,
	).Row()

	if err := row.Scan(
		&response.DraftSales, &response.ClosedSales,
		&response.InProgressSales, &response.CompletedSales,
	); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(d.amount_collected), 0),
			COALESCE(SUM(d.credit_applied), 0)
		FROM delivery_steps d
		JOIN sales s ON s.id = d.sale_id
		WHERE s.owner_id = ? AND d.status = ?
	`, ownerID, int(sale.StepCompleted)).Row()

	if err := row.Scan(&response.TotalCollected, &response.TotalCreditApplied); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	revenueSQL := `
		SELECT
			COALESCE(SUM(i.sell_price * i.quantity), 0),
			COALESCE(SUM((i.sell_price - i.buy_price) * i.quantity), 0)
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.owner_id = ? AND s.status = ?
	`
	args := []any{ownerID, int(sale.StatusCompleted)}

	if !query.From().IsZero() {
		revenueSQL += " AND s.delivery_date >= ?"
		args = append(args, query.From())
	}
	if !query.To().IsZero() {
		revenueSQL += " AND s.delivery_date <= ?"
		args = append(args, query.To())
	}

	row = h.db.WithContext(ctx).Raw(revenueSQL, args...).Row()
	if err := row.Scan(&response.TotalRevenue, &response.TotalBenefit); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return response, nil
}
