package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"breakfast/internal/core/application/usecases/queries"
)

// DashboardResponse aggregates an account's activity figures.
type DashboardResponse struct {
	CustomerCount      int     `json:"customer_count"`
	ProductCount       int     `json:"product_count"`
	DraftSales         int     `json:"draft_sales"`
	ClosedSales        int     `json:"closed_sales"`
	InProgressSales    int     `json:"in_progress_sales"`
	CompletedSales     int     `json:"completed_sales"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalBenefit       float64 `json:"total_benefit"`
	TotalCollected     float64 `json:"total_collected"`
	TotalCreditApplied float64 `json:"total_credit_applied"`
	OutstandingCredit  float64 `json:"outstanding_credit"`
}

// GetDashboard handles GET /dashboard. Optional from and to query
// parameters bound the delivery dates of the revenue figures.
func (s *Server) GetDashboard(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	from, err := parseDateParam(ctx.QueryParam("from"))
	if err != nil {
		return respondError(ctx, err)
	}

	to, err := parseDateParam(ctx.QueryParam("to"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDashboardQuery(ownerID, from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	dashboard, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardResponse{
		CustomerCount:      dashboard.CustomerCount,
		ProductCount:       dashboard.ProductCount,
		DraftSales:         dashboard.DraftSales,
		ClosedSales:        dashboard.ClosedSales,
		InProgressSales:    dashboard.InProgressSales,
		CompletedSales:     dashboard.CompletedSales,
		TotalRevenue:       dashboard.TotalRevenue,
		TotalBenefit:       dashboard.TotalBenefit,
		TotalCollected:     dashboard.TotalCollected,
		TotalCreditApplied: dashboard.TotalCreditApplied,
		OutstandingCredit:  dashboard.OutstandingCredit,
	})
}
