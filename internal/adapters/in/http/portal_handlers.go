package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"breakfast/internal/core/application/usecases/commands"
	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
)

// PortalOrderLineRequest is one product line of a customer's order update.
type PortalOrderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PortalOrderRequest is the body of the customer order update call. Lines
// with a zero quantity are dropped, so an all-zero body clears the order.
type PortalOrderRequest struct {
	Lines []PortalOrderLineRequest `json:"lines"`
}

// PortalSaleSummaryResponse is one sale row on the customer's page.
type PortalSaleSummaryResponse struct {
	ID           string    `json:"id"`
	DeliveryDate time.Time `json:"delivery_date"`
	Status       string    `json:"status"`
	IsOpen       bool      `json:"is_open"`
	CutoffAt     time.Time `json:"cutoff_at"`
}

// PortalOverviewResponse is the customer's landing page: who the token
// belongs to and every sale of their account, newest first.
type PortalOverviewResponse struct {
	CustomerID   string                      `json:"customer_id"`
	CustomerName string                      `json:"customer_name"`
	Sales        []PortalSaleSummaryResponse `json:"sales"`
}

// PortalProductBody is one catalog entry the customer can order.
type PortalProductBody struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SellPrice float64 `json:"sell_price"`
}

// PortalOrderLineBody is one line of the customer's current order.
type PortalOrderLineBody struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// PortalSaleResponse is the customer's ordering form for one sale. Message
// carries a portal message code when the sale no longer accepts changes.
type PortalSaleResponse struct {
	SaleID       string                `json:"sale_id"`
	DeliveryDate time.Time             `json:"delivery_date"`
	Status       string                `json:"status"`
	IsOpen       bool                  `json:"is_open"`
	CutoffAt     time.Time             `json:"cutoff_at"`
	CustomerID   string                `json:"customer_id"`
	CustomerName string                `json:"customer_name"`
	Products     []PortalProductBody   `json:"products"`
	CurrentOrder []PortalOrderLineBody `json:"current_order"`
	OrderTotal   float64               `json:"order_total"`
	Message      string                `json:"message,omitempty"`
}

// PortalDeliveryStatusResponse is the customer's view of their delivery.
type PortalDeliveryStatusResponse struct {
	SaleStatus       string     `json:"sale_status"`
	StepStatus       string     `json:"step_status"`
	IsNext           bool       `json:"is_next"`
	PositionInQueue  *int       `json:"position_in_queue,omitempty"`
	DeliveriesAhead  *int       `json:"deliveries_ahead,omitempty"`
	EstimatedMinutes *int       `json:"estimated_minutes,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	AmountCollected  *float64   `json:"amount_collected,omitempty"`
	SkipReason       string     `json:"skip_reason,omitempty"`
}

// GetPortalOverview handles GET /api/v1/portal/:token - the customer's
// self-service page. No login: the token itself authorizes the request.
func (s *Server) GetPortalOverview(ctx echo.Context) error {
	token, err := portalToken(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPortalOverviewQuery(token)
	if err != nil {
		return respondError(ctx, err)
	}

	overview, err := s.getPortalOverviewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	sales := make([]PortalSaleSummaryResponse, len(overview.Sales))
	for i, row := range overview.Sales {
		sales[i] = PortalSaleSummaryResponse{
			ID:           row.ID.String(),
			DeliveryDate: row.DeliveryDate,
			Status:       row.Status,
			IsOpen:       row.IsOpen,
			CutoffAt:     row.CutoffAt,
		}
	}

	return ctx.JSON(http.StatusOK, PortalOverviewResponse{
		CustomerID:   overview.CustomerID.String(),
		CustomerName: overview.CustomerName,
		Sales:        sales,
	})
}

// GetPortalSale handles GET /api/v1/portal/:token/sales/:saleID - the
// ordering form for one sale.
func (s *Server) GetPortalSale(ctx echo.Context) error {
	token, saleID, err := portalPathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPortalSaleQuery(token, saleID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getPortalSaleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	products := make([]PortalProductBody, len(view.Products))
	for i, p := range view.Products {
		products[i] = PortalProductBody{
			ID:        p.ID.String(),
			Name:      p.Name,
			SellPrice: p.SellPrice,
		}
	}

	order := make([]PortalOrderLineBody, len(view.CurrentOrder))
	for i, line := range view.CurrentOrder {
		order[i] = PortalOrderLineBody{
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
		}
	}

	return ctx.JSON(http.StatusOK, PortalSaleResponse{
		SaleID:       view.SaleID.String(),
		DeliveryDate: view.DeliveryDate,
		Status:       view.Status,
		IsOpen:       view.IsOpen,
		CutoffAt:     view.CutoffAt,
		CustomerID:   view.CustomerID.String(),
		CustomerName: view.CustomerName,
		Products:     products,
		CurrentOrder: order,
		OrderTotal:   view.OrderTotal,
		Message:      view.Message,
	})
}

// UpdatePortalOrder handles PUT /api/v1/portal/:token/sales/:saleID/order -
// replaces the customer's own order on a sale.
func (s *Server) UpdatePortalOrder(ctx echo.Context) error {
	token, saleID, err := portalPathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request PortalOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]commands.PortalOrderLine, 0, len(request.Lines))
	for _, line := range request.Lines {
		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("product id", err))
		}
		lines = append(lines, commands.PortalOrderLine{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	cmd, err := commands.NewUpdatePortalOrderCommand(token, saleID, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updatePortalOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPortalDeliveryStatus handles GET
// /api/v1/portal/:token/sales/:saleID/delivery - where the customer stands
// in the delivery run.
func (s *Server) GetPortalDeliveryStatus(ctx echo.Context) error {
	token, saleID, err := portalPathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPortalDeliveryStatusQuery(token, saleID)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := s.getPortalDeliveryStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PortalDeliveryStatusResponse{
		SaleStatus:       status.SaleStatus,
		StepStatus:       status.StepStatus,
		IsNext:           status.IsNext,
		PositionInQueue:  status.PositionInQueue,
		DeliveriesAhead:  status.DeliveriesAhead,
		EstimatedMinutes: status.EstimatedMinutes,
		CompletedAt:      status.CompletedAt,
		AmountCollected:  status.AmountCollected,
		SkipReason:       status.SkipReason,
	})
}

// portalToken extracts the :token path param. A malformed token is reported
// as not found, the same as an unknown one.
func portalToken(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Param("token")

	token, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("access token", raw, err)
	}

	return token, nil
}

// portalPathIDs extracts the :token and :saleID path params.
func portalPathIDs(ctx echo.Context) (token, saleID kernel.UUID, err error) {
	token, err = portalToken(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	saleID, err = kernel.UUIDFromString(ctx.Param("saleID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("sale id", err)
	}

	return token, saleID, nil
}
