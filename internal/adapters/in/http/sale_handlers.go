package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"breakfast/internal/core/application/usecases/commands"
	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/pkg/errs"
)

// SaleLineRequest is one product line of a sale create or update call.
type SaleLineRequest struct {
	CustomerID string `json:"customer_id"`
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
}

// SaleRequest is the body of sale create and update calls.
type SaleRequest struct {
	DeliveryDate time.Time         `json:"delivery_date"`
	Lines        []SaleLineRequest `json:"lines"`
}

// ChangeSaleStatusRequest is the body of the manual status transition call.
type ChangeSaleStatusRequest struct {
	Status string `json:"status"`
}

// SaleSummaryResponse is one row of the sale list.
type SaleSummaryResponse struct {
	ID            string    `json:"id"`
	DeliveryDate  time.Time `json:"delivery_date"`
	Status        string    `json:"status"`
	ItemCount     int       `json:"item_count"`
	TotalExpected float64   `json:"total_expected"`
	TotalBenefit  float64   `json:"total_benefit"`
	IsOpen        bool      `json:"is_open"`
	CutoffAt      time.Time `json:"cutoff_at"`
}

// SaleItemBody is the JSON shape of one sale line in the detail response.
type SaleItemBody struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity"`
	SellPrice    float64 `json:"sell_price"`
	LineTotal    float64 `json:"line_total"`
}

// SaleStateResponse is the detail shape of one sale.
type SaleStateResponse struct {
	ID             string         `json:"id"`
	DeliveryDate   time.Time      `json:"delivery_date"`
	Status         string         `json:"status"`
	IsOpen         bool           `json:"is_open"`
	CutoffAt       time.Time      `json:"cutoff_at"`
	HoursRemaining float64        `json:"hours_remaining"`
	TotalExpected  float64        `json:"total_expected"`
	Items          []SaleItemBody `json:"items"`
}

// GetSales handles GET /api/v1/sales - lists the account's sales. Optional
// query parameters: status, from, to (RFC 3339 dates).
func (s *Server) GetSales(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	from, err := parseDateParam(ctx.QueryParam("from"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid from date",
		})
	}
	to, err := parseDateParam(ctx.QueryParam("to"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid to date",
		})
	}

	query, err := queries.NewGetSalesQuery(ownerID, ctx.QueryParam("status"), from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	sales, err := s.getSalesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]SaleSummaryResponse, len(sales))
	for i, row := range sales {
		response[i] = SaleSummaryResponse{
			ID:            row.ID.String(),
			DeliveryDate:  row.DeliveryDate,
			Status:        row.Status,
			ItemCount:     row.ItemCount,
			TotalExpected: row.TotalExpected,
			TotalBenefit:  row.TotalBenefit,
			IsOpen:        row.IsOpen,
			CutoffAt:      row.CutoffAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSale handles GET /api/v1/sales/:saleID - returns one sale with items.
func (s *Server) GetSale(ctx echo.Context) error {
	ownerID, saleID, err := s.salePathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetSaleStateQuery(saleID, ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	state, err := s.getSaleStateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]SaleItemBody, len(state.Items))
	for i, item := range state.Items {
		items[i] = SaleItemBody{
			ID:           item.ID.String(),
			CustomerID:   item.CustomerID.String(),
			CustomerName: item.CustomerName,
			ProductID:    item.ProductID.String(),
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			SellPrice:    item.SellPrice,
			LineTotal:    item.LineTotal,
		}
	}

	return ctx.JSON(http.StatusOK, SaleStateResponse{
		ID:             state.ID.String(),
		DeliveryDate:   state.DeliveryDate,
		Status:         state.Status,
		IsOpen:         state.IsOpen,
		CutoffAt:       state.CutoffAt,
		HoursRemaining: state.HoursRemaining,
		TotalExpected:  state.TotalExpected,
		Items:          items,
	})
}

// CreateSale handles POST /api/v1/sales - creates a draft sale.
func (s *Server) CreateSale(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request SaleRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines, err := parseSaleLines(request.Lines)
	if err != nil {
		return respondError(ctx, err)
	}

	saleID := kernel.NewUUID()

	cmd, err := commands.NewCreateSaleCommand(saleID, ownerID, request.DeliveryDate, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createSaleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": saleID.String()})
}

// UpdateSale handles PUT /api/v1/sales/:saleID - replaces a draft sale's
// lines and delivery date.
func (s *Server) UpdateSale(ctx echo.Context) error {
	ownerID, saleID, err := s.salePathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request SaleRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines, err := parseSaleLines(request.Lines)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateSaleCommand(saleID, ownerID, request.DeliveryDate, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateSaleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeSaleStatus handles PATCH /api/v1/sales/:saleID/status - manual
// draft/closed transitions. Delivery statuses are reached through the
// delivery endpoints, never set directly.
func (s *Server) ChangeSaleStatus(ctx echo.Context) error {
	ownerID, saleID, err := s.salePathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ChangeSaleStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := sale.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeSaleStatusCommand(saleID, ownerID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.changeSaleStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteSale handles DELETE /api/v1/sales/:saleID - removes a draft sale.
func (s *Server) DeleteSale(ctx echo.Context) error {
	ownerID, saleID, err := s.salePathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteSaleCommand(saleID, ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteSaleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// salePathIDs extracts the authenticated owner and the :saleID path param.
func (s *Server) salePathIDs(ctx echo.Context) (ownerID, saleID kernel.UUID, err error) {
	ownerID, err = authenticatedAccount(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	saleID, err = kernel.UUIDFromString(ctx.Param("saleID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("sale id", err)
	}

	return ownerID, saleID, nil
}

func parseSaleLines(lines []SaleLineRequest) ([]commands.SaleLine, error) {
	parsed := make([]commands.SaleLine, 0, len(lines))

	for _, line := range lines {
		customerID, err := kernel.UUIDFromString(line.CustomerID)
		if err != nil {
			return nil, err
		}

		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return nil, err
		}

		parsed = append(parsed, commands.SaleLine{
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   line.Quantity,
		})
	}

	return parsed, nil
}

func parseDateParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
