package http

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"breakfast/internal/core/application/usecases/commands"
	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
)

const routeContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DeliveryStopResponse is one customer stop on the delivery route.
type DeliveryStopResponse struct {
	CustomerID      string     `json:"customer_id"`
	CustomerName    string     `json:"customer_name"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerAddress string     `json:"customer_address"`
	CustomerCredit  float64    `json:"customer_credit"`
	SequenceOrder   int        `json:"sequence_order"`
	Status          string     `json:"status"`
	IsNext          bool       `json:"is_next"`
	AmountExpected  float64    `json:"amount_expected"`
	AmountCollected float64    `json:"amount_collected"`
	CreditApplied   float64    `json:"credit_applied"`
	CreditToApply   float64    `json:"credit_to_apply"`
	AmountToCollect float64    `json:"amount_to_collect"`
	SkipReason      string     `json:"skip_reason,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// DeliveryRouteResponse is the ordered route of one sale.
type DeliveryRouteResponse struct {
	SaleID       string                 `json:"sale_id"`
	DeliveryDate time.Time              `json:"delivery_date"`
	Status       string                 `json:"status"`
	Stops        []DeliveryStopResponse `json:"stops"`
}

// DeliveryProgressResponse summarizes a delivery run.
type DeliveryProgressResponse struct {
	SaleID             string  `json:"sale_id"`
	Status             string  `json:"status"`
	NextCustomerID     *string `json:"next_customer_id,omitempty"`
	NextCustomerName   string  `json:"next_customer_name,omitempty"`
	TotalStops         int     `json:"total_stops"`
	CompletedStops     int     `json:"completed_stops"`
	SkippedStops       int     `json:"skipped_stops"`
	PendingStops       int     `json:"pending_stops"`
	PercentComplete    float64 `json:"percent_complete"`
	TotalCollected     float64 `json:"total_collected"`
	TotalCreditApplied float64 `json:"total_credit_applied"`
	TotalExpected      float64 `json:"total_expected"`
	TotalSkippedAmount float64 `json:"total_skipped_amount"`
}

// ReorderRouteRequest carries the full customer ordering for a route.
type ReorderRouteRequest struct {
	CustomerIDs []string `json:"customer_ids"`
}

// CompleteDeliveryStepRequest carries the cash collected at a stop.
type CompleteDeliveryStepRequest struct {
	AmountCollected float64 `json:"amount_collected"`
}

// SkipDeliveryStepRequest carries the reason a stop was skipped.
type SkipDeliveryStepRequest struct {
	Reason string `json:"reason"`
}

// StartDelivery handles POST /sales/:saleID/delivery.
func (s *Server) StartDelivery(ctx echo.Context) error {
	ownerID, saleID, err := s.salePathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewStartDeliveryCommand(saleID, ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.startDeliveryHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryRoute handles GET /sales/:saleID/delivery.
func (s *Server) GetDeliveryRoute(ctx echo.Context) error {
	route, err := s.fetchRoute(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRouteResponse(route))
}

// ExportDeliveryRoute handles GET /sales/:saleID/delivery/export and
// returns the route as an xlsx workbook.
func (s *Server) ExportDeliveryRoute(ctx echo.Context) error {
	route, err := s.fetchRoute(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var buf bytes.Buffer
	if err := s.routeWriter.WriteRoute(&buf, route); err != nil {
		return respondError(ctx, err)
	}

	filename := "route-" + route.DeliveryDate.Format("2006-01-02") + ".xlsx"
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return ctx.Blob(http.StatusOK, routeContentType, buf.Bytes())
}

// GetDeliveryProgress handles GET /sales/:saleID/delivery/progress.
func (s *Server) GetDeliveryProgress(ctx echo.Context) error {
	ownerID, saleID, err := s.salePathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveryProgressQuery(saleID, ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	progress, err := s.getDeliveryProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := DeliveryProgressResponse{
		SaleID:             progress.SaleID.String(),
		Status:             progress.Status,
		NextCustomerName:   progress.NextCustomerName,
		TotalStops:         progress.TotalStops,
		CompletedStops:     progress.CompletedStops,
		SkippedStops:       progress.SkippedStops,
		PendingStops:       progress.PendingStops,
		PercentComplete:    progress.PercentComplete,
		TotalCollected:     progress.TotalCollected,
		TotalCreditApplied: progress.TotalCreditApplied,
		TotalExpected:      progress.TotalExpected,
		TotalSkippedAmount: progress.TotalSkippedAmount,
	}
	if progress.NextCustomerID != nil {
		next := progress.NextCustomerID.String()
		response.NextCustomerID = &next
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReorderRoute handles PUT /sales/:saleID/delivery/order.
func (s *Server) ReorderRoute(ctx echo.Context) error {
	ownerID, saleID, err := s.salePathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ReorderRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	ordered := make([]kernel.UUID, 0, len(request.CustomerIDs))
	for _, raw := range request.CustomerIDs {
		customerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("customer id", err))
		}
		ordered = append(ordered, customerID)
	}

	command, err := commands.NewReorderRouteCommand(saleID, ownerID, ordered)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.reorderRouteHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetNextDelivery handles PATCH /sales/:saleID/delivery/:customerID/next.
func (s *Server) SetNextDelivery(ctx echo.Context) error {
	ownerID, saleID, customerID, err := s.stepPathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewSetNextDeliveryCommand(saleID, ownerID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setNextDeliveryHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDeliveryStep handles PATCH /sales/:saleID/delivery/:customerID/complete.
func (s *Server) CompleteDeliveryStep(ctx echo.Context) error {
	ownerID, saleID, customerID, err := s.stepPathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CompleteDeliveryStepRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	amount, err := kernel.NewMoneyFromFloat(request.AmountCollected)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewCompleteDeliveryStepCommand(saleID, ownerID, customerID, amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completeDeliveryStepHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SkipDeliveryStep handles PATCH /sales/:saleID/delivery/:customerID/skip.
func (s *Server) SkipDeliveryStep(ctx echo.Context) error {
	ownerID, saleID, customerID, err := s.stepPathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request SkipDeliveryStepRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	command, err := commands.NewSkipDeliveryStepCommand(saleID, ownerID, customerID, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.skipDeliveryStepHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResetDeliveryStep handles PATCH /sales/:saleID/delivery/:customerID/reset.
func (s *Server) ResetDeliveryStep(ctx echo.Context) error {
	ownerID, saleID, customerID, err := s.stepPathIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewResetDeliveryStepCommand(saleID, ownerID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.resetDeliveryStepHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) fetchRoute(ctx echo.Context) (queries.GetDeliveryRouteQueryResponse, error) {
	ownerID, saleID, err := s.salePathIDs(ctx)
	if err != nil {
		return queries.GetDeliveryRouteQueryResponse{}, err
	}

	query, err := queries.NewGetDeliveryRouteQuery(saleID, ownerID)
	if err != nil {
		return queries.GetDeliveryRouteQueryResponse{}, err
	}

	return s.getDeliveryRouteHandler.Handle(ctx.Request().Context(), query)
}

func (s *Server) stepPathIDs(ctx echo.Context) (ownerID, saleID, customerID kernel.UUID, err error) {
	ownerID, saleID, err = s.salePathIDs(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, err
	}

	customerID, err = kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, kernel.UUID{},
			errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}

	return ownerID, saleID, customerID, nil
}

func toRouteResponse(route queries.GetDeliveryRouteQueryResponse) DeliveryRouteResponse {
	stops := make([]DeliveryStopResponse, 0, len(route.Stops))
	for _, stop := range route.Stops {
		stops = append(stops, DeliveryStopResponse{
			CustomerID:      stop.CustomerID.String(),
			CustomerName:    stop.CustomerName,
			CustomerPhone:   stop.CustomerPhone,
			CustomerAddress: stop.CustomerAddress,
			CustomerCredit:  stop.CustomerCredit,
			SequenceOrder:   stop.SequenceOrder,
			Status:          stop.Status,
			IsNext:          stop.IsNext,
			AmountExpected:  stop.AmountExpected,
			AmountCollected: stop.AmountCollected,
			CreditApplied:   stop.CreditApplied,
			CreditToApply:   stop.CreditToApply,
			AmountToCollect: stop.AmountToCollect,
			SkipReason:      stop.SkipReason,
			CompletedAt:     stop.CompletedAt,
		})
	}

	return DeliveryRouteResponse{
		SaleID:       route.SaleID.String(),
		DeliveryDate: route.DeliveryDate,
		Status:       route.Status,
		Stops:        stops,
	}
}
