package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"breakfast/internal/core/application/usecases/commands"
	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/core/domain/model/kernel"
)

// CustomerRequest is the body of customer create and update calls.
type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// CustomerResponse is the JSON shape of one customer. The access token is
// the customer's self-service ordering link and is only visible to the
// owning account.
type CustomerResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Notes         string  `json:"notes"`
	CreditBalance float64 `json:"credit_balance"`
	AccessToken   string  `json:"access_token"`
}

// GetCustomers handles GET /api/v1/customers - lists the account's customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomersQuery(ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		response[i] = CustomerResponse{
			ID:            c.ID.String(),
			Name:          c.Name,
			Phone:         c.Phone,
			Address:       c.Address,
			Notes:         c.Notes,
			CreditBalance: c.CreditBalance,
			AccessToken:   c.AccessToken.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/v1/customers - creates a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CustomerRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID := kernel.NewUUID()

	cmd, err := commands.NewCreateCustomerCommand(
		customerID, ownerID,
		request.Name, request.Phone, request.Address, request.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": customerID.String()})
}

// UpdateCustomer handles PUT /api/v1/customers/:customerID - edits a customer.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id",
		})
	}

	var request CustomerRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		customerID, ownerID,
		request.Name, request.Phone, request.Address, request.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
