package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"breakfast/internal/core/application/usecases/commands"
	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/core/domain/model/kernel"
)

// ProviderRequest is the body of provider create and update calls.
type ProviderRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ProviderResponse is the JSON shape of one supplier.
type ProviderResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// GetProviders handles GET /api/v1/providers - lists the account's suppliers.
func (s *Server) GetProviders(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProvidersQuery(ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	providers, err := s.getProvidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProviderResponse, len(providers))
	for i, p := range providers {
		response[i] = ProviderResponse{
			ID:      p.ID.String(),
			Name:    p.Name,
			Email:   p.Email,
			Phone:   p.Phone,
			Address: p.Address,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProvider handles POST /api/v1/providers - adds a supplier.
func (s *Server) CreateProvider(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ProviderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	providerID := kernel.NewUUID()

	cmd, err := commands.NewCreateProviderCommand(
		providerID, ownerID,
		request.Name, request.Email, request.Phone, request.Address,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createProviderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": providerID.String()})
}

// UpdateProvider handles PUT /api/v1/providers/:providerID - edits a supplier.
func (s *Server) UpdateProvider(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	providerID, err := kernel.UUIDFromString(ctx.Param("providerID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid provider id",
		})
	}

	var request ProviderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateProviderCommand(
		providerID, ownerID,
		request.Name, request.Email, request.Phone, request.Address,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateProviderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProvider handles DELETE /api/v1/providers/:providerID - removes a supplier.
func (s *Server) DeleteProvider(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	providerID, err := kernel.UUIDFromString(ctx.Param("providerID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid provider id",
		})
	}

	cmd, err := commands.NewDeleteProviderCommand(providerID, ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteProviderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
