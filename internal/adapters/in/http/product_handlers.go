package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"breakfast/internal/core/application/usecases/commands"
	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/core/domain/model/kernel"
)

// ProductRequest is the body of product create and update calls.
type ProductRequest struct {
	Name      string  `json:"name"`
	BuyPrice  float64 `json:"buy_price"`
	SellPrice float64 `json:"sell_price"`
}

// ProductResponse is the JSON shape of one catalog product.
type ProductResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BuyPrice  float64 `json:"buy_price"`
	SellPrice float64 `json:"sell_price"`
	Margin    float64 `json:"margin"`
}

// GetProducts handles GET /api/v1/products - lists the account's catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProductsQuery(ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{
			ID:        p.ID.String(),
			Name:      p.Name,
			BuyPrice:  p.BuyPrice,
			SellPrice: p.SellPrice,
			Margin:    p.Margin,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products - adds a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ProductRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	buyPrice, sellPrice, err := parsePrices(request.BuyPrice, request.SellPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateProductCommand(productID, ownerID, request.Name, buyPrice, sellPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": productID.String()})
}

// UpdateProduct handles PUT /api/v1/products/:productID - edits a product.
// Price changes only affect future sales; existing items keep their snapshot.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	ownerID, err := authenticatedAccount(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid product id",
		})
	}

	var request ProductRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	buyPrice, sellPrice, err := parsePrices(request.BuyPrice, request.SellPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(productID, ownerID, request.Name, buyPrice, sellPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parsePrices(buy, sell float64) (kernel.Money, kernel.Money, error) {
	buyPrice, err := kernel.NewMoneyFromFloat(buy)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}

	sellPrice, err := kernel.NewMoneyFromFloat(sell)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}

	return buyPrice, sellPrice, nil
}
