package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"breakfast/internal/core/application/usecases/commands"
	"breakfast/internal/core/domain/model/kernel"
)

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse returns the identifier of the newly created account.
type RegisterResponse struct {
	ID string `json:"id"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued Bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Register handles POST /api/v1/auth/register - creates a new account.
func (s *Server) Register(ctx echo.Context) error {
	var request RegisterRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	accountID := kernel.NewUUID()

	cmd, err := commands.NewRegisterAccountCommand(accountID, request.Email, request.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{ID: accountID.String()})
}

// Login handles POST /api/v1/auth/login - verifies credentials and issues
// a token. A wrong email and a wrong password produce the same response, so
// the endpoint does not reveal which addresses are registered.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	uow := s.accountUoWFactory.Create()

	registered, err := uow.AccountRepository().GetByEmail(ctx.Request().Context(), request.Email)
	if err != nil {
		return invalidCredentials(ctx)
	}

	err = bcrypt.CompareHashAndPassword([]byte(registered.PasswordHash()), []byte(request.Password))
	if err != nil {
		return invalidCredentials(ctx)
	}

	token, expiresAt, err := s.tokenIssuer.Issue(registered.ID(), time.Now())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

func invalidCredentials(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Invalid email or password",
	})
}
