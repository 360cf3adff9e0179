package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"breakfast/internal/core/domain/model/kernel"
)

// accountIDKey is the echo context key under which the middleware stores
// the authenticated account ID.
const accountIDKey = "accountID"

// Claims defines the token payload: the account the token was issued for.
type Claims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

// TokenIssuer creates and validates the signed JWTs used for API auth.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing secret and
// token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) TokenIssuer {
	return TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for an account.
func (t TokenIssuer) Issue(accountID kernel.UUID, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(t.ttl)

	claims := &Claims{
		AccountID: accountID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	return signed, expiresAt, err
}

// Parse validates a token string and returns the account it was issued for.
func (t TokenIssuer) Parse(tokenString string) (kernel.UUID, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.UUID{}, err
	}
	if !token.Valid {
		return kernel.UUID{}, errors.New("invalid token")
	}

	return kernel.UUIDFromString(claims.AccountID)
}

// RequireAuth returns middleware that validates the Bearer token and stores
// the account ID in the request context for the handlers.
func RequireAuth(issuer TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Authorization header is required",
				})
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Authorization header must start with Bearer",
				})
			}

			accountID, err := issuer.Parse(tokenString)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			ctx.Set(accountIDKey, accountID)
			return next(ctx)
		}
	}
}

// authenticatedAccount returns the account ID stored by RequireAuth.
func authenticatedAccount(ctx echo.Context) (kernel.UUID, error) {
	accountID, ok := ctx.Get(accountIDKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, errors.New("request is not authenticated")
	}
	return accountID, nil
}
