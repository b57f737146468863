package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ticket-service/internal/config"
	"github.com/iliyamo/ticket-service/internal/middleware"
	"github.com/iliyamo/ticket-service/internal/model"
	"github.com/iliyamo/ticket-service/internal/repository"
	"github.com/iliyamo/ticket-service/internal/utils"
)

// AccountStore is the account persistence AuthHandler relies on.
type AccountStore interface {
	Create(ctx context.Context, email, password string, cost int) (int64, error)
	GetByEmail(ctx context.Context, email string) (model.Account, error)
}

// AuthHandler bundles dependencies for account endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Accounts AccountStore
}

func NewAuthHandler(cfg config.Config, accounts AccountStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: accounts}
}

// ----- DTOs -----

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type accountPart struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type authResp struct {
	Account accountPart `json:"account"`
	Access  tokenPart   `json:"access"`
}

func bindCredentials(c echo.Context) (credentialsReq, bool) {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return req, false
	}
	req.Email = repository.NormalizeEmail(req.Email)
	return req, req.Email != "" && req.Password != ""
}

// Register: create an account and return an access token straight away.
func (h *AuthHandler) Register(c echo.Context) error {
	req, ok := bindCredentials(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Accounts.Create(ctx, req.Email, req.Password, h.Cfg.BcryptCost)
	switch {
	case errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
	case errors.Is(err, utils.ErrPasswordTooLong):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password too long"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create account failed"})
	}
	return h.issue(c, http.StatusCreated, accountPart{ID: id, Email: req.Email})
}

// Login: verify credentials and return a fresh access token.
func (h *AuthHandler) Login(c echo.Context) error {
	req, ok := bindCredentials(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acc, err := h.Accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(acc.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	return h.issue(c, http.StatusOK, accountPart{ID: acc.ID, Email: acc.Email})
}

func (h *AuthHandler) issue(c echo.Context, status int, acc accountPart) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, acc.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(status, authResp{
		Account: acc,
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Me: simple protected endpoint.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"account_id": middleware.AccountID(c)})
}
