package accounts

import (
	"party-ledger/core/apperr"
	"party-ledger/core/logger"
	"party-ledger/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for authentication.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, logger: service.logger}
}

// RegisterPublicRoutes registers the routes reachable without a token.
func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Post("/auth/login", h.HandleLogin)
}

// RegisterProtectedRoutes registers the routes behind the auth middleware.
func (h *Handler) RegisterProtectedRoutes(app fiber.Router) {
	app.Get("/auth/me", h.HandleMe)
}

// HandleLogin authenticates a credential pair, provisioning the account
// on first use.
// @Summary Login or register
// @Description Verifies username/password; an unseen username is auto-provisioned. Returns a bearer session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Session token"
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 401 {object} map[string]string "Invalid secret"
// @Router /auth/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.ErrBadRequest)
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		l.Warn("login failed", zap.String("username", req.Username), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(resp)
}

// HandleMe echoes the caller's resolved identity.
// @Summary Current identity
// @Tags auth
// @Produce json
// @Success 200 {object} auth.Identity "Identity"
// @Failure 401 {object} map[string]string "Missing token"
// @Router /auth/me [get]
// @Security BearerAuth
func (h *Handler) HandleMe(c *fiber.Ctx) error {
	id, ok := auth.FromContext(c)
	if !ok {
		return apperr.Respond(c, apperr.ErrUnauthenticated)
	}
	return c.JSON(id)
}
