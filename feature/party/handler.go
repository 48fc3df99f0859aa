package party

import (
	"context"

	"party-ledger/core/apperr"
	"party-ledger/core/ledger"
	"party-ledger/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MutationRequest is the body of the add and remove operations. A nil
// Quantity means the default of one.
type MutationRequest struct {
	Item     string `json:"item"`
	Quantity *int   `json:"quantity"`
}

// Qty resolves the requested quantity, applying the omitted-field default.
func (r MutationRequest) Qty() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// Handler handles HTTP requests for the party stash.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the party-storage routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/party/storage")
	group.Get("/", h.HandleList)
	group.Post("/add", h.HandleAdd)
	group.Post("/remove", h.HandleRemove)
}

// HandleList returns the shared stash.
// @Summary List party storage
// @Tags party
// @Produce json
// @Success 200 {array} ledger.StorageLine "Lines ordered by item key"
// @Router /party/storage [get]
// @Security BearerAuth
func (h *Handler) HandleList(c *fiber.Ctx) error {
	lines, err := h.service.List(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("party storage list failed", zap.Error(err))
		return apperr.Respond(c, err)
	}
	return c.JSON(lines)
}

// HandleAdd adds quantity to the shared stash.
// @Summary Add to party storage
// @Description Quantity defaults to 1 when omitted. Broadcasts STORAGE_UPDATED on success.
// @Tags party
// @Accept json
// @Produce json
// @Param mutation body MutationRequest true "Item and quantity"
// @Success 200 {object} ledger.StorageLine "Resulting line"
// @Failure 400 {object} map[string]string "Non-positive quantity"
// @Failure 404 {object} map[string]string "Unknown item"
// @Router /party/storage/add [post]
// @Security BearerAuth
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	return h.mutate(c, h.service.Add)
}

// HandleRemove removes quantity from the shared stash.
// @Summary Remove from party storage
// @Description Fails when the stash holds less than requested. Broadcasts STORAGE_UPDATED on success.
// @Tags party
// @Accept json
// @Produce json
// @Param mutation body MutationRequest true "Item and quantity"
// @Success 200 {object} ledger.StorageLine "Resulting line (quantity 0 = removed)"
// @Failure 422 {object} map[string]string "Insufficient quantity"
// @Router /party/storage/remove [post]
// @Security BearerAuth
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	return h.mutate(c, h.service.Remove)
}

func (h *Handler) mutate(c *fiber.Ctx, op func(ctx context.Context, itemKey string, qty int) (ledger.StorageLine, error)) error {
	var req MutationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.ErrBadRequest)
	}

	line, err := op(c.Context(), req.Item, req.Qty())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("party storage mutation failed",
			zap.String("item", req.Item), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(line)
}
