package inventory

import (
	"context"

	"party-ledger/core/apperr"
	"party-ledger/core/ledger"
	"party-ledger/core/logger"
	"party-ledger/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the caller's inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/", h.HandleList)
	group.Post("/add", h.HandleAdd)
	group.Post("/remove", h.HandleRemove)
}

// HandleList returns the caller's inventory lines.
// @Summary List own inventory
// @Tags inventory
// @Produce json
// @Success 200 {array} ledger.InventoryLine "Lines ordered by item key"
// @Router /inventory [get]
// @Security BearerAuth
func (h *Handler) HandleList(c *fiber.Ctx) error {
	id, ok := auth.FromContext(c)
	if !ok {
		return apperr.Respond(c, apperr.ErrUnauthenticated)
	}

	lines, err := h.service.List(c.Context(), id.AccountID)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("inventory list failed", zap.Error(err))
		return apperr.Respond(c, err)
	}
	return c.JSON(lines)
}

// HandleAdd adds quantity to the caller's line for an item.
// @Summary Add to own inventory
// @Description Quantity defaults to 1 when omitted. The item must exist in the catalog.
// @Tags inventory
// @Accept json
// @Produce json
// @Param mutation body MutationRequest true "Item and quantity"
// @Success 200 {object} ledger.InventoryLine "Resulting line"
// @Failure 400 {object} map[string]string "Non-positive quantity"
// @Failure 404 {object} map[string]string "Unknown item"
// @Router /inventory/add [post]
// @Security BearerAuth
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	return h.mutate(c, h.service.Add)
}

// HandleRemove removes quantity from the caller's line for an item.
// @Summary Remove from own inventory
// @Description Fails when the line holds less than requested; a drained line is deleted.
// @Tags inventory
// @Accept json
// @Produce json
// @Param mutation body MutationRequest true "Item and quantity"
// @Success 200 {object} ledger.InventoryLine "Resulting line (quantity 0 = removed)"
// @Failure 422 {object} map[string]string "Insufficient quantity"
// @Router /inventory/remove [post]
// @Security BearerAuth
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	return h.mutate(c, h.service.Remove)
}

func (h *Handler) mutate(c *fiber.Ctx, op func(ctx context.Context, accountID uint, itemKey string, qty int) (ledger.InventoryLine, error)) error {
	id, ok := auth.FromContext(c)
	if !ok {
		return apperr.Respond(c, apperr.ErrUnauthenticated)
	}

	var req MutationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.ErrBadRequest)
	}

	result, err := op(c.Context(), id.AccountID, req.Item, req.Qty())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("inventory mutation failed",
			zap.String("item", req.Item), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(result)
}
