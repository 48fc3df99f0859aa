package quests

import (
	"party-ledger/core/apperr"
	"party-ledger/core/logger"
	"party-ledger/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the quest log.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the quest-log routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/quests")
	group.Get("/", h.HandleList)
	group.Post("/", auth.RequireAdmin(), h.HandleCreate)
	group.Delete("/:key", auth.RequireAdmin(), h.HandleDelete)
	group.Put("/:key/active", auth.RequireAdmin(), h.HandleSetActive)
}

// HandleList returns the active quests.
// @Summary List active quests
// @Tags quests
// @Produce json
// @Success 200 {array} Quest "Active quests, newest first"
// @Router /quests [get]
// @Security BearerAuth
func (h *Handler) HandleList(c *fiber.Ctx) error {
	quests, err := h.service.ListActive(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("quest list failed", zap.Error(err))
		return apperr.Respond(c, err)
	}
	return c.JSON(quests)
}

// HandleCreate adds a quest to the log.
// @Summary Create quest
// @Description Derives the quest key from the name; colliding names conflict.
// @Tags quests
// @Accept json
// @Produce json
// @Param quest body CreateQuestRequest true "Quest"
// @Success 201 {object} Quest "Created quest"
// @Failure 400 {object} map[string]string "Missing name"
// @Failure 409 {object} map[string]string "Duplicate key"
// @Router /quests [post]
// @Security BearerAuth
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.ErrBadRequest)
	}

	quest, err := h.service.Create(c.Context(), req)
	if err != nil {
		l.Warn("quest create failed", zap.String("name", req.Name), zap.Error(err))
		return apperr.Respond(c, err)
	}

	l.Info("quest created", zap.String("key", quest.Key))
	return c.Status(fiber.StatusCreated).JSON(quest)
}

// HandleSetActive flips a quest's active flag.
// @Summary Activate or deactivate a quest
// @Tags quests
// @Accept json
// @Produce json
// @Param key path string true "Quest key"
// @Param state body SetActiveRequest true "Desired state"
// @Success 200 {object} Quest "Updated quest"
// @Failure 404 {object} map[string]string "Unknown key"
// @Router /quests/{key}/active [put]
// @Security BearerAuth
func (h *Handler) HandleSetActive(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("key")

	var req SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.ErrBadRequest)
	}

	quest, err := h.service.SetActive(c.Context(), key, req.Active)
	if err != nil {
		l.Warn("quest state change failed", zap.String("key", key), zap.Error(err))
		return apperr.Respond(c, err)
	}

	l.Info("quest state changed", zap.String("key", key), zap.Bool("active", quest.Active))
	return c.JSON(quest)
}

// HandleDelete removes a quest from the log.
// @Summary Delete quest
// @Tags quests
// @Produce json
// @Param key path string true "Quest key"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Unknown key"
// @Router /quests/{key} [delete]
// @Security BearerAuth
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("key")

	if err := h.service.Delete(c.Context(), key); err != nil {
		l.Warn("quest delete failed", zap.String("key", key), zap.Error(err))
		return apperr.Respond(c, err)
	}

	l.Info("quest deleted", zap.String("key", key))
	return c.SendStatus(fiber.StatusNoContent)
}
