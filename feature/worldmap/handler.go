package worldmap

import (
	"party-ledger/core/apperr"
	"party-ledger/core/logger"
	"party-ledger/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for world-map markers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the map routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/map")
	group.Get("/", h.HandleList)
	group.Post("/", auth.RequireAdmin(), h.HandleCreate)
	group.Delete("/:id", auth.RequireAdmin(), h.HandleDelete)
}

// HandleList returns every marker on the map.
// @Summary List map markers
// @Tags map
// @Produce json
// @Success 200 {array} Marker "Markers in placement order"
// @Router /map [get]
// @Security BearerAuth
func (h *Handler) HandleList(c *fiber.Ctx) error {
	markers, err := h.service.List(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("marker list failed", zap.Error(err))
		return apperr.Respond(c, err)
	}
	return c.JSON(markers)
}

// HandleCreate places a marker on the map.
// @Summary Create map marker
// @Tags map
// @Accept json
// @Produce json
// @Param marker body CreateMarkerRequest true "Marker"
// @Success 201 {object} Marker "Created marker"
// @Failure 400 {object} map[string]string "Missing name"
// @Router /map [post]
// @Security BearerAuth
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateMarkerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.ErrBadRequest)
	}

	marker, err := h.service.Create(c.Context(), req)
	if err != nil {
		l.Warn("marker create failed", zap.String("name", req.Name), zap.Error(err))
		return apperr.Respond(c, err)
	}

	l.Info("marker created", zap.Uint("id", marker.ID))
	return c.Status(fiber.StatusCreated).JSON(marker)
}

// HandleDelete removes a marker from the map.
// @Summary Delete map marker
// @Tags map
// @Produce json
// @Param id path int true "Marker ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Unknown marker"
// @Router /map/{id} [delete]
// @Security BearerAuth
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperr.Respond(c, apperr.ErrBadRequest)
	}

	if err := h.service.Delete(c.Context(), uint(id)); err != nil {
		l.Warn("marker delete failed", zap.Int("id", id), zap.Error(err))
		return apperr.Respond(c, err)
	}

	l.Info("marker deleted", zap.Int("id", id))
	return c.SendStatus(fiber.StatusNoContent)
}
