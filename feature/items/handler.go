package items

import (
	"party-ledger/core/apperr"
	"party-ledger/core/logger"
	"party-ledger/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the item catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items")
	group.Get("/", h.HandleList)
	group.Get("/:key/image", h.HandleGetImage)
	group.Post("/", auth.RequireAdmin(), h.HandleCreate)
	group.Delete("/:key", auth.RequireAdmin(), h.HandleDelete)
	group.Post("/:key/image", auth.RequireAdmin(), h.HandleUploadImage)
}

// HandleList returns the full catalog.
// @Summary List catalog items
// @Tags items
// @Produce json
// @Success 200 {array} Item "Catalog ordered by name"
// @Router /items [get]
// @Security BearerAuth
func (h *Handler) HandleList(c *fiber.Ctx) error {
	items, err := h.service.List(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("catalog list failed", zap.Error(err))
		return apperr.Respond(c, err)
	}
	return c.JSON(items)
}

// HandleCreate adds a catalog item.
// @Summary Create catalog item
// @Description Derives the item key from the name; colliding names conflict.
// @Tags items
// @Accept json
// @Produce json
// @Param item body CreateItemRequest true "Item"
// @Success 201 {object} Item "Created item"
// @Failure 400 {object} map[string]string "Missing name"
// @Failure 409 {object} map[string]string "Duplicate key"
// @Router /items [post]
// @Security BearerAuth
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.ErrBadRequest)
	}

	item, err := h.service.Create(c.Context(), req)
	if err != nil {
		l.Warn("item create failed", zap.String("name", req.Name), zap.Error(err))
		return apperr.Respond(c, err)
	}

	l.Info("item created", zap.String("key", item.Key))
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleDelete removes a catalog item and all lines referencing it.
// @Summary Delete catalog item
// @Tags items
// @Produce json
// @Param key path string true "Item key"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Unknown key"
// @Router /items/{key} [delete]
// @Security BearerAuth
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("key")

	if err := h.service.Delete(c.Context(), key); err != nil {
		l.Warn("item delete failed", zap.String("key", key), zap.Error(err))
		return apperr.Respond(c, err)
	}

	l.Info("item deleted", zap.String("key", key))
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleUploadImage stores an image for a catalog item.
// @Summary Upload item image
// @Tags items
// @Accept mpfd
// @Produce json
// @Param key path string true "Item key"
// @Param image formData file true "Image file"
// @Success 200 {object} Item "Updated item"
// @Failure 404 {object} map[string]string "Unknown key"
// @Router /items/{key}/image [post]
// @Security BearerAuth
func (h *Handler) HandleUploadImage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("key")

	file, err := c.FormFile("image")
	if err != nil {
		return apperr.Respond(c, apperr.ErrBadRequest)
	}

	src, err := file.Open()
	if err != nil {
		return apperr.Respond(c, apperr.ErrBadRequest)
	}
	defer src.Close()

	item, err := h.service.AttachImage(c.Context(), key, file.Header.Get("Content-Type"), src, file.Size)
	if err != nil {
		l.Error("image upload failed", zap.String("key", key), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(item)
}

// HandleGetImage streams the stored image for a catalog item.
// @Summary Get item image
// @Tags items
// @Produce octet-stream
// @Param key path string true "Item key"
// @Success 200 {file} binary "Image bytes"
// @Failure 404 {object} map[string]string "Unknown key or no image"
// @Router /items/{key}/image [get]
// @Security BearerAuth
func (h *Handler) HandleGetImage(c *fiber.Ctx) error {
	obj, err := h.service.OpenImage(c.Context(), c.Params("key"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.SendStream(obj)
}
