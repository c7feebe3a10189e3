package handlers

import (
	"streamhub-backend/internal/services"
	"streamhub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CollectionHandler struct {
	service *services.CollectionService
	logger  *logrus.Logger
}

func NewCollectionHandler(service *services.CollectionService, logger *logrus.Logger) *CollectionHandler {
	return &CollectionHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllCollections godoc
// @Summary List collections with resolved content
// @Tags collections
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of collections"
// @Failure 404 {object} utils.StandardResponse "No collections found"
// @Router /collections [get]
func (h *CollectionHandler) GetAllCollections(c *fiber.Ctx) error {
	collections, err := h.service.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list collections")
		return respondError(c, err, "No collections found")
	}
	if len(collections) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No collections found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Collections retrieved successfully", collections)
}

// GetCollectionByID godoc
// @Summary Get a collection with resolved content
// @Tags collections
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} utils.StandardResponse "Collection details"
// @Failure 404 {object} utils.StandardResponse "Collection not found"
// @Router /collections/{id} [get]
func (h *CollectionHandler) GetCollectionByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid collection ID")
	}

	collection, err := h.service.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Collection not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Collection retrieved successfully", collection)
}

// CreateCollection godoc
// @Summary Create a new collection
// @Tags collections
// @Accept json
// @Produce json
// @Param collection body services.CollectionInput true "Collection payload"
// @Success 201 {object} utils.StandardResponse "Collection created successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Router /collections [post]
func (h *CollectionHandler) CreateCollection(c *fiber.Ctx) error {
	var input services.CollectionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	collection, violations, err := h.service.Create(c.Context(), input)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create collection")
		return respondError(c, err, "Collection not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Collection created successfully", collection)
}

// UpdateCollection godoc
// @Summary Replace a collection's name and items
// @Tags collections
// @Accept json
// @Produce json
// @Param id path string true "Collection ID"
// @Param collection body services.CollectionInput true "Collection payload"
// @Success 200 {object} utils.StandardResponse "Collection updated successfully"
// @Failure 404 {object} utils.StandardResponse "Collection not found"
// @Router /collections/{id} [put]
func (h *CollectionHandler) UpdateCollection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid collection ID")
	}

	var input services.CollectionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	collection, violations, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return respondError(c, err, "Collection not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Collection updated successfully", collection)
}

// DeleteCollection godoc
// @Summary Delete a collection
// @Description Delete a collection; the referenced movies and series are untouched
// @Tags collections
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} utils.StandardResponse "Collection deleted successfully"
// @Failure 404 {object} utils.StandardResponse "Collection not found"
// @Router /collections/{id} [delete]
func (h *CollectionHandler) DeleteCollection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid collection ID")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		h.logger.WithError(err).WithField("collectionId", id).Error("Failed to delete collection")
		return respondError(c, err, "Collection not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Collection deleted successfully", nil)
}
