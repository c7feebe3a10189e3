package handlers

import (
	"streamhub-backend/internal/services"
	"streamhub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	service *services.GenreService
	logger  *logrus.Logger
}

func NewGenreHandler(service *services.GenreService, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllGenres godoc
// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of genres"
// @Failure 404 {object} utils.StandardResponse "No genres found"
// @Router /genres [get]
func (h *GenreHandler) GetAllGenres(c *fiber.Ctx) error {
	genres, err := h.service.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list genres")
		return respondError(c, err, "No genres found")
	}
	if len(genres) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No genres found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}

// GetGenreByID godoc
// @Summary Get genre by ID with its movies and series
// @Tags genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} utils.StandardResponse "Genre details"
// @Failure 400 {object} utils.StandardResponse "Invalid genre ID"
// @Failure 404 {object} utils.StandardResponse "Genre not found"
// @Router /genres/{id} [get]
func (h *GenreHandler) GetGenreByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	genre, err := h.service.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Genre not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre retrieved successfully", genre)
}

// CreateGenre godoc
// @Summary Create a new genre
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body services.GenreInput true "Genre payload"
// @Success 201 {object} utils.StandardResponse "Genre created successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Router /genres [post]
func (h *GenreHandler) CreateGenre(c *fiber.Ctx) error {
	var input services.GenreInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre, violations, err := h.service.Create(c.Context(), input)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create genre")
		return respondError(c, err, "Genre not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Genre created successfully", genre)
}

// UpdateGenre godoc
// @Summary Rename a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param id path string true "Genre ID"
// @Param genre body services.GenreInput true "Genre payload"
// @Success 200 {object} utils.StandardResponse "Genre updated successfully"
// @Failure 404 {object} utils.StandardResponse "Genre not found"
// @Router /genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	var input services.GenreInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre, violations, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return respondError(c, err, "Genre not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre updated successfully", genre)
}

// DeleteGenre godoc
// @Summary Delete a genre
// @Description Delete a genre; movies and series keep their other genres
// @Tags genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} utils.StandardResponse "Genre deleted successfully"
// @Failure 404 {object} utils.StandardResponse "Genre not found"
// @Router /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		h.logger.WithError(err).WithField("genreId", id).Error("Failed to delete genre")
		return respondError(c, err, "Genre not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre deleted successfully", nil)
}
