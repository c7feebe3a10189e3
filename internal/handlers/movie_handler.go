package handlers

import (
	"strconv"

	"streamhub-backend/internal/middleware"
	"streamhub-backend/internal/models"
	"streamhub-backend/internal/services"
	"streamhub-backend/internal/utils"
	"streamhub-backend/internal/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service *services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service *services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// movieInputFromForm reads the multipart fields shared by create and
// update. Coercion failures come back as violations and join the
// declarative check in the service, so one response carries them all.
func movieInputFromForm(c *fiber.Ctx) (services.MovieInput, validators.Violations) {
	var violations validators.Violations

	input := services.MovieInput{
		Title:   c.FormValue("title"),
		Plot:    c.FormValue("plot"),
		Country: c.FormValue("country"),
		Trailer: c.FormValue("trailer"),
	}

	if raw := c.FormValue("releaseDate"); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			violations.AddWithValue("releaseDate", raw, "Release date is not a valid date")
		} else {
			input.ReleaseDate = date
		}
	}

	if raw := c.FormValue("runtime"); raw != "" {
		runtime, err := strconv.Atoi(raw)
		if err != nil {
			violations.AddWithValue("runtime", raw, "Runtime must be a number")
		} else {
			input.Runtime = runtime
		}
	}

	if form, err := c.MultipartForm(); err == nil {
		input.GenreIDs = form.Value["genres"]
	}

	return input, violations
}

// GetAllMovies godoc
// @Summary List movies
// @Description List movies with optional release-date sorting and a result limit
// @Tags movies
// @Produce json
// @Param sort query string false "Sort order (newest/oldest)"
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 404 {object} utils.StandardResponse "No movies found"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	sort := c.Query("sort", "")
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	movies, err := h.service.List(c.Context(), sort, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list movies")
		return respondError(c, err, "No movies found")
	}
	if len(movies) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No movies found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// CreateMovie godoc
// @Summary Create a new movie
// @Description Create a movie from multipart form data with poster and backdrop images
// @Tags movies
// @Accept mpfd
// @Produce json
// @Success 201 {object} utils.StandardResponse "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	input, formViolations := movieInputFromForm(c)

	poster, posterFile, err := formImage(c, "poster")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid poster file")
	}
	if posterFile != nil {
		defer posterFile.Close()
	}

	backdrop, backdropFile, err := formImage(c, "backdrop")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid backdrop file")
	}
	if backdropFile != nil {
		defer backdropFile.Close()
	}

	movie, violations, err := h.service.Create(c.Context(), input, poster, backdrop, formViolations)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create movie")
		return respondError(c, err, "Movie not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Update movie fields; new images replace the stored ones
// @Tags movies
// @Accept mpfd
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	input, formViolations := movieInputFromForm(c)

	poster, posterFile, err := formImage(c, "poster")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid poster file")
	}
	if posterFile != nil {
		defer posterFile.Close()
	}

	backdrop, backdropFile, err := formImage(c, "backdrop")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid backdrop file")
	}
	if backdropFile != nil {
		defer backdropFile.Close()
	}

	movie, violations, err := h.service.Update(c.Context(), id, input, poster, backdrop, formViolations)
	if err != nil {
		h.logger.WithError(err).WithField("movieId", id).Error("Failed to update movie")
		return respondError(c, err, "Movie not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		h.logger.WithError(err).WithField("movieId", id).Error("Failed to delete movie")
		return respondError(c, err, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// LikeMovie godoc
// @Summary Toggle a like on a movie
// @Description Likes the movie, or removes the like if already present; any dislike is replaced
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Updated movie"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/like [post]
func (h *MovieHandler) LikeMovie(c *fiber.Ctx) error {
	return h.toggleReaction(c, models.ReactionLike)
}

// DislikeMovie godoc
// @Summary Toggle a dislike on a movie
// @Description Dislikes the movie, or removes the dislike if already present; any like is replaced
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Updated movie"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/dislike [post]
func (h *MovieHandler) DislikeMovie(c *fiber.Ctx) error {
	return h.toggleReaction(c, models.ReactionDislike)
}

func (h *MovieHandler) toggleReaction(c *fiber.Ctx, kind models.ReactionKind) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	movie, err := h.service.ToggleReaction(c.Context(), id, userID, kind)
	if err != nil {
		return respondError(c, err, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Reaction updated", movie)
}
