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

type SerieHandler struct {
	service *services.SerieService
	logger  *logrus.Logger
}

func NewSerieHandler(service *services.SerieService, logger *logrus.Logger) *SerieHandler {
	return &SerieHandler{
		service: service,
		logger:  logger,
	}
}

func serieInputFromForm(c *fiber.Ctx) (services.SerieInput, validators.Violations) {
	var violations validators.Violations

	input := services.SerieInput{
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

	if form, err := c.MultipartForm(); err == nil {
		input.GenreIDs = form.Value["genres"]
	}

	return input, violations
}

// GetAllSeries godoc
// @Summary List series
// @Tags series
// @Produce json
// @Param sort query string false "Sort order (newest/oldest)"
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} utils.StandardResponse "List of series"
// @Failure 404 {object} utils.StandardResponse "No series found"
// @Router /series [get]
func (h *SerieHandler) GetAllSeries(c *fiber.Ctx) error {
	sort := c.Query("sort", "")
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	series, err := h.service.List(c.Context(), sort, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list series")
		return respondError(c, err, "No series found")
	}
	if len(series) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No series found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Series retrieved successfully", series)
}

// GetSerieBySlug godoc
// @Summary Get serie by slug
// @Tags series
// @Produce json
// @Param slug path string true "Serie slug"
// @Success 200 {object} utils.StandardResponse "Serie details"
// @Failure 404 {object} utils.StandardResponse "Serie not found"
// @Router /series/{slug} [get]
func (h *SerieHandler) GetSerieBySlug(c *fiber.Ctx) error {
	serie, err := h.service.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Serie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Serie retrieved successfully", serie)
}

// CreateSerie godoc
// @Summary Create a new serie
// @Tags series
// @Accept mpfd
// @Produce json
// @Success 201 {object} utils.StandardResponse "Serie created successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Router /series [post]
func (h *SerieHandler) CreateSerie(c *fiber.Ctx) error {
	input, formViolations := serieInputFromForm(c)

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

	serie, violations, err := h.service.Create(c.Context(), input, poster, backdrop, formViolations)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create serie")
		return respondError(c, err, "Serie not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Serie created successfully", serie)
}

// UpdateSerie godoc
// @Summary Update a serie
// @Tags series
// @Accept mpfd
// @Produce json
// @Param slug path string true "Serie slug"
// @Success 200 {object} utils.StandardResponse "Serie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Failure 404 {object} utils.StandardResponse "Serie not found"
// @Router /series/{slug} [put]
func (h *SerieHandler) UpdateSerie(c *fiber.Ctx) error {
	slug := c.Params("slug")

	input, formViolations := serieInputFromForm(c)

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

	serie, violations, err := h.service.Update(c.Context(), slug, input, poster, backdrop, formViolations)
	if err != nil {
		h.logger.WithError(err).WithField("serieSlug", slug).Error("Failed to update serie")
		return respondError(c, err, "Serie not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Serie updated successfully", serie)
}

// DeleteSerie godoc
// @Summary Delete a serie with all its seasons and episodes
// @Tags series
// @Produce json
// @Param slug path string true "Serie slug"
// @Success 200 {object} utils.StandardResponse "Serie deleted successfully"
// @Failure 404 {object} utils.StandardResponse "Serie not found"
// @Router /series/{slug} [delete]
func (h *SerieHandler) DeleteSerie(c *fiber.Ctx) error {
	slug := c.Params("slug")

	if err := h.service.Delete(c.Context(), slug); err != nil {
		h.logger.WithError(err).WithField("serieSlug", slug).Error("Failed to delete serie")
		return respondError(c, err, "Serie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Serie deleted successfully", nil)
}

// LikeSerie godoc
// @Summary Toggle a like on a serie
// @Tags series
// @Produce json
// @Param slug path string true "Serie slug"
// @Success 200 {object} utils.StandardResponse "Updated serie"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Router /series/{slug}/like [post]
func (h *SerieHandler) LikeSerie(c *fiber.Ctx) error {
	return h.toggleReaction(c, models.ReactionLike)
}

// DislikeSerie godoc
// @Summary Toggle a dislike on a serie
// @Tags series
// @Produce json
// @Param slug path string true "Serie slug"
// @Success 200 {object} utils.StandardResponse "Updated serie"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Router /series/{slug}/dislike [post]
func (h *SerieHandler) DislikeSerie(c *fiber.Ctx) error {
	return h.toggleReaction(c, models.ReactionDislike)
}

func (h *SerieHandler) toggleReaction(c *fiber.Ctx, kind models.ReactionKind) error {
	slug := c.Params("slug")

	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	serie, err := h.service.ToggleReaction(c.Context(), slug, userID, kind)
	if err != nil {
		return respondError(c, err, "Serie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Reaction updated", serie)
}

// GetSeasons godoc
// @Summary List the seasons of a serie
// @Tags seasons
// @Produce json
// @Param slug path string true "Serie slug"
// @Success 200 {object} utils.StandardResponse "List of seasons"
// @Failure 400 {object} utils.StandardResponse "Serie does not exist"
// @Router /series/{slug}/seasons [get]
func (h *SerieHandler) GetSeasons(c *fiber.Ctx) error {
	seasons, err := h.service.ListSeasons(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Season not found")
	}
	if len(seasons) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No seasons found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Seasons retrieved successfully", seasons)
}

// GetSeason godoc
// @Summary Get a season by slug
// @Tags seasons
// @Produce json
// @Param slug path string true "Serie slug"
// @Param seasonSlug path string true "Season slug"
// @Success 200 {object} utils.StandardResponse "Season details"
// @Failure 404 {object} utils.StandardResponse "Season not found"
// @Router /series/{slug}/seasons/{seasonSlug} [get]
func (h *SerieHandler) GetSeason(c *fiber.Ctx) error {
	season, err := h.service.GetSeason(c.Context(), c.Params("slug"), c.Params("seasonSlug"))
	if err != nil {
		return respondError(c, err, "Season not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Season retrieved successfully", season)
}

// CreateSeason godoc
// @Summary Add a season to a serie
// @Tags seasons
// @Accept json
// @Produce json
// @Param slug path string true "Serie slug"
// @Param season body services.SeasonInput true "Season payload"
// @Success 201 {object} utils.StandardResponse "Season created successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Router /series/{slug}/seasons [post]
func (h *SerieHandler) CreateSeason(c *fiber.Ctx) error {
	var input services.SeasonInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	serieSlug := c.Params("slug")
	season, violations, err := h.service.CreateSeason(c.Context(), serieSlug, input)
	if err != nil {
		h.logger.WithError(err).WithField("serieSlug", serieSlug).Error("Failed to create season")
		return respondError(c, err, "Serie not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Season created successfully", season)
}

// UpdateSeason godoc
// @Summary Update a season
// @Tags seasons
// @Accept json
// @Produce json
// @Param slug path string true "Serie slug"
// @Param seasonSlug path string true "Season slug"
// @Param season body services.SeasonInput true "Season payload"
// @Success 200 {object} utils.StandardResponse "Season updated successfully"
// @Failure 404 {object} utils.StandardResponse "Season not found"
// @Router /series/{slug}/seasons/{seasonSlug} [put]
func (h *SerieHandler) UpdateSeason(c *fiber.Ctx) error {
	var input services.SeasonInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	season, violations, err := h.service.UpdateSeason(c.Context(), c.Params("slug"), c.Params("seasonSlug"), input)
	if err != nil {
		return respondError(c, err, "Season not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Season updated successfully", season)
}

// DeleteSeason godoc
// @Summary Delete a season with its episodes
// @Tags seasons
// @Produce json
// @Param slug path string true "Serie slug"
// @Param seasonSlug path string true "Season slug"
// @Success 200 {object} utils.StandardResponse "Season deleted successfully"
// @Failure 404 {object} utils.StandardResponse "Season not found"
// @Router /series/{slug}/seasons/{seasonSlug} [delete]
func (h *SerieHandler) DeleteSeason(c *fiber.Ctx) error {
	if err := h.service.DeleteSeason(c.Context(), c.Params("slug"), c.Params("seasonSlug")); err != nil {
		return respondError(c, err, "Season not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Season deleted successfully", nil)
}

// GetEpisodes godoc
// @Summary List the episodes of a season
// @Tags episodes
// @Produce json
// @Param slug path string true "Serie slug"
// @Param seasonSlug path string true "Season slug"
// @Success 200 {object} utils.StandardResponse "List of episodes"
// @Failure 400 {object} utils.StandardResponse "Season does not exist"
// @Router /series/{slug}/seasons/{seasonSlug}/episodes [get]
func (h *SerieHandler) GetEpisodes(c *fiber.Ctx) error {
	episodes, err := h.service.ListEpisodes(c.Context(), c.Params("slug"), c.Params("seasonSlug"))
	if err != nil {
		return respondError(c, err, "Episode not found")
	}
	if len(episodes) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No episodes found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Episodes retrieved successfully", episodes)
}

// GetEpisode godoc
// @Summary Get an episode by slug
// @Tags episodes
// @Produce json
// @Param slug path string true "Serie slug"
// @Param seasonSlug path string true "Season slug"
// @Param episodeSlug path string true "Episode slug"
// @Success 200 {object} utils.StandardResponse "Episode details"
// @Failure 404 {object} utils.StandardResponse "Episode not found"
// @Router /series/{slug}/seasons/{seasonSlug}/episodes/{episodeSlug} [get]
func (h *SerieHandler) GetEpisode(c *fiber.Ctx) error {
	episode, err := h.service.GetEpisode(c.Context(), c.Params("slug"), c.Params("seasonSlug"), c.Params("episodeSlug"))
	if err != nil {
		return respondError(c, err, "Episode not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Episode retrieved successfully", episode)
}

// CreateEpisode godoc
// @Summary Add an episode to a season
// @Tags episodes
// @Accept json
// @Produce json
// @Param slug path string true "Serie slug"
// @Param seasonSlug path string true "Season slug"
// @Param episode body services.EpisodeInput true "Episode payload"
// @Success 201 {object} utils.StandardResponse "Episode created successfully"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Router /series/{slug}/seasons/{seasonSlug}/episodes [post]
func (h *SerieHandler) CreateEpisode(c *fiber.Ctx) error {
	var input services.EpisodeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	serieSlug := c.Params("slug")
	episode, violations, err := h.service.CreateEpisode(c.Context(), serieSlug, c.Params("seasonSlug"), input)
	if err != nil {
		h.logger.WithError(err).WithField("serieSlug", serieSlug).Error("Failed to create episode")
		return respondError(c, err, "Season not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Episode created successfully", episode)
}

// UpdateEpisode godoc
// @Summary Update an episode
// @Tags episodes
// @Accept json
// @Produce json
// @Param slug path string true "Serie slug"
// @Param seasonSlug path string true "Season slug"
// @Param episodeSlug path string true "Episode slug"
// @Param episode body services.EpisodeInput true "Episode payload"
// @Success 200 {object} utils.StandardResponse "Episode updated successfully"
// @Failure 404 {object} utils.StandardResponse "Episode not found"
// @Router /series/{slug}/seasons/{seasonSlug}/episodes/{episodeSlug} [put]
func (h *SerieHandler) UpdateEpisode(c *fiber.Ctx) error {
	var input services.EpisodeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	episode, violations, err := h.service.UpdateEpisode(c.Context(), c.Params("slug"), c.Params("seasonSlug"), c.Params("episodeSlug"), input)
	if err != nil {
		return respondError(c, err, "Episode not found")
	}
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, violations)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Episode updated successfully", episode)
}

// DeleteEpisode godoc
// @Summary Delete an episode
// @Tags episodes
// @Produce json
// @Param slug path string true "Serie slug"
// @Param seasonSlug path string true "Season slug"
// @Param episodeSlug path string true "Episode slug"
// @Success 200 {object} utils.StandardResponse "Episode deleted successfully"
// @Failure 404 {object} utils.StandardResponse "Episode not found"
// @Router /series/{slug}/seasons/{seasonSlug}/episodes/{episodeSlug} [delete]
func (h *SerieHandler) DeleteEpisode(c *fiber.Ctx) error {
	if err := h.service.DeleteEpisode(c.Context(), c.Params("slug"), c.Params("seasonSlug"), c.Params("episodeSlug")); err != nil {
		return respondError(c, err, "Episode not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Episode deleted successfully", nil)
}
