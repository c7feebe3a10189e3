package handlers

import (
	"errors"
	"mime/multipart"
	"time"

	"streamhub-backend/internal/repository"
	"streamhub-backend/internal/services"
	"streamhub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service-layer failures onto HTTP statuses. Unknown
// errors become a 500 with a generic message so internals never leak.
func respondError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var invalidRef *services.InvalidReferenceError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFoundMsg)
	case errors.As(err, &invalidRef):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, invalidRef.Error())
	case errors.Is(err, services.ErrWrongCredentials):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Wrong Credentials")
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Something went wrong")
	}
}

// formImage opens an optional multipart file as an ImageUpload. A missing
// file returns (nil, nil, nil); the caller decides whether that is an
// error. The returned closer must be closed after the service call.
func formImage(c *fiber.Ctx, field string) (*services.ImageUpload, multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	return &services.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
		Size:        header.Size,
	}, file, nil
}

// parseDate accepts the two date shapes clients send: a plain calendar
// date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
