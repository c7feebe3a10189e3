package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"streamhub-backend/internal/database"
	"streamhub-backend/internal/realtime"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

const testTimeout = 5 * time.Second

// fakeStorage records uploads and destroys without touching a media host.
type fakeStorage struct {
	uploads int
	deleted []string
}

func (f *fakeStorage) Upload(_ context.Context, upload *ImageUpload) (*UploadedImage, error) {
	f.uploads++
	id := fmt.Sprintf("%s_%d", upload.Filename, f.uploads)
	return &UploadedImage{ID: id, URL: "http://media.test/" + id}, nil
}

func (f *fakeStorage) Delete(_ context.Context, objectID string) error {
	f.deleted = append(f.deleted, objectID)
	return nil
}

// fakeAnnouncer captures broadcast events.
type fakeAnnouncer struct {
	events []realtime.NewMovieEvent
}

func (f *fakeAnnouncer) BroadcastNewMovie(event realtime.NewMovieEvent) {
	f.events = append(f.events, event)
}

func testImage(name string) *ImageUpload {
	return &ImageUpload{
		Filename:    name,
		ContentType: "image/png",
		Reader:      strings.NewReader("png-bytes"),
		Size:        9,
	}
}
