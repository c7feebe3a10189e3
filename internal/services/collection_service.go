package services

import (
	"context"
	"errors"

	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"
	"streamhub-backend/internal/validators"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CollectionItemInput struct {
	ContentID   string `json:"contentId" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

type CollectionInput struct {
	Name  string                `json:"name" validate:"required"`
	Items []CollectionItemInput `json:"contentItems" validate:"required,min=1,dive"`
}

// ResolvedItem is a collection entry with its referenced content loaded.
// Content is a *models.Movie or a *models.Serie depending on ContentType.
type ResolvedItem struct {
	Position    int                `json:"position"`
	ContentType models.ContentType `json:"contentType"`
	Content     interface{}        `json:"content"`
}

type ResolvedCollection struct {
	ID    uuid.UUID      `json:"id"`
	Name  string         `json:"name"`
	Items []ResolvedItem `json:"items"`
}

type CollectionService struct {
	collections repository.CollectionRepository
	movies      repository.MovieRepository
	series      repository.SerieRepository
	logger      *logrus.Logger
}

func NewCollectionService(
	collections repository.CollectionRepository,
	movies repository.MovieRepository,
	series repository.SerieRepository,
	logger *logrus.Logger,
) *CollectionService {
	return &CollectionService{
		collections: collections,
		movies:      movies,
		series:      series,
		logger:      logger,
	}
}

func (s *CollectionService) Create(ctx context.Context, input CollectionInput) (*models.Collection, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)

	items, itemViolations, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, nil, err
	}
	violations = append(violations, itemViolations...)

	if !violations.Empty() {
		return nil, violations, nil
	}

	collection := &models.Collection{Name: input.Name, Items: items}
	if err := s.collections.Create(ctx, collection); err != nil {
		return nil, nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"collectionId": collection.ID,
		"name":         collection.Name,
		"items":        len(collection.Items),
	}).Info("Collection created")

	return collection, nil, nil
}

func (s *CollectionService) Update(ctx context.Context, id uuid.UUID, input CollectionInput) (*models.Collection, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)

	collection, err := s.collections.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	items, itemViolations, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, nil, err
	}
	violations = append(violations, itemViolations...)

	if !violations.Empty() {
		return nil, violations, nil
	}

	collection.Name = input.Name
	for i := range items {
		items[i].CollectionID = collection.ID
	}
	collection.Items = items

	if err := s.collections.Update(ctx, collection); err != nil {
		return nil, nil, err
	}
	return collection, nil, nil
}

func (s *CollectionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.collections.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.collections.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("collectionId", id).Info("Collection deleted")
	return nil
}

// Get loads the collection and resolves each item against the matching
// store. Items whose content has since been deleted are dropped from the
// response instead of failing the whole read.
func (s *CollectionService) Get(ctx context.Context, id uuid.UUID) (*ResolvedCollection, error) {
	collection, err := s.collections.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, collection)
}

func (s *CollectionService) List(ctx context.Context) ([]ResolvedCollection, error) {
	collections, err := s.collections.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resolved := make([]ResolvedCollection, 0, len(collections))
	for i := range collections {
		rc, err := s.resolve(ctx, &collections[i])
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *rc)
	}
	return resolved, nil
}

func (s *CollectionService) resolve(ctx context.Context, collection *models.Collection) (*ResolvedCollection, error) {
	resolved := &ResolvedCollection{
		ID:    collection.ID,
		Name:  collection.Name,
		Items: make([]ResolvedItem, 0, len(collection.Items)),
	}

	for _, item := range collection.Items {
		var content interface{}
		var err error

		switch item.ContentType {
		case models.ContentTypeMovie:
			content, err = s.movies.FindByID(ctx, item.ContentID)
		case models.ContentTypeSerie:
			content, err = s.series.FindByID(ctx, item.ContentID)
		default:
			continue
		}
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.logger.WithFields(logrus.Fields{
					"collectionId": collection.ID,
					"contentId":    item.ContentID,
					"contentType":  item.ContentType,
				}).Warn("Collection item points at deleted content, skipping")
				continue
			}
			return nil, err
		}

		resolved.Items = append(resolved.Items, ResolvedItem{
			Position:    item.Position,
			ContentType: item.ContentType,
			Content:     content,
		})
	}
	return resolved, nil
}

// buildItems validates every entry and verifies the referenced content
// exists before anything is persisted. Positions follow input order.
func (s *CollectionService) buildItems(ctx context.Context, inputs []CollectionItemInput) ([]models.CollectionItem, validators.Violations, error) {
	var violations validators.Violations
	items := make([]models.CollectionItem, 0, len(inputs))

	for i, in := range inputs {
		contentType := models.ContentType(in.ContentType)
		if !contentType.Valid() {
			violations.AddWithValue("contentItems", in.ContentType, "Content type must be movie or serie")
			continue
		}

		contentID, err := uuid.Parse(in.ContentID)
		if err != nil {
			violations.AddWithValue("contentItems", in.ContentID, "Content id is not valid")
			continue
		}

		switch contentType {
		case models.ContentTypeMovie:
			_, err = s.movies.FindByID(ctx, contentID)
		case models.ContentTypeSerie:
			_, err = s.series.FindByID(ctx, contentID)
		}
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				violations.AddWithValue("contentItems", in.ContentID, "Referenced content does not exist")
				continue
			}
			return nil, nil, err
		}

		items = append(items, models.CollectionItem{
			Position:    i,
			ContentID:   contentID,
			ContentType: contentType,
		})
	}

	if !violations.Empty() {
		return nil, violations, nil
	}
	return items, nil, nil
}
