package halls

import (
	"context"
	"errors"
	"fmt"
	"log"

	"eventease/internal/layout"
	"eventease/internal/shared/apperrors"
	"eventease/internal/shared/constants"
	"eventease/pkg/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Service interface {
	CreateHall(ctx context.Context, req CreateHallRequest, createdBy uuid.UUID) (*HallDetailResponse, error)
	GetHall(ctx context.Context, id string) (*HallDetailResponse, error)
	GetHalls(ctx context.Context, query HallListQuery) (*PaginatedHalls, error)
	UpdateHall(ctx context.Context, id string, req UpdateHallRequest) (*HallResponse, error)
	DeleteHall(ctx context.Context, id string) error

	ApplyTemplate(ctx context.Context, id string, templateID layout.TemplateID) (*HallDetailResponse, error)
	GetTemplates() []layout.TemplateInfo

	// GetLayout and SaveLayout back the editor's session lifecycle.
	GetLayout(ctx context.Context, hallID string) (*layout.Layout, error)
	SaveLayout(ctx context.Context, hallID string, l *layout.Layout) error
}

type service struct {
	repo        Repository
	redisClient *redis.Client
}

func NewService(repo Repository) Service {
	return &service{
		repo:        repo,
		redisClient: cache.Client(),
	}
}

func (s *service) CreateHall(ctx context.Context, req CreateHallRequest, createdBy uuid.UUID) (*HallDetailResponse, error) {
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check hall name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidation("hall with name '%s' already exists", req.Name)
	}

	l, err := s.initialLayout(req)
	if err != nil {
		return nil, err
	}

	blob, err := layout.Encode(l)
	if err != nil {
		return nil, err
	}

	hall := &Hall{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		LayoutData:  blob,
		CreatedBy:   createdBy,
	}

	if err := s.repo.Create(ctx, hall); err != nil {
		return nil, fmt.Errorf("failed to create hall: %w", err)
	}

	if err := invalidateHallCache(ctx, s.redisClient, nil); err != nil {
		log.Printf("Warning: failed to invalidate hall cache after creation: %v", err)
	}

	resp := hall.ToDetailResponse()
	return &resp, nil
}

func (s *service) initialLayout(req CreateHallRequest) (*layout.Layout, error) {
	switch {
	case req.Template != "":
		items, err := layout.BuildTemplate(req.Template)
		if err != nil {
			return nil, apperrors.NewValidation("unknown template: %s", req.Template)
		}
		return &layout.Layout{Items: items, Zones: layout.DefaultZones()}, nil

	case req.Rows > 0 && req.Cols > 0:
		items := layout.Center(layout.SeatBlock(0, 0, req.Rows, req.Cols, 'A', 1))
		return &layout.Layout{Items: items, Zones: layout.DefaultZones()}, nil
	}

	return &layout.Layout{Items: []layout.PlacedItem{}, Zones: layout.DefaultZones()}, nil
}

func (s *service) GetHall(ctx context.Context, id string) (*HallDetailResponse, error) {
	hallID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NewValidation("invalid hall ID: %s", id)
	}

	cacheKey := constants.CACHE_KEY_HALL_DETAIL + id

	var cached HallDetailResponse
	if err := getCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for hall detail: %s", cacheKey)
		return &cached, nil
	}

	hall, err := s.repo.GetByID(ctx, hallID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hall: %w", err)
	}

	resp := hall.ToDetailResponse()
	if err := setCache(ctx, s.redisClient, cacheKey, resp, constants.TTL_HALL_DETAIL); err != nil {
		log.Printf("Warning: failed to cache hall detail: %v", err)
	}

	return &resp, nil
}

func (s *service) GetHalls(ctx context.Context, query HallListQuery) (*PaginatedHalls, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}

	cacheKey := fmt.Sprintf("%s:page:%d:limit:%d:search:%s",
		constants.CACHE_KEY_HALLS_LIST, query.Page, query.Limit, query.Search)

	var cached PaginatedHalls
	if err := getCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for hall list: %s", cacheKey)
		return &cached, nil
	}

	halls, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list halls: %w", err)
	}

	responses := make([]HallResponse, len(halls))
	for i := range halls {
		responses[i] = halls[i].ToResponse()
	}

	totalPages := int((totalCount + int64(query.Limit) - 1) / int64(query.Limit))
	result := &PaginatedHalls{
		Halls:      responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}

	if err := setCache(ctx, s.redisClient, cacheKey, result, constants.TTL_HALLS_LIST); err != nil {
		log.Printf("Warning: failed to cache hall list: %v", err)
	}

	return result, nil
}

func (s *service) UpdateHall(ctx context.Context, id string, req UpdateHallRequest) (*HallResponse, error) {
	hallID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NewValidation("invalid hall ID: %s", id)
	}

	hall, err := s.repo.GetByID(ctx, hallID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hall: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Name != nil && *req.Name != hall.Name {
		existing, err := s.repo.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check hall name: %w", err)
		}
		if existing != nil {
			return nil, apperrors.NewValidation("hall with name '%s' already exists", *req.Name)
		}
		updates["name"] = *req.Name
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, hallID, updates); err != nil {
			return nil, fmt.Errorf("failed to update hall: %w", err)
		}
		if err := invalidateHallCache(ctx, s.redisClient, &hallID); err != nil {
			log.Printf("Warning: failed to invalidate hall cache after update: %v", err)
		}
	}

	updated, err := s.repo.GetByID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload hall: %w", err)
	}
	resp := updated.ToResponse()
	return &resp, nil
}

func (s *service) DeleteHall(ctx context.Context, id string) error {
	hallID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.NewValidation("invalid hall ID: %s", id)
	}

	if _, err := s.repo.GetByID(ctx, hallID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to get hall: %w", err)
	}

	if err := s.repo.Delete(ctx, hallID); err != nil {
		return fmt.Errorf("failed to delete hall: %w", err)
	}

	if err := invalidateHallCache(ctx, s.redisClient, &hallID); err != nil {
		log.Printf("Warning: failed to invalidate hall cache after delete: %v", err)
	}

	return nil
}

// ApplyTemplate replaces the hall's items with a generated template while
// keeping its zone table, so custom pricing survives a re-layout.
func (s *service) ApplyTemplate(ctx context.Context, id string, templateID layout.TemplateID) (*HallDetailResponse, error) {
	items, err := layout.BuildTemplate(templateID)
	if err != nil {
		return nil, apperrors.NewValidation("unknown template: %s", templateID)
	}

	current, err := s.GetLayout(ctx, id)
	if err != nil {
		return nil, err
	}

	next := &layout.Layout{Items: items, Zones: current.Zones}
	if err := s.SaveLayout(ctx, id, next); err != nil {
		return nil, err
	}

	return s.GetHall(ctx, id)
}

func (s *service) GetTemplates() []layout.TemplateInfo {
	return layout.Templates()
}

func (s *service) GetLayout(ctx context.Context, hallID string) (*layout.Layout, error) {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid hall ID: %s", hallID)
	}

	cacheKey := constants.BuildHallLayoutKey(hallID)

	var cached layout.Layout
	if err := getCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for hall layout: %s", cacheKey)
		return &cached, nil
	}

	hall, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hall: %w", err)
	}

	l := hall.DecodeLayout()
	if err := setCache(ctx, s.redisClient, cacheKey, l, constants.TTL_HALL_LAYOUT); err != nil {
		log.Printf("Warning: failed to cache hall layout: %v", err)
	}

	return l, nil
}

func (s *service) SaveLayout(ctx context.Context, hallID string, l *layout.Layout) error {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return apperrors.NewValidation("invalid hall ID: %s", hallID)
	}

	blob, err := layout.Encode(l)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateLayout(ctx, id, blob); err != nil {
		return fmt.Errorf("failed to save hall layout: %w", err)
	}

	if err := invalidateHallCache(ctx, s.redisClient, &id); err != nil {
		log.Printf("Warning: failed to invalidate hall cache after layout save: %v", err)
	}
	if err := invalidateSeatmapCaches(ctx, s.redisClient); err != nil {
		log.Printf("Warning: failed to invalidate event seatmap cache after layout save: %v", err)
	}

	return nil
}
