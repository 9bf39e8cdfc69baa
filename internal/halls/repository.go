package halls

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, hall *Hall) error
	GetByID(ctx context.Context, id uuid.UUID) (*Hall, error)
	GetByName(ctx context.Context, name string) (*Hall, error)
	GetAll(ctx context.Context, query HallListQuery) ([]Hall, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpdateLayout(ctx context.Context, id uuid.UUID, blob []byte) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, hall *Hall) error {
	return r.db.WithContext(ctx).Create(hall).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Hall, error) {
	var hall Hall
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&hall).Error; err != nil {
		return nil, err
	}
	return &hall, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Hall, error) {
	var hall Hall
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&hall).Error; err != nil {
		return nil, err
	}
	return &hall, nil
}

func (r *repository) GetAll(ctx context.Context, query HallListQuery) ([]Hall, int64, error) {
	var halls []Hall
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&Hall{})

	if query.Search != "" {
		searchTerm := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}
	offset := (query.Page - 1) * query.Limit

	err := db.Order("name ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&halls).Error

	return halls, totalCount, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Hall{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) UpdateLayout(ctx context.Context, id uuid.UUID, blob []byte) error {
	return r.db.WithContext(ctx).Model(&Hall{}).Where("id = ?", id).Update("layout_data", blob).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Hall{}).Error
}
