package repository

import (
	"context"

	"gorm.io/gorm"

	"timetrack/internal/model"
)

// GpsFilter narrows a GPS query. Limit caps the result size; oldest points
// win because tracks render in chronological order.
type GpsFilter struct {
	OwnerID       uint
	OwnerUsername string
	Username      string
	Date          string
	Filename      string
	Limit         int
}

// GpsRepository defines GPS point persistence operations.
type GpsRepository interface {
	Create(ctx context.Context, point *model.GpsPoint) error
	List(ctx context.Context, filter GpsFilter) ([]model.GpsPoint, error)
}

type gpsRepository struct {
	db *gorm.DB
}

// NewGpsRepository creates a new GPS repository.
func NewGpsRepository(db *gorm.DB) GpsRepository {
	return &gpsRepository{db: db}
}

func (r *gpsRepository) Create(ctx context.Context, point *model.GpsPoint) error {
	return r.db.WithContext(ctx).Create(point).Error
}

// List returns matching points oldest first, truncated to filter.Limit.
func (r *gpsRepository) List(ctx context.Context, filter GpsFilter) ([]model.GpsPoint, error) {
	q := r.db.WithContext(ctx).Model(&model.GpsPoint{})
	q = scopeToOwner(q, filter.Username, filter.OwnerID, filter.OwnerUsername)
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.Filename != "" {
		q = q.Where("filename = ?", filter.Filename)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var points []model.GpsPoint
	if err := q.Order("date ASC, time ASC").Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}
