package repository

import (
	"context"

	"gorm.io/gorm"

	"timetrack/internal/model"
)

// TimesheetFilter narrows a timesheet query. OwnerID/OwnerUsername scope the
// result to the caller; Username, when set, replaces that scope (admin view).
type TimesheetFilter struct {
	OwnerID       uint
	OwnerUsername string
	Username      string
	Date          string
	Month         string // YYYY-MM prefix
}

// TimesheetRepository defines timesheet persistence operations. The store is
// append-only; there is deliberately no update or delete.
type TimesheetRepository interface {
	Create(ctx context.Context, entry *model.TimesheetEntry) error
	List(ctx context.Context, filter TimesheetFilter) ([]model.TimesheetEntry, error)
}

type timesheetRepository struct {
	db *gorm.DB
}

// NewTimesheetRepository creates a new timesheet repository.
func NewTimesheetRepository(db *gorm.DB) TimesheetRepository {
	return &timesheetRepository{db: db}
}

func (r *timesheetRepository) Create(ctx context.Context, entry *model.TimesheetEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns matching entries, newest first.
func (r *timesheetRepository) List(ctx context.Context, filter TimesheetFilter) ([]model.TimesheetEntry, error) {
	q := r.db.WithContext(ctx).Model(&model.TimesheetEntry{})
	q = scopeToOwner(q, filter.Username, filter.OwnerID, filter.OwnerUsername)
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.Month != "" {
		q = q.Where("date LIKE ?", filter.Month+"%")
	}

	var entries []model.TimesheetEntry
	if err := q.Order("date DESC, time DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// scopeToOwner applies the owner-isolation rule shared by all three stores.
func scopeToOwner(q *gorm.DB, username string, ownerID uint, ownerUsername string) *gorm.DB {
	if username != "" {
		return q.Where("username = ?", username)
	}
	return q.Where("user_id = ? OR username = ?", ownerID, ownerUsername)
}
