package repository

import (
	"context"

	"gorm.io/gorm"

	"timetrack/internal/model"
)

// ExpenseFilter narrows an expense query.
type ExpenseFilter struct {
	OwnerID       uint
	OwnerUsername string
	Username      string
	Date          string
	Month         string // YYYY-MM prefix
	Category      string
}

// ExpenseRepository defines expense persistence operations.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error)
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// List returns matching expenses, newest first.
func (r *expenseRepository) List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error) {
	q := r.db.WithContext(ctx).Model(&model.Expense{})
	q = scopeToOwner(q, filter.Username, filter.OwnerID, filter.OwnerUsername)
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.Month != "" {
		q = q.Where("date LIKE ?", filter.Month+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var expenses []model.Expense
	if err := q.Order("date DESC, time DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
