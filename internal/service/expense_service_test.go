package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"timetrack/internal/errors"
	"timetrack/internal/model"
	"timetrack/internal/repository"
)

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) List(ctx context.Context, filter repository.ExpenseFilter) ([]model.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func TestExpenseService_Create_AmountValidation(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{name: "zero accepted", amount: "0"},
		{name: "upper boundary accepted", amount: "10000"},
		{name: "typical amount", amount: "42.50"},
		{name: "negative rejected", amount: "-0.01", wantErr: errors.ErrInvalidAmount},
		{name: "above cap rejected", amount: "10000.01", wantErr: errors.ErrInvalidAmount},
		{name: "non-numeric rejected", amount: "lots", wantErr: errors.ErrInvalidAmount},
		{name: "empty rejected", amount: "", wantErr: errors.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockExpenseRepository)
			if tt.wantErr == nil {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Expense")).Return(nil)
			}

			service := NewExpenseService(mockRepo, nil)
			expense, err := service.Create(context.Background(), driverClaims(), ExpenseInput{
				Description: "Fuel for the van",
				Amount:      tt.amount,
				Date:        "2025-01-15",
				Time:        "09:00",
			})

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, expense)
			} else {
				assert.NoError(t, err)
				assert.True(t, strings.HasPrefix(expense.ID, "exp-"))
				assert.Equal(t, model.ExpenseCurrency, expense.Currency)
				assert.Equal(t, "General", expense.Category)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestExpenseService_Create_DescriptionValidation(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     error
	}{
		{name: "minimum length", description: "abc"},
		{name: "trimmed before checking", description: "  ab  ", wantErr: errors.ErrInvalidDescription},
		{name: "too short", description: "ab", wantErr: errors.ErrInvalidDescription},
		{name: "too long", description: strings.Repeat("x", 201), wantErr: errors.ErrInvalidDescription},
		{name: "maximum length", description: strings.Repeat("x", 200)},
		{name: "length counts characters not bytes", description: "áá", wantErr: errors.ErrInvalidDescription},
		{name: "multibyte at maximum length", description: strings.Repeat("á", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockExpenseRepository)
			if tt.wantErr == nil {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Expense")).Return(nil)
			}

			service := NewExpenseService(mockRepo, nil)
			expense, err := service.Create(context.Background(), driverClaims(), ExpenseInput{
				Description: tt.description,
				Amount:      "10",
				Date:        "2025-01-15",
				Time:        "09:00",
			})

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(tt.description), expense.Description)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestExpenseService_List_Totals(t *testing.T) {
	expenses := []model.Expense{
		{Amount: 10.10, Date: "2025-01-15", UserID: 1, Username: "juan_perez"},
		{Amount: 20.20, Date: "2025-01-20", UserID: 1, Username: "juan_perez"},
		{Amount: 5.55, Date: "2025-02-01", UserID: 1, Username: "juan_perez"},
	}

	mockRepo := new(MockExpenseRepository)
	mockRepo.On("List", mock.Anything, repository.ExpenseFilter{
		OwnerID:       1,
		OwnerUsername: "juan_perez",
	}).Return(expenses, nil).Twice()

	service := NewExpenseService(mockRepo, nil)

	list, err := service.List(context.Background(), driverClaims(), ExpenseQuery{})
	assert.NoError(t, err)
	assert.Len(t, list.Expenses, 3)
	assert.Equal(t, 35.85, list.TotalAmount)
	assert.Equal(t, map[string]float64{
		"2025-01": 30.30,
		"2025-02": 5.55,
	}, list.MonthlyTotals)

	// A second GET with no intervening POST returns the same aggregates.
	again, err := service.List(context.Background(), driverClaims(), ExpenseQuery{})
	assert.NoError(t, err)
	assert.Equal(t, list.TotalAmount, again.TotalAmount)
	assert.Equal(t, list.MonthlyTotals, again.MonthlyTotals)

	mockRepo.AssertExpectations(t)
}

func TestExpenseService_List_CategoryFilter(t *testing.T) {
	mockRepo := new(MockExpenseRepository)
	mockRepo.On("List", mock.Anything, repository.ExpenseFilter{
		OwnerID:       1,
		OwnerUsername: "juan_perez",
		Category:      "Fuel",
	}).Return([]model.Expense{}, nil)

	service := NewExpenseService(mockRepo, nil)
	list, err := service.List(context.Background(), driverClaims(), ExpenseQuery{Category: "Fuel"})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, list.TotalAmount)
	assert.Empty(t, list.MonthlyTotals)

	mockRepo.AssertExpectations(t)
}
