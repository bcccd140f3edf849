package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"timetrack/internal/auth"
	"timetrack/internal/cache"
	"timetrack/internal/errors"
	"timetrack/internal/model"
	"timetrack/internal/repository"
)

const (
	expenseMaxAmount       = 10000
	expenseSummaryTTL      = 5 * time.Minute
	expenseSummaryKeyFmt   = "expense_summary:%d"
	defaultExpenseCategory = "General"
)

// ExpenseInput carries a new claim's payload fields. Amount stays a raw
// string so the service owns numeric validation.
type ExpenseInput struct {
	Description string
	Amount      string
	Date        string
	Time        string
	Latitude    *float64
	Longitude   *float64
	Category    string
	Receipt     *string
}

// ExpenseQuery carries the supported GET filters.
type ExpenseQuery struct {
	User     string
	Date     string
	Month    string
	Year     string
	Category string
}

// ExpenseList is a filtered expense listing with its aggregates.
type ExpenseList struct {
	Expenses      []model.Expense    `json:"expenses"`
	TotalAmount   float64            `json:"totalAmount"`
	MonthlyTotals map[string]float64 `json:"monthlyTotals"`
}

// ExpenseService handles expense operations.
type ExpenseService interface {
	Create(ctx context.Context, claims *auth.Claims, input ExpenseInput) (*model.Expense, error)
	List(ctx context.Context, claims *auth.Claims, query ExpenseQuery) (*ExpenseList, error)
}

type expenseService struct {
	repo  repository.ExpenseRepository
	cache *cache.Client
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo repository.ExpenseRepository, cache *cache.Client) ExpenseService {
	return &expenseService{repo: repo, cache: cache}
}

func summaryKey(userID uint) string {
	return fmt.Sprintf(expenseSummaryKeyFmt, userID)
}

// Create validates amount and description, stamps owner identity and appends
// the claim.
func (s *expenseService) Create(ctx context.Context, claims *auth.Claims, input ExpenseInput) (*model.Expense, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input.Amount))
	if err != nil {
		return nil, errors.ErrInvalidAmount
	}
	if amount.IsNegative() || amount.GreaterThan(decimal.NewFromInt(expenseMaxAmount)) {
		return nil, errors.ErrInvalidAmount
	}

	description := strings.TrimSpace(input.Description)
	if n := utf8.RuneCountInString(description); n < 3 || n > 200 {
		return nil, errors.ErrInvalidDescription
	}

	category := input.Category
	if category == "" {
		category = defaultExpenseCategory
	}

	expense := &model.Expense{
		ID:          model.NewRecordID(model.ExpenseIDPrefix),
		Description: description,
		Amount:      amount.InexactFloat64(),
		Date:        input.Date,
		Time:        input.Time,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Category:    category,
		Receipt:     input.Receipt,
		Currency:    model.ExpenseCurrency,
		UserID:      claims.UserID,
		Username:    claims.Username,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	// The cached unfiltered summary is now stale.
	_ = s.cache.Delete(ctx, summaryKey(claims.UserID))

	return expense, nil
}

// List returns the caller's claims newest first, with the summed total
// (2 decimals) and per-month totals over the same filtered set. The
// unfiltered listing is cached per user and invalidated on append, so
// repeated GETs without intervening POSTs are idempotent and cheap.
func (s *expenseService) List(ctx context.Context, claims *auth.Claims, query ExpenseQuery) (*ExpenseList, error) {
	unfiltered := query == (ExpenseQuery{})
	if unfiltered {
		var cached ExpenseList
		if s.cache.GetJSON(ctx, summaryKey(claims.UserID), &cached) {
			return &cached, nil
		}
	}

	filter := repository.ExpenseFilter{
		OwnerID:       claims.UserID,
		OwnerUsername: claims.Username,
		Username:      adminScope(claims, query.User),
		Date:          query.Date,
		Month:         monthPrefix(query.Month, query.Year),
		Category:      query.Category,
	}
	expenses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	monthly := make(map[string]float64)
	monthlySums := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		amount := decimal.NewFromFloat(e.Amount)
		total = total.Add(amount)
		if len(e.Date) >= 7 {
			month := e.Date[:7]
			monthlySums[month] = monthlySums[month].Add(amount)
		}
	}
	for month, sum := range monthlySums {
		monthly[month] = sum.InexactFloat64()
	}

	list := &ExpenseList{
		Expenses:      expenses,
		TotalAmount:   total.Round(2).InexactFloat64(),
		MonthlyTotals: monthly,
	}

	if unfiltered {
		s.cache.SetJSON(ctx, summaryKey(claims.UserID), list, expenseSummaryTTL)
	}
	return list, nil
}
