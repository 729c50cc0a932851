package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the recurrence label of a budget.
type BudgetPeriod string

const (
	BudgetPeriodWeekly    BudgetPeriod = "WEEKLY"
	BudgetPeriodMonthly   BudgetPeriod = "MONTHLY"
	BudgetPeriodQuarterly BudgetPeriod = "QUARTERLY"
	BudgetPeriodYearly    BudgetPeriod = "YEARLY"
)

// ParseBudgetPeriod normalizes a raw period; empty input defaults to MONTHLY.
func ParseBudgetPeriod(raw string) (BudgetPeriod, bool) {
	if strings.TrimSpace(raw) == "" {
		return BudgetPeriodMonthly, true
	}
	p := BudgetPeriod(strings.ToUpper(strings.TrimSpace(raw)))
	switch p {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodQuarterly, BudgetPeriodYearly:
		return p, true
	default:
		return p, false
	}
}

// ActivityStatus is the ACTIVE/INACTIVE lifecycle shared by budgets and
// fixed expenses.
type ActivityStatus string

const (
	StatusActive   ActivityStatus = "ACTIVE"
	StatusInactive ActivityStatus = "INACTIVE"
)

// ParseActivityStatus normalizes a raw status; empty input defaults to ACTIVE.
func ParseActivityStatus(raw string) (ActivityStatus, bool) {
	if strings.TrimSpace(raw) == "" {
		return StatusActive, true
	}
	s := ActivityStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case StatusActive, StatusInactive:
		return s, true
	default:
		return s, false
	}
}

// Budget is an allocated ceiling for one category over a date window.
//
// Spent is derived: it is never stored and is recomputed from the ledger
// every time a budget is read.
type Budget struct {
	ID          int64
	Category    string
	Amount      decimal.Decimal
	Spent       decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	Period      BudgetPeriod
	Status      ActivityStatus
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a new Budget entity with zero spending.
func NewBudget(
	category string,
	amount decimal.Decimal,
	startDate, endDate time.Time,
	period BudgetPeriod,
	status ActivityStatus,
	description string,
) *Budget {
	now := time.Now().UTC()

	return &Budget{
		Category:    category,
		Amount:      amount,
		Spent:       decimal.Zero,
		StartDate:   NormalizeDate(startDate),
		EndDate:     NormalizeDate(endDate),
		Period:      period,
		Status:      status,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Window returns the inclusive date range the budget tracks.
func (b *Budget) Window() DateRange {
	return NewDateRange(b.StartDate, b.EndDate)
}

// Remaining is the unspent part of the allocation; negative when exceeded.
func (b *Budget) Remaining() decimal.Decimal {
	return b.Amount.Sub(b.Spent)
}

// Exceeded reports whether spending went over the allocation.
func (b *Budget) Exceeded() bool {
	return b.Spent.GreaterThan(b.Amount)
}
