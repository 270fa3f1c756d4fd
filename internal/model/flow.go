package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the repeat cadence of a recurring flow.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// ParseFrequency normalizes a raw string; unknown values map to monthly.
func ParseFrequency(s string) Frequency {
	switch Frequency(s) {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyQuarterly, FrequencyYearly:
		return Frequency(s)
	}
	return FrequencyMonthly
}

// PerYear returns how many times the frequency occurs in a year.
func (f Frequency) PerYear() int {
	switch f {
	case FrequencyWeekly:
		return 52
	case FrequencyBiweekly:
		return 26
	case FrequencyQuarterly:
		return 4
	case FrequencyYearly:
		return 1
	default:
		return 12
	}
}

// EndpointKind identifies what a flow endpoint points at.
type EndpointKind string

const (
	EndpointIncome  EndpointKind = "income"
	EndpointAccount EndpointKind = "account"
	EndpointExpense EndpointKind = "expense"
	EndpointSavings EndpointKind = "savings"
)

// FlowEndpoint describes one end of a recurring flow. Exactly one of
// ID or Category is meaningful depending on Kind: account and savings
// endpoints carry an ID, income and expense endpoints carry a Category.
type FlowEndpoint struct {
	Kind     EndpointKind `json:"kind"`
	ID       string       `json:"id,omitempty"`
	Category string       `json:"category,omitempty"`
}

// RecurringFlow is a scheduled repeating transfer between two financial
// entities. Flows whose endpoints cannot be resolved against the built
// graph are dropped, not rejected.
type RecurringFlow struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Source    FlowEndpoint    `json:"source"`
	Target    FlowEndpoint    `json:"target"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency Frequency       `json:"frequency"`
	StartDate *time.Time      `json:"start_date,omitempty"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
}
