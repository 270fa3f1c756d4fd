// Package snapshot loads the plain-data input bundle the engine
// consumes: ordered collections of accounts, period aggregates, goals,
// flows, investments and streaks, serialized as one JSON document.
// This is a data boundary, not a persistence layer; whatever system
// produces the snapshot owns storage and querying.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/moneymap-dev/moneymap/internal/model"
)

// Snapshot is the full input bundle for one engine invocation.
type Snapshot struct {
	Accounts    []model.Account       `json:"accounts"`
	Income      []model.IncomeRecord  `json:"income"`
	Expenses    []model.ExpenseRecord `json:"expenses"`
	Goals       []model.SavingsGoal   `json:"goals"`
	Flows       []model.RecurringFlow `json:"flows"`
	Investments []model.Investment    `json:"investments"`
	Streaks     []model.Streak        `json:"streaks"`
	Budgets     []model.Budget        `json:"budgets,omitempty"`
}

// Load reads and normalizes a snapshot file. Structural problems
// surface as validation errors; unknown category strings are quietly
// normalized to their domain's other value (reported via Normalize's
// warning list, which Load discards).
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	s.Normalize()
	if verrs := s.Validate(); len(verrs) > 0 {
		return nil, fmt.Errorf("invalid snapshot: %s", verrs[0].Error())
	}
	return &s, nil
}

// Save writes a snapshot as indented JSON.
func Save(path string, s *Snapshot) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Normalize rewrites unknown enum strings to their domain fallbacks and
// returns a warning per rewritten field. Raw strings never travel past
// this boundary.
func (s *Snapshot) Normalize() []string {
	var warnings []string

	for i := range s.Accounts {
		if norm := model.ParseAccountType(string(s.Accounts[i].Type)); norm != s.Accounts[i].Type {
			warnings = append(warnings, fmt.Sprintf("account %s: unknown type %q, using %q",
				s.Accounts[i].ID, s.Accounts[i].Type, norm))
			s.Accounts[i].Type = norm
		}
	}
	for i := range s.Income {
		if norm := model.ParseIncomeCategory(string(s.Income[i].Category)); norm != s.Income[i].Category {
			warnings = append(warnings, fmt.Sprintf("income record %d: unknown category %q, using %q",
				i, s.Income[i].Category, norm))
			s.Income[i].Category = norm
		}
	}
	for i := range s.Expenses {
		if norm := model.ParseExpenseCategory(string(s.Expenses[i].Category)); norm != s.Expenses[i].Category {
			warnings = append(warnings, fmt.Sprintf("expense record %d: unknown category %q, using %q",
				i, s.Expenses[i].Category, norm))
			s.Expenses[i].Category = norm
		}
	}
	for i := range s.Investments {
		if norm := model.ParseAssetType(string(s.Investments[i].Type)); norm != s.Investments[i].Type {
			warnings = append(warnings, fmt.Sprintf("investment %s: unknown asset type %q, using %q",
				s.Investments[i].ID, s.Investments[i].Type, norm))
			s.Investments[i].Type = norm
		}
	}
	for i := range s.Budgets {
		if norm := model.ParseExpenseCategory(string(s.Budgets[i].Category)); norm != s.Budgets[i].Category {
			warnings = append(warnings, fmt.Sprintf("budget %d: unknown category %q, using %q",
				i, s.Budgets[i].Category, norm))
			s.Budgets[i].Category = norm
		}
	}
	for i := range s.Flows {
		if norm := model.ParseFrequency(string(s.Flows[i].Frequency)); norm != s.Flows[i].Frequency {
			warnings = append(warnings, fmt.Sprintf("flow %s: unknown frequency %q, using %q",
				s.Flows[i].ID, s.Flows[i].Frequency, norm))
			s.Flows[i].Frequency = norm
		}
	}
	return warnings
}
