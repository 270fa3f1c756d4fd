package snapshot

import "fmt"

// ValidationError describes a single structural problem in a snapshot.
type ValidationError struct {
	Collection  string
	RecordID    string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Collection, e.RecordID, e.Description)
}

// Validate enforces the structural rules a snapshot must satisfy before
// a build: unique non-empty identifiers and non-negative quantities
// where the model requires them. Dangling cross-references (a flow
// pointing at an unknown account) are deliberately NOT checked here —
// the builder drops those defensively and reports them as diagnostics.
func (s *Snapshot) Validate() []ValidationError {
	var errs []ValidationError

	seenAccounts := make(map[string]bool)
	for _, a := range s.Accounts {
		if a.ID == "" {
			errs = append(errs, ValidationError{"accounts", a.Name, "missing id"})
			continue
		}
		if seenAccounts[a.ID] {
			errs = append(errs, ValidationError{"accounts", a.ID, "duplicate id"})
		}
		seenAccounts[a.ID] = true
	}

	seenGoals := make(map[string]bool)
	for _, g := range s.Goals {
		if g.ID == "" {
			errs = append(errs, ValidationError{"goals", g.Name, "missing id"})
			continue
		}
		if seenGoals[g.ID] {
			errs = append(errs, ValidationError{"goals", g.ID, "duplicate id"})
		}
		seenGoals[g.ID] = true

		if g.Current.Sign() < 0 {
			errs = append(errs, ValidationError{"goals", g.ID, "negative current amount"})
		}
		if g.MonthlyContribution.Sign() < 0 {
			errs = append(errs, ValidationError{"goals", g.ID, "negative monthly contribution"})
		}
	}

	seenFlows := make(map[string]bool)
	for _, f := range s.Flows {
		if f.ID == "" {
			errs = append(errs, ValidationError{"flows", f.Name, "missing id"})
			continue
		}
		if seenFlows[f.ID] {
			errs = append(errs, ValidationError{"flows", f.ID, "duplicate id"})
		}
		seenFlows[f.ID] = true

		if f.Amount.Sign() < 0 {
			errs = append(errs, ValidationError{"flows", f.ID, "negative amount"})
		}
	}

	for i, rec := range s.Income {
		if rec.Amount.Sign() < 0 {
			errs = append(errs, ValidationError{"income", fmt.Sprintf("#%d", i), "negative amount"})
		}
	}
	for i, rec := range s.Expenses {
		if rec.Amount.Sign() < 0 {
			errs = append(errs, ValidationError{"expenses", fmt.Sprintf("#%d", i), "negative amount"})
		}
	}

	for _, inv := range s.Investments {
		if inv.Quantity.Sign() < 0 {
			errs = append(errs, ValidationError{"investments", inv.ID, "negative quantity"})
		}
	}

	return errs
}
