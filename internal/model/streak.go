package model

// Streak is a consecutive-activity counter for one habit type
// (e.g. "daily-login", "budget-kept").
type Streak struct {
	Type    string `json:"type"`
	Current int    `json:"current"`
	Longest int    `json:"longest"`
}

// IsRecord reports whether the current run ties or beats the longest
// recorded run. A zero-length streak is never a record.
func (s Streak) IsRecord() bool {
	return s.Current >= s.Longest && s.Current > 0
}
