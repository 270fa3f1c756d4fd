// Package id formats and parses the stable node and edge identifiers
// used by the flow graph. Identifiers are pure functions of the input
// records, which is what keeps repeated builds byte-identical.
package id

import (
	"fmt"
	"strings"
)

// Node kind prefixes.
const (
	PrefixIncome  = "income"
	PrefixExpense = "expense"
	PrefixAccount = "account"
	PrefixSavings = "savings"
	PrefixAnchor  = "anchor"
)

// IncomeNode returns the node ID for an income category, e.g. "income-salary".
func IncomeNode(category string) string {
	return PrefixIncome + "-" + category
}

// ExpenseNode returns the node ID for an expense category.
func ExpenseNode(category string) string {
	return PrefixExpense + "-" + category
}

// AccountNode returns the node ID for an account.
func AccountNode(accountID string) string {
	return PrefixAccount + "-" + accountID
}

// SavingsNode returns the node ID for a savings goal.
func SavingsNode(goalID string) string {
	return PrefixSavings + "-" + goalID
}

// Edge returns the ID for an aggregate-derived edge between two nodes.
func Edge(sourceNode, targetNode string) string {
	return "edge-" + sourceNode + "-" + targetNode
}

// FlowEdge returns the ID for a recurring-flow edge. Keyed by the flow's
// own ID so two flows between the same endpoints stay distinct.
func FlowEdge(flowID string) string {
	return "flow-" + flowID
}

// ParseNode splits a node ID into its kind prefix and key.
func ParseNode(nodeID string) (kind, key string, err error) {
	kind, key, ok := strings.Cut(nodeID, "-")
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid node ID format: %q", nodeID)
	}
	switch kind {
	case PrefixIncome, PrefixExpense, PrefixAccount, PrefixSavings, PrefixAnchor:
		return kind, key, nil
	}
	return "", "", fmt.Errorf("unknown node kind in ID %q", nodeID)
}
