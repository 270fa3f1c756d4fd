package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "income-salary", IncomeNode("salary"))
	assert.Equal(t, "expense-food", ExpenseNode("food"))
	assert.Equal(t, "account-acc-1", AccountNode("acc-1"))
	assert.Equal(t, "savings-goal-7", SavingsNode("goal-7"))
	assert.Equal(t, "edge-income-salary-account-acc-1", Edge("income-salary", "account-acc-1"))
	assert.Equal(t, "flow-rf-3", FlowEdge("rf-3"))
}

func TestParseNode(t *testing.T) {
	kind, key, err := ParseNode("income-salary")
	require.NoError(t, err)
	assert.Equal(t, PrefixIncome, kind)
	assert.Equal(t, "salary", key)

	kind, key, err = ParseNode("account-acc-12")
	require.NoError(t, err)
	assert.Equal(t, PrefixAccount, kind)
	assert.Equal(t, "acc-12", key)
}

func TestParseNodeRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "income", "income-", "budget-food"} {
		_, _, err := ParseNode(in)
		assert.Error(t, err, "ParseNode(%q)", in)
	}
}
