package model

import "github.com/shopspring/decimal"

// AccountType classifies a financial account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCrypto     AccountType = "crypto"
	AccountTypeCash       AccountType = "cash"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeOther      AccountType = "other"
)

// ParseAccountType normalizes a raw string to a known account type.
// Unknown values map to AccountTypeOther rather than erroring.
func ParseAccountType(s string) AccountType {
	switch AccountType(s) {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit,
		AccountTypeInvestment, AccountTypeCrypto, AccountTypeCash, AccountTypeLoan:
		return AccountType(s)
	}
	return AccountTypeOther
}

// IsDebt reports whether balances of this type represent money owed.
func (t AccountType) IsDebt() bool {
	return t == AccountTypeCredit || t == AccountTypeLoan
}

// Account is a user-owned financial account. Balance is signed: debt
// accounts typically carry negative balances.
type Account struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Institution         string          `json:"institution,omitempty"`
	Type                AccountType     `json:"type"`
	Balance             decimal.Decimal `json:"balance"`
	Currency            string          `json:"currency"`
	CreditLimit         decimal.Decimal `json:"credit_limit,omitempty"`
	InterestRate        decimal.Decimal `json:"interest_rate,omitempty"`
	Color               string          `json:"color,omitempty"`
	Icon                string          `json:"icon,omitempty"`
	ExcludeFromNetWorth bool            `json:"exclude_from_net_worth,omitempty"`
}
