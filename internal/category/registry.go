// Package category maps domain category keys to display metadata.
package category

import "github.com/moneymap-dev/moneymap/internal/model"

// Meta is the display payload attached to one category key.
type Meta struct {
	Label string
	Color string
	Icon  string
}

// Registry resolves category keys to display metadata for the four
// category domains. Lookups never fail: unknown keys resolve to the
// domain's "other" entry. The registry carries no state beyond its
// tables and is safe for concurrent use.
type Registry struct {
	accountTypes map[model.AccountType]Meta
	income       map[model.IncomeCategory]Meta
	expense      map[model.ExpenseCategory]Meta
	assets       map[model.AssetType]Meta
}

// AccountType returns metadata for an account type.
func (r *Registry) AccountType(t model.AccountType) Meta {
	if m, ok := r.accountTypes[t]; ok {
		return m
	}
	return r.accountTypes[model.AccountTypeOther]
}

// Income returns metadata for an income category.
func (r *Registry) Income(c model.IncomeCategory) Meta {
	if m, ok := r.income[c]; ok {
		return m
	}
	return r.income[model.IncomeOther]
}

// Expense returns metadata for an expense category.
func (r *Registry) Expense(c model.ExpenseCategory) Meta {
	if m, ok := r.expense[c]; ok {
		return m
	}
	return r.expense[model.ExpenseOther]
}

// Asset returns metadata for an asset type.
func (r *Registry) Asset(t model.AssetType) Meta {
	if m, ok := r.assets[t]; ok {
		return m
	}
	return r.assets[model.AssetOther]
}

// Default returns the built-in registry.
func Default() *Registry {
	return &Registry{
		accountTypes: map[model.AccountType]Meta{
			model.AccountTypeChecking:   {Label: "Checking", Color: "#3b82f6", Icon: "wallet"},
			model.AccountTypeSavings:    {Label: "Savings", Color: "#22c55e", Icon: "piggy-bank"},
			model.AccountTypeCredit:     {Label: "Credit Card", Color: "#ef4444", Icon: "credit-card"},
			model.AccountTypeInvestment: {Label: "Investments", Color: "#8b5cf6", Icon: "trending-up"},
			model.AccountTypeCrypto:     {Label: "Crypto", Color: "#f59e0b", Icon: "bitcoin"},
			model.AccountTypeCash:       {Label: "Cash", Color: "#10b981", Icon: "banknote"},
			model.AccountTypeLoan:       {Label: "Loan", Color: "#dc2626", Icon: "landmark"},
			model.AccountTypeOther:      {Label: "Other", Color: "#6b7280", Icon: "circle"},
		},
		income: map[model.IncomeCategory]Meta{
			model.IncomeSalary:     {Label: "Salary", Color: "#16a34a", Icon: "briefcase"},
			model.IncomeFreelance:  {Label: "Freelance", Color: "#0ea5e9", Icon: "laptop"},
			model.IncomeBusiness:   {Label: "Business", Color: "#7c3aed", Icon: "building"},
			model.IncomeInvestment: {Label: "Investment Income", Color: "#8b5cf6", Icon: "trending-up"},
			model.IncomeRental:     {Label: "Rental", Color: "#ca8a04", Icon: "home"},
			model.IncomeGift:       {Label: "Gifts", Color: "#ec4899", Icon: "gift"},
			model.IncomeOther:      {Label: "Other Income", Color: "#6b7280", Icon: "plus-circle"},
		},
		expense: map[model.ExpenseCategory]Meta{
			model.ExpenseHousing:       {Label: "Housing", Color: "#f97316", Icon: "home"},
			model.ExpenseFood:          {Label: "Food & Dining", Color: "#e11d48", Icon: "utensils"},
			model.ExpenseTransport:     {Label: "Transport", Color: "#0891b2", Icon: "car"},
			model.ExpenseUtilities:     {Label: "Utilities", Color: "#eab308", Icon: "zap"},
			model.ExpenseHealth:        {Label: "Health", Color: "#14b8a6", Icon: "heart-pulse"},
			model.ExpenseEntertainment: {Label: "Entertainment", Color: "#a855f7", Icon: "film"},
			model.ExpenseSubscriptions: {Label: "Subscriptions", Color: "#6366f1", Icon: "repeat"},
			model.ExpenseShopping:      {Label: "Shopping", Color: "#f43f5e", Icon: "shopping-bag"},
			model.ExpenseOther:         {Label: "Other Spending", Color: "#6b7280", Icon: "minus-circle"},
		},
		assets: map[model.AssetType]Meta{
			model.AssetStock:  {Label: "Stocks", Color: "#2563eb", Icon: "line-chart"},
			model.AssetETF:    {Label: "ETFs", Color: "#7c3aed", Icon: "pie-chart"},
			model.AssetFund:   {Label: "Funds", Color: "#0d9488", Icon: "layers"},
			model.AssetBond:   {Label: "Bonds", Color: "#ca8a04", Icon: "shield"},
			model.AssetCrypto: {Label: "Crypto", Color: "#f59e0b", Icon: "bitcoin"},
			model.AssetCash:   {Label: "Cash", Color: "#10b981", Icon: "banknote"},
			model.AssetOther:  {Label: "Other Assets", Color: "#6b7280", Icon: "box"},
		},
	}
}
