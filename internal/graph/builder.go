// Package graph builds the financial flow graph: income sources on one
// side, accounts in the middle, expense and savings sinks on the other,
// connected by weighted edges. The build is a pure function of its
// input order, so identical inputs always produce identical node and
// edge sequences.
package graph

import (
	"github.com/shopspring/decimal"

	"github.com/moneymap-dev/moneymap/internal/category"
	"github.com/moneymap-dev/moneymap/internal/id"
	"github.com/moneymap-dev/moneymap/internal/model"
)

// NodeKind discriminates the node union.
type NodeKind string

const (
	NodeIncome  NodeKind = "income"
	NodeExpense NodeKind = "expense"
	NodeAccount NodeKind = "account"
	NodeSavings NodeKind = "savings"
	// NodeAnchor is reserved for renderer-injected alignment nodes; the
	// builder never emits it.
	NodeAnchor NodeKind = "anchor"
)

// EdgeStyle hints how an edge should be drawn.
type EdgeStyle string

const (
	// EdgeOneOff marks edges derived from period aggregates.
	EdgeOneOff EdgeStyle = "one-off"
	// EdgeRecurring marks edges derived from recurring flows.
	EdgeRecurring EdgeStyle = "recurring"
)

// Node is one vertex of the flow graph with its display payload.
type Node struct {
	ID       string          `json:"id"`
	Kind     NodeKind        `json:"kind"`
	Label    string          `json:"label"`
	Color    string          `json:"color,omitempty"`
	Icon     string          `json:"icon,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category,omitempty"`
	// Progress is the completion percentage for savings nodes.
	Progress float64 `json:"progress,omitempty"`
}

// Edge is one weighted connection between two built nodes.
type Edge struct {
	ID          string          `json:"id"`
	Source      string          `json:"source"`
	Target      string          `json:"target"`
	Weight      decimal.Decimal `json:"weight"`
	Style       EdgeStyle       `json:"style"`
	PeriodLabel string          `json:"period_label"`
}

// Diagnostics reports inputs the builder dropped rather than erroring on.
type Diagnostics struct {
	// SkippedFlowIDs lists recurring flows excluded because one or both
	// endpoints did not resolve to a built node.
	SkippedFlowIDs []string `json:"skipped_flow_ids,omitempty"`
}

// Result is a built flow graph.
type Result struct {
	Nodes       []Node      `json:"nodes"`
	Edges       []Edge      `json:"edges"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// Input bundles the ordered record collections a build consumes.
type Input struct {
	Accounts []model.Account
	Income   []model.IncomeRecord
	Expenses []model.ExpenseRecord
	Goals    []model.SavingsGoal
	Flows    []model.RecurringFlow
}

// PrimarySelector picks the account that anchors aggregate edges.
// Returning false means no primary exists (empty account list).
type PrimarySelector func(accounts []model.Account) (model.Account, bool)

// FirstAccount is the default primary policy: first account in input order.
func FirstAccount(accounts []model.Account) (model.Account, bool) {
	if len(accounts) == 0 {
		return model.Account{}, false
	}
	return accounts[0], true
}

// AccountByID returns a selector that picks a specific account, falling
// back to the first account when the ID is absent.
func AccountByID(accountID string) PrimarySelector {
	return func(accounts []model.Account) (model.Account, bool) {
		for _, a := range accounts {
			if a.ID == accountID {
				return a, true
			}
		}
		return FirstAccount(accounts)
	}
}

// Options tunes a build. Zero value means defaults.
type Options struct {
	// Primary selects the anchor account; nil means FirstAccount.
	Primary PrimarySelector
	// Registry supplies category display metadata; nil means the
	// built-in default registry.
	Registry *category.Registry
}

// aggregatePeriod labels edges derived from trailing-period aggregates.
const aggregatePeriod = "monthly"

type builder struct {
	registry *category.Registry
	nodes    []Node
	nodeIDs  map[string]bool
	edges    []Edge
}

func (b *builder) add(n Node) {
	if b.nodeIDs[n.ID] {
		return
	}
	b.nodeIDs[n.ID] = true
	b.nodes = append(b.nodes, n)
}

func (b *builder) has(nodeID string) bool {
	return b.nodeIDs[nodeID]
}

func (b *builder) addIncomeCategory(c model.IncomeCategory, amount decimal.Decimal) {
	meta := b.registry.Income(c)
	b.add(Node{
		ID:       id.IncomeNode(string(c)),
		Kind:     NodeIncome,
		Label:    meta.Label,
		Color:    meta.Color,
		Icon:     meta.Icon,
		Amount:   amount,
		Category: string(c),
	})
}

func (b *builder) addExpenseCategory(c model.ExpenseCategory, amount decimal.Decimal) {
	meta := b.registry.Expense(c)
	b.add(Node{
		ID:       id.ExpenseNode(string(c)),
		Kind:     NodeExpense,
		Label:    meta.Label,
		Color:    meta.Color,
		Icon:     meta.Icon,
		Amount:   amount,
		Category: string(c),
	})
}

// resolveEndpoint maps a flow endpoint to the node ID it addresses.
// Category-addressed endpoints go through the same normalization as
// node creation, so a flow and a record naming the same category always
// land on the same node.
func resolveEndpoint(ep model.FlowEndpoint) (string, bool) {
	switch ep.Kind {
	case model.EndpointIncome:
		return id.IncomeNode(string(model.ParseIncomeCategory(ep.Category))), true
	case model.EndpointExpense:
		return id.ExpenseNode(string(model.ParseExpenseCategory(ep.Category))), true
	case model.EndpointAccount:
		return id.AccountNode(ep.ID), true
	case model.EndpointSavings:
		return id.SavingsNode(ep.ID), true
	}
	return "", false
}

// Build assembles the flow graph from the input bundle. Unresolvable
// recurring flows are dropped and reported in Diagnostics; nothing in
// the build path returns an error. With zero accounts there is no
// primary anchor, so no aggregate or goal edges are emitted even when
// income and expense records exist.
func Build(in Input, opts Options) Result {
	primary := opts.Primary
	if primary == nil {
		primary = FirstAccount
	}
	registry := opts.Registry
	if registry == nil {
		registry = category.Default()
	}

	b := &builder{registry: registry, nodeIDs: make(map[string]bool)}

	// Income category nodes: aggregates first, then categories only a
	// recurring flow introduces. Union by ID.
	for _, rec := range in.Income {
		b.addIncomeCategory(rec.Category, rec.Amount)
	}
	for _, f := range in.Flows {
		if f.Source.Kind == model.EndpointIncome {
			b.addIncomeCategory(model.ParseIncomeCategory(f.Source.Category), decimal.Zero)
		}
	}

	// One node per account, one-to-one.
	for _, a := range in.Accounts {
		meta := registry.AccountType(a.Type)
		label := a.Name
		if label == "" {
			label = meta.Label
		}
		color := a.Color
		if color == "" {
			color = meta.Color
		}
		icon := a.Icon
		if icon == "" {
			icon = meta.Icon
		}
		b.add(Node{
			ID:       id.AccountNode(a.ID),
			Kind:     NodeAccount,
			Label:    label,
			Color:    color,
			Icon:     icon,
			Amount:   a.Balance,
			Category: string(a.Type),
		})
	}

	// Expense category nodes, same union rule as income.
	for _, rec := range in.Expenses {
		b.addExpenseCategory(rec.Category, rec.Amount)
	}
	for _, f := range in.Flows {
		if f.Target.Kind == model.EndpointExpense {
			b.addExpenseCategory(model.ParseExpenseCategory(f.Target.Category), decimal.Zero)
		}
	}

	// One node per savings goal.
	for _, g := range in.Goals {
		color := g.Color
		icon := g.Icon
		b.add(Node{
			ID:       id.SavingsNode(g.ID),
			Kind:     NodeSavings,
			Label:    g.Name,
			Color:    color,
			Icon:     icon,
			Amount:   g.Current,
			Progress: g.ProgressPercent(),
		})
	}

	diags := Diagnostics{}

	if anchor, ok := primary(in.Accounts); ok {
		anchorID := id.AccountNode(anchor.ID)

		for _, rec := range in.Income {
			src := id.IncomeNode(string(rec.Category))
			b.edges = append(b.edges, Edge{
				ID:          id.Edge(src, anchorID),
				Source:      src,
				Target:      anchorID,
				Weight:      rec.Amount,
				Style:       EdgeOneOff,
				PeriodLabel: aggregatePeriod,
			})
		}
		for _, rec := range in.Expenses {
			dst := id.ExpenseNode(string(rec.Category))
			b.edges = append(b.edges, Edge{
				ID:          id.Edge(anchorID, dst),
				Source:      anchorID,
				Target:      dst,
				Weight:      rec.Amount,
				Style:       EdgeOneOff,
				PeriodLabel: aggregatePeriod,
			})
		}
		for _, g := range in.Goals {
			if g.MonthlyContribution.Sign() <= 0 {
				continue
			}
			dst := id.SavingsNode(g.ID)
			b.edges = append(b.edges, Edge{
				ID:          id.Edge(anchorID, dst),
				Source:      anchorID,
				Target:      dst,
				Weight:      g.MonthlyContribution,
				Style:       EdgeOneOff,
				PeriodLabel: aggregatePeriod,
			})
		}
	}

	// Recurring flows become extra edges when both endpoints resolved to
	// built nodes; anything else is skipped, never an error.
	for _, f := range in.Flows {
		src, okSrc := resolveEndpoint(f.Source)
		dst, okDst := resolveEndpoint(f.Target)
		if !okSrc || !okDst || !b.has(src) || !b.has(dst) {
			diags.SkippedFlowIDs = append(diags.SkippedFlowIDs, f.ID)
			continue
		}
		b.edges = append(b.edges, Edge{
			ID:          id.FlowEdge(f.ID),
			Source:      src,
			Target:      dst,
			Weight:      f.Amount,
			Style:       EdgeRecurring,
			PeriodLabel: string(f.Frequency),
		})
	}

	return Result{Nodes: b.nodes, Edges: b.edges, Diagnostics: diags}
}
