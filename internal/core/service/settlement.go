package service

import "github.com/aussiebroadwan/localcore/internal/core/domain"

// SettlementEpsilon is the balance below which an account counts as settled.
const SettlementEpsilon = 0.01

// ComputeBalances splits the total equally and returns every account's
// position: positive is owed money, negative owes. Balances are keyed by
// member name. A payer name that matches no member still gets an entry.
func ComputeBalances(members []domain.Member, expenses []domain.Expense) domain.TabSummary {
	balances := make(map[string]float64, len(members))
	for _, m := range members {
		balances[m.Name] = 0
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	var share float64
	if len(members) > 0 {
		share = total / float64(len(members))
	}

	for _, e := range expenses {
		balances[e.PayerName] += e.Amount
	}
	for _, m := range members {
		balances[m.Name] -= share
	}

	return domain.TabSummary{Total: total, Share: share, Balances: balances}
}

// ComputeSettlements returns the transfers that square the tab. Debtors and
// creditors are matched greedily in member order. Orphan expenses are not
// checked here; callers filter or refuse them first.
func ComputeSettlements(members []domain.Member, expenses []domain.Expense) []domain.Transfer {
	transfers := make([]domain.Transfer, 0)
	if len(members) == 0 || len(expenses) == 0 {
		return transfers
	}

	balances := ComputeBalances(members, expenses).Balances

	type account struct {
		name      string
		remaining float64
	}

	var debtors, creditors []account
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		// Name is the account; a repeated name is the same account.
		if _, dup := seen[m.Name]; dup {
			continue
		}
		seen[m.Name] = struct{}{}

		switch b := balances[m.Name]; {
		case b < -SettlementEpsilon:
			debtors = append(debtors, account{name: m.Name, remaining: -b})
		case b > SettlementEpsilon:
			creditors = append(creditors, account{name: m.Name, remaining: b})
		}
	}

	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d, c := &debtors[i], &creditors[j]

		amount := min(d.remaining, c.remaining)
		transfers = append(transfers, domain.Transfer{From: d.name, To: c.name, Amount: amount})

		d.remaining -= amount
		c.remaining -= amount
		if d.remaining < SettlementEpsilon {
			i++
		}
		if c.remaining < SettlementEpsilon {
			j++
		}
	}

	return transfers
}
