package service

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func members(names ...string) []domain.Member {
	out := make([]domain.Member, len(names))
	for i, n := range names {
		out[i] = domain.Member{ID: n, Name: n}
	}
	return out
}

func expense(payer string, amount float64) domain.Expense {
	return domain.Expense{PayerName: payer, Amount: amount}
}

func TestComputeSettlements(t *testing.T) {
	tests := []struct {
		name     string
		members  []domain.Member
		expenses []domain.Expense
		want     []domain.Transfer
	}{
		{
			name:     "one payer three members",
			members:  members("A", "B", "C"),
			expenses: []domain.Expense{expense("A", 300)},
			want: []domain.Transfer{
				{From: "B", To: "A", Amount: 100},
				{From: "C", To: "A", Amount: 100},
			},
		},
		{
			name:     "already even",
			members:  members("A", "B"),
			expenses: []domain.Expense{expense("A", 50), expense("B", 50)},
			want:     []domain.Transfer{},
		},
		{
			name:     "no members",
			expenses: []domain.Expense{expense("A", 10)},
			want:     []domain.Transfer{},
		},
		{
			name:    "no expenses",
			members: members("A", "B"),
			want:    []domain.Transfer{},
		},
		{
			name:     "greedy in member order",
			members:  members("A", "B", "C", "D"),
			expenses: []domain.Expense{expense("C", 40), expense("D", 120)},
			want: []domain.Transfer{
				{From: "A", To: "D", Amount: 40},
				{From: "B", To: "D", Amount: 40},
			},
		},
		{
			name:     "within epsilon is settled",
			members:  members("A", "B"),
			expenses: []domain.Expense{expense("A", 10.01), expense("B", 10)},
			want:     []domain.Transfer{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSettlements(tt.members, tt.expenses)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				require.Equal(t, tt.want[i].From, got[i].From)
				require.Equal(t, tt.want[i].To, got[i].To)
				require.InDelta(t, tt.want[i].Amount, got[i].Amount, 1e-9)
			}
		})
	}
}

func TestComputeBalancesScenario(t *testing.T) {
	sum := ComputeBalances(members("A", "B", "C"), []domain.Expense{expense("A", 300)})

	require.Equal(t, 300.0, sum.Total)
	require.Equal(t, 100.0, sum.Share)
	require.Equal(t, map[string]float64{"A": 200, "B": -100, "C": -100}, sum.Balances)
}

func TestComputeBalancesKeepsStrayPayer(t *testing.T) {
	sum := ComputeBalances(members("A", "B"), []domain.Expense{expense("A", 10), expense("Gone", 30)})

	require.Equal(t, 20.0, sum.Share)
	require.InDelta(t, 30.0, sum.Balances["Gone"], 1e-9)
	require.InDelta(t, -10.0, sum.Balances["A"], 1e-9)
	require.InDelta(t, -20.0, sum.Balances["B"], 1e-9)
}

func TestSettlementZeroSum(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for round := range 200 {
		n := 1 + r.IntN(8)
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('A' + i))
		}
		ms := members(names...)

		var es []domain.Expense
		for range r.IntN(12) {
			amount := math.Round((0.01+r.Float64()*500)*100) / 100
			es = append(es, expense(names[r.IntN(n)], amount))
		}

		balances := ComputeBalances(ms, es).Balances
		transfers := ComputeSettlements(ms, es)

		require.LessOrEqual(t, len(transfers), max(n-1, 0), "round %d", round)

		sent := make(map[string]float64)
		received := make(map[string]float64)
		for _, tr := range transfers {
			require.Positive(t, tr.Amount)
			sent[tr.From] += tr.Amount
			received[tr.To] += tr.Amount
		}

		var net float64
		for _, name := range names {
			net += received[name] - sent[name]
		}
		require.InDelta(t, 0, net, 1e-9)

		for _, m := range ms {
			b := balances[m.Name]
			if b < -SettlementEpsilon {
				require.InDelta(t, -b, sent[m.Name], SettlementEpsilon, "round %d debtor %s", round, m.Name)
			}
			if b > SettlementEpsilon {
				require.InDelta(t, b, received[m.Name], SettlementEpsilon*float64(n), "round %d creditor %s", round, m.Name)
			}
		}
	}
}

func TestBalancesPermutationInvariant(t *testing.T) {
	ms := members("A", "B", "C")
	es := []domain.Expense{
		expense("A", 12.5), expense("B", 7.25), expense("C", 100),
		expense("A", 0.1), expense("B", 33.33),
	}

	base := ComputeBalances(ms, es).Balances
	r := rand.New(rand.NewPCG(3, 4))

	for range 50 {
		shuffled := append([]domain.Expense(nil), es...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := ComputeBalances(ms, shuffled).Balances
		require.Len(t, got, len(base))
		for name, b := range base {
			require.InDelta(t, b, got[name], 1e-9)
		}
	}
}

func TestComputeSettlementsDuplicateNameIsOneAccount(t *testing.T) {
	ms := []domain.Member{{ID: "1", Name: "A"}, {ID: "2", Name: "A"}, {ID: "3", Name: "B"}}
	got := ComputeSettlements(ms, []domain.Expense{expense("B", 90)})

	// Share 30, A's account is charged twice: -60. B is +60.
	require.Len(t, got, 1)
	require.Equal(t, "A", got[0].From)
	require.Equal(t, "B", got[0].To)
	require.InDelta(t, 60, got[0].Amount, 1e-9)
}
