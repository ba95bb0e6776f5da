package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/store"
	"github.com/aussiebroadwan/localcore/internal/core/store/drivers/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestBillSessionIDIsStable(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	b := NewBillService(kv, nil)

	sid, err := b.SessionID(ctx)
	require.NoError(t, err)
	require.Len(t, sid, 36)

	again, err := NewBillService(kv, nil).SessionID(ctx)
	require.NoError(t, err)
	require.Equal(t, sid, again)

	require.NotEqual(t, NewSessionID(), NewSessionID())
}

func TestBillMembers(t *testing.T) {
	ctx := context.Background()
	b := NewBillService(memory.NewStore(), nil)
	sid := NewSessionID()

	ann, err := b.AddMember(ctx, sid, "  Ann ")
	require.NoError(t, err)
	require.Equal(t, "Ann", ann.Name)

	_, err = b.AddMember(ctx, sid, "Ann")
	require.ErrorIs(t, err, ErrDuplicateMember)
	_, err = b.AddMember(ctx, sid, "   ")
	require.ErrorIs(t, err, ErrInvalidMember)
	_, err = b.AddMember(ctx, "", "Bob")
	require.ErrorIs(t, err, ErrInvalidSession)

	// Another tab is separate
	_, err = b.AddMember(ctx, NewSessionID(), "Ann")
	require.NoError(t, err)

	bob, err := b.AddMember(ctx, sid, "Bob")
	require.NoError(t, err)

	ms, err := b.Members(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, []domain.Member{ann, bob}, ms)

	require.NoError(t, b.RemoveMember(ctx, sid, ann.ID))
	require.NoError(t, b.RemoveMember(ctx, sid, ann.ID))

	ms, err = b.Members(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, []domain.Member{bob}, ms)
}

func TestBillExpenses(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := NewBillService(memory.NewStore(), nil)
	b.Now = fixedClock(now)
	sid := NewSessionID()

	e, err := b.AddExpense(ctx, sid, ExpenseInput{
		PayerName: "Ann",
		Amount:    42.5,
		Memo:      `<script>alert(1)</script>Pizza <b>night</b>`,
	})
	require.NoError(t, err)
	require.Equal(t, "Pizza night", e.Memo)
	require.True(t, now.Equal(e.CreatedAt))

	tests := []struct {
		name string
		in   ExpenseInput
		err  error
	}{
		{"zero amount", ExpenseInput{PayerName: "Ann", Amount: 0}, ErrInvalidAmount},
		{"negative amount", ExpenseInput{PayerName: "Ann", Amount: -3}, ErrInvalidAmount},
		{"missing payer", ExpenseInput{Amount: 3}, ErrInvalidPayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.AddExpense(ctx, sid, tt.in)
			require.ErrorIs(t, err, tt.err)
		})
	}

	es, err := b.Expenses(ctx, sid)
	require.NoError(t, err)
	require.Len(t, es, 1)

	require.NoError(t, b.RemoveExpense(ctx, sid, e.ID))
	es, err = b.Expenses(ctx, sid)
	require.NoError(t, err)
	require.Empty(t, es)
}

func TestBillMemoKeepsPlainText(t *testing.T) {
	ctx := context.Background()
	b := NewBillService(memory.NewStore(), nil)
	sid := NewSessionID()

	tests := []struct {
		name string
		memo string
		want string
	}{
		{"punctuation", `Fish & Chips at Bob's "Grill"`, `Fish & Chips at Bob's "Grill"`},
		{"comparison", "tip 5 < 10 > 2", "tip 5 < 10 > 2"},
		{"markup around entities", "<i>Salt &amp; Pepper</i>", "Salt & Pepper"},
		{"whitespace", "  coffee  ", "coffee"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := b.AddExpense(ctx, sid, ExpenseInput{PayerName: "Ann", Amount: 1, Memo: tt.memo})
			require.NoError(t, err)
			require.Equal(t, tt.want, e.Memo)

			stored, err := b.Expenses(ctx, sid)
			require.NoError(t, err)
			require.Equal(t, tt.want, stored[len(stored)-1].Memo)
		})
	}
}

func TestBillSettleBlocksOrphans(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	b := NewBillService(memory.NewStore(), m)
	sid := NewSessionID()

	for _, name := range []string{"A", "B", "C"} {
		_, err := b.AddMember(ctx, sid, name)
		require.NoError(t, err)
	}
	_, err := b.AddExpense(ctx, sid, ExpenseInput{PayerName: "A", Amount: 300})
	require.NoError(t, err)

	transfers, err := b.Settle(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, []domain.Transfer{
		{From: "B", To: "A", Amount: 100},
		{From: "C", To: "A", Amount: 100},
	}, transfers)
	require.Equal(t, 1, testutil.CollectAndCount(m.settlements))

	// A leaves; their expense is now an orphan
	ms, err := b.Members(ctx, sid)
	require.NoError(t, err)
	require.NoError(t, b.RemoveMember(ctx, sid, ms[0].ID))

	orphans, err := b.OrphanExpenses(ctx, sid)
	require.NoError(t, err)
	require.Len(t, orphans, 1)

	_, err = b.Settle(ctx, sid)
	require.ErrorIs(t, err, ErrOrphanExpenses)

	sum, err := b.Summary(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, 300.0, sum.Total)
	require.Equal(t, 150.0, sum.Share)
	require.Len(t, sum.Orphans, 1)
}

func TestBillDataIsNamespaced(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	b := NewBillService(kv, nil)

	_, err := b.AddMember(ctx, "tab-1", "Ann")
	require.NoError(t, err)

	ms := store.ReadList[domain.Member](ctx, kv, "bill_members_tab-1")
	require.Len(t, ms, 1)

	other, err := b.Members(ctx, "tab-2")
	require.NoError(t, err)
	require.Empty(t, other)
}
