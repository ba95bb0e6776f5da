package service

import (
	"context"
	"errors"
	"html"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/store"
	"github.com/aussiebroadwan/localcore/pkg/slogx"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

var (
	ErrInvalidSession  = errors.New("tab session id is required")
	ErrInvalidMember   = errors.New("member name is required")
	ErrDuplicateMember = errors.New("a member with that name already exists")
	ErrInvalidPayer    = errors.New("payer name is required")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrOrphanExpenses  = errors.New("some expenses were paid by people no longer on the tab")
)

// ExpenseInput is what a caller supplies to record an expense.
type ExpenseInput struct {
	PayerName string
	Amount    float64
	Memo      string
}

// BillService is the bill-splitting tool's repository. Members and
// expenses live under keys namespaced by a tab session id.
type BillService struct {
	Store     store.KV
	Sanitizer *bluemonday.Policy
	Metrics   Recorder
	Now       func() time.Time

	mu sync.Mutex
}

func NewBillService(kv store.KV, metrics Recorder) *BillService {
	return &BillService{
		Store:     kv,
		Sanitizer: bluemonday.StrictPolicy(),
		Metrics:   metrics,
	}
}

// NewSessionID mints a tab session id.
func NewSessionID() string {
	return uuid.NewString()
}

// SessionID returns the persisted tab session id, creating it on first use.
func (s *BillService) SessionID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sid, err := s.Store.Get(ctx, store.KeyBillSessionID)
	if err == nil && sid != "" {
		return sid, nil
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	sid = NewSessionID()
	if err := s.Store.Set(ctx, store.KeyBillSessionID, sid); err != nil {
		return "", err
	}
	return sid, nil
}

func (s *BillService) Members(ctx context.Context, sid string) ([]domain.Member, error) {
	if sid == "" {
		return nil, ErrInvalidSession
	}
	return store.ReadList[domain.Member](ctx, s.Store, store.BillMembersKey(sid)), nil
}

// AddMember adds a member by name. Names are trimmed and must be unique
// within the tab since expenses refer to members by name.
func (s *BillService) AddMember(ctx context.Context, sid, name string) (domain.Member, error) {
	if sid == "" {
		return domain.Member{}, ErrInvalidSession
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Member{}, ErrInvalidMember
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := store.BillMembersKey(sid)
	members := store.ReadList[domain.Member](ctx, s.Store, key)
	for _, m := range members {
		if m.Name == name {
			return domain.Member{}, ErrDuplicateMember
		}
	}

	m := domain.Member{ID: store.MakeID(), Name: name}
	if err := store.WriteList(ctx, s.Store, key, append(members, m)); err != nil {
		return domain.Member{}, err
	}
	return m, nil
}

// RemoveMember drops a member. Their expenses stay and become orphans.
func (s *BillService) RemoveMember(ctx context.Context, sid, id string) error {
	if sid == "" {
		return ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := store.BillMembersKey(sid)
	members := store.ReadList[domain.Member](ctx, s.Store, key)
	kept := make([]domain.Member, 0, len(members))
	for _, m := range members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(members) {
		return nil
	}
	return store.WriteList(ctx, s.Store, key, kept)
}

func (s *BillService) Expenses(ctx context.Context, sid string) ([]domain.Expense, error) {
	if sid == "" {
		return nil, ErrInvalidSession
	}
	return store.ReadList[domain.Expense](ctx, s.Store, store.BillExpensesKey(sid)), nil
}

// AddExpense records an expense. The memo is stripped of markup.
func (s *BillService) AddExpense(ctx context.Context, sid string, in ExpenseInput) (domain.Expense, error) {
	if sid == "" {
		return domain.Expense{}, ErrInvalidSession
	}

	payer := strings.TrimSpace(in.PayerName)
	if payer == "" {
		return domain.Expense{}, ErrInvalidPayer
	}
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		return domain.Expense{}, ErrInvalidAmount
	}

	e := domain.Expense{
		ID:        store.MakeID(),
		PayerName: payer,
		Amount:    in.Amount,
		Memo:      s.cleanMemo(in.Memo),
		CreatedAt: nowUTC(s.Now),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := store.BillExpensesKey(sid)
	expenses := store.ReadList[domain.Expense](ctx, s.Store, key)
	if err := store.WriteList(ctx, s.Store, key, append(expenses, e)); err != nil {
		return domain.Expense{}, err
	}
	return e, nil
}

func (s *BillService) RemoveExpense(ctx context.Context, sid, id string) error {
	if sid == "" {
		return ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := store.BillExpensesKey(sid)
	expenses := store.ReadList[domain.Expense](ctx, s.Store, key)
	kept := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(expenses) {
		return nil
	}
	return store.WriteList(ctx, s.Store, key, kept)
}

// OrphanExpenses returns expenses whose payer is not a current member.
func (s *BillService) OrphanExpenses(ctx context.Context, sid string) ([]domain.Expense, error) {
	members, expenses, err := s.load(ctx, sid)
	if err != nil {
		return nil, err
	}
	return orphans(members, expenses), nil
}

// Summary reports totals and balances, orphans included.
func (s *BillService) Summary(ctx context.Context, sid string) (domain.TabSummary, error) {
	members, expenses, err := s.load(ctx, sid)
	if err != nil {
		return domain.TabSummary{}, err
	}

	sum := ComputeBalances(members, expenses)
	sum.Orphans = orphans(members, expenses)
	return sum, nil
}

// Settle computes the transfers for the tab. It refuses while any expense
// belongs to someone who has left, since the result would be skewed.
func (s *BillService) Settle(ctx context.Context, sid string) ([]domain.Transfer, error) {
	members, expenses, err := s.load(ctx, sid)
	if err != nil {
		return nil, err
	}

	if o := orphans(members, expenses); len(o) > 0 {
		slogx.FromContext(ctx).Info("settlement blocked by orphan expenses",
			slog.Int("orphans", len(o)),
		)
		return nil, ErrOrphanExpenses
	}

	transfers := ComputeSettlements(members, expenses)
	recorderOrNop(s.Metrics).ObserveSettlement(len(transfers))
	return transfers, nil
}

func (s *BillService) load(ctx context.Context, sid string) ([]domain.Member, []domain.Expense, error) {
	if sid == "" {
		return nil, nil, ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	members := store.ReadList[domain.Member](ctx, s.Store, store.BillMembersKey(sid))
	expenses := store.ReadList[domain.Expense](ctx, s.Store, store.BillExpensesKey(sid))
	return members, expenses, nil
}

// cleanMemo strips markup but keeps the text as typed. The policy escapes
// entities on output, so they are decoded again before storing.
func (s *BillService) cleanMemo(memo string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer().Sanitize(memo)))
}

func (s *BillService) sanitizer() *bluemonday.Policy {
	if s.Sanitizer == nil {
		return bluemonday.StrictPolicy()
	}
	return s.Sanitizer
}

func orphans(members []domain.Member, expenses []domain.Expense) []domain.Expense {
	names := make(map[string]struct{}, len(members))
	for _, m := range members {
		names[m.Name] = struct{}{}
	}

	var out []domain.Expense
	for _, e := range expenses {
		if _, ok := names[e.PayerName]; !ok {
			out = append(out, e)
		}
	}
	return out
}
