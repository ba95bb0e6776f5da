package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/service"
	"github.com/aussiebroadwan/localcore/pkg/coresdk"
	"github.com/aussiebroadwan/localcore/pkg/httpx"
	"github.com/aussiebroadwan/localcore/pkg/slogx"

	"github.com/gorilla/sessions"
)

const (
	tabCookieName = "localcore_tab"
	tabSessionKey = "sid"
)

// TabHandler serves the bill-splitting tool. Each browser gets its own tab,
// identified by a session id kept in a signed cookie.
type TabHandler struct {
	BillService *service.BillService
	Cookies     sessions.Store
	SharedTab   bool
}

// sessionID returns the caller's tab id, minting one and setting the cookie
// when there is none yet.
func (h *TabHandler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	log := slogx.FromContext(r.Context())

	sess, err := h.Cookies.Get(r, tabCookieName)
	if err != nil {
		// Tampered or signed with an old key; start over.
		log.Debug("discarding unreadable tab cookie", slog.Any("error", err))
	}
	if sid, ok := sess.Values[tabSessionKey].(string); ok && sid != "" {
		return sid, true
	}

	var sid string
	if h.SharedTab {
		if sid, err = h.BillService.SessionID(r.Context()); err != nil {
			writeServiceError(w, r, err)
			return "", false
		}
	} else {
		sid = service.NewSessionID()
	}

	sess.Values[tabSessionKey] = sid
	if err := sess.Save(r, w); err != nil {
		log.Error("failed to save tab cookie", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to start tab session")
		return "", false
	}
	return sid, true
}

// HandleListMembers godoc
//
//	@Summary	List members
//	@Tags		Tab
//	@Produce	json
//	@Success	200	{object}	coresdk.MembersResponse	"members"
//	@Router		/v1/tab/members [get].
func (h *TabHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	members, err := h.BillService.Members(r.Context(), sid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]coresdk.Member, 0, len(members))
	for _, m := range members {
		out = append(out, coresdk.Member{ID: m.ID, Name: m.Name})
	}
	httpx.WriteJSON(w, http.StatusOK, coresdk.MembersResponse{Members: out})
}

// HandleAddMember godoc
//
//	@Summary	Add member
//	@Tags		Tab
//	@Accept		json
//	@Produce	json
//	@Param		request	body		coresdk.MemberRequest	true	"name"
//	@Success	201		{object}	coresdk.Member			"member"
//	@Failure	400		{object}	httpx.ErrorResponse		"invalid_request"
//	@Router		/v1/tab/members [post].
func (h *TabHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req coresdk.MemberRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	m, err := h.BillService.AddMember(r.Context(), sid, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, coresdk.Member{ID: m.ID, Name: m.Name})
}

// HandleRemoveMember godoc
//
//	@Summary		Remove member
//	@Description	Their expenses stay on the tab as orphans.
//	@Tags			Tab
//	@Param			id	path	string	true	"member id"
//	@Success		204
//	@Router			/v1/tab/members/{id} [delete].
func (h *TabHandler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.BillService.RemoveMember(r.Context(), sid, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListExpenses godoc
//
//	@Summary	List expenses
//	@Tags		Tab
//	@Produce	json
//	@Success	200	{object}	coresdk.ExpensesResponse	"expenses"
//	@Router		/v1/tab/expenses [get].
func (h *TabHandler) HandleListExpenses(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	expenses, err := h.BillService.Expenses(r.Context(), sid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, coresdk.ExpensesResponse{Expenses: toExpenses(expenses)})
}

// HandleAddExpense godoc
//
//	@Summary	Add expense
//	@Tags		Tab
//	@Accept		json
//	@Produce	json
//	@Param		request	body		coresdk.ExpenseRequest	true	"payer, amount, memo"
//	@Success	201		{object}	coresdk.Expense			"expense"
//	@Failure	400		{object}	httpx.ErrorResponse		"invalid_request"
//	@Router		/v1/tab/expenses [post].
func (h *TabHandler) HandleAddExpense(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req coresdk.ExpenseRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	e, err := h.BillService.AddExpense(r.Context(), sid, service.ExpenseInput{
		PayerName: req.PayerName,
		Amount:    req.Amount,
		Memo:      req.Memo,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toExpense(e))
}

// HandleRemoveExpense godoc
//
//	@Summary	Remove expense
//	@Tags		Tab
//	@Param		id	path	string	true	"expense id"
//	@Success	204
//	@Router		/v1/tab/expenses/{id} [delete].
func (h *TabHandler) HandleRemoveExpense(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.BillService.RemoveExpense(r.Context(), sid, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSummary godoc
//
//	@Summary	Tab summary
//	@Tags		Tab
//	@Produce	json
//	@Success	200	{object}	coresdk.TabSummary	"total, share, balances, orphans"
//	@Router		/v1/tab/summary [get].
func (h *TabHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	sum, err := h.BillService.Summary(r.Context(), sid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, coresdk.TabSummary{
		Total:    sum.Total,
		Share:    sum.Share,
		Balances: sum.Balances,
		Orphans:  toExpenses(sum.Orphans),
	})
}

// HandleSettlements godoc
//
//	@Summary		Settle the tab
//	@Description	Refused with 409 while any expense belongs to a removed member.
//	@Tags			Tab
//	@Produce		json
//	@Success		200	{object}	coresdk.SettlementsResponse	"transfers"
//	@Failure		409	{object}	httpx.ErrorResponse			"orphan_expenses"
//	@Router			/v1/tab/settlements [get].
func (h *TabHandler) HandleSettlements(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	transfers, err := h.BillService.Settle(r.Context(), sid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]coresdk.Transfer, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, coresdk.Transfer{From: t.From, To: t.To, Amount: t.Amount})
	}
	httpx.WriteJSON(w, http.StatusOK, coresdk.SettlementsResponse{Transfers: out})
}

func toExpense(e domain.Expense) coresdk.Expense {
	return coresdk.Expense{
		ID:        e.ID,
		PayerName: e.PayerName,
		Amount:    e.Amount,
		Memo:      e.Memo,
		CreatedAt: e.CreatedAt,
	}
}

func toExpenses(es []domain.Expense) []coresdk.Expense {
	if es == nil {
		return nil
	}
	out := make([]coresdk.Expense, 0, len(es))
	for _, e := range es {
		out = append(out, toExpense(e))
	}
	return out
}
