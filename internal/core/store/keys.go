package store

import "github.com/aussiebroadwan/localcore/internal/core/domain"

// Key layout. These mirror the local storage keys the browser build used, so
// exported dumps stay readable side by side.
const (
	KeySessionState        = "mock_auth_state"
	KeyPendingRegistration = "mock_pending_registration"
	KeyBillSessionID       = "bill_session_id"
	KeyStoragePrefix       = "mock_storage:"
)

// CollectionKey is where a collection's records live.
func CollectionKey(k domain.Kind) string {
	return "mock_" + string(k)
}

// BillMembersKey and BillExpensesKey namespace the tab by session id.
func BillMembersKey(sessionID string) string  { return "bill_members_" + sessionID }
func BillExpensesKey(sessionID string) string { return "bill_expenses_" + sessionID }

// ObjectKey is where a stored object lives.
func ObjectKey(key string) string { return KeyStoragePrefix + key }
