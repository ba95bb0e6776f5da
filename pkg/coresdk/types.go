package coresdk

import "time"

// ============================================================================
// Errors and health
// ============================================================================

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks lists readiness checks (only for /readyz).
type HealthChecks struct {
	Storage string `json:"storage"`
	Backend string `json:"backend"`
}

// ============================================================================
// Session
// ============================================================================

type RegisterRequest struct {
	EmailOrUsername string `json:"email_or_username" validate:"required,max=254"`
	Secret          string `json:"secret" validate:"required,max=256"`
	DisplayName     string `json:"display_name,omitempty" validate:"max=128"`
}

// DeliveryResponse says where the confirmation code was (pretend) sent.
type DeliveryResponse struct {
	Medium      string `json:"medium"`
	Destination string `json:"destination"`
}

type ConfirmRequest struct {
	EmailOrUsername string `json:"email_or_username" validate:"required,max=254"`
	Code            string `json:"code" validate:"required,max=16"`
}

type SignInRequest struct {
	EmailOrUsername string `json:"email_or_username" validate:"required,max=254"`
	Secret          string `json:"secret" validate:"required,max=256"`
}

// Identity is the signed-in actor.
type Identity struct {
	ID              string            `json:"id"`
	GeneratedID     string            `json:"generated_id"`
	EmailOrUsername string            `json:"email_or_username"`
	DisplayName     string            `json:"display_name"`
	Attributes      map[string]string `json:"attributes,omitempty"`
}

// SessionResponse is returned by confirm and sign-in.
type SessionResponse struct {
	Identity  Identity `json:"identity"`
	IDToken   string   `json:"id_token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int      `json:"expires_in"`
}

// ============================================================================
// Data
// ============================================================================

// Record is a collection entry as stored.
type Record map[string]any

// ID returns the record id or "".
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

type ListResponse struct {
	Items []Record `json:"items"`
}

type GraphQLRequest struct {
	Query         string         `json:"query" validate:"required"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type GraphQLResponse struct {
	Data map[string]any `json:"data"`
}

// ObjectResponse describes a stored object.
type ObjectResponse struct {
	Key         string    `json:"key"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type ObjectURLResponse struct {
	URL string `json:"url"`
}

type ObjectListResponse struct {
	Keys []string `json:"keys"`
}

// ============================================================================
// Bill tab
// ============================================================================

type MemberRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ExpenseRequest struct {
	PayerName string  `json:"payer_name" validate:"required,max=64"`
	Amount    float64 `json:"amount" validate:"gt=0"`
	Memo      string  `json:"memo,omitempty" validate:"max=500"`
}

type Expense struct {
	ID        string    `json:"id"`
	PayerName string    `json:"payer_name"`
	Amount    float64   `json:"amount"`
	Memo      string    `json:"memo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type TabSummary struct {
	Total    float64            `json:"total"`
	Share    float64            `json:"share"`
	Balances map[string]float64 `json:"balances"`
	Orphans  []Expense          `json:"orphans,omitempty"`
}

type MembersResponse struct {
	Members []Member `json:"members"`
}

type ExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type SettlementsResponse struct {
	Transfers []Transfer `json:"transfers"`
}
