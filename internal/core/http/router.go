package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/service"
	"github.com/aussiebroadwan/localcore/internal/core/store"
	"github.com/aussiebroadwan/localcore/pkg/httpx"
	"github.com/aussiebroadwan/localcore/pkg/jwtx"
	"github.com/aussiebroadwan/localcore/pkg/slogx"

	_ "github.com/aussiebroadwan/localcore/api/localcore" // Swagger docs
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	issuer       *jwtx.Issuer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.KV
	gatherer     prometheus.Gatherer

	SessionService *service.SessionService
	Collections    map[domain.Kind]*service.Collection
	Dispatcher     *service.Dispatcher
	Storage        *service.ObjectStorage
	BillService    *service.BillService

	// TabCookies holds the bill tab id per browser. With SharedTab set,
	// requests without a tab cookie join the process-wide tab.
	TabCookies sessions.Store
	SharedTab  bool
}

func NewRouter(
	issuer *jwtx.Issuer,
	buildVersion string,
	st store.KV,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		gatherer:     gatherer,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerGraphQL()
	r.registerCollections()
	r.registerStorage()
	r.registerTab()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			localcore API
//	@version		0.1.0
//	@description	Local emulation of the marketplace and bill-splitting backends: a mock user pool,
//	@description	record collections, a GraphQL-shaped dispatcher, object storage and a settlement engine.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/localcore
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				ID token from sign-in or confirm. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSession() {
	h := &SessionHandler{SessionService: r.SessionService, Issuer: r.issuer}

	// Credential endpoints - strict rate limit by IP
	r.Mux.Handle("POST /v1/session/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister), httpx.RateLimitByIP(httpx.StrictLimit)),
	)
	r.Mux.Handle("POST /v1/session/confirm",
		httpx.Chain(http.HandlerFunc(h.HandleConfirm), httpx.RateLimitByIP(httpx.StrictLimit)),
	)
	r.Mux.Handle("POST /v1/session/signin",
		httpx.Chain(http.HandlerFunc(h.HandleSignIn), httpx.RateLimitByIP(httpx.StrictLimit)),
	)

	r.Mux.Handle("POST /v1/session/signout",
		httpx.Chain(http.HandlerFunc(h.HandleSignOut), httpx.RateLimitByIP(httpx.ModerateLimit)),
	)
	r.Mux.Handle("GET /v1/session/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe), httpx.RateLimitByIP(httpx.LenientLimit)),
	)
}

func (r *Router) registerGraphQL() {
	h := &GraphQLHandler{Dispatcher: r.Dispatcher}

	r.Mux.Handle("POST /v1/graphql",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.issuer),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCollections() {
	h := &CollectionsHandler{Collections: r.Collections}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.issuer),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/collections/{kind}", secured(h.HandleList))
	r.Mux.Handle("POST /v1/collections/{kind}", secured(h.HandleCreate))
	r.Mux.Handle("GET /v1/collections/{kind}/{id}", secured(h.HandleGet))
	r.Mux.Handle("PATCH /v1/collections/{kind}/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/collections/{kind}/{id}", secured(h.HandleDelete))
}

func (r *Router) registerStorage() {
	h := &StorageHandler{Storage: r.Storage}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.issuer),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/storage", secured(h.HandleList))
	r.Mux.Handle("PUT /v1/storage/{key...}", secured(h.HandlePut))
	r.Mux.Handle("GET /v1/storage/{key...}", secured(h.HandleGet))
	r.Mux.Handle("DELETE /v1/storage/{key...}", secured(h.HandleDelete))
}

func (r *Router) registerTab() {
	h := &TabHandler{
		BillService: r.BillService,
		Cookies:     r.TabCookies,
		SharedTab:   r.SharedTab,
	}

	lenient := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByIP(httpx.LenientLimit))
	}

	r.Mux.Handle("GET /v1/tab/members", lenient(h.HandleListMembers))
	r.Mux.Handle("POST /v1/tab/members", lenient(h.HandleAddMember))
	r.Mux.Handle("DELETE /v1/tab/members/{id}", lenient(h.HandleRemoveMember))
	r.Mux.Handle("GET /v1/tab/expenses", lenient(h.HandleListExpenses))
	r.Mux.Handle("POST /v1/tab/expenses", lenient(h.HandleAddExpense))
	r.Mux.Handle("DELETE /v1/tab/expenses/{id}", lenient(h.HandleRemoveExpense))
	r.Mux.Handle("GET /v1/tab/summary", lenient(h.HandleSummary))
	r.Mux.Handle("GET /v1/tab/settlements", lenient(h.HandleSettlements))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	if r.gatherer != nil {
		r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{}))
	}
}
