package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/store"
	"github.com/aussiebroadwan/localcore/pkg/cryptox"
	"github.com/aussiebroadwan/localcore/pkg/idx"
	"github.com/aussiebroadwan/localcore/pkg/slogx"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCode        = errors.New("invalid confirmation code")
	ErrInvalidCredentials = errors.New("email or username and secret are required")
)

// identityIDLength is the size of the alphanumeric ids handed to identities.
const identityIDLength = 16

// State is where the session sits in its lifecycle.
type State int

const (
	StateAnonymous State = iota
	StatePendingConfirmation
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StatePendingConfirmation:
		return "pending_confirmation"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

type SessionConfig struct {
	Verifier CodeVerifier   // default: SentinelVerifier{Code: SentinelCode}
	Hasher   cryptox.Hasher // hashes staged secrets
	Latency  time.Duration
	Now      func() time.Time
}

// SessionService emulates a hosted user pool: one current identity,
// a staged registration and a persisted authenticated flag.
type SessionService struct {
	Store    store.KV
	Verifier CodeVerifier
	Hasher   cryptox.Hasher
	Latency  time.Duration
	Now      func() time.Time

	mu    sync.Mutex
	state domain.SessionState
}

// NewSessionService builds the service and resumes whatever session was
// persisted by a previous process.
func NewSessionService(ctx context.Context, kv store.KV, cfg SessionConfig) *SessionService {
	if cfg.Verifier == nil {
		cfg.Verifier = SentinelVerifier{Code: SentinelCode}
	}

	s := &SessionService{
		Store:    kv,
		Verifier: cfg.Verifier,
		Hasher:   cfg.Hasher,
		Latency:  cfg.Latency,
		Now:      cfg.Now,
	}

	if state, ok := store.ReadValue[domain.SessionState](ctx, kv, store.KeySessionState); ok {
		if state.Identity == nil {
			state.IsAuthenticated = false
		}
		s.state = state
	}

	return s
}

// State reports the current lifecycle state.
func (s *SessionService) State(ctx context.Context) State {
	s.mu.Lock()
	authenticated := s.authenticated()
	s.mu.Unlock()

	if authenticated {
		return StateAuthenticated
	}
	if _, ok := store.ReadValue[domain.PendingRegistration](ctx, s.Store, store.KeyPendingRegistration); ok {
		return StatePendingConfirmation
	}
	return StateAnonymous
}

// BeginRegistration stages a registration and pretends to send a
// confirmation code to the given address.
func (s *SessionService) BeginRegistration(
	ctx context.Context,
	emailOrUsername string,
	secret string,
	displayName string,
) (domain.Delivery, error) {
	log := slogx.FromContext(ctx)

	if err := simulateLatency(ctx, s.Latency); err != nil {
		return domain.Delivery{}, err
	}

	emailOrUsername = strings.TrimSpace(emailOrUsername)
	if emailOrUsername == "" || secret == "" {
		return domain.Delivery{}, ErrInvalidCredentials
	}

	hash, err := s.Hasher.Hash(secret)
	if err != nil {
		log.Error("failed to hash staged secret", slog.Any("error", err))
		return domain.Delivery{}, fmt.Errorf("stage registration: %w", err)
	}

	pending := domain.PendingRegistration{
		EmailOrUsername: emailOrUsername,
		SecretHash:      hash,
		DisplayName:     strings.TrimSpace(displayName),
		RegisteredAt:    nowUTC(s.Now),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := store.WriteValue(ctx, s.Store, store.KeyPendingRegistration, pending); err != nil {
		return domain.Delivery{}, err
	}

	log.Debug("registration staged", slog.String("email_or_username", emailOrUsername))

	return domain.Delivery{Medium: "EMAIL", Destination: emailOrUsername}, nil
}

// ConfirmRegistration turns the staged registration into the current
// identity. Confirming an address that is already signed in, with nothing
// left staged for it, succeeds without changing anything.
func (s *SessionService) ConfirmRegistration(ctx context.Context, emailOrUsername, code string) (domain.Identity, error) {
	log := slogx.FromContext(ctx)

	if err := simulateLatency(ctx, s.Latency); err != nil {
		return domain.Identity{}, err
	}

	emailOrUsername = strings.TrimSpace(emailOrUsername)

	s.mu.Lock()
	defer s.mu.Unlock()

	pending, staged := store.ReadValue[domain.PendingRegistration](ctx, s.Store, store.KeyPendingRegistration)
	stagedForCaller := staged && pending.EmailOrUsername == emailOrUsername

	// 1. Already confirmed.
	if s.authenticated() && s.state.Identity.EmailOrUsername == emailOrUsername && !stagedForCaller {
		log.Debug("registration already confirmed", slog.String("email_or_username", emailOrUsername))
		return cloneIdentity(*s.state.Identity), nil
	}

	// 2. Code check. The staged record stays put on a mismatch.
	if !s.Verifier.Verify(emailOrUsername, code) {
		log.Warn("confirmation code rejected", slog.String("email_or_username", emailOrUsername))
		return domain.Identity{}, ErrInvalidCode
	}

	// 3. Materialize, falling back to the confirming address.
	displayName := localPart(emailOrUsername)
	if stagedForCaller && pending.DisplayName != "" {
		displayName = pending.DisplayName
	}

	identity := newIdentity(emailOrUsername, displayName)
	if err := s.persist(ctx, domain.SessionState{Identity: &identity, IsAuthenticated: true}); err != nil {
		return domain.Identity{}, err
	}

	if err := s.Store.Delete(ctx, store.KeyPendingRegistration); err != nil {
		log.Error("failed to clear staged registration", slog.Any("error", err))
		return domain.Identity{}, fmt.Errorf("clear staged registration: %w", err)
	}

	log.Info("registration confirmed", slog.String("identity_id", identity.ID))
	return cloneIdentity(identity), nil
}

// SignIn accepts any non-empty pair. Every call mints a new identity id.
func (s *SessionService) SignIn(ctx context.Context, emailOrUsername, secret string) (domain.Identity, error) {
	if err := simulateLatency(ctx, s.Latency); err != nil {
		return domain.Identity{}, err
	}

	emailOrUsername = strings.TrimSpace(emailOrUsername)
	if emailOrUsername == "" || secret == "" {
		return domain.Identity{}, ErrInvalidCredentials
	}

	identity := newIdentity(emailOrUsername, localPart(emailOrUsername))

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, domain.SessionState{Identity: &identity, IsAuthenticated: true}); err != nil {
		return domain.Identity{}, err
	}

	slogx.FromContext(ctx).Info("signed in", slog.String("identity_id", identity.ID))
	return cloneIdentity(identity), nil
}

func (s *SessionService) SignOut(ctx context.Context) error {
	if err := simulateLatency(ctx, s.Latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist(ctx, domain.SessionState{})
}

// CurrentIdentity returns the signed-in identity or ErrNotAuthenticated.
func (s *SessionService) CurrentIdentity(ctx context.Context) (domain.Identity, error) {
	if err := simulateLatency(ctx, s.Latency); err != nil {
		return domain.Identity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticated() {
		return domain.Identity{}, ErrNotAuthenticated
	}
	return cloneIdentity(*s.state.Identity), nil
}

// CurrentAttributes returns the profile attributes of the signed-in
// identity: sub, email and name plus anything stored alongside.
func (s *SessionService) CurrentAttributes(ctx context.Context) (map[string]string, error) {
	identity, err := s.CurrentIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return IdentityAttributes(identity), nil
}

// IdentityAttributes builds the attribute map for an identity the caller
// already holds.
func IdentityAttributes(identity domain.Identity) map[string]string {
	attrs := make(map[string]string, len(identity.Attributes)+3)
	maps.Copy(attrs, identity.Attributes)
	attrs["sub"] = identity.ID
	attrs["email"] = identity.EmailOrUsername
	attrs["name"] = identity.DisplayName
	return attrs
}

// Reset drops the session and any staged registration.
func (s *SessionService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, domain.SessionState{}); err != nil {
		return err
	}
	return s.Store.Delete(ctx, store.KeyPendingRegistration)
}

func (s *SessionService) authenticated() bool {
	return s.state.IsAuthenticated && s.state.Identity != nil
}

// persist must be called with mu held.
func (s *SessionService) persist(ctx context.Context, next domain.SessionState) error {
	if err := store.WriteValue(ctx, s.Store, store.KeySessionState, next); err != nil {
		slogx.FromContext(ctx).Error("failed to persist session state", slog.Any("error", err))
		return err
	}
	s.state = next
	return nil
}

func newIdentity(emailOrUsername, displayName string) domain.Identity {
	id := idx.Alnum(identityIDLength)
	return domain.Identity{
		ID:              id,
		GeneratedID:     id,
		EmailOrUsername: emailOrUsername,
		DisplayName:     displayName,
		Attributes:      map[string]string{"sub": id},
	}
}

func cloneIdentity(i domain.Identity) domain.Identity {
	i.Attributes = maps.Clone(i.Attributes)
	return i
}

func localPart(emailOrUsername string) string {
	name, _, _ := strings.Cut(emailOrUsername, "@")
	return name
}
