package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/service"
	"github.com/aussiebroadwan/localcore/pkg/coresdk"
	"github.com/aussiebroadwan/localcore/pkg/httpx"
	"github.com/aussiebroadwan/localcore/pkg/jwtx"
	"github.com/aussiebroadwan/localcore/pkg/slogx"
)

type SessionHandler struct {
	SessionService *service.SessionService
	Issuer         *jwtx.Issuer
}

// HandleRegister godoc
//
//	@Summary		Begin registration
//	@Description	Stage a registration. The confirmation code is never actually sent.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		coresdk.RegisterRequest		true	"Registration"
//	@Success		202		{object}	coresdk.DeliveryResponse	"medium, destination"
//	@Failure		400		{object}	httpx.ErrorResponse			"error, error_description"
//	@Router			/v1/session/register [post].
func (h *SessionHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req coresdk.RegisterRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	d, err := h.SessionService.BeginRegistration(r.Context(), req.EmailOrUsername, req.Secret, req.DisplayName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, coresdk.DeliveryResponse{
		Medium:      d.Medium,
		Destination: d.Destination,
	})
}

// HandleConfirm godoc
//
//	@Summary		Confirm registration
//	@Description	Confirm a staged registration and sign in. Confirming twice succeeds.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		coresdk.ConfirmRequest		true	"Confirmation"
//	@Success		200		{object}	coresdk.SessionResponse		"identity, id_token"
//	@Failure		400		{object}	httpx.ErrorResponse			"invalid_code"
//	@Router			/v1/session/confirm [post].
func (h *SessionHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req coresdk.ConfirmRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	identity, err := h.SessionService.ConfirmRegistration(r.Context(), req.EmailOrUsername, req.Code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeSession(w, r, identity)
}

// HandleSignIn godoc
//
//	@Summary		Sign in
//	@Description	Any non-empty pair signs in. Each call yields a new identity id.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		coresdk.SignInRequest		true	"Credentials"
//	@Success		200		{object}	coresdk.SessionResponse		"identity, id_token"
//	@Failure		400		{object}	httpx.ErrorResponse			"invalid_credentials"
//	@Router			/v1/session/signin [post].
func (h *SessionHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req coresdk.SignInRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	identity, err := h.SessionService.SignIn(r.Context(), req.EmailOrUsername, req.Secret)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeSession(w, r, identity)
}

// HandleSignOut godoc
//
//	@Summary	Sign out
//	@Tags		Session
//	@Success	204
//	@Router		/v1/session/signout [post].
func (h *SessionHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionService.SignOut(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe godoc
//
//	@Summary	Current identity
//	@Tags		Session
//	@Produce	json
//	@Success	200	{object}	coresdk.Identity	"identity with attributes"
//	@Failure	401	{object}	httpx.ErrorResponse	"not_authenticated"
//	@Router		/v1/session/me [get].
func (h *SessionHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity, err := h.SessionService.CurrentIdentity(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := toIdentity(identity)
	out.Attributes = service.IdentityAttributes(identity)
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *SessionHandler) writeSession(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	token, err := h.Issuer.Issue(identity.ID, identity.EmailOrUsername, identity.DisplayName)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to issue id token", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to issue token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, coresdk.SessionResponse{
		Identity:  toIdentity(identity),
		IDToken:   token,
		TokenType: "Bearer",
		ExpiresIn: int(h.Issuer.TTL().Seconds()),
	})
}

func toIdentity(i domain.Identity) coresdk.Identity {
	return coresdk.Identity{
		ID:              i.ID,
		GeneratedID:     i.GeneratedID,
		EmailOrUsername: i.EmailOrUsername,
		DisplayName:     i.DisplayName,
		Attributes:      i.Attributes,
	}
}
