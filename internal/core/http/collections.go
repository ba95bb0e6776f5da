package http

import (
	"net/http"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/service"
	"github.com/aussiebroadwan/localcore/pkg/httpx"
)

type CollectionsHandler struct {
	Collections map[domain.Kind]*service.Collection
}

// collection resolves {kind} or writes a 404.
func (h *CollectionsHandler) collection(w http.ResponseWriter, r *http.Request) (*service.Collection, bool) {
	kind, ok := domain.ParseKind(r.PathValue("kind"))
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Unknown collection")
		return nil, false
	}
	c, ok := h.Collections[kind]
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Unknown collection")
		return nil, false
	}
	return c, true
}

// HandleList godoc
//
//	@Summary		List records
//	@Description	Lists a collection. Query parameters filter by exact string match.
//	@Tags			Collections
//	@Produce		json
//	@Security		BearerAuth
//	@Param			kind	path		string					true	"users, conversations, messages or portfolio"
//	@Success		200		{object}	coresdk.ListResponse	"items"
//	@Failure		404		{object}	httpx.ErrorResponse		"not_found"
//	@Router			/v1/collections/{kind} [get].
func (h *CollectionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	c, ok := h.collection(w, r)
	if !ok {
		return
	}

	filter := domain.Fields{}
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			filter[k] = vs[0]
		}
	}

	items, err := c.Filter(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

// HandleCreate godoc
//
//	@Summary	Create record
//	@Tags		Collections
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		kind	path		string				true	"collection"
//	@Success	201		{object}	coresdk.Record		"stored record"
//	@Failure	400		{object}	httpx.ErrorResponse	"invalid_request"
//	@Router		/v1/collections/{kind} [post].
func (h *CollectionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	c, ok := h.collection(w, r)
	if !ok {
		return
	}

	var fields domain.Fields
	if err := httpx.DecodeJSON(r, &fields); err != nil || fields == nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Body must be a JSON object")
		return
	}

	rec, err := c.Create(r.Context(), fields)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, rec)
}

// HandleGet godoc
//
//	@Summary	Get record
//	@Tags		Collections
//	@Produce	json
//	@Security	BearerAuth
//	@Param		kind	path		string				true	"collection"
//	@Param		id		path		string				true	"record id"
//	@Success	200		{object}	coresdk.Record		"record"
//	@Failure	404		{object}	httpx.ErrorResponse	"not_found"
//	@Router		/v1/collections/{kind}/{id} [get].
func (h *CollectionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, ok := h.collection(w, r)
	if !ok {
		return
	}

	rec, err := c.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rec)
}

// HandleUpdate godoc
//
//	@Summary		Update record
//	@Description	Shallow merge. An unknown id is answered with the merge result and nothing is stored.
//	@Tags			Collections
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			kind	path		string				true	"collection"
//	@Param			id		path		string				true	"record id"
//	@Success		200		{object}	coresdk.Record		"merged record"
//	@Failure		400		{object}	httpx.ErrorResponse	"invalid_request"
//	@Router			/v1/collections/{kind}/{id} [patch].
func (h *CollectionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	c, ok := h.collection(w, r)
	if !ok {
		return
	}

	var patch domain.Fields
	if err := httpx.DecodeJSON(r, &patch); err != nil || patch == nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Body must be a JSON object")
		return
	}

	rec, err := c.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rec)
}

// HandleDelete godoc
//
//	@Summary	Delete record
//	@Tags		Collections
//	@Security	BearerAuth
//	@Param		kind	path	string	true	"collection"
//	@Param		id		path	string	true	"record id"
//	@Success	204
//	@Router		/v1/collections/{kind}/{id} [delete].
func (h *CollectionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	c, ok := h.collection(w, r)
	if !ok {
		return
	}

	if err := c.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
