package http

import (
	"net/http"

	"github.com/aussiebroadwan/localcore/internal/core/service"
	"github.com/aussiebroadwan/localcore/pkg/coresdk"
	"github.com/aussiebroadwan/localcore/pkg/httpx"
)

type GraphQLHandler struct {
	Dispatcher *service.Dispatcher
}

// ServeHTTP godoc
//
//	@Summary		Mock GraphQL endpoint
//	@Description	Runs a known operation against the local collections. Selection sets are ignored.
//	@Tags			Data
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		coresdk.GraphQLRequest	true	"query and variables"
//	@Success		200		{object}	coresdk.GraphQLResponse	"data keyed by operation"
//	@Failure		400		{object}	httpx.ErrorResponse		"unsupported_operation, invalid_request"
//	@Failure		401		{object}	httpx.ErrorResponse		"not_authenticated"
//	@Router			/v1/graphql [post].
func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req coresdk.GraphQLRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	resp, err := h.Dispatcher.DispatchDocument(r.Context(), req.Query, req.Variables)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, coresdk.GraphQLResponse{Data: resp.Data})
}
