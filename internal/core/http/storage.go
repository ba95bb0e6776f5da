package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/service"
	"github.com/aussiebroadwan/localcore/pkg/coresdk"
	"github.com/aussiebroadwan/localcore/pkg/httpx"
)

// maxObjectSize caps uploads to the mock storage.
const maxObjectSize = 10 << 20

type StorageHandler struct {
	Storage *service.ObjectStorage
}

// HandlePut godoc
//
//	@Summary		Upload object
//	@Description	Stores the request body under key with the request's Content-Type.
//	@Tags			Storage
//	@Accept			*/*
//	@Produce		json
//	@Security		BearerAuth
//	@Param			key	path		string					true	"object key"
//	@Success		200	{object}	coresdk.ObjectResponse	"key, content_type, size"
//	@Failure		400	{object}	httpx.ErrorResponse		"invalid_request"
//	@Failure		413	{object}	httpx.ErrorResponse		"invalid_request"
//	@Router			/v1/storage/{key} [put].
func (h *StorageHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxObjectSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteError(w, http.StatusRequestEntityTooLarge, "invalid_request", "Object too large")
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Failed to read body")
		return
	}

	obj, err := h.Storage.Put(r.Context(), r.PathValue("key"), r.Header.Get("Content-Type"), data)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toObjectResponse(obj))
}

// HandleGet godoc
//
//	@Summary		Download object
//	@Description	Returns the raw object, or a data: URL for it with ?url=true.
//	@Tags			Storage
//	@Produce		*/*
//	@Security		BearerAuth
//	@Param			key	path		string						true	"object key"
//	@Param			url	query		bool						false	"return a data: URL instead"
//	@Success		200	{object}	coresdk.ObjectURLResponse	"with ?url=true"
//	@Failure		404	{object}	httpx.ErrorResponse			"not_found"
//	@Router			/v1/storage/{key} [get].
func (h *StorageHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := r.PathValue("key")

	if asURL, _ := strconv.ParseBool(r.URL.Query().Get("url")); asURL {
		u, err := h.Storage.URL(ctx, key)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, coresdk.ObjectURLResponse{URL: u})
		return
	}

	obj, err := h.Storage.Get(ctx, key)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", obj.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(obj.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(obj.Data)
}

// HandleDelete godoc
//
//	@Summary	Delete object
//	@Tags		Storage
//	@Security	BearerAuth
//	@Param		key	path	string	true	"object key"
//	@Success	204
//	@Router		/v1/storage/{key} [delete].
func (h *StorageHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Storage.Remove(r.Context(), r.PathValue("key")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleList godoc
//
//	@Summary	List object keys
//	@Tags		Storage
//	@Produce	json
//	@Security	BearerAuth
//	@Param		prefix	query		string						false	"key prefix"
//	@Success	200		{object}	coresdk.ObjectListResponse	"keys"
//	@Router		/v1/storage [get].
func (h *StorageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	keys, err := h.Storage.List(r.Context(), r.URL.Query().Get("prefix"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, coresdk.ObjectListResponse{Keys: keys})
}

func toObjectResponse(o domain.Object) coresdk.ObjectResponse {
	return coresdk.ObjectResponse{
		Key:         o.Key,
		ContentType: o.ContentType,
		Size:        o.Size,
		UploadedAt:  o.UploadedAt,
	}
}
