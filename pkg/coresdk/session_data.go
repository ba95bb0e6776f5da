package coresdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ListRecords lists a collection. Non-empty filter values are exact-match
// query parameters.
func (s *Session) ListRecords(ctx context.Context, kind string, filter map[string]string) ([]Record, error) {
	path := "/v1/collections/" + url.PathEscape(kind)
	if len(filter) > 0 {
		q := url.Values{}
		for k, v := range filter {
			q.Set(k, v)
		}
		path += "?" + q.Encode()
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (s *Session) CreateRecord(ctx context.Context, kind string, fields map[string]any) (Record, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/collections/"+url.PathEscape(kind), fields)
	if err != nil {
		return nil, err
	}

	var out Record
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetRecord(ctx context.Context, kind, id string) (Record, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, recordPath(kind, id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out Record
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateRecord merges patch into the record. A missing id is answered with
// the merge result and nothing is stored.
func (s *Session) UpdateRecord(ctx context.Context, kind, id string, patch map[string]any) (Record, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPatch, recordPath(kind, id), patch)
	if err != nil {
		return nil, err
	}

	var out Record
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) DeleteRecord(ctx context.Context, kind, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, recordPath(kind, id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// GraphQL runs a document through the mock dispatcher.
func (s *Session) GraphQL(ctx context.Context, req GraphQLRequest) (*GraphQLResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/graphql", req)
	if err != nil {
		return nil, err
	}

	var out GraphQLResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) PutObject(ctx context.Context, key, contentType string, data []byte) (*ObjectResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/storage/"+key, bytes.NewReader(data),
		map[string]string{"Content-Type": contentType},
	)
	if err != nil {
		return nil, err
	}

	var out ObjectResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetObject returns the object's bytes and content type.
func (s *Session) GetObject(ctx context.Context, key string) ([]byte, string, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/storage/"+key, nil, nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", parseErrorResponse(resp, body)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// ObjectURL returns a data: URL for the object.
func (s *Session) ObjectURL(ctx context.Context, key string) (string, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/storage/"+key+"?url=true", nil, nil)
	if err != nil {
		return "", err
	}

	var out ObjectURLResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (s *Session) DeleteObject(ctx context.Context, key string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/storage/"+key, nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/storage?prefix="+url.QueryEscape(prefix), nil, nil)
	if err != nil {
		return nil, err
	}

	var out ObjectListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Keys, nil
}

func recordPath(kind, id string) string {
	return "/v1/collections/" + url.PathEscape(kind) + "/" + url.PathEscape(id)
}
