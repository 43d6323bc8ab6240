package accounting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-freshbooks/core"
)

// Descriptor is the per-resource wiring: the REST sub-path, the wrapper keys
// the service nests payloads under, and how deletion is expressed. Whether a
// resource deletes via vis_state or a DELETE verb is service-defined
// per entity kind; it is data here, never inferred.
type Descriptor struct {
	SubPath         string
	SingleKey       string
	ListKey         string
	DeleteViaUpdate bool
}

// Resource exposes get/list/create/update/delete over one REST sub-path,
// decoding wrapper envelopes into T. It holds non-owning references to the
// shared session and transport; construction is cheap and per-call.
type Resource[T any] struct {
	session   *core.Session
	transport core.Transport
	desc      Descriptor
}

func NewResource[T any](session *core.Session, tp core.Transport, desc Descriptor) *Resource[T] {
	return &Resource[T]{
		session:   session,
		transport: tp,
		desc:      desc,
	}
}

type ListOptions struct {
	Page    int
	PerPage int
	Filters map[string]string
}

// List is a page of entities plus the service's pagination metadata.
// Rebuilt on every call; an empty Items with Total zero is a valid result.
type List[T any] struct {
	Items   []T
	Page    int
	Pages   int
	PerPage int
	Total   int
}

func (r *Resource[T]) Get(ctx context.Context, businessID string, entityID string) (T, error) {
	var zero T
	if err := r.requireCall(businessID); err != nil {
		return zero, err
	}
	if strings.TrimSpace(entityID) == "" {
		return zero, core.ConfigurationError("accounting: entity id is required")
	}

	res, err := r.transport.Do(ctx, core.TransportRequest{
		Method: http.MethodGet,
		URL:    r.entityURL(businessID, entityID),
	})
	if err != nil {
		return zero, err
	}
	if err := r.checkStatus(res); err != nil {
		return zero, err
	}
	return decodeEntity[T](res.Body, r.desc.SingleKey)
}

func (r *Resource[T]) List(ctx context.Context, businessID string, opts ListOptions) (List[T], error) {
	if err := r.requireCall(businessID); err != nil {
		return List[T]{}, err
	}

	query := map[string]string{}
	for key, value := range opts.Filters {
		if strings.TrimSpace(key) == "" {
			continue
		}
		query[strings.TrimSpace(key)] = value
	}
	if opts.Page > 0 {
		query["page"] = strconv.Itoa(opts.Page)
	}
	if opts.PerPage > 0 {
		query["per_page"] = strconv.Itoa(opts.PerPage)
	}

	res, err := r.transport.Do(ctx, core.TransportRequest{
		Method: http.MethodGet,
		URL:    r.collectionURL(businessID),
		Query:  query,
	})
	if err != nil {
		return List[T]{}, err
	}
	if err := r.checkStatus(res); err != nil {
		return List[T]{}, err
	}
	return decodeList[T](res.Body, r.desc.ListKey)
}

func (r *Resource[T]) Create(ctx context.Context, businessID string, payload any) (T, error) {
	var zero T
	if err := r.requireCall(businessID); err != nil {
		return zero, err
	}
	body, err := wrapPayload(r.desc.SingleKey, payload)
	if err != nil {
		return zero, err
	}

	res, err := r.transport.Do(ctx, core.TransportRequest{
		Method:  http.MethodPost,
		URL:     r.collectionURL(businessID),
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	})
	if err != nil {
		return zero, err
	}
	if err := r.checkStatus(res); err != nil {
		return zero, err
	}
	return decodeEntity[T](res.Body, r.desc.SingleKey)
}

func (r *Resource[T]) Update(ctx context.Context, businessID string, entityID string, payload any) (T, error) {
	var zero T
	if err := r.requireCall(businessID); err != nil {
		return zero, err
	}
	if strings.TrimSpace(entityID) == "" {
		return zero, core.ConfigurationError("accounting: entity id is required")
	}
	body, err := wrapPayload(r.desc.SingleKey, payload)
	if err != nil {
		return zero, err
	}

	res, err := r.transport.Do(ctx, core.TransportRequest{
		Method:  http.MethodPut,
		URL:     r.entityURL(businessID, entityID),
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	})
	if err != nil {
		return zero, err
	}
	if err := r.checkStatus(res); err != nil {
		return zero, err
	}
	return decodeEntity[T](res.Body, r.desc.SingleKey)
}

// Delete removes the entity, either as a vis_state transition expressed
// through Update or as a genuine DELETE verb, per the descriptor. Deleting
// an already-deleted entity answers 2xx upstream and stays a no-op here.
func (r *Resource[T]) Delete(ctx context.Context, businessID string, entityID string) error {
	if r.desc.DeleteViaUpdate {
		_, err := r.Update(ctx, businessID, entityID, map[string]any{"vis_state": VisStateDeleted})
		return err
	}

	if err := r.requireCall(businessID); err != nil {
		return err
	}
	if strings.TrimSpace(entityID) == "" {
		return core.ConfigurationError("accounting: entity id is required")
	}
	res, err := r.transport.Do(ctx, core.TransportRequest{
		Method: http.MethodDelete,
		URL:    r.entityURL(businessID, entityID),
	})
	if err != nil {
		return err
	}
	return r.checkStatus(res)
}

func (r *Resource[T]) requireCall(businessID string) error {
	if r == nil || r.session == nil || r.transport == nil {
		return core.ConfigurationError("accounting: resource requires a session and a transport")
	}
	if strings.TrimSpace(r.session.Snapshot().AccessToken) == "" {
		return core.ConfigurationError("accounting: access token is required before resource calls")
	}
	if strings.TrimSpace(businessID) == "" {
		return core.ConfigurationError("accounting: business id is required")
	}
	return nil
}

func (r *Resource[T]) collectionURL(businessID string) string {
	base := r.session.Snapshot().APIBaseURL
	return base + "/" + strings.Trim(r.desc.SubPath, "/") + "/" + url.PathEscape(strings.TrimSpace(businessID))
}

func (r *Resource[T]) entityURL(businessID string, entityID string) string {
	return r.collectionURL(businessID) + "/" + url.PathEscape(strings.TrimSpace(entityID))
}

func (r *Resource[T]) checkStatus(res core.TransportResponse) error {
	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	if res.StatusCode == http.StatusNotFound {
		return core.NotFoundError(fmt.Sprintf("accounting: %s not found", r.desc.SingleKey))
	}

	message, fields := decodeServiceError(res.Body)
	if message == "" {
		message = "unknown error"
	}
	if res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError && len(fields) > 0 {
		return core.ValidationError(
			fmt.Sprintf("accounting: %s rejected: %s", r.desc.SingleKey, message),
			res.StatusCode,
			fields...,
		)
	}
	return core.APIError(
		fmt.Sprintf("accounting: %s request failed (status=%d): %s", r.desc.SingleKey, res.StatusCode, message),
		res.StatusCode,
	)
}

// decodeServiceError pulls the service's message and field-level errors out
// of an error body: {"message": "...", "errors": [{"field", "message"}, ...]}.
func decodeServiceError(body []byte) (string, []goerrors.FieldError) {
	payload := struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", nil
	}
	fields := make([]goerrors.FieldError, 0, len(payload.Errors))
	for _, item := range payload.Errors {
		if strings.TrimSpace(item.Field) == "" && strings.TrimSpace(item.Message) == "" {
			continue
		}
		fields = append(fields, goerrors.FieldError{
			Field:   strings.TrimSpace(item.Field),
			Message: strings.TrimSpace(item.Message),
		})
	}
	return strings.TrimSpace(payload.Message), fields
}

func wrapPayload(key string, payload any) ([]byte, error) {
	body, err := json.Marshal(map[string]any{key: payload})
	if err != nil {
		return nil, core.DecodeError("accounting: encode request payload", err)
	}
	return body, nil
}

// decodeEntity unwraps the single-entity envelope. A missing wrapper key and
// a null wrapper are both unexpected shapes; genuine absence surfaces as a
// 404 long before decoding.
func decodeEntity[T any](body []byte, key string) (T, error) {
	var zero T
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return zero, core.DecodeError("accounting: decode response envelope", err)
	}
	raw, ok := envelope[key]
	if !ok {
		return zero, core.DecodeError(fmt.Sprintf("accounting: response is missing the %q wrapper", key), nil)
	}
	if string(bytes.TrimSpace(raw)) == "null" {
		return zero, core.DecodeError(fmt.Sprintf("accounting: response wrapper %q is null", key), nil)
	}
	var entity T
	if err := json.Unmarshal(raw, &entity); err != nil {
		return zero, core.DecodeError(fmt.Sprintf("accounting: decode %q record", key), err)
	}
	return entity, nil
}

func decodeList[T any](body []byte, key string) (List[T], error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return List[T]{}, core.DecodeError("accounting: decode list envelope", err)
	}
	raw, ok := envelope[key]
	if !ok {
		return List[T]{}, core.DecodeError(fmt.Sprintf("accounting: list response is missing the %q wrapper", key), nil)
	}
	if string(bytes.TrimSpace(raw)) == "null" {
		return List[T]{}, core.DecodeError(fmt.Sprintf("accounting: list wrapper %q is null", key), nil)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return List[T]{}, core.DecodeError(fmt.Sprintf("accounting: decode %q records", key), err)
	}
	meta := struct {
		Page    int `json:"page"`
		Pages   int `json:"pages"`
		PerPage int `json:"per_page"`
		Total   int `json:"total"`
	}{}
	if err := json.Unmarshal(body, &meta); err != nil {
		return List[T]{}, core.DecodeError("accounting: decode pagination metadata", err)
	}
	return List[T]{
		Items:   items,
		Page:    meta.Page,
		Pages:   meta.Pages,
		PerPage: meta.PerPage,
		Total:   meta.Total,
	}, nil
}
