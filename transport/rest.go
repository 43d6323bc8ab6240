package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"

	"github.com/goliatone/go-freshbooks/core"
)

const defaultClientTimeout = 30 * time.Second
const defaultResponseBodyLimit int64 = 10 << 20 // 10 MiB
const requestIDHeader = "X-Request-Id"

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// REST issues JSON round trips against the service. BearerSource is read per
// request, so credentials refreshed mid-session reach every later call
// without rebuilding the adapter.
type REST struct {
	Client               HTTPDoer
	DefaultHeaders       map[string]string
	BearerSource         func() string
	MaxResponseBodyBytes int64
	Logger               core.Logger
}

func NewREST(client HTTPDoer) *REST {
	if client == nil {
		client = &http.Client{Timeout: defaultClientTimeout}
	}
	return &REST{
		Client: client,
		DefaultHeaders: map[string]string{
			"Accept": "application/json",
		},
		MaxResponseBodyBytes: defaultResponseBodyLimit,
		Logger:               glog.Nop(),
	}
}

func (a *REST) Do(ctx context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if a == nil || a.Client == nil {
		return core.TransportResponse{}, transportError(
			"transport: rest adapter requires an http client",
			goerrors.CategoryInternal,
			http.StatusInternalServerError,
			nil,
		)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	method := strings.TrimSpace(strings.ToUpper(req.Method))
	if method == "" {
		method = http.MethodGet
	}
	parsedURL, err := url.Parse(strings.TrimSpace(req.URL))
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: invalid request url",
			http.StatusBadRequest,
			map[string]any{"url": strings.TrimSpace(req.URL)},
		)
	}
	if parsedURL.String() == "" {
		return core.TransportResponse{}, transportError(
			"transport: request url is required",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			nil,
		)
	}

	query := parsedURL.Query()
	for key, value := range req.Query {
		if strings.TrimSpace(key) == "" {
			continue
		}
		query.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	parsedURL.RawQuery = query.Encode()

	requestCtx := ctx
	cancel := func() {}
	if req.Timeout > 0 {
		requestCtx, cancel = context.WithTimeout(ctx, req.Timeout)
	}
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, method, parsedURL.String(), bytes.NewReader(req.Body))
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: create http request",
			http.StatusBadRequest,
			map[string]any{"method": method, "url": parsedURL.String()},
		)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set(requestIDHeader, requestID)
	for key, value := range a.DefaultHeaders {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if a.BearerSource != nil {
		if bearer := strings.TrimSpace(a.BearerSource()); bearer != "" {
			httpReq.Header.Set("Authorization", "Bearer "+bearer)
		}
	}
	for key, value := range req.Headers {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	startedAt := time.Now().UTC()
	httpRes, err := a.Client.Do(httpReq)
	if err != nil {
		a.logResult(ctx, method, parsedURL.String(), 0, requestID, startedAt, err)
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: execute http request",
			http.StatusBadGateway,
			map[string]any{"method": method, "url": parsedURL.String(), "request_id": requestID},
		)
	}
	defer httpRes.Body.Close()

	maxBodyBytes := resolveResponseBodyLimit(req.MaxResponseBodyBytes, a.MaxResponseBodyBytes)
	body, err := io.ReadAll(io.LimitReader(httpRes.Body, maxBodyBytes+1))
	if err != nil {
		a.logResult(ctx, method, parsedURL.String(), httpRes.StatusCode, requestID, startedAt, err)
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: read response body",
			http.StatusBadGateway,
			map[string]any{"status_code": httpRes.StatusCode, "request_id": requestID},
		)
	}
	if int64(len(body)) > maxBodyBytes {
		err := transportError(
			fmt.Sprintf("transport: response body exceeds limit of %d bytes", maxBodyBytes),
			goerrors.CategoryExternal,
			http.StatusBadGateway,
			map[string]any{"status_code": httpRes.StatusCode, "response_limit_b": maxBodyBytes},
		)
		a.logResult(ctx, method, parsedURL.String(), httpRes.StatusCode, requestID, startedAt, err)
		return core.TransportResponse{}, err
	}

	a.logResult(ctx, method, parsedURL.String(), httpRes.StatusCode, requestID, startedAt, nil)
	return core.TransportResponse{
		StatusCode: httpRes.StatusCode,
		Headers:    flattenHeaders(httpRes.Header),
		Body:       body,
		Metadata: map[string]any{
			"duration_ms": time.Since(startedAt).Milliseconds(),
			"request_id":  requestID,
		},
	}, nil
}

func (a *REST) logResult(
	ctx context.Context,
	method string,
	requestURL string,
	status int,
	requestID string,
	startedAt time.Time,
	err error,
) {
	if a == nil || a.Logger == nil {
		return
	}
	logger := a.Logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	fields := map[string]any{
		"method":      method,
		"url":         requestURL,
		"status_code": status,
		"request_id":  requestID,
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	if fieldsLogger, ok := logger.(core.FieldsLogger); ok {
		logger = fieldsLogger.WithFields(cloneFields(fields))
	}
	args := flattenFields(fields)
	if err != nil {
		logger.Error("request failed", args...)
		return
	}
	logger.Info("request completed", args...)
}

func flattenHeaders(headers http.Header) map[string]string {
	if len(headers) == 0 {
		return map[string]string{}
	}
	flat := make(map[string]string, len(headers))
	for key, values := range headers {
		if len(values) == 0 {
			flat[key] = ""
			continue
		}
		flat[key] = strings.Join(values, ",")
	}
	return flat
}

func resolveResponseBodyLimit(requestLimit int64, adapterLimit int64) int64 {
	if requestLimit > 0 {
		return requestLimit
	}
	if adapterLimit > 0 {
		return adapterLimit
	}
	return defaultResponseBodyLimit
}

var _ core.Transport = (*REST)(nil)
