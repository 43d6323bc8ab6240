package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

// TransportRequest describes one outbound HTTP call. Query entries are
// merged into the URL; Headers override the transport's defaults.
type TransportRequest struct {
	Method               string
	URL                  string
	Headers              map[string]string
	Query                map[string]string
	Body                 []byte
	Timeout              time.Duration
	MaxResponseBodyBytes int64
}

type TransportResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

// Transport issues a single blocking HTTP round trip. Cancellation and
// timeouts are delegated to the context and the underlying HTTP client.
type Transport interface {
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}
