package devkit

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-freshbooks/core"
)

type TransportScript struct {
	Response core.TransportResponse
	Err      error
}

// FakeTransport replays scripted responses in order and records every
// request it sees. When the script runs out, the last entry repeats.
type FakeTransport struct {
	mu       sync.Mutex
	scripts  []TransportScript
	requests []core.TransportRequest
}

func NewFakeTransport(scripts ...TransportScript) *FakeTransport {
	return &FakeTransport{
		scripts: append([]TransportScript(nil), scripts...),
	}
}

func (t *FakeTransport) Do(_ context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if t == nil {
		return core.TransportResponse{}, fmt.Errorf("devkit: fake transport is nil")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests = append(t.requests, cloneRequest(req))
	index := len(t.requests) - 1
	if index < len(t.scripts) {
		script := t.scripts[index]
		return cloneResponse(script.Response), script.Err
	}
	if len(t.scripts) > 0 {
		last := t.scripts[len(t.scripts)-1]
		return cloneResponse(last.Response), last.Err
	}
	return core.TransportResponse{
		StatusCode: 200,
		Headers:    map[string]string{},
	}, nil
}

func (t *FakeTransport) Requests() []core.TransportRequest {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]core.TransportRequest, 0, len(t.requests))
	for _, item := range t.requests {
		out = append(out, cloneRequest(item))
	}
	return out
}

func cloneRequest(in core.TransportRequest) core.TransportRequest {
	out := core.TransportRequest{
		Method:               in.Method,
		URL:                  in.URL,
		Headers:              map[string]string{},
		Query:                map[string]string{},
		Body:                 append([]byte(nil), in.Body...),
		Timeout:              in.Timeout,
		MaxResponseBodyBytes: in.MaxResponseBodyBytes,
	}
	for key, value := range in.Headers {
		out.Headers[key] = value
	}
	for key, value := range in.Query {
		out.Query[key] = value
	}
	return out
}

func cloneResponse(in core.TransportResponse) core.TransportResponse {
	out := core.TransportResponse{
		StatusCode: in.StatusCode,
		Headers:    map[string]string{},
		Body:       append([]byte(nil), in.Body...),
		Metadata:   map[string]any{},
	}
	for key, value := range in.Headers {
		out.Headers[key] = value
	}
	for key, value := range in.Metadata {
		out.Metadata[key] = value
	}
	return out
}

var _ core.Transport = (*FakeTransport)(nil)
