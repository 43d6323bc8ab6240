package freshbooks

import (
	"context"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-freshbooks/accounting"
	"github.com/goliatone/go-freshbooks/auth"
	"github.com/goliatone/go-freshbooks/core"
	"github.com/goliatone/go-freshbooks/transport"
)

// Client owns the configuration session and the shared transport, and acts
// as a factory for the auth flow and the per-entity resource accessors.
// Accessors are built fresh on every call and hold non-owning references.
type Client struct {
	session   *core.Session
	transport core.Transport
	logger    core.Logger
}

func New(cfg Config, opts ...Option) (*Client, error) {
	builder := defaultClientBuilder()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("freshbooks", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("freshbooks"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.configProvider == nil {
		builder.configProvider = core.NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = core.LayeredResolver{}
	}

	defaults := core.DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, err
	}
	resolved, err := builder.optionsResolver.Resolve(defaults, loaded, cfg)
	if err != nil {
		return nil, err
	}

	session := core.NewSession(resolved)
	tp := builder.transport
	if tp == nil {
		rest := transport.NewREST(builder.httpClient)
		rest.Logger = logger
		rest.BearerSource = session.BearerToken
		tp = rest
	}

	return &Client{
		session:   session,
		transport: tp,
		logger:    logger,
	}, nil
}

// Session exposes the live configuration snapshot holder, mostly so callers
// can persist refreshed tokens between runs.
func (c *Client) Session() *core.Session {
	if c == nil {
		return nil
	}
	return c.session
}

func (c *Client) Auth() *auth.Flow {
	return auth.NewFlow(auth.Config{
		Session:   c.session,
		Transport: c.transport,
	})
}

// CurrentIdentity fetches the authenticated user behind the current token.
func (c *Client) CurrentIdentity(ctx context.Context) (Identity, error) {
	return c.Auth().CurrentIdentity(ctx)
}

func (c *Client) Clients() *accounting.Resource[accounting.Client] {
	return accounting.Clients(c.session, c.transport)
}

func (c *Client) Invoices() *accounting.Resource[accounting.Invoice] {
	return accounting.Invoices(c.session, c.transport)
}

func (c *Client) Expenses() *accounting.Resource[accounting.Expense] {
	return accounting.Expenses(c.session, c.transport)
}

func (c *Client) Payments() *accounting.Resource[accounting.Payment] {
	return accounting.Payments(c.session, c.transport)
}

func (c *Client) Taxes() *accounting.Resource[accounting.Tax] {
	return accounting.Taxes(c.session, c.transport)
}
