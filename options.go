package freshbooks

import (
	"github.com/goliatone/go-freshbooks/core"
	"github.com/goliatone/go-freshbooks/transport"
)

type Option func(*clientBuilder)

type clientBuilder struct {
	logger          core.Logger
	loggerProvider  core.LoggerProvider
	httpClient      transport.HTTPDoer
	transport       core.Transport
	configProvider  core.ConfigProvider
	optionsResolver core.OptionsResolver
}

func defaultClientBuilder() clientBuilder {
	return clientBuilder{
		configProvider:  core.NewCfgxConfigProvider(nil),
		optionsResolver: core.LayeredResolver{},
	}
}

func WithLogger(logger core.Logger) Option {
	return func(b *clientBuilder) {
		b.logger = logger
	}
}

func WithLoggerProvider(provider core.LoggerProvider) Option {
	return func(b *clientBuilder) {
		b.loggerProvider = provider
	}
}

// WithHTTPClient swaps the HTTP client the default REST transport wraps.
func WithHTTPClient(client transport.HTTPDoer) Option {
	return func(b *clientBuilder) {
		b.httpClient = client
	}
}

// WithTransport replaces the transport entirely; WithHTTPClient is ignored
// when one is set.
func WithTransport(tp core.Transport) Option {
	return func(b *clientBuilder) {
		b.transport = tp
	}
}

func WithConfigProvider(provider core.ConfigProvider) Option {
	return func(b *clientBuilder) {
		b.configProvider = provider
	}
}

// WithConfigLoader loads raw configuration values (env, file) into the
// default cfgx provider.
func WithConfigLoader(loader core.RawConfigLoader) Option {
	return func(b *clientBuilder) {
		b.configProvider = core.NewCfgxConfigProvider(loader)
	}
}

func WithOptionsResolver(resolver core.OptionsResolver) Option {
	return func(b *clientBuilder) {
		b.optionsResolver = resolver
	}
}
