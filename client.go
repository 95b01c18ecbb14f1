package client

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

type client struct {
	restyClient       *resty.Client
	config            Config
	baseURL           string
	viewBaseURL       string
	logger            zerolog.Logger
	processingTimeout time.Duration

	// Explicit option values; zero means fall back to Config.
	timeout  time.Duration
	debug    bool
	debugSet bool
}

var _ Client = (*client)(nil)

type Option func(*client)

func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithTimeout overrides Config.Timeout. It applies to whichever resty or
// http client ends up in use, regardless of option order.
func WithTimeout(timeout time.Duration) Option {
	return func(c *client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRestyClient allows callers to provide a preconfigured API client.
func WithRestyClient(restyClient *resty.Client) Option {
	return func(c *client) {
		if restyClient != nil {
			c.restyClient = restyClient
		}
	}
}

// WithHTTPClient builds the API client on top of an existing http.Client.
// Config.Timeout, or WithTimeout, still applies to it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		if httpClient != nil {
			c.restyClient = newDefaultAPIClient(httpClient)
		}
	}
}

// WithLogger sets the logger used for request logs and resty's own messages.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *client) {
		c.logger = logger
	}
}

// WithDebugLogging overrides Config.Debug. When enabled every call logs its
// parameters and response body at debug level, with the token redacted.
func WithDebugLogging(enabled bool) Option {
	return func(c *client) {
		c.debug = enabled
		c.debugSet = true
	}
}

// WithProcessingTimeout bounds WaitForDocument when the context has no deadline.
func WithProcessingTimeout(timeout time.Duration) Option {
	return func(c *client) {
		if timeout > 0 {
			c.processingTimeout = timeout
		}
	}
}

// NewClient builds a client from cfg. Options override its BaseURL, Timeout
// and Debug values; transport options keep the config's Timeout and Debug.
func NewClient(cfg Config, opts ...Option) Client {
	c := &client{
		restyClient:       newDefaultAPIClient(nil),
		config:            cfg,
		baseURL:           DefaultBaseURL,
		logger:            zerolog.Nop(),
		processingTimeout: ProcessingTimeout,
	}

	WithBaseURL(cfg.BaseURL)(c)
	for _, opt := range opts {
		opt(c)
	}

	if c.restyClient == nil {
		c.restyClient = newDefaultAPIClient(nil)
	}

	if c.timeout == 0 {
		c.timeout = cfg.Timeout
	}
	if c.timeout > 0 {
		c.restyClient.SetTimeout(c.timeout)
	}
	if !c.debugSet {
		c.debug = cfg.Debug
	}

	c.restyClient.
		SetBaseURL(c.baseURL).
		SetLogger(restyLogger{log: c.logger})
	c.viewBaseURL = viewBaseURL(c.baseURL)

	return c
}

// Name returns the service name.
func (c *client) Name() string {
	return ServiceName
}

// Version returns the API version.
func (c *client) Version() string {
	return APIVersion
}

func newDefaultAPIClient(httpClient *http.Client) *resty.Client {
	var rc *resty.Client
	if httpClient != nil {
		rc = resty.NewWithClient(httpClient)
	} else {
		rc = resty.New().SetTimeout(DefaultTimeout)
	}
	return rc.SetHeader("Accept", "application/json")
}

// viewBaseURL derives https://<host>/view/ from the API base URL.
func viewBaseURL(baseURL string) string {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return "https://" + DefaultHost + viewPath
	}
	return parsed.Scheme + "://" + parsed.Host + viewPath
}
