package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// requestBuilder attaches params to a request in the encoding its verb expects.
type requestBuilder func(req *resty.Request, params Params) *resty.Request

var requestBuilders = map[Method]requestBuilder{
	MethodGet:  formatGet,
	MethodPost: formatPost,
}

func formatGet(req *resty.Request, params Params) *resty.Request {
	return req.SetQueryParams(params.Strings())
}

func formatPost(req *resty.Request, params Params) *resty.Request {
	return req.SetFormData(params.Strings())
}

// withToken merges the configured token into params under the configured name.
func (c *client) withToken(params Params) Params {
	return params.Merge(Params{c.config.TokenParamName(): c.config.Token})
}

// call sends one request to endpoint and returns the raw body of a 200 response.
// Any other status becomes an *HTTPError carrying the code and body.
func (c *client) call(ctx context.Context, method Method, endpoint string, operation Operation, params Params) ([]byte, error) {
	build, ok := requestBuilders[method]
	if !ok {
		return nil, fmt.Errorf("%s: unsupported method %q", operation, method)
	}

	signed := c.withToken(params)
	req := build(c.restyClient.R().SetContext(ctx), signed)

	start := time.Now()
	resp, err := req.Execute(string(method), endpoint)
	elapsed := time.Since(start)
	requestDuration.WithLabelValues(string(operation)).Observe(elapsed.Seconds())

	if err != nil {
		err = c.redactURLError(err)
		requestsTotal.WithLabelValues(string(operation), "0").Inc()
		c.logger.Debug().Err(err).
			Str("method", string(method)).
			Str("endpoint", endpoint).
			Dur("elapsed", elapsed).
			Msg("crocodoc request failed")
		return nil, errRequest(operation, err)
	}

	code := resp.StatusCode()
	requestsTotal.WithLabelValues(string(operation), strconv.Itoa(code)).Inc()
	c.logger.Debug().
		Str("method", string(method)).
		Str("endpoint", endpoint).
		Int("status", code).
		Dur("elapsed", elapsed).
		Msg("crocodoc request")

	if c.debug {
		c.logger.Debug().
			Str("method", string(method)).
			Str("endpoint", endpoint).
			Str("params", c.redact(signed).Encode()).
			Int("status", code).
			Bytes("body", resp.Body()).
			Msg("crocodoc request dump")
	}

	if code != http.StatusOK {
		return nil, errStatus(operation, code, resp.Body())
	}

	return resp.Body(), nil
}

// redact masks the token so params can be logged.
func (c *client) redact(params Params) Params {
	return params.Merge(Params{c.config.TokenParamName(): redactedValue})
}

// redactURLError masks the token in the request URL that *url.Error prints.
func (c *client) redactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	parsed, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		return err
	}
	query := parsed.Query()
	if query.Has(c.config.TokenParamName()) {
		query.Set(c.config.TokenParamName(), redactedValue)
		parsed.RawQuery = query.Encode()
		urlErr.URL = parsed.String()
	}
	return err
}
