package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/monzoclient/internal/common"
	"github.com/dmitrijs2005/monzoclient/internal/jsonx"
	"github.com/dmitrijs2005/monzoclient/internal/logging"
	"github.com/google/uuid"
)

// HTTPProvider talks to the API over HTTP with a bearer access token.
type HTTPProvider struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      logging.Logger
}

// NewHTTPProvider creates a provider for baseURL (e.g. https://api.monzo.com).
func NewHTTPProvider(baseURL, accessToken string, timeout time.Duration, logger logging.Logger) *HTTPProvider {
	return &HTTPProvider{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// Request executes route and returns its payload object.
func (p *HTTPProvider) Request(ctx context.Context, route Route) (jsonx.Object, error) {
	ep := route.endpoint()
	if ep.list {
		return nil, fmt.Errorf("%w: %s returns a list", ErrUnsupportedRoute, route.Name())
	}

	obj, err := p.fetch(ctx, route, ep)
	if err != nil {
		return nil, err
	}
	if ep.envelope == "" {
		return obj, nil
	}
	return obj.RequireObject(ep.envelope)
}

// RequestArray executes a listing route and returns its elements.
func (p *HTTPProvider) RequestArray(ctx context.Context, route Route) ([]jsonx.Object, error) {
	ep := route.endpoint()
	if !ep.list {
		return nil, fmt.Errorf("%w: %s does not return a list", ErrUnsupportedRoute, route.Name())
	}

	obj, err := p.fetch(ctx, route, ep)
	if err != nil {
		return nil, err
	}
	return obj.RequireArray(ep.envelope)
}

// Deliver executes route and discards the response body.
func (p *HTTPProvider) Deliver(ctx context.Context, route Route) error {
	_, err := p.do(ctx, route, route.endpoint())
	return err
}

func (p *HTTPProvider) fetch(ctx context.Context, route Route, ep endpoint) (jsonx.Object, error) {
	body, err := p.do(ctx, route, ep)
	if err != nil {
		return nil, err
	}
	obj, err := jsonx.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", route.Name(), err)
	}
	return obj, nil
}

// do sends the request and returns the body of a 2xx response.
func (p *HTTPProvider) do(ctx context.Context, route Route, ep endpoint) ([]byte, error) {
	target := p.baseURL + ep.path
	if len(ep.query) > 0 {
		target += "?" + ep.query.Encode()
	}

	var reqBody io.Reader
	if ep.form != nil {
		reqBody = strings.NewReader(ep.form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create http request: %w", route.Name(), err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+p.accessToken)
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if ep.form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	log := p.logger.With("route", route.Name(), "request_id", requestID)
	log.Debug(ctx, "provider request", "method", ep.method, "path", ep.path)

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Debug(ctx, "provider request failed", "error", err)
		return nil, &Error{Route: route.Name(), Kind: common.ErrUnavailable, Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Route: route.Name(), StatusCode: resp.StatusCode, Kind: common.ErrUnavailable, Cause: err}
	}

	log.Debug(ctx, "provider response", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		perr := &Error{Route: route.Name(), StatusCode: resp.StatusCode, Kind: kindForStatus(resp.StatusCode)}
		if apiErr, err := jsonx.Parse(respBody); err == nil {
			perr.Code = apiErr.String("code")
			perr.Message = apiErr.String("message")
		}
		return nil, perr
	}

	return respBody, nil
}
