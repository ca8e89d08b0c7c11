package osmfetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

// DefaultEndpoint is the public Overpass API endpoint.
const DefaultEndpoint = "https://overpass-api.de/api/interpreter"

// DefaultTimeout is the default Overpass fetch deadline.
const DefaultTimeout = 60 * time.Second

// ErrUpstreamTimeout is returned when the Overpass fetch exceeds its
// configured timeout.
var ErrUpstreamTimeout = errors.New("overpass request timed out")

// ErrUpstreamTransport is returned for any other Overpass transport or
// protocol failure.
var ErrUpstreamTransport = errors.New("overpass request failed")

// Fetcher queries the Overpass API for a bbox-restricted road network.
type Fetcher struct {
	Endpoint string
	Timeout  time.Duration
	Client   *fasthttp.Client
}

// NewFetcher builds a Fetcher with the given endpoint and timeout. An empty
// endpoint falls back to DefaultEndpoint; a zero timeout falls back to
// DefaultTimeout.
func NewFetcher(endpoint string, timeout time.Duration) *Fetcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		Endpoint: endpoint,
		Timeout:  timeout,
		Client:   &fasthttp.Client{Name: "map-router-osmfetch"},
	}
}

// Fetch builds the bbox query and POSTs it to the configured Overpass
// endpoint, returning the decoded element stream. This is the dominant
// latency cost of a route computation; it respects ctx cancellation at
// the HTTP boundary.
func (f *Fetcher) Fetch(ctx context.Context, bbox BBox) (*Response, error) {
	query := BuildQuery(bbox, int(f.Timeout.Seconds()))

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(f.Endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/x-www-form-urlencoded")
	req.SetBodyString("data=" + url.QueryEscape(query))

	errCh := make(chan error, 1)
	go func() { errCh <- f.Client.DoTimeout(req, resp, f.Timeout) }()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-errCh:
		if err != nil {
			if errors.Is(err, fasthttp.ErrTimeout) {
				return nil, fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrUpstreamTransport, err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: overpass returned status %d", ErrUpstreamTransport, resp.StatusCode())
	}

	var out Response
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUpstreamTransport, err)
	}
	return &out, nil
}
