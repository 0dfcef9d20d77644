// Package bankgov implements the client for the public reference-data API of
// the National Bank of Ukraine: windowed exchange-rate series and the
// register of domestic government bonds.
//
// A Client is built from a Config carrying the endpoints and the HTTP
// client. The Config is constructed once at process start and passed in;
// there are no package-level endpoint globals. Every call issues exactly one
// synchronous GET, with no retry and no caching, and decodes the payload
// into the typed records of the root package.
package bankgov

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/yshulhan/nbudata"
)

const (
	// DefaultExchangeURL serves windowed exchange-rate series.
	DefaultExchangeURL = "https://bank.gov.ua/NBU_Exchange/exchange_site"
	// DefaultSecuritiesURL serves the whole government-bond register. The
	// bare json parameter selects the JSON rendition.
	DefaultSecuritiesURL = "https://bank.gov.ua/depo_securities?json"
)

// Config carries the endpoints and the HTTP client used to reach them.
type Config struct {
	ExchangeURL   string
	SecuritiesURL string
	HTTPClient    *http.Client
}

// DefaultConfig returns a Config pointing at the production endpoints.
func DefaultConfig() Config {
	return Config{ExchangeURL: DefaultExchangeURL, SecuritiesURL: DefaultSecuritiesURL}
}

// Client fetches reference data from the API. A Client holds no state beyond
// its Config; concurrent consumers must build one Client per request.
type Client struct {
	cfg Config
}

// NewClient returns a Client for the given Config. Zero Config fields fall
// back to the production defaults.
func NewClient(cfg Config) *Client {
	if cfg.ExchangeURL == "" {
		cfg.ExchangeURL = DefaultExchangeURL
	}
	if cfg.SecuritiesURL == "" {
		cfg.SecuritiesURL = DefaultSecuritiesURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &Client{cfg: cfg}
}

// ErrInvalidRange reports a rate query whose start date is after its end
// date. The range is never silently swapped.
var ErrInvalidRange = errors.New("invalid date range")

// FetchError is a failed exchange with the upstream service. Status 0 means
// the request never got an HTTP answer (DNS failure, refused connection,
// timeout) and Err carries the cause; otherwise Status and Reason repeat the
// non-200 answer.
type FetchError struct {
	URL    string
	Status int
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("cannot GET %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("cannot GET %s: %s", e.URL, e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Rates fetches the official exchange rates matching q. A query whose From
// is after To is rejected with ErrInvalidRange before touching the network.
// Rates always requests the JSON rendition, whatever q.JSON says.
func (c *Client) Rates(q RateQuery) ([]nbudata.RateRecord, error) {
	if q.From.After(q.To) {
		return nil, fmt.Errorf("rates %s..%s: %w", q.From, q.To, ErrInvalidRange)
	}
	q.JSON = true
	addr, _ := q.Build(c.cfg.ExchangeURL)
	body, err := c.get(addr)
	if err != nil {
		return nil, err
	}
	return decodeRates(body)
}

// Bonds fetches the whole government-bond register. The endpoint takes no
// parameters.
func (c *Client) Bonds() ([]nbudata.BondRecord, error) {
	body, err := c.get(c.cfg.SecuritiesURL)
	if err != nil {
		return nil, err
	}
	return decodeBonds(body)
}

// get performs the single synchronous GET of an invocation.
func (c *Client) get(addr string) ([]byte, error) {
	log.Println("GET", addr)
	resp, err := c.cfg.HTTPClient.Get(addr)
	if err != nil {
		return nil, &FetchError{URL: addr, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: addr, Status: resp.StatusCode, Reason: resp.Status}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: addr, Err: err}
	}
	return body, nil
}
