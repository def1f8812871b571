package crunchyroll

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// CMS holds the signing parameters the catalog endpoints expect on every request.
type CMS struct {
	Policy    string
	Signature string
	KeyPairID string
}

// Config is the session state shared by every request.
type Config struct {
	// APIURL is the base url of the catalog api
	APIURL string
	// ContentURL is the base url of the search/content api
	ContentURL string
	Locale     Locale
	// Bucket is the region bucket, e.g. "US/M2/crunchyroll"
	Bucket  string
	Premium bool
	CMS     CMS
}

// Executor issues authenticated requests and hydrates their results. It is
// built once per session and only read afterwards, so a single Executor can
// serve any number of concurrent requests.
type Executor struct {
	httpClient *http.Client
	config     Config
	token      string
	logger     zerolog.Logger
}

// Locale returns the session locale
func (e *Executor) Locale() Locale {
	return e.config.Locale
}

// Bucket returns the region bucket without surrounding slashes
func (e *Executor) Bucket() string {
	return strings.Trim(e.config.Bucket, "/")
}

// Premium reports whether the session has a premium entitlement
func (e *Executor) Premium() bool {
	return e.config.Premium
}

// Config returns a copy of the session configuration
func (e *Executor) Config() Config {
	return e.config
}

// MediaQuery returns the query parameters catalog endpoints require.
func (e *Executor) MediaQuery() url.Values {
	params := url.Values{}
	if e.config.Locale != "" {
		params.Set("locale", string(e.config.Locale))
	}
	if e.config.CMS.Policy != "" {
		params.Set("Policy", e.config.CMS.Policy)
	}
	if e.config.CMS.Signature != "" {
		params.Set("Signature", e.config.CMS.Signature)
	}
	if e.config.CMS.KeyPairID != "" {
		params.Set("Key-Pair-Id", e.config.CMS.KeyPairID)
	}
	return params
}

// NewRequest builds an authenticated request for endpoint with the given query.
func (e *Executor) NewRequest(ctx context.Context, method, endpoint string, params url.Values) (*http.Request, error) {
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// Request sends req with the executor's client and decodes the response into
// a new T. On success the result is hydrated with e before it is returned; on
// failure no partial result is returned.
//
// Transport failures are reported as *RequestError, everything else as
// *DecodeError.
func Request[T any, PT interface {
	*T
	Hydratable
}](e *Executor, req *http.Request) (*T, error) {
	body, status, err := e.send(req)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if len(bytes.TrimSpace(body)) == 0 {
		// only Empty may come back without a body
		if _, ok := any(out).(*Empty); !ok {
			return nil, &DecodeError{
				Message:    "empty response body",
				URL:        req.URL.Redacted(),
				StatusCode: status,
			}
		}
		PT(out).SetExecutor(e)
		return out, nil
	}

	if err := decodeJSON(body, out); err != nil {
		return nil, newDecodeError(err, req.URL.Redacted(), body)
	}

	PT(out).SetExecutor(e)
	return out, nil
}

// Do sends req for its side effect. The response body, if any, is ignored.
func Do(e *Executor, req *http.Request) error {
	_, err := Request[Empty](e, req)
	return err
}

// send performs req and returns the body and status of a successful response.
func (e *Executor) send(req *http.Request) ([]byte, int, error) {
	start := time.Now()

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, 0, &RequestError{Method: req.Method, URL: req.URL.Redacted(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &RequestError{Method: req.Method, URL: req.URL.Redacted(), Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &DecodeError{
			Message:    "unexpected response status",
			URL:        req.URL.Redacted(),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	e.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("crunchyroll request completed")

	return body, resp.StatusCode, nil
}
