// Package geekplaysvc implements the core services on top of the GeekPlay REST services.
package geekplaysvc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/geekplay/foro/core"
)

// ErrNoToken is returned, before any request is sent, by calls that need a session.
var ErrNoToken = errors.New("No hay token de autenticación")

// maxErrBody bounds how much of an error response is read.
const maxErrBody = 64 << 10

// StatusError is returned when a service answers with a non-2xx status.
type StatusError struct {
	Op      string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// NewHTTPClient returns the http.Client shared by the services.
func NewHTTPClient(conf *core.Config) *http.Client {
	return &http.Client{Timeout: conf.Services.Timeout}
}

type client struct {
	baseURL string
	http    *http.Client
}

func newClient(baseURL string, hc *http.Client) client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// call describes one request to a service.
type call struct {
	op      string // operation name, for errors
	errText string // message when the service gives none
	method  string
	path    string
	query   url.Values
	token   string
	auth    bool // token required
	in      interface{}
	out     interface{}
}

func (c client) do(ctx context.Context, cl call) error {
	if cl.auth && cl.token == "" {
		return ErrNoToken
	}

	var body io.Reader
	if cl.in != nil {
		b, err := json.Marshal(cl.in)
		if err != nil {
			return pkgerrors.Wrapf(err, "%s: encoding request", cl.op)
		}
		body = bytes.NewReader(b)
	}

	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, u, body)
	if err != nil {
		return pkgerrors.Wrapf(err, "%s: creating request", cl.op)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Wrapf(err, "%s: sending request", cl.op)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := ioutil.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return &StatusError{Op: cl.op, Code: resp.StatusCode, Message: errorMessage(raw, cl.errText)}
	}

	if cl.out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
		return pkgerrors.Wrapf(err, "%s: decoding response", cl.op)
	}
	return nil
}

// errorMessage returns the `message` of a JSON error body or the text of any other body.
// fallback is used when neither is set.
func errorMessage(raw []byte, fallback string) string {
	if json.Valid(raw) {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
			return payload.Message
		}
		return fallback
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return fallback
}
