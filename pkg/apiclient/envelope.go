package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ErrUnexpectedResponse is returned when the server answers without an envelope.
var ErrUnexpectedResponse = errors.New("apiclient: unexpected response")

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details []string        `json:"details"`
}

// APIError is a success:false envelope. The message is meant for the user as is.
type APIError struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Details, "; ")
}

func (e *APIError) RejectionMessage() string   { return e.Message }
func (e *APIError) RejectionDetails() []string { return e.Details }

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// call runs one request and decodes the envelope's data into out when out is non-nil.
func (s *Session) call(ctx context.Context, tenantID, method, path string, prepare func(*resty.Request), out any) error {
	rctx, done, err := s.bind(ctx)
	if err != nil {
		return err
	}
	defer done()

	req := s.request(rctx, tenantID)
	if prepare != nil {
		prepare(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		s.client.l.Warnf(ctx, "apiclient.call %s %s: %v", method, path, err)
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	return decode(resp, out)
}

func decode(resp *resty.Response, out any) error {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode())
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return &APIError{StatusCode: resp.StatusCode(), Message: msg, Details: env.Details}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("apiclient: decode data: %w", err)
	}
	return nil
}
