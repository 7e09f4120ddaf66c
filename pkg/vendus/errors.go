package vendus

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyRequired = errors.New("API key is required")
	ErrInvalidBaseURL = errors.New("invalid base URL")
	ErrNoErrorsInBody = errors.New("no errors in response body")
)

// ErrorCode is the code of an API error entry. The API sends string codes,
// numeric codes are accepted as well.
type ErrorCode string

// UnmarshalJSON implements json.Unmarshaler.
func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*c = ""

		return nil
	}

	var text string

	err := json.Unmarshal(data, &text)
	if err == nil {
		*c = ErrorCode(text)

		return nil
	}

	var number json.Number

	err = json.Unmarshal(data, &number)
	if err != nil {
		return fmt.Errorf("parsing error code %s: %w", string(data), err)
	}

	*c = ErrorCode(number.String())

	return nil
}

// APIError is a single entry of the API's error list.
type APIError struct {
	Code    ErrorCode `json:"code"    yaml:"code"`
	Message string    `json:"message" yaml:"message"`
}

// Error implements the error interface and renders "<code>: <message>".
func (e *APIError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// ResponseError is returned when the API answers with a non-2xx status.
// Errors is empty when the body carried no parseable errors array.
type ResponseError struct {
	StatusCode int        `json:"-"`
	Status     string     `json:"-"`
	Errors     []APIError `json:"errors"`
	Body       []byte     `json:"-"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	switch len(e.Errors) {
	case 0:
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	case 1:
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Errors[0].Error())
	default:
		return fmt.Sprintf("status %d: multiple errors: %v", e.StatusCode, e.Messages())
	}
}

// FirstError returns the first error or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// Messages renders every entry as "<code>: <message>", in order. When the
// response had no structured entries a single "http_<status>: <text>" entry
// is returned.
func (e *ResponseError) Messages() []string {
	if len(e.Errors) == 0 {
		text := http.StatusText(e.StatusCode)
		if text == "" {
			text = "unexpected status"
		}

		return []string{"http_" + strconv.Itoa(e.StatusCode) + ": " + text}
	}

	messages := make([]string, 0, len(e.Errors))
	for i := range e.Errors {
		messages = append(messages, e.Errors[i].Error())
	}

	return messages
}

// TransportError is returned when no HTTP response was received.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a successful response body cannot be decoded
// into the expected record shape.
type DecodeError struct {
	Target string
	Body   []byte
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Target, e.Err)
}

// Unwrap returns the underlying JSON error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ParseResponseError parses an error response body.
func ParseResponseError(data []byte) (*ResponseError, error) {
	var errResp ResponseError

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	if len(errResp.Errors) == 0 {
		return &errResp, ErrNoErrorsInBody
	}

	return &errResp, nil
}

// Messages returns the error entries carried by err, formatted as
// "<code>: <message>". Transport failures yield "transport: <cause>". Any
// other error yields nil.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		return errResp.Messages()
	}

	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return []string{"transport: " + transportErr.Err.Error()}
	}

	return nil
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		return errResp.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 or 403 response.
func IsUnauthorized(err error) bool {
	code := StatusCode(err)

	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// IsTransport checks if no response was received.
func IsTransport(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsDecode checks if a successful response could not be decoded.
func IsDecode(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}
