package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidBody = errors.New("invalid request body")
)

// MaxBodyBytes caps how much of a request body DecodeFields will read.
const MaxBodyBytes = 1 << 20

// Fields is a decoded JSON object whose values are kept raw until a rule
// claims them. A key that is present with a null value is still present.
type Fields map[string]json.RawMessage

// DecodeFields reads a JSON object from r. An empty body decodes to an
// empty set of fields; a body over MaxBodyBytes is invalid.
func DecodeFields(r io.Reader) (Fields, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if len(data) > MaxBodyBytes {
		return nil, ErrInvalidBody
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Fields{}, nil
	}

	var fields Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, ErrInvalidBody
	}
	if fields == nil {
		// a literal null
		return nil, ErrInvalidBody
	}
	return fields, nil
}

// FieldError describes the first field that failed validation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

func fieldError(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}
