package entity

import "fmt"

// ValidationError reports a rejected CLI input, raised before any network I/O.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConfigError reports missing or unusable startup configuration.
type ConfigError struct {
	Key    string
	Reason string
}

func NewConfigError(key, reason string) *ConfigError {
	return &ConfigError{Key: key, Reason: reason}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

// NetworkError wraps a transport-level failure where no response was received.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ExchangeError carries the exchange's numeric error code and message from a
// well-formed error response.
type ExchangeError struct {
	Status  int
	Code    int64
	Message string
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("exchange rejected request: status=%d code=%d message=%s", e.Status, e.Code, e.Message)
}

// ParseError is raised when a response body does not match the expected
// schema. It unwraps to an ExchangeError so callers matching on that type
// treat it as an exchange-side failure.
type ParseError struct {
	ExchangeError
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable exchange response: status=%d: %v", e.Status, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{&e.ExchangeError, e.Err}
}
