// Package errs defines the typed errors shared across services and handlers.
// Handlers switch on these types to pick the HTTP status; the detail string is
// what the caller sees.
package errs

// ValidationError indicates bad or missing caller input. No side effects were
// attempted.
type ValidationError struct {
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return e.Message
}

// ConfigError indicates a required credential or setting is absent. Raised
// before any external call is made.
type ConfigError struct {
	Message string
}

// Error returns the error message.
func (e ConfigError) Error() string {
	return e.Message
}

// UpstreamError indicates the completion collaborator was unreachable or
// returned a failure status.
type UpstreamError struct {
	Message string
}

// Error returns the error message.
func (e UpstreamError) Error() string {
	return e.Message
}

// ParseError indicates the collaborator's reply was not well-formed JSON or
// not array-shaped. Never coerced to empty results.
type ParseError struct {
	Message string
}

// Error returns the error message.
func (e ParseError) Error() string {
	return e.Message
}

// StoreError indicates a key-value read or write failure.
type StoreError struct {
	Message string
}

// Error returns the error message.
func (e StoreError) Error() string {
	return e.Message
}

// DuplicateError indicates the favorite already exists for that user.
type DuplicateError struct {
	Message string
}

// Error returns the error message.
func (e DuplicateError) Error() string {
	return e.Message
}
