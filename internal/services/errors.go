package services

import "fmt"

// InvalidFileTypeError signals an upload whose extension is outside the
// resume allow-list.
type InvalidFileTypeError struct {
	Extension string
	Allowed   []string
}

func (e *InvalidFileTypeError) Error() string {
	return fmt.Sprintf("invalid file type %q, allowed types: %v", e.Extension, e.Allowed)
}

// UpstreamError carries a non-success status returned by an external provider.
// The status code and body are proxied to the caller verbatim.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// TransportError signals a network-level failure reaching a provider.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError signals provider output that could not be parsed as
// the expected JSON envelope. The raw parse error surfaces to the caller.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
