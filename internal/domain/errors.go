package domain

import "errors"

// Sentinel errors for domain-level error handling. Connectors log and
// skip any record whose handling returns an error, whichever sentinel it
// wraps (an inquiry arriving in a terminal state included); only a
// failure reading the input itself ends a subscription.
var (
	ErrUnknownInstrument    = errors.New("unknown_instrument")
	ErrMalformedRecord      = errors.New("malformed_record")
	ErrUnknownEnumToken     = errors.New("unknown_enum_token")
	ErrInquiryNotFound      = errors.New("inquiry_not_found")
	ErrInquiryTerminalState = errors.New("inquiry_in_terminal_state")
)

// RecordError wraps a per-line parse or lookup failure with the raw input
// line that produced it, so a connector can log a useful diagnostic without
// reconstructing context at the call site.
type RecordError struct {
	Line string
	Err  error
}

func (e *RecordError) Error() string {
	return e.Err.Error() + ": " + e.Line
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
