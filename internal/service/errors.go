package service

// Error taxonomy for the canned backends. The message string is the full
// user-visible contract; controllers render it verbatim.

// ValidationError reports user input the service refuses to process.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UnsupportedOptionError reports a selector value outside the fixed set the
// service supports.
type UnsupportedOptionError struct {
	Message string
}

func (e *UnsupportedOptionError) Error() string { return e.Message }

// ServiceUnavailableError stands in for an upstream outage.
type ServiceUnavailableError struct {
	Message string
}

func (e *ServiceUnavailableError) Error() string { return e.Message }
