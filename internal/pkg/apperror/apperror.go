package apperror

// Kind classifies an error so callers can branch on the category
// without comparing sentinel pointers across package boundaries.
type Kind string

const (
	KindInvalidInput        Kind = "invalid_input"
	KindNotFound            Kind = "not_found"
	KindNotAvailable        Kind = "not_available"
	KindIllegalTransition   Kind = "illegal_transition"
	KindInvalidHierarchy    Kind = "invalid_hierarchy"
	KindGenerationExhausted Kind = "generation_exhausted"
	KindConflict            Kind = "conflict"
	KindUnauthorized        Kind = "unauthorized"
	KindForbidden           Kind = "forbidden"
	KindUnavailable         Kind = "unavailable" // transient, caller may retry
	KindInternal            Kind = "internal"
)

// AppError is a custom error type that includes an HTTP status code, an
// error kind, and an optional underlying error.
type AppError struct {
	Kind    Kind
	Code    int    // HTTP status code (e.g., 400, 404)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a kind, status code and message.
func New(kind Kind, code int, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError carrying an underlying error. Kind, code and
// message are taken from the template so errors.Is against the template
// still matches.
func Wrap(err error, template *AppError) *AppError {
	return &AppError{
		Kind:    template.Kind,
		Code:    template.Code,
		Message: template.Message,
		Err:     err,
	}
}

// WithMessage clones the template with a more specific message, preserving
// kind and status code.
func WithMessage(template *AppError, message string) *AppError {
	return &AppError{
		Kind:    template.Kind,
		Code:    template.Code,
		Message: message,
		Err:     template,
	}
}

// Is lets wrapped copies match their template through errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return e.Message == t.Message || e.Err == t
}
