// Package errors defines the domain error carried across crewportrait
// transports and its mapping to gRPC and HTTP status.
package errors

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// Domain tags ErrorInfo details produced by this package.
const Domain = "github.com/louisbranch/crewportrait"

// Error is a coded failure. Message is for logs; callers see the localized
// rendering of Code with Metadata filled in.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

// New returns an error with no metadata or cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithMetadata returns an error whose user message is templated from metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata}
}

// Wrap returns an error caused by cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// ToGRPCStatus builds a status whose message is the internal message, with
// ErrorInfo for the code and metadata and, when userMessage is set, a
// LocalizedMessage for display.
func (e *Error) ToGRPCStatus(locale, userMessage string) error {
	grpcCode := e.Code.GRPCCode()
	details := []protoadapt.MessageV1{&errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   Domain,
		Metadata: e.Metadata,
	}}
	if userMessage != "" {
		details = append(details, &errdetails.LocalizedMessage{Locale: locale, Message: userMessage})
	}
	st, err := status.New(grpcCode, e.Message).WithDetails(details...)
	if err != nil {
		return status.Error(grpcCode, e.Message)
	}
	return st.Err()
}
