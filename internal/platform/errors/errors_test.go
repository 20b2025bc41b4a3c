package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCode(t *testing.T) {
	tests := map[Code]codes.Code{
		CodeCharacterInvalidSelection: codes.InvalidArgument,
		CodeCrewSizeOutOfRange:        codes.InvalidArgument,
		CodeCrewDraftTimeout:          codes.DeadlineExceeded,
		CodeCrewDraftFailed:           codes.Unavailable,
		CodeCrewDraftUnparseable:      codes.Internal,
		CodeNotFound:                  codes.NotFound,
		CodeStorageUnavailable:        codes.Unavailable,
		Code("SOMETHING_ELSE"):        codes.Internal,
	}
	for code, want := range tests {
		if got := code.GRPCCode(); got != want {
			t.Fatalf("%s.GRPCCode() = %v, want %v", code, got, want)
		}
	}
}

func TestToGRPCStatus(t *testing.T) {
	err := WithMetadata(CodeSkinRangeOutOfBounds, "skin range 7..9", map[string]string{"Min": "7", "Max": "9"})
	st, ok := status.FromError(err.ToGRPCStatus("en-US", "Skin tone range 7 to 9 is outside the palette."))
	if !ok {
		t.Fatal("expected grpc status")
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", st.Code())
	}
	var sawInfo, sawMessage bool
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			sawInfo = d.Reason == string(CodeSkinRangeOutOfBounds) && d.Domain == Domain && d.Metadata["Min"] == "7"
		case *errdetails.LocalizedMessage:
			sawMessage = d.Locale == "en-US" && d.Message != ""
		}
	}
	if !sawInfo || !sawMessage {
		t.Fatalf("missing details: info=%v message=%v", sawInfo, sawMessage)
	}
}

func TestGetCodeAndIs(t *testing.T) {
	cause := stderrors.New("boom")
	wrapped := fmt.Errorf("outer: %w", Wrap(CodeCrewDraftFailed, "draft failed", cause))
	if got := GetCode(wrapped); got != CodeCrewDraftFailed {
		t.Fatalf("GetCode = %s", got)
	}
	if !stderrors.Is(wrapped, New(CodeCrewDraftFailed, "")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if !stderrors.Is(wrapped, cause) {
		t.Fatal("expected cause in chain")
	}
	if got := GetCode(cause); got != CodeUnknown {
		t.Fatalf("GetCode(plain) = %s, want UNKNOWN", got)
	}
}

func TestHandleError(t *testing.T) {
	if HandleError(nil, "") != nil {
		t.Fatal("expected nil for nil error")
	}
	err := HandleError(fmt.Errorf("ctx: %w", New(CodeCrewDescriptionEmpty, "description is required")), "")
	st, _ := status.FromError(err)
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", st.Code())
	}
	var localized string
	for _, detail := range st.Details() {
		if d, ok := detail.(*errdetails.LocalizedMessage); ok {
			localized = d.Message
		}
	}
	if localized != "Describe the crew you want to generate." {
		t.Fatalf("localized message = %q", localized)
	}

	plain := HandleError(stderrors.New("db exploded"), "en-US")
	if st, _ := status.FromError(plain); st.Code() != codes.Internal || st.Message() != "an unexpected error occurred" {
		t.Fatalf("plain error status = %v/%q", st.Code(), st.Message())
	}

	passthrough := status.Error(codes.NotFound, "gone")
	if got := HandleError(passthrough, ""); got != passthrough {
		t.Fatalf("expected status errors to pass through, got %v", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: New(CodeCrewSizeOutOfRange, "bad"), want: 400},
		{err: New(CodeNotFound, "missing"), want: 404},
		{err: New(CodeCrewDraftTimeout, "slow"), want: 504},
		{err: New(CodeCrewDraftFailed, "down"), want: 503},
		{err: stderrors.New("plain"), want: 500},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
	if got := UserMessage(New(CodeCrewDraftTimeout, "slow"), ""); got != "Crew generation took too long. Try again." {
		t.Fatalf("user message = %q", got)
	}
}

func TestHandleErrorContext(t *testing.T) {
	if st, _ := status.FromError(HandleError(fmt.Errorf("draft: %w", context.DeadlineExceeded), "")); st.Code() != codes.DeadlineExceeded {
		t.Fatalf("deadline code = %v", st.Code())
	}
	if st, _ := status.FromError(HandleError(context.Canceled, "")); st.Code() != codes.Canceled {
		t.Fatalf("canceled code = %v", st.Code())
	}
}

func TestFromGRPCStatus(t *testing.T) {
	original := WithMetadata(CodeLayerUnknown, "layer Wings unknown", map[string]string{"Layer": "Wings"})
	restored := FromGRPCStatus(HandleError(original, ""))
	if code := GetCode(restored); code != CodeLayerUnknown {
		t.Fatalf("restored code = %q, want %q", code, CodeLayerUnknown)
	}
	if got := GetMetadata(restored)["Layer"]; got != "Wings" {
		t.Fatalf("restored metadata = %q", got)
	}
	if !stderrors.Is(restored, original) {
		t.Fatal("restored error should match the original by code")
	}

	plain := status.Error(codes.NotFound, "gone")
	if got := FromGRPCStatus(plain); got != plain {
		t.Fatalf("plain status changed: %v", got)
	}
	other := stderrors.New("boom")
	if got := FromGRPCStatus(other); got != other {
		t.Fatalf("non-status error changed: %v", got)
	}
}

func TestToGRPCStatusWithoutUserMessage(t *testing.T) {
	st, _ := status.FromError(New(CodeNotFound, "crew abc not found").ToGRPCStatus("en-US", ""))
	if st.Code() != codes.NotFound {
		t.Fatalf("code = %v, want NotFound", st.Code())
	}
	for _, detail := range st.Details() {
		if _, ok := detail.(*errdetails.LocalizedMessage); ok {
			t.Fatal("expected no localized message")
		}
	}
	if len(st.Details()) != 1 {
		t.Fatalf("details = %d, want 1", len(st.Details()))
	}
}
