package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Character errors
	CodeCharacterInvalidGender    Code = "CHARACTER_INVALID_GENDER"
	CodeCharacterInvalidSelection Code = "CHARACTER_INVALID_SELECTION"
	CodeCharacterMissingLayer     Code = "CHARACTER_MISSING_LAYER"
	CodeCharacterInvalidColor     Code = "CHARACTER_INVALID_COLOR"
	CodeCharacterInvalidBodyShape Code = "CHARACTER_INVALID_BODY_SHAPE"
	CodeCharacterRuleViolation    Code = "CHARACTER_RULE_VIOLATION"
	CodeLayerUnknown              Code = "LAYER_UNKNOWN"

	// Range errors
	CodeSkinRangeOutOfBounds Code = "SKIN_RANGE_OUT_OF_BOUNDS"
	CodeCrewSizeOutOfRange   Code = "CREW_SIZE_OUT_OF_RANGE"

	// Postcard errors
	CodePostcardUnknownTemplate Code = "POSTCARD_UNKNOWN_TEMPLATE"

	// Crew drafting errors
	CodeCrewDescriptionEmpty   Code = "CREW_DESCRIPTION_EMPTY"
	CodeCrewDraftUnparseable   Code = "CREW_DRAFT_UNPARSEABLE"
	CodeCrewDraftTimeout       Code = "CREW_DRAFT_TIMEOUT"
	CodeCrewDraftFailed        Code = "CREW_DRAFT_FAILED"
	CodeCrewDrafterUnavailable Code = "CREW_DRAFTER_UNAVAILABLE"

	// Listing errors
	CodeFilterInvalid    Code = "FILTER_INVALID"
	CodePageTokenInvalid Code = "PAGE_TOKEN_INVALID"

	// Storage errors
	CodeNotFound           Code = "NOT_FOUND"
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeCharacterInvalidGender,
		CodeCharacterInvalidSelection,
		CodeCharacterMissingLayer,
		CodeCharacterInvalidColor,
		CodeCharacterInvalidBodyShape,
		CodeCharacterRuleViolation,
		CodeLayerUnknown,
		CodeSkinRangeOutOfBounds,
		CodeCrewSizeOutOfRange,
		CodePostcardUnknownTemplate,
		CodeCrewDescriptionEmpty,
		CodeFilterInvalid,
		CodePageTokenInvalid:
		return codes.InvalidArgument

	// DeadlineExceeded - upstream model did not answer in time
	case CodeCrewDraftTimeout:
		return codes.DeadlineExceeded

	// Unavailable - upstream model failed or is not configured
	case CodeCrewDraftFailed,
		CodeCrewDrafterUnavailable,
		CodeStorageUnavailable:
		return codes.Unavailable

	// Internal - upstream answered with something unusable
	case CodeCrewDraftUnparseable:
		return codes.Internal

	// NotFound
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
