package api

import (
	"errors"
	"strconv"

	apperrors "github.com/louisbranch/crewportrait/internal/platform/errors"
	"github.com/louisbranch/crewportrait/internal/portrait/appearance"
	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
	"github.com/louisbranch/crewportrait/internal/portrait/postcard"
)

var (
	errCrewsUnavailable   = apperrors.New(apperrors.CodeCrewDrafterUnavailable, "crew drafting is not configured")
	errStorageUnavailable = apperrors.New(apperrors.CodeStorageUnavailable, "crew storage is not configured")
)

// domainError gives portrait package sentinels an error code. Errors that
// already carry a code pass through.
func domainError(err error, metadata map[string]string) error {
	if err == nil {
		return nil
	}
	var coded *apperrors.Error
	if errors.As(err, &coded) {
		return err
	}
	code := apperrors.CodeUnknown
	switch {
	case errors.Is(err, appearance.ErrInvalidGender):
		code = apperrors.CodeCharacterInvalidGender
	case errors.Is(err, appearance.ErrInvalidSelection):
		code = apperrors.CodeCharacterInvalidSelection
	case errors.Is(err, appearance.ErrMissingLayer):
		code = apperrors.CodeCharacterMissingLayer
	case errors.Is(err, appearance.ErrInvalidColor):
		code = apperrors.CodeCharacterInvalidColor
	case errors.Is(err, appearance.ErrInvalidBodyShape):
		code = apperrors.CodeCharacterInvalidBodyShape
	case errors.Is(err, appearance.ErrRuleViolation):
		code = apperrors.CodeCharacterRuleViolation
	case errors.Is(err, appearance.ErrInvalidRange):
		code = apperrors.CodeSkinRangeOutOfBounds
	case errors.Is(err, catalog.ErrLayerUnknown):
		code = apperrors.CodeLayerUnknown
	case errors.Is(err, postcard.ErrCrewSizeOutOfRange):
		code = apperrors.CodeCrewSizeOutOfRange
		metadata = withDefault(metadata, "Max", strconv.Itoa(postcard.MaxCrewSize))
	case errors.Is(err, postcard.ErrUnknownTemplate):
		code = apperrors.CodePostcardUnknownTemplate
	default:
		return err
	}
	return &apperrors.Error{
		Code:     code,
		Message:  err.Error(),
		Metadata: metadata,
		Cause:    err,
	}
}

func withDefault(metadata map[string]string, key, value string) map[string]string {
	if metadata == nil {
		metadata = map[string]string{}
	}
	if _, ok := metadata[key]; !ok {
		metadata[key] = value
	}
	return metadata
}
