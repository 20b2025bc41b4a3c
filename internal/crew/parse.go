package crew

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	apperrors "github.com/louisbranch/crewportrait/internal/platform/errors"
)

var (
	// ErrDraftUnparseable reports model output with no usable JSON in it.
	ErrDraftUnparseable = apperrors.New(apperrors.CodeCrewDraftUnparseable, "crew draft is not valid JSON")
	// ErrDraftNotArray reports valid JSON that is not a list of members.
	ErrDraftNotArray = apperrors.New(apperrors.CodeCrewDraftUnparseable, "crew draft is not a JSON array")
)

var (
	fencedArray = regexp.MustCompile("```(?:json)?\\s*(\\[[\\s\\S]*?\\])\\s*```")
	bareArray   = regexp.MustCompile(`\[[\s\S]*\]`)
)

// ParseDraft extracts crew members from raw model text. It tries the whole
// text, then a fenced code block, then the widest bracketed span. At most
// MaxCrewSize members are returned.
func ParseDraft(text string) ([]Member, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		return nil, ErrDraftNotArray
	}
	var members []Member
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCrewDraftUnparseable, "decode crew draft", err)
	}
	if len(members) > MaxCrewSize {
		members = members[:MaxCrewSize]
	}
	return members, nil
}

func extractJSON(text string) ([]byte, error) {
	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) {
		return []byte(trimmed), nil
	}
	if match := fencedArray.FindStringSubmatch(trimmed); match != nil && json.Valid([]byte(match[1])) {
		return []byte(match[1]), nil
	}
	if match := bareArray.FindString(trimmed); match != "" && json.Valid([]byte(match)) {
		return []byte(match), nil
	}
	return nil, ErrDraftUnparseable
}

// NormalizeCrew caps the crew at MaxCrewSize and normalizes each member.
func NormalizeCrew(members []Member) []Member {
	if len(members) > MaxCrewSize {
		members = members[:MaxCrewSize]
	}
	out := make([]Member, len(members))
	for i, m := range members {
		out[i] = Normalize(m)
	}
	return out
}
