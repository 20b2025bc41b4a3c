package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeCharacterInvalidGender    = "CHARACTER_INVALID_GENDER"
	CodeCharacterInvalidSelection = "CHARACTER_INVALID_SELECTION"
	CodeCharacterMissingLayer     = "CHARACTER_MISSING_LAYER"
	CodeCharacterInvalidColor     = "CHARACTER_INVALID_COLOR"
	CodeCharacterInvalidBodyShape = "CHARACTER_INVALID_BODY_SHAPE"
	CodeCharacterRuleViolation    = "CHARACTER_RULE_VIOLATION"
	CodeLayerUnknown              = "LAYER_UNKNOWN"
	CodeSkinRangeOutOfBounds      = "SKIN_RANGE_OUT_OF_BOUNDS"
	CodeCrewSizeOutOfRange        = "CREW_SIZE_OUT_OF_RANGE"
	CodePostcardUnknownTemplate   = "POSTCARD_UNKNOWN_TEMPLATE"
	CodeCrewDescriptionEmpty      = "CREW_DESCRIPTION_EMPTY"
	CodeCrewDraftUnparseable      = "CREW_DRAFT_UNPARSEABLE"
	CodeCrewDraftTimeout          = "CREW_DRAFT_TIMEOUT"
	CodeCrewDraftFailed           = "CREW_DRAFT_FAILED"
	CodeCrewDrafterUnavailable    = "CREW_DRAFTER_UNAVAILABLE"
	CodeFilterInvalid             = "FILTER_INVALID"
	CodePageTokenInvalid          = "PAGE_TOKEN_INVALID"
	CodeNotFound                  = "NOT_FOUND"
	CodeStorageUnavailable        = "STORAGE_UNAVAILABLE"
)

var enUSMessages = map[Code]string{
	CodeCharacterInvalidGender:    "Gender must be Male or Female.",
	CodeCharacterInvalidSelection: "The chosen {{.Layer}} is not available.",
	CodeCharacterMissingLayer:     "The portrait needs a {{.Layer}}.",
	CodeCharacterInvalidColor:     "The chosen {{.Class}} color is not available.",
	CodeCharacterInvalidBodyShape: "The chosen body shape is not available.",
	CodeCharacterRuleViolation:    "These portrait parts cannot be combined.",
	CodeLayerUnknown:              "Layer {{.Layer}} does not exist.",
	CodeSkinRangeOutOfBounds:      "Skin tone range {{.Min}} to {{.Max}} is outside the palette.",
	CodeCrewSizeOutOfRange:        "A postcard holds between 1 and {{.Max}} characters.",
	CodePostcardUnknownTemplate:   "Postcard template {{.Color}} does not exist.",
	CodeCrewDescriptionEmpty:      "Describe the crew you want to generate.",
	CodeCrewDraftUnparseable:      "The crew draft could not be read. Try again.",
	CodeCrewDraftTimeout:          "Crew generation took too long. Try again.",
	CodeCrewDraftFailed:           "Crew generation failed. Try again later.",
	CodeCrewDrafterUnavailable:    "Crew generation is not configured.",
	CodeFilterInvalid:             "The filter could not be understood.",
	CodePageTokenInvalid:          "The page token is invalid.",
	CodeNotFound:                  "The requested {{.Resource}} was not found.",
	CodeStorageUnavailable:        "Saved crews are not available on this server.",
}
