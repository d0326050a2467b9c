package creative

import "strings"

// Variation count bounds accepted by the generation endpoint.
const (
	MinVariations = 1
	MaxVariations = 4
)

// Failure marker substrings. Any creative field containing one of these is a
// placeholder, never a genuine model output, and fails the batch check.
const (
	textErrorPlaceholder    = "Error: ad text generation failed for this variation."
	textMissingPlaceholder  = "Error: ad text missing for this variation."
	imageErrorPlaceholder   = "Failed to generate image for this variation."
	imageMissingPlaceholder = "Failed: image missing for this variation."
)

// GenerationRequest is one validated ad generation request. Immutable once
// constructed.
type GenerationRequest struct {
	Product     string
	Description string
	// Persona holds free text describing the target audience. Empty means
	// broadly appealing copy.
	Persona    string
	Variations int
	// AspectRatio is forwarded to the image model. Empty means the model
	// default.
	AspectRatio string
}

// Creative is one generated ad unit. AdText is markdown; ImageData is a
// base64 PNG data URI, or a failure placeholder when generation failed.
type Creative struct {
	AdText    string
	ImageData string
}

// IsPlaceholder reports whether value is a failure placeholder rather than a
// genuine generated field.
func IsPlaceholder(value string) bool {
	return strings.Contains(value, "Error") || strings.Contains(value, "Failed")
}
