package inference

// Sampling parameters tuned for creative copywriting. High temperature keeps
// the variations from collapsing into near-duplicates.
const (
	textTemperature     = float32(1.5)
	textTopP            = float32(0.9)
	textMaxOutputTokens = int32(2048)
)
