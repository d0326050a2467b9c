package responses

// AdCreative is one generated ad unit at the API boundary.
type AdCreative struct {
	AdText      string `json:"ad_text"`
	AdImageData string `json:"ad_image_data"`
}

// GenerateAdContentResponse is the body of a successful generation call.
type GenerateAdContentResponse struct {
	Creatives []AdCreative `json:"creatives"`
}

// PersonaSegmentsResponse maps warehouse column names to ordered value lists.
type PersonaSegmentsResponse map[string][]string
