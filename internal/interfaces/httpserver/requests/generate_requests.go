package requests

// GenerateAdContentRequest is the body of POST /api/v1/generate_ad_content.
// NumberOfVariations is a pointer so an explicit 0 stays distinguishable
// from an absent field; absent means "use the service default".
// AspectRatio is optional and passed through to the image model unchanged.
type GenerateAdContentRequest struct {
	Product            string `json:"product" binding:"required"`
	ProductDescription string `json:"product_description" binding:"required"`
	PersonaDescription string `json:"persona_description"`
	NumberOfVariations *int   `json:"number_of_variations"`
	AspectRatio        string `json:"aspect_ratio"`
}
