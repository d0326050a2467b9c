package creative

import (
	"fmt"
	"strings"
)

// BuildTextPrompt constructs the copywriting prompt for one request. Pure
// function, same inputs always produce the same prompt.
//
// For multi-variation requests the model is told to number each block "1.",
// "2." and so on; the numbered-list parser depends on that structure.
func BuildTextPrompt(req GenerationRequest) string {
	var b strings.Builder

	b.WriteString("You are an expert advertising copywriter.\n")

	if req.Variations > 1 {
		fmt.Fprintf(&b,
			"Write %d distinct ad copy variations for the product below. "+
				"Format each variation as an independent markdown block with an H2 title "+
				"followed by several sentences of persuasive body copy. "+
				"Number each variation on its own line as \"1.\", \"2.\" and so on, "+
				"with no other preamble or explanation.\n",
			req.Variations)
	} else {
		b.WriteString(
			"Write one ad copy for the product below as a single markdown block " +
				"with an H2 title followed by several sentences of persuasive body copy. " +
				"Output the ad copy only, with no preamble or explanation.\n")
	}

	fmt.Fprintf(&b, "\nProduct: %s\nDescription: %s\n", req.Product, req.Description)

	if strings.TrimSpace(req.Persona) != "" {
		fmt.Fprintf(&b, "Target audience: %s\n", strings.TrimSpace(req.Persona))
	} else {
		b.WriteString("Make the copy broadly appealing to a general audience.\n")
	}

	b.WriteString("\nThe tone should be persuasive and engaging.")
	return b.String()
}

// BuildImagePrompt constructs the image model prompt. The same prompt is used
// for every image in a batch, the count travels separately on the model call.
func BuildImagePrompt(req GenerationRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"A high quality advertisement image for %s: %s. ",
		req.Product, req.Description)

	if strings.TrimSpace(req.Persona) != "" {
		fmt.Fprintf(&b, "The image should visually resonate with this audience: %s. ",
			strings.TrimSpace(req.Persona))
	} else {
		b.WriteString("The image should appeal to a broad general audience. ")
	}

	b.WriteString("Clean, modern style with no embedded text.")

	if req.Variations > 1 {
		b.WriteString(" Each image should use a distinct composition.")
	}
	return b.String()
}
