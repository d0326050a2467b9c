package creative

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildTextPromptMultiVariation(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		req := GenerationRequest{Product: "Trail Shoes", Description: "Lightweight hiking shoe", Variations: n}
		prompt := BuildTextPrompt(req)
		if !strings.Contains(prompt, "distinct") {
			t.Errorf("n=%d: prompt missing distinct-variations instruction", n)
		}
		if !strings.Contains(prompt, fmt.Sprintf("Write %d distinct", n)) {
			t.Errorf("n=%d: prompt does not name the literal count:\n%s", n, prompt)
		}
	}
}

func TestBuildTextPromptSingleVariation(t *testing.T) {
	req := GenerationRequest{Product: "Trail Shoes", Description: "Lightweight hiking shoe", Variations: 1}
	prompt := BuildTextPrompt(req)
	if strings.Contains(prompt, "distinct") {
		t.Errorf("single variation prompt must not ask for multiple variations:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Trail Shoes") || !strings.Contains(prompt, "Lightweight hiking shoe") {
		t.Errorf("prompt missing product fields:\n%s", prompt)
	}
}

func TestBuildTextPromptPersonaClause(t *testing.T) {
	base := GenerationRequest{Product: "Trail Shoes", Description: "Lightweight hiking shoe", Variations: 2}

	withPersona := base
	withPersona.Persona = "urban hikers in their 30s"
	got := BuildTextPrompt(withPersona)
	if !strings.Contains(got, "urban hikers in their 30s") {
		t.Errorf("persona text not inserted:\n%s", got)
	}
	if strings.Contains(got, "broadly appealing") {
		t.Errorf("persona prompt must not carry the generic fallback:\n%s", got)
	}

	without := BuildTextPrompt(base)
	if !strings.Contains(without, "broadly appealing") {
		t.Errorf("missing generic audience fallback:\n%s", without)
	}
}

func TestBuildTextPromptDeterministic(t *testing.T) {
	req := GenerationRequest{Product: "Trail Shoes", Description: "Lightweight hiking shoe", Persona: "trail runners", Variations: 3}
	if BuildTextPrompt(req) != BuildTextPrompt(req) {
		t.Fatal("prompt construction must be deterministic")
	}
}

func TestBuildImagePrompt(t *testing.T) {
	req := GenerationRequest{Product: "Trail Shoes", Description: "Lightweight hiking shoe", Variations: 3}
	prompt := BuildImagePrompt(req)
	if !strings.Contains(prompt, "Trail Shoes") {
		t.Errorf("image prompt missing product:\n%s", prompt)
	}
	if !strings.Contains(prompt, "no embedded text") {
		t.Errorf("image prompt missing style directive:\n%s", prompt)
	}
	if !strings.Contains(prompt, "distinct composition") {
		t.Errorf("multi-image prompt missing diversity instruction:\n%s", prompt)
	}

	single := req
	single.Variations = 1
	if strings.Contains(BuildImagePrompt(single), "distinct composition") {
		t.Error("single image prompt must not carry the diversity instruction")
	}
}
