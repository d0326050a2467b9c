package creative

import (
	"reflect"
	"testing"
)

func TestParseVariationsNumberedList(t *testing.T) {
	block := "1. Alpha beta gamma delta\n2. Epsilon zeta eta theta"
	got := ParseVariations(block, 2)
	want := []string{"Alpha beta gamma delta", "Epsilon zeta eta theta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseVariations() = %v, want %v", got, want)
	}
}

func TestParseVariationsParenNumbering(t *testing.T) {
	block := "1) First variation of the copy\n2) Second variation of the copy"
	got := ParseVariations(block, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(got), got)
	}
	if got[0] != "First variation of the copy" {
		t.Errorf("unexpected first item: %q", got[0])
	}
}

func TestParseVariationsLineFallback(t *testing.T) {
	block := "This is the first ad without numbering\nThis is the second ad without numbering"
	got := ParseVariations(block, 2)
	if len(got) != 2 {
		t.Fatalf("expected line fallback to return 2 items, got %d: %v", len(got), got)
	}
	if got[0] != "This is the first ad without numbering" {
		t.Errorf("unexpected first item: %q", got[0])
	}
}

func TestParseVariationsLineFallbackSkipsShortLines(t *testing.T) {
	block := "1.\nGreat shoes for long mountain trails\nBuy now\nComfort that lasts all day long"
	got := ParseVariations(block, 2)
	want := []string{"Great shoes for long mountain trails", "Comfort that lasts all day long"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseVariations() = %v, want %v", got, want)
	}
}

func TestParseVariationsSingleBlock(t *testing.T) {
	got := ParseVariations("  A single block of generated copy  ", 1)
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0] != "A single block of generated copy" {
		t.Errorf("expected trimmed block, got %q", got[0])
	}
}

func TestParseVariationsTruncatesExtraItems(t *testing.T) {
	block := "1. One two three four\n2. Five six seven eight\n3. Nine ten eleven twelve"
	got := ParseVariations(block, 2)
	if len(got) != 2 {
		t.Fatalf("expected truncation to 2 items, got %d", len(got))
	}
}

func TestParseVariationsShortfallNotPadded(t *testing.T) {
	block := "1. Only one variation came back here"
	got := ParseVariations(block, 3)
	if len(got) >= 3 {
		t.Fatalf("parser must not pad, got %d items", len(got))
	}
}

func TestParseVariationsBlankInput(t *testing.T) {
	if got := ParseVariations("   \n  ", 2); got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}
}
