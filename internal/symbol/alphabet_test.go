package symbol

import "testing"

func TestParseBasic(t *testing.T) {
	a, err := Parse(". 1 2 3 4 5 6 7 8 9")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", a.Len())
	}
	if a.NonEmptyLen() != 9 {
		t.Fatalf("NonEmptyLen() = %d, want 9", a.NonEmptyLen())
	}
	if a.NeedsDelimiter() {
		t.Errorf("NeedsDelimiter() = true, want false for single-char tokens")
	}
	idx, ok := a.Lookup("5")
	if !ok || idx != 5 {
		t.Errorf("Lookup(5) = (%d, %v), want (5, true)", idx, ok)
	}
	if got := a.Token(5); got != "5" {
		t.Errorf("Token(5) = %q, want %q", got, "5")
	}
}

func TestParseNeedsDelimiterForMultiCharTokens(t *testing.T) {
	a, err := Parse(". 10 11 12")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !a.NeedsDelimiter() {
		t.Errorf("NeedsDelimiter() = false, want true for multi-char tokens")
	}
}

func TestParseRejectsDuplicateTokens(t *testing.T) {
	if _, err := Parse(". 1 2 1"); err == nil {
		t.Fatal("Parse with duplicate token: want error, got nil")
	}
}

func TestParseRejectsCommaInToken(t *testing.T) {
	if _, err := Parse(". 1, 2"); err == nil {
		t.Fatal("Parse with comma in token: want error, got nil")
	}
}

func TestParseRejectsTooFewTokens(t *testing.T) {
	if _, err := Parse("."); err == nil {
		t.Fatal("Parse with only the empty token: want error, got nil")
	}
}

func TestMarkMultiCharNameFlipsDelimiter(t *testing.T) {
	a, err := Parse(". 1 2 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.NeedsDelimiter() {
		t.Fatal("NeedsDelimiter() = true before MarkMultiCharName")
	}
	a.MarkMultiCharName("odd")
	if !a.NeedsDelimiter() {
		t.Error("NeedsDelimiter() = false after MarkMultiCharName with a multi-char name")
	}
}

func TestHasToken(t *testing.T) {
	a, err := Parse(". 1 2 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !a.HasToken(".") {
		t.Error("HasToken(.) = false, want true")
	}
	if a.HasToken("x") {
		t.Error("HasToken(x) = true, want false")
	}
}
