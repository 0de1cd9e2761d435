package symbol

import "testing"

func TestParseLinesBasic(t *testing.T) {
	a, err := Parse(". 1 2 3 4 5 6 7 8 9")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := NewAllowedSets()
	if err := r.ParseLines("o=1,3,5,7,9\ne=2,4,6,8", a); err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	o, ok := r.Lookup("o")
	if !ok {
		t.Fatal("Lookup(o): not found")
	}
	for _, v := range []Index{1, 3, 5, 7, 9} {
		if !o.Allows(v) {
			t.Errorf("o.Allows(%d) = false, want true", v)
		}
	}
	for _, v := range []Index{2, 4, 6, 8} {
		if o.Allows(v) {
			t.Errorf("o.Allows(%d) = true, want false", v)
		}
	}
	if names := r.Names(); len(names) != 2 || names[0] != "e" || names[1] != "o" {
		t.Errorf("Names() = %v, want [e o]", names)
	}
}

func TestParseLinesRejectsCollisionWithAlphabetToken(t *testing.T) {
	a, err := Parse(". 1 2 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := NewAllowedSets()
	if err := r.ParseLines("1=2,3", a); err == nil {
		t.Fatal("ParseLines with name colliding with alphabet token: want error, got nil")
	}
}

func TestParseLinesEmptyRHSDeletes(t *testing.T) {
	a, err := Parse(". 1 2 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := NewAllowedSets()
	if err := r.ParseLines("x=1,2", a); err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if _, ok := r.Lookup("x"); !ok {
		t.Fatal("Lookup(x) after define: not found")
	}
	if err := r.ParseLines("x=", a); err != nil {
		t.Fatalf("ParseLines (delete): %v", err)
	}
	if _, ok := r.Lookup("x"); ok {
		t.Error("Lookup(x) after delete: still found")
	}
}

func TestParseLinesRejectsEmptyToken(t *testing.T) {
	a, err := Parse(". 1 2 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := NewAllowedSets()
	if err := r.ParseLines("x=.", a); err == nil {
		t.Fatal("ParseLines with the empty token in a set: want error, got nil")
	}
}

func TestMarkMultiCharNameOnAllowedSet(t *testing.T) {
	a, err := Parse(". 1 2 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := NewAllowedSets()
	if err := r.ParseLines("odd=1,3", a); err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if !a.NeedsDelimiter() {
		t.Error("NeedsDelimiter() = false after a multi-char allowed-set name, want true")
	}
}
