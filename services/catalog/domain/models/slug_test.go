package models

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Red Mug", "red-mug"},
		{"already a slug", "red-mug", "red-mug"},
		{"uppercase", "ALPINE PEAK JACKET", "alpine-peak-jacket"},
		{"punctuation collapsed", "Hello, World!", "hello-world"},
		{"multiple separators", "a  --  b", "a-b"},
		{"leading and trailing junk", "  ..Red Mug..  ", "red-mug"},
		{"diacritics transliterated", "Café au Lait", "cafe-au-lait"},
		{"digits preserved", "Mug 2000", "mug-2000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{"Red Mug", "Hello, World!", "Café au Lait", "a  --  b"}
	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	if Slugify("Red Mug") != Slugify("Red Mug") {
		t.Fatal("expected identical output for identical input")
	}
}
