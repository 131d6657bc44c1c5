/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package fieldcode

import (
	"encoding"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  required  ", "required"},
		{"to lower", "ReQuIrEd", "required"},
		{"dash to underscore", "too-long", "too_long"},
		{"mixed", "  OUT-OF-RANGE  ", "out_of_range"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"simple", "required", Code("required")},
		{"with spaces", "  duplicate  ", Code("duplicate")},
		{"upper", "MISMATCH", Code("mismatch")},
		{"dash", "too-short", Code("too_short")},
		{"min length", "abc", Code("abc")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "a"},
		{"starts with digit", "1required"},
		{"trailing dash after normalize", "x-"},
		{"dash only", "-"},
		{"too long", "a_very_long_code_that_is_definitely_more_than_sixty_four_characters_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Code{
		Required,
		Duplicate,
		OutOfRange,
		"abc",
	}
	for _, c := range valid {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", c, err)
		}
	}

	invalid := []Code{
		"",          // empty
		"ab",        // too short
		"Required",  // uppercase
		"too-short", // dash
	}
	for _, c := range invalid {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%q) expected error", c)
		}
	}
}

func TestCatalogCodesAreCanonical(t *testing.T) {
	// Every published catalog code must already be in canonical form.
	catalog := []Code{
		Required, TooShort, TooLong, Pattern, Charset, OutOfRange, Unknown,
		Mismatch, Duplicate, NotUnique, Dangling, Immutable, Unsupported,
	}
	for _, c := range catalog {
		if err := Validate(c); err != nil {
			t.Fatalf("catalog code %q is not canonical: %v", c, err)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("INVALID CODE ??")
}

func TestCode_MarshalText(t *testing.T) {
	c := Required
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "required" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "required")
	}

	invalid := Code("Invalid-Dash")
	if _, err := invalid.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid code must return error")
	}
}

func TestCode_UnmarshalText(t *testing.T) {
	var c Code
	if err := c.UnmarshalText([]byte("  TOO-LONG  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != TooLong {
		t.Fatalf("UnmarshalText() = %q, want %q", c, TooLong)
	}

	var bad Code
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}

func TestRegexAndLengthAreConsistent(t *testing.T) {
	if MinLength != 3 {
		t.Fatalf("MinLength changed, update tests")
	}
	if MaxLength != 64 {
		t.Fatalf("MaxLength changed, update tests")
	}

	long := "a"
	for len(long) < MaxLength {
		long += "a"
	}
	if _, err := Parse(long); err != nil {
		t.Fatalf("expected %d-char code to be valid: %v", len(long), err)
	}
	if _, err := Parse(long + "a"); err == nil {
		t.Fatalf("expected %d-char code to be invalid", len(long)+1)
	}
}
