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

package reasoncode

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of a refusal reason.
//
// Reasons are dot-separated hierarchical identifiers with a small, fixed
// depth. Each segment names a policy area, component, or rule.
//
// Example valid reasons:
//
//   - "policy.rbac.scope"
//   - "policy.abac.attribute"
//   - "tenant.isolation"
//   - "account.suspended"
//   - "license.seat_limit"
//
// The intent is to make it easy to programmatically build such identifiers
// from known policy/rule names, and later to let problem mappers match on
// these prefixes when refining error type URIs.
type Code string

// MinLength and MaxLength define the allowed length range for a canonical
// reason string.
//
// Reasons may be longer than field codes because they often contain several
// segments (area.component.rule).
const (
	// MinLength is the minimum length for a non-empty reason.
	// Kept at 3 so that trivial values like "x" are not considered
	// meaningful. The empty string is still allowed and means
	// "no reason provided".
	MinLength = 3

	// MaxLength is the maximum length for a valid reason.
	// 128 characters is enough even for 4 segments with descriptive names.
	MaxLength = 128
)

const (
	// reasonFmt is the canonical regular expression used to validate reasons.
	//
	// We accept 1 to 4 segments, dot-separated, each segment:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits, or underscore [a-z0-9_]*
	//
	// Examples that match:
	//
	//	"policy.rbac.scope"
	//	"tenant.isolation"
	//	"account.suspended"
	//
	// Examples that DO NOT match:
	//
	//	"Policy.Rbac" (uppercase)
	//	"policy/rbac" (slash)
	//	"policy..rbac" (empty segment)
	//	"1policy.rbac" (digit first)
	//
	// NOTE: the empty string ("") is treated separately as "optional reason"
	// and does not go through this regexp.
	reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var (
	// reasonRe is the compiled regexp for the above pattern.
	reasonRe = regexp.MustCompile(reasonFmt)
)

var (
	// ErrReasonInvalidFormat is returned when a reason does not conform to
	// the expected format.
	ErrReasonInvalidFormat = errors.New("dresult: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("dresult: invalid reason length")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value reason. It is considered "not provided" and is
// valid to store in outcomes. Callers that require a non-empty, canonical
// reason should explicitly call Validate.
var Empty Code = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical reason form.
//
// We do *very* conservative transformations:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (because callers may build paths with slashes)
//   - replace "-" with "_" (to align with code-style identifiers)
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Code value.
//
// Parse also accepts the empty string and returns reasoncode.Empty without
// error. This is what makes the reason an "optional" part of the outcome
// model.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level reason constants in var/const blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Code {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("dresult: empty reason in MustParse")
	}
	return r
}

// Validate checks whether the provided Code is in canonical form.
//
// The empty reason ("") is considered valid here, because the whole point of
// this type is to be optional. If you need to enforce "must be non-empty",
// add that check at call site.
func Validate(r Code) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// String returns the canonical string representation of the reason.
func (r Code) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler.
//
// We allow marshaling of the empty reason as an empty slice to not break
// JSON encoders that rely on TextMarshaler.
func (r Code) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	if r == Empty {
		return []byte{}, nil
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input will produce reasoncode.Empty.
func (r *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
