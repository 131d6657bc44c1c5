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

// Presence / shape violation codes
//
// These codes describe the most common structural problems that cheap,
// in-process validation stages report.
const (
	// Required indicates that a mandatory field was empty, nil, or not
	// supplied at all.
	// Use this from structural stages that check presence before anything
	// else; it is usually the first violation a client sees.
	Required Code = "required"

	// TooShort indicates that a string or collection is below the minimum
	// allowed length/size.
	// Pair the violation message with the concrete minimum so the client can
	// correct the input without a second round trip.
	TooShort Code = "too_short"

	// TooLong indicates that a string or collection exceeds the maximum
	// allowed length/size.
	TooLong Code = "too_long"

	// Pattern indicates that the value does not match the required format
	// (regular expression, date layout, URI shape, etc.).
	Pattern Code = "pattern"

	// Charset indicates that the value contains characters outside the
	// allowed alphabet, even if the overall shape is right.
	Charset Code = "charset"

	// OutOfRange indicates that a numeric or temporal value lies outside the
	// permitted interval.
	OutOfRange Code = "out_of_range"

	// Unknown indicates that the client supplied a field or enum value the
	// server does not recognize.
	// Use this for strict-decoding stages that reject unexpected input
	// instead of silently dropping it.
	Unknown Code = "unknown"
)

// Consistency / relationship violation codes
//
// These codes describe failures that involve more than one field, or a field
// and external state. They are typically reported by expensive stages.
const (
	// Mismatch indicates that two or more fields that must agree do not
	// (confirmation fields, currency vs amount, parent vs child type).
	Mismatch Code = "mismatch"

	// Duplicate indicates that the value collides with an existing entity
	// where uniqueness is required.
	// This is the canonical code for "name already taken" style failures
	// reported by uniqueness-checking stages.
	Duplicate Code = "duplicate"

	// NotUnique indicates that a value repeats inside the request itself
	// (duplicate keys in a list, repeated identifiers).
	// Different from Duplicate, which is about collisions with stored state.
	NotUnique Code = "not_unique"

	// Dangling indicates that the field references an entity that does not
	// exist (foreign-key style lookups performed by expensive stages).
	//
	// Note: a missing *target* of the whole operation is a NotFound outcome,
	// not a violation; Dangling is for references inside the input payload.
	Dangling Code = "dangling"

	// Immutable indicates that the client attempted to change a field that
	// cannot be modified after creation.
	Immutable Code = "immutable"

	// Unsupported indicates that the value is recognized but not accepted by
	// current policy or configuration (disabled provider, disallowed
	// algorithm, retired option).
	Unsupported Code = "unsupported"
)
