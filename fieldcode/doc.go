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

// Package fieldcode provides parsing, normalization and validation for the
// machine-readable codes attached to field violations.
//
// A "field code" names the exact rule a field violated, such as "required",
// "duplicate" or "too_long". Codes are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and for client-side switching.
//
// Clients are expected to dispatch on the code, never on the human message,
// so a code is part of the wire contract: renaming one is a breaking change.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every violation MUST have a
// non-empty code.
//
// This package defines the canonical representation, the functions that
// convert arbitrary input to that canonical form, and a catalog of
// well-known codes that validation stages should prefer over inventing
// their own spellings.
package fieldcode
