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

package dresult

import (
	"errors"
	"strings"
	"testing"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/fieldcode"
	"dirpx.dev/dresult/reasoncode"
)

// allCases returns a complete Cases value whose handlers report which
// variant was dispatched.
func allCases() Cases[string, string] {
	return Cases[string, string]{
		Success:          func(v string) string { return "success:" + v },
		NotFound:         func(ref apis.ResourceRef) string { return "not_found:" + ref.ID },
		ValidationFailed: func(vs []apis.Violation) string { return "validation_failed:" + vs[0].Field },
		Conflict:         func(d apis.ConflictDetail) string { return "conflict:" + d.Actual },
		Forbidden:        func(r reasoncode.Code) string { return "forbidden:" + string(r) },
		InternalFault:    func(err error) string { return "internal_fault" },
		Canceled:         func() string { return "canceled" },
	}
}

func TestMatch_DispatchesEveryVariant(t *testing.T) {
	c := allCases()
	tests := []struct {
		name string
		o    Outcome[string]
		want string
	}{
		{"success", OK("v"), "success:v"},
		{"not found", NotFound[string](apis.ResourceRef{ID: "42"}), "not_found:42"},
		{"validation failed", Invalid[string](apis.Violation{Field: "name", Code: fieldcode.Required}), "validation_failed:name"},
		{"conflict", ConflictWith[string](apis.ConflictDetail{Actual: "v2"}), "conflict:v2"},
		{"forbidden", Forbidden[string](reasoncode.MustParse("policy.rbac")), "forbidden:policy.rbac"},
		{"internal fault", Faulted[string](errors.New("x")), "internal_fault"},
		{"canceled", Canceled[string](), "canceled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.o, c); got != tt.want {
				t.Fatalf("Match() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatch_PanicsOnMissingCase(t *testing.T) {
	c := allCases()
	c.Conflict = nil

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Match with a nil case for the populated variant should panic")
		}
		if !strings.Contains(r.(string), "Conflict") {
			t.Fatalf("panic must name the missing variant, got %v", r)
		}
	}()
	_ = Match(ConflictWith[string](apis.ConflictDetail{}), c)
}

func TestMatch_NilCaseForOtherVariantIsNotReached(t *testing.T) {
	// A nil case is only a problem for the variant that actually occurs.
	c := allCases()
	c.Canceled = nil
	if got := Match(OK("v"), c); got != "success:v" {
		t.Fatalf("Match() = %q", got)
	}
}

func TestCases_Complete(t *testing.T) {
	if err := allCases().Complete(); err != nil {
		t.Fatalf("complete Cases reported: %v", err)
	}

	c := allCases()
	c.InternalFault = nil
	err := c.Complete()
	if err == nil {
		t.Fatalf("Complete() must fail on a missing case")
	}
	if !strings.Contains(err.Error(), "InternalFault") {
		t.Fatalf("error must name the missing case, got %v", err)
	}
}
