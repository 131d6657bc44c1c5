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
	"testing"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/fieldcode"
	"dirpx.dev/dresult/reasoncode"
)

func TestConstructors_ExactlyOneVariant(t *testing.T) {
	tests := []struct {
		name string
		o    Outcome[string]
		want apis.Kind
	}{
		{"success", OK("payload"), apis.KindSuccess},
		{"not found", NotFound[string](apis.ResourceRef{Kind: "user", ID: "42"}), apis.KindNotFound},
		{"validation failed", Invalid[string](apis.Violation{Field: "name", Code: fieldcode.Required}), apis.KindValidationFailed},
		{"conflict", ConflictWith[string](apis.ConflictDetail{Expected: "v1", Actual: "v2"}), apis.KindConflict},
		{"forbidden", Forbidden[string](reasoncode.MustParse("policy.rbac.scope")), apis.KindForbidden},
		{"internal fault", Faulted[string](errors.New("boom")), apis.KindInternalFault},
		{"canceled", Canceled[string](), apis.KindCanceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.o.Kind(); got != tt.want {
				t.Fatalf("Kind() = %v, want %v", got, tt.want)
			}

			// Tag/payload consistency: Value succeeds only for success,
			// Violations is non-nil only for validation failures.
			_, ok := tt.o.Value()
			if ok != (tt.want == apis.KindSuccess) {
				t.Fatalf("Value() ok=%v for kind %v", ok, tt.want)
			}
			vs := tt.o.Violations()
			if (vs != nil) != (tt.want == apis.KindValidationFailed) {
				t.Fatalf("Violations() = %v for kind %v", vs, tt.want)
			}
		})
	}
}

func TestOK_Value(t *testing.T) {
	o := OK(42)
	v, ok := o.Value()
	if !ok || v != 42 {
		t.Fatalf("Value() = (%d, %v), want (42, true)", v, ok)
	}
}

func TestInvalid_PreservesInsertionOrder(t *testing.T) {
	o := Invalid[Unit](
		apis.Violation{Field: "zz", Code: fieldcode.Required},
		apis.Violation{Field: "aa", Code: fieldcode.TooLong},
	)
	vs := o.Violations()
	if len(vs) != 2 || vs[0].Field != "zz" || vs[1].Field != "aa" {
		t.Fatalf("insertion order not preserved: %+v", vs)
	}
}

func TestInvalid_CopiesViolations(t *testing.T) {
	in := []apis.Violation{{Field: "name", Code: fieldcode.Required}}
	o := Invalid[Unit](in...)

	// mutating the input after construction must not change the outcome
	in[0].Field = "mutated"
	if got := o.Violations()[0].Field; got != "name" {
		t.Fatalf("outcome observed caller mutation: field = %q", got)
	}

	// mutating the accessor result must not change the outcome either
	out := o.Violations()
	out[0].Field = "mutated"
	if got := o.Violations()[0].Field; got != "name" {
		t.Fatalf("outcome observed accessor mutation: field = %q", got)
	}
}

func TestInvalid_PanicsOnEmptyList(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Invalid() with no violations should panic")
		}
	}()
	_ = Invalid[Unit]()
}

func TestFailure_Snapshot(t *testing.T) {
	fault := errors.New("pg: connection reset")
	o := Faulted[string](fault)
	f := o.Failure()
	if f.Kind != apis.KindInternalFault {
		t.Fatalf("Failure().Kind = %v", f.Kind)
	}
	if !errors.Is(f, fault) {
		t.Fatal("Failure must unwrap to the captured fault")
	}
	// The error string must stay safe to expose: kind only, no fault text.
	if f.Error() != "internal_fault" {
		t.Fatalf("Failure.Error() = %q, want %q", f.Error(), "internal_fault")
	}
}

func TestFailure_ErrorIncludesReason(t *testing.T) {
	f := Forbidden[string](reasoncode.MustParse("tenant.isolation")).Failure()
	if f.Error() != "forbidden:tenant.isolation" {
		t.Fatalf("Failure.Error() = %q", f.Error())
	}
}

func TestFailure_PanicsOnSuccess(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Failure() on success should panic")
		}
	}()
	_ = OK("x").Failure()
}

func TestFailAs_RetagsEveryFailureVariant(t *testing.T) {
	ref := apis.ResourceRef{Kind: "order", ID: "7"}
	src := NotFound[Unit](ref)
	dst := FailAs[Unit, string](src)
	if dst.Kind() != apis.KindNotFound {
		t.Fatalf("FailAs changed kind: %v", dst.Kind())
	}
	if dst.Failure().Ref != ref {
		t.Fatalf("FailAs dropped payload: %+v", dst.Failure())
	}

	v := Invalid[Unit](apis.Violation{Field: "name", Code: fieldcode.Duplicate})
	if got := FailAs[Unit, int](v).Violations(); len(got) != 1 || got[0].Code != fieldcode.Duplicate {
		t.Fatalf("FailAs dropped violations: %+v", got)
	}
}

func TestFailAs_PanicsOnSuccess(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("FailAs on success should panic")
		}
	}()
	_ = FailAs[string, int](OK("x"))
}
