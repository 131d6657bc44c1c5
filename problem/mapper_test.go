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

package problem

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/fieldcode"
	"dirpx.dev/dresult/reasoncode"
)

func mustNew(t *testing.T, opts ...Option) apis.Mapper {
	t.Helper()
	m, err := New(opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return m
}

func TestNew_DefaultTable(t *testing.T) {
	m := mustNew(t)

	tests := []struct {
		kind       apis.Kind
		wantType   string
		wantStatus int
		wantTitle  string
	}{
		{apis.KindNotFound, "https://dirpx.dev/errors/not-found", 404, "Resource not found"},
		{apis.KindValidationFailed, "https://dirpx.dev/errors/validation-failed", 422, "Validation failed"},
		{apis.KindConflict, "https://dirpx.dev/errors/conflict", 409, "Conflict"},
		{apis.KindForbidden, "https://dirpx.dev/errors/forbidden", 403, "Forbidden"},
		{apis.KindInternalFault, "https://dirpx.dev/errors/internal", 500, "Internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := m.Problem(apis.Failure{Kind: tt.kind}, "/req/1")
			if p.Type != tt.wantType {
				t.Fatalf("Type = %q, want %q", p.Type, tt.wantType)
			}
			if p.Status != tt.wantStatus {
				t.Fatalf("Status = %d, want %d", p.Status, tt.wantStatus)
			}
			if p.Title != tt.wantTitle {
				t.Fatalf("Title = %q, want %q", p.Title, tt.wantTitle)
			}
			if p.Instance != "/req/1" {
				t.Fatalf("Instance = %q", p.Instance)
			}
			if got := m.Status(tt.kind, reasoncode.Empty); got != tt.wantStatus {
				t.Fatalf("Status() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}

func TestProblem_NotFoundDetail(t *testing.T) {
	m := mustNew(t)

	p := m.Problem(apis.Failure{
		Kind: apis.KindNotFound,
		Ref:  apis.ResourceRef{Kind: "user", ID: "42"},
	}, "/users/42")
	if p.Detail != `The user "42" does not exist.` {
		t.Fatalf("Detail = %q", p.Detail)
	}

	p = m.Problem(apis.Failure{Kind: apis.KindNotFound}, "/users/42")
	if p.Detail != "The requested resource does not exist." {
		t.Fatalf("Detail without ref = %q", p.Detail)
	}
}

func TestProblem_SortsViolations(t *testing.T) {
	m := mustNew(t)

	f := apis.Failure{
		Kind: apis.KindValidationFailed,
		Violations: []apis.Violation{
			{Field: "zz", Code: fieldcode.Required},
			{Field: "aa", Code: fieldcode.TooLong},
			{Field: "aa", Code: fieldcode.Charset},
		},
	}
	p := m.Problem(f, "/req/1")

	if len(p.Violations) != 3 {
		t.Fatalf("got %d violations", len(p.Violations))
	}
	// Sorted by field, then code, independent of reporting order.
	want := []apis.Violation{
		{Field: "aa", Code: fieldcode.Charset},
		{Field: "aa", Code: fieldcode.TooLong},
		{Field: "zz", Code: fieldcode.Required},
	}
	for i, v := range want {
		if p.Violations[i] != v {
			t.Fatalf("Violations[%d] = %+v, want %+v", i, p.Violations[i], v)
		}
	}
	// The failure itself keeps reporting order.
	if f.Violations[0].Field != "zz" {
		t.Fatalf("mapper mutated the failure's violation order")
	}

	if p.Detail != "The request failed 3 validation rules." {
		t.Fatalf("Detail = %q", p.Detail)
	}
	if one := m.Problem(apis.Failure{
		Kind:       apis.KindValidationFailed,
		Violations: []apis.Violation{{Field: "name", Code: fieldcode.Required}},
	}, ""); one.Detail != "The request failed 1 validation rule." {
		t.Fatalf("Detail = %q", one.Detail)
	}
}

func TestProblem_RedactsInternalFault(t *testing.T) {
	m := mustNew(t)

	fault := errors.New("pg: password authentication failed for user app")
	p := m.Problem(apis.Failure{Kind: apis.KindInternalFault, Fault: fault}, "/req/9")

	if p.Detail != "An internal error occurred." {
		t.Fatalf("Detail = %q, want the fixed redaction sentence", p.Detail)
	}

	// Nothing of the fault may survive serialization.
	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "password") {
		t.Fatalf("fault text leaked into the wire document: %s", raw)
	}
}

func TestProblem_ConflictExtension(t *testing.T) {
	m := mustNew(t)

	d := apis.ConflictDetail{
		Resource: apis.ResourceRef{Kind: "order", ID: "7"},
		Expected: "v1",
		Actual:   "v3",
	}
	p := m.Problem(apis.Failure{Kind: apis.KindConflict, Conflict: d}, "")
	if p.Conflict == nil || *p.Conflict != d {
		t.Fatalf("Conflict = %+v, want %+v", p.Conflict, d)
	}

	// A zero detail is omitted entirely rather than serialized empty.
	if p := m.Problem(apis.Failure{Kind: apis.KindConflict}, ""); p.Conflict != nil {
		t.Fatalf("zero conflict detail must be omitted, got %+v", *p.Conflict)
	}
}

func TestProblem_ForbiddenCarriesReason(t *testing.T) {
	m := mustNew(t)

	r := reasoncode.MustParse("tenant.isolation")
	p := m.Problem(apis.Failure{Kind: apis.KindForbidden, Reason: r}, "")
	if p.Reason != r {
		t.Fatalf("Reason = %q, want %q", p.Reason, r)
	}
}

func TestProblem_PanicsOnNonWireKinds(t *testing.T) {
	m := mustNew(t)

	for _, k := range []apis.Kind{apis.KindSuccess, apis.KindCanceled} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Problem(%v) should panic", k)
				}
			}()
			_ = m.Problem(apis.Failure{Kind: k}, "")
		}()
	}
}

func TestStatus_UnmappedKindIsZero(t *testing.T) {
	m := mustNew(t)
	if got := m.Status(apis.KindCanceled, reasoncode.Empty); got != 0 {
		t.Fatalf("Status(canceled) = %d, want 0", got)
	}
	if got := m.Status(apis.KindSuccess, reasoncode.Empty); got != 0 {
		t.Fatalf("Status(success) = %d, want 0", got)
	}
}

func TestWithTypeBase(t *testing.T) {
	m := mustNew(t, WithTypeBase("https://api.example.com/errors"))
	p := m.Problem(apis.Failure{Kind: apis.KindNotFound}, "")
	if p.Type != "https://api.example.com/errors/not-found" {
		t.Fatalf("Type = %q", p.Type)
	}
}

func TestWithTitle(t *testing.T) {
	m := mustNew(t, WithTitle(apis.KindConflict, "Edit conflict"))
	p := m.Problem(apis.Failure{Kind: apis.KindConflict}, "")
	if p.Title != "Edit conflict" {
		t.Fatalf("Title = %q", p.Title)
	}
	// Status and slug stay at the defaults.
	if p.Status != 409 || p.Type != "https://dirpx.dev/errors/conflict" {
		t.Fatalf("title change moved the row: status=%d type=%q", p.Status, p.Type)
	}
}

func TestWithMapping_RequiresNewSlugForNewStatus(t *testing.T) {
	// Keeping the default slug while moving the status breaks clients that
	// pin meaning to the type URI; New must reject it.
	_, err := New(WithMapping(apis.KindConflict, "conflict", 412, "Precondition failed"))
	if err == nil {
		t.Fatal("rebind with default slug and changed status must fail")
	}

	// Same move with a fresh slug is the sanctioned versioned path.
	m := mustNew(t, WithMapping(apis.KindConflict, "conflict-v2", 412, "Precondition failed"))
	p := m.Problem(apis.Failure{Kind: apis.KindConflict}, "")
	if p.Type != "https://dirpx.dev/errors/conflict-v2" || p.Status != 412 || p.Title != "Precondition failed" {
		t.Fatalf("rebind not applied: %+v", p)
	}
}

func TestNew_RejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"empty base", []Option{WithTypeBase("  ")}},
		{"mapping for success", []Option{WithMapping(apis.KindSuccess, "ok", 200, "OK")}},
		{"mapping for canceled", []Option{WithMapping(apis.KindCanceled, "canceled", 499, "Canceled")}},
		{"non-error status", []Option{WithMapping(apis.KindNotFound, "gone", 200, "Gone")}},
		{"empty title", []Option{WithTitle(apis.KindNotFound, "")}},
		{"empty refinement slug", []Option{WithReasonType(apis.KindForbidden, "policy.rbac", "")}},
		{"refinement on canceled", []Option{WithReasonType(apis.KindCanceled, "policy", "x")}},
		{"invalid refinement prefix", []Option{WithReasonType(apis.KindForbidden, "policy..rbac", "x")}},
		{"all-wildcard refinement", []Option{WithReasonType(apis.KindForbidden, "*.*", "x")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts...); err == nil {
				t.Fatal("New() should fail")
			}
		})
	}
}

func TestWithReasonType_DeepestPrefixWins(t *testing.T) {
	m := mustNew(t,
		WithReasonType(apis.KindForbidden, "policy", "forbidden-policy"),
		WithReasonType(apis.KindForbidden, "policy.rbac", "forbidden-rbac"),
	)

	tests := []struct {
		reason string
		want   string
	}{
		{"policy.rbac.scope", "https://dirpx.dev/errors/forbidden-rbac"},
		{"policy.abac.attribute", "https://dirpx.dev/errors/forbidden-policy"},
		{"account.suspended", "https://dirpx.dev/errors/forbidden"},
		{"", "https://dirpx.dev/errors/forbidden"},
	}
	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			var r reasoncode.Code
			if tt.reason != "" {
				r = reasoncode.MustParse(tt.reason)
			}
			p := m.Problem(apis.Failure{Kind: apis.KindForbidden, Reason: r}, "")
			if p.Type != tt.want {
				t.Fatalf("Type = %q, want %q", p.Type, tt.want)
			}
			// Refinement narrows the type only; status and title hold still.
			if p.Status != 403 || p.Title != "Forbidden" {
				t.Fatalf("refinement moved the row: status=%d title=%q", p.Status, p.Title)
			}
		})
	}
}

func TestProblem_Deterministic(t *testing.T) {
	m := mustNew(t, WithReasonType(apis.KindForbidden, "policy.rbac", "forbidden-rbac"))

	f := apis.Failure{
		Kind:   apis.KindForbidden,
		Reason: reasoncode.MustParse("policy.rbac.scope"),
	}
	first := m.Problem(f, "/req/1")
	for i := 0; i < 100; i++ {
		if got := m.Problem(f, "/req/1"); got.Type != first.Type || got.Status != first.Status || got.Detail != first.Detail {
			t.Fatalf("iteration %d produced a different document: %+v", i, got)
		}
	}
}

func TestMapper_ConcurrentUse(t *testing.T) {
	m := mustNew(t, WithReasonType(apis.KindForbidden, "policy", "forbidden-policy"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				p := m.Problem(apis.Failure{
					Kind:   apis.KindForbidden,
					Reason: reasoncode.MustParse("policy.rbac.scope"),
				}, "/req")
				if p.Status != 403 {
					panic("unexpected status")
				}
				_ = m.Explain(apis.KindNotFound, reasoncode.Empty)
			}
		}()
	}
	wg.Wait()
}
