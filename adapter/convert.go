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

package adapter

import (
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/grpcx"
)

// Descriptor is a flat, transport-friendly description of a failure.
//
// It is intended for structured logging, tracing, or message bus propagation:
// it carries the logical kind/reason together with the resolved transport
// statuses (HTTP and gRPC), without any generic type parameter in the way.
//
// A Descriptor is log-safe by construction: it never contains the captured
// fault text, only the fact that a fault occurred (via Kind).
type Descriptor struct {
	// Kind is the stable snake_case name of the outcome kind.
	Kind string `json:"kind"`

	// Reason is the refinement for forbidden failures, empty otherwise.
	Reason string `json:"reason,omitempty"`

	// HTTPStatus is the status the problem mapper resolves for the kind.
	// Zero when the kind has no wire mapping (canceled) or no mapper was
	// supplied.
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the numeric gRPC status code for the kind.
	GRPCCode int `json:"grpc_code"`

	// Fields lists the violated field paths in reporting order. Populated
	// for validation failures.
	Fields []string `json:"fields,omitempty"`

	// Resource names the entity a not-found or conflict failure is about,
	// as "kind/id". Empty when the failure carries no reference.
	Resource string `json:"resource,omitempty"`
}

// ToDescriptor converts a failure together with the mapper that resolves its
// transport status into a portable Descriptor.
//
// The mapper may be nil; HTTPStatus is then left at zero. The failure's kind
// must be a failure kind — a success has no descriptor.
func ToDescriptor(f *apis.Failure, m apis.Mapper) Descriptor {
	if f == nil {
		return Descriptor{}
	}

	d := Descriptor{
		Kind:     f.Kind.String(),
		Reason:   string(f.Reason),
		GRPCCode: int(grpcx.Code(f.Kind)),
	}
	if m != nil {
		d.HTTPStatus = m.Status(f.Kind, f.Reason)
	}

	for _, v := range f.Violations {
		d.Fields = append(d.Fields, v.Field)
	}

	d.Resource = resourceName(f)
	return d
}

// resourceName renders the failure's resource reference, preferring the
// not-found reference over the conflict one.
func resourceName(f *apis.Failure) string {
	ref := f.Ref
	if ref == (apis.ResourceRef{}) {
		ref = f.Conflict.Resource
	}
	if ref.Kind == "" && ref.ID == "" {
		return ""
	}
	return ref.Kind + "/" + ref.ID
}
