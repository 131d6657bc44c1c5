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

// Package grpcx translates non-success outcomes into gRPC status errors
// with canonical googleapis error details, and back.
package grpcx

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/dresult/apis"
)

// grpcCodes is the fixed translation table from outcome kinds to gRPC
// status codes. Like the problem mapper's table it is total over every
// non-success kind and never consulted with a default branch: an unknown
// kind panics in Code. Totality is pinned by a test iterating apis.Kinds().
var grpcCodes = map[apis.Kind]codes.Code{
	apis.KindNotFound:         codes.NotFound,
	apis.KindValidationFailed: codes.InvalidArgument,
	apis.KindConflict:         codes.Aborted,
	apis.KindForbidden:        codes.PermissionDenied,
	apis.KindInternalFault:    codes.Internal,
	// Canceled is representable on gRPC (unlike the problem wire format),
	// so it maps to the canonical cancellation code instead of needing a
	// transport-policy knob.
	apis.KindCanceled: codes.Canceled,
}

// Code resolves the gRPC status code for a non-success kind. It panics on
// KindSuccess — a success has a response, not a status error.
func Code(k apis.Kind) codes.Code {
	c, ok := grpcCodes[k]
	if !ok {
		panic("grpcx: no gRPC code for kind " + k.String())
	}
	return c
}

// Extras holds optional, rich metadata embedded into the status details.
// All fields are optional.
type Extras struct {
	// Domain is the logical service domain for ErrorInfo details, e.g.
	// "orders.dirpx.dev".
	Domain string

	// RetryAfter, when positive, attaches a RetryInfo detail hinting the
	// client when a retry is worthwhile.
	RetryAfter time.Duration
}

// MetaFn extracts Extras from context and the failure.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, f *apis.Failure) Extras

// Error converts a failure into a gRPC status error with structured
// details:
//
//   - validation failures carry an errdetails.BadRequest listing every
//     violation (field, machine code, message);
//   - not-found and conflict failures carry an errdetails.ResourceInfo
//     naming the entity;
//   - forbidden failures carry an errdetails.ErrorInfo with the reason in
//     the conventional UPPER_SNAKE form;
//   - a positive Extras.RetryAfter adds an errdetails.RetryInfo.
//
// The status message is the failure's kind (and reason); internal faults in
// particular never expose the captured error text.
func Error(f *apis.Failure, ex Extras) error {
	if f == nil {
		return nil
	}

	base := status.New(Code(f.Kind), f.Error())

	details := buildDetails(f, ex)
	if len(details) > 0 {
		// Attaching details can only fail on marshal problems; the bare
		// status is still a correct answer then.
		if with, err := base.WithDetails(details...); err == nil {
			return with.Err()
		}
	}
	return base.Err()
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that maps
// *apis.Failure errors returned by handlers into gRPC status errors with
// structured details. Errors of any other type pass through untouched.
//
// The optional MetaFn supplies per-request Extras. If nil, no extra
// metadata is attached.
func UnaryServerInterceptor(metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *apis.Failure) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var f *apis.Failure
		if !errors.As(err, &f) {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, Error(f, metaFn(ctx, f))
	}
}

// ExtractBadRequest pulls the errdetails.BadRequest out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br, true
		}
	}
	return nil, false
}

// buildDetails assembles the per-kind detail messages for a failure.
func buildDetails(f *apis.Failure, ex Extras) []protoadapt.MessageV1 {
	var details []protoadapt.MessageV1

	switch f.Kind {
	case apis.KindValidationFailed:
		br := &errdetails.BadRequest{}
		for _, v := range f.Violations {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Reason:      string(v.Code),
				Description: v.Message,
			})
		}
		details = append(details, br)

	case apis.KindNotFound:
		if f.Ref != (apis.ResourceRef{}) {
			details = append(details, &errdetails.ResourceInfo{
				ResourceType: f.Ref.Kind,
				ResourceName: f.Ref.ID,
			})
		}

	case apis.KindConflict:
		if f.Conflict.Resource != (apis.ResourceRef{}) {
			details = append(details, &errdetails.ResourceInfo{
				ResourceType: f.Conflict.Resource.Kind,
				ResourceName: f.Conflict.Resource.ID,
				Description:  "conflicting state",
			})
		}

	case apis.KindForbidden:
		if f.Reason != "" {
			details = append(details, &errdetails.ErrorInfo{
				Reason: errorInfoReason(string(f.Reason)),
				Domain: ex.Domain,
			})
		}
	}

	if ex.RetryAfter > 0 {
		details = append(details, &errdetails.RetryInfo{
			RetryDelay: durationpb.New(ex.RetryAfter),
		})
	}
	return details
}

// errorInfoReason converts a dotted reason code into the UPPER_SNAKE form
// the ErrorInfo convention expects ("policy.rbac.scope" -> "POLICY_RBAC_SCOPE").
func errorInfoReason(r string) string {
	return strings.ToUpper(strings.ReplaceAll(r, ".", "_"))
}
