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

package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dirpx.dev/dresult/apis"
)

// StatusClientClosedRequest is the nginx-convention status for a request
// the client abandoned. It is the default translation for a Canceled
// outcome; integrators that prefer 408 or no response at all can set
// Writer.CanceledStatus.
const StatusClientClosedRequest = 499

// Meta carries extra context the HTTP layer can add on top of a failure.
// All fields are optional and typically come from rate-limiter output or
// router-level logic.
type Meta struct {
	// RetryAfterSeconds, when positive, emits a Retry-After header.
	RetryAfterSeconds int
}

// Writer is a thin adapter that knows how to turn a failure into an HTTP
// response using the provided problem mapper.
//
// The writer handles only the non-success path. Success payloads are the
// handler's own business: the handler picks 200/201/204 by context and
// writes the payload with JSON, keeping the success media type entirely
// separate from the problem media type.
type Writer struct {
	Mapper apis.Mapper

	// CanceledStatus is the status written for a Canceled failure; zero
	// means StatusClientClosedRequest. A Canceled failure never gets a
	// problem document body — it is not a business error, so clients must
	// not be taught to parse one out of it.
	CanceledStatus int
}

// Write serializes the failure as an RFC 7807 problem document and writes
// it to rw. The instance URI identifies the specific request or resource.
//
// The response content type is the problem media type, never the success
// media type, so clients can dispatch on the content type alone.
func (w Writer) Write(rw http.ResponseWriter, f *apis.Failure, instance string) {
	w.WriteWithMeta(rw, f, instance, Meta{})
}

// WriteWithMeta is Write plus response metadata (Retry-After).
func (w Writer) WriteWithMeta(rw http.ResponseWriter, f *apis.Failure, instance string, meta Meta) {
	if f == nil {
		return
	}

	if f.Kind == apis.KindCanceled {
		st := w.CanceledStatus
		if st == 0 {
			st = StatusClientClosedRequest
		}
		rw.WriteHeader(st)
		return
	}

	p := w.Mapper.Problem(*f, instance)

	rw.Header().Set("Content-Type", apis.MediaType)
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(p.Status)

	// Header is already written; an encode failure at this point cannot be
	// reported to the client anymore.
	_ = json.NewEncoder(rw).Encode(p)
}

// JSON writes a success payload with the given status. The caller chooses
// the status by context (200 for reads, 201 for creates, 204 with a nil
// payload for deletes); no component of this subsystem chooses it for them.
func JSON(rw http.ResponseWriter, status int, payload any) {
	if payload == nil {
		rw.WriteHeader(status)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(payload)
}
