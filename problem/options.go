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

import "dirpx.dev/dresult/apis"

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithTypeBase replaces the base URI under which type slugs are published,
// e.g. "https://api.example.com/errors/". A trailing slash is appended when
// missing. Changing the base does not change slugs, so client switches on
// the path component remain stable.
func WithTypeBase(base string) Option {
	return func(b *builder) { b.typeBase = base }
}

// WithTitle replaces the static title for the given kind. The title remains
// static — it applies to every occurrence of the kind and is never
// interpolated per request.
func WithTitle(k apis.Kind, title string) Option {
	return func(b *builder) {
		e := b.entries[k]
		e.title = title
		b.entries[k] = e
	}
}

// WithMapping rebinds a kind to a new row (slug, status, title). This is the
// versioned escape hatch for deployments whose contract differs from the
// library defaults.
//
// New enforces the versioning rule: a rebind that changes the status while
// keeping the default slug is rejected, because clients pin meaning to the
// type URI and a silent status change would break them.
func WithMapping(k apis.Kind, slug string, status int, title string) Option {
	return func(b *builder) {
		b.entries[k] = entry{slug: slug, status: status, title: title, rebound: true}
	}
}

// WithReasonType adds a type-refinement rule for the given kind: failures
// whose reason matches the dot-separated prefix get the given slug instead
// of the kind's row slug. The status and title of the kind's row still
// apply — refinement narrows the type URI, it never moves the status.
//
// The prefix is segment-aware; "*" matches exactly one segment, and the
// deepest matching prefix wins.
func WithReasonType(k apis.Kind, prefix, slug string) Option {
	return func(b *builder) {
		b.reasonRules[k] = append(b.reasonRules[k], reasonRule{prefix: prefix, slug: slug})
	}
}
