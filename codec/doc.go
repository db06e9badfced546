// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package codec provides the primitive little-endian readers and writers used by the
// catbuffer entity codecs.
//
// Every multi-byte integer on the wire is little-endian. 64-bit values are handled as
// a native uint64 internally and exposed as a [low, high] pair of 32-bit words at the
// API boundary where callers need the pair form.
//
// Reader is a bounded cursor that never looks past the end of its buffer and never
// mutates it. Writer accumulates output and remembers the first error it hits, so a
// body encoder can write all of its fields and check for failure once at the end.
package codec
