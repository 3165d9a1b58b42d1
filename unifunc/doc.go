// Copyright 2026 ytsurkan
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package unifunc provides Func, a move-only container for a single
// callable of a fixed signature.
//
// A Func is built once, from a plain function value through New, or from
// a function plus up to three bound captures through Bind1, Bind2, and
// Bind3, and is then invoked through Call any number of times. It differs
// from a bare func value in three ways:
//
//   - Ownership is explicit. Move and Swap transfer the held callable and
//     leave the source empty, and Reset drops it, releasing every bound
//     capture immediately instead of waiting for the container to become
//     unreachable.
//   - Emptiness is observable and enforced. IsEmpty reports it, and Call
//     on an empty Func panics with ErrBadCall instead of silently doing
//     nothing or dereferencing a nil func.
//   - Binding through BindN stores the function and its captures in the
//     Func's own slots, so building a callable over pointer-shaped
//     captures(pointers, funcs, maps, channels) performs no heap
//     allocation, where the equivalent closure literal would.
//
// Each storage kind dispatches through its own table of three operations,
// call, move, and drop, selected once at construction. The tables are
// implemented by zero-size types, so selecting one never allocates.
//
// A Func is not safe for concurrent use, and a non-empty Func must not be
// duplicated by plain assignment; like a strings.Builder, it's moved with
// Move or Swap, or passed by pointer.
package unifunc
