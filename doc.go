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

// Package future provides single-assignment promise/future pairs with
// blocking waits and continuation chaining.
//
// A pair is created by NewPromise. The Promise is the producing half: it
// completes the shared state exactly once, with either a value(SetValue)
// or an error(SetError). The Future, retrieved once through
// Promise.Future, is the consuming half: it waits for the outcome(Wait),
// takes it(Get), turns into a multi-reader handle(Share), or chains a
// callback onto it(Then, or the type-changing After).
//
// The state shared by a pair has two states, and it can be in only one
// of them, at any time:
// Pending: no outcome has been recorded yet.
// Completed: an outcome has been recorded, and is final.
//
// A completed state holds one of two outcome kinds:
// a value: recorded by SetValue, returned by Get as (value, nil).
// an error: recorded by SetError, returned by Get as (zero, error).
//
//
// General Notes:-
//
// * Once completed, the outcome never changes, and every reader observes
// the same outcome, any number of times.
//
// * Completing a promise twice is always reported, through
// ErrPromiseAlreadySatisfied, never silently ignored.
//
// * Retrieving the Future of a promise is one-shot, the second retrieval
// reports ErrFutureAlreadyRetrieved.
//
// * The package never starts goroutines. Waiting happens on the caller's
// goroutine, and continuations run on the goroutine that completes the
// state, or on the attaching goroutine when the state was already
// completed at attachment.
//
//
// Handle Notes:-
//
// * A Future is move-only and single-consumer: Get, Share, and After
// each consume it, and a consumed(or zero) Future reports ErrNoState
// from every operation. It must not be used from multiple goroutines.
//
// * A SharedFuture has value semantics: copies share the same state,
// Get never consumes, and any number of copies may Get and Wait
// concurrently.
//
// * A Promise is single-writer. Dropping an unfulfilled Promise without
// completing it would leave its consumers blocked forever, so an
// abandoned Promise should be Closed: Close completes a never-completed
// state with ErrBrokenPromise, releasing waiters and continuations.
//
//
// Continuation Notes:-
//
// * A continuation attached with Then or After runs exactly once, no
// matter how the attachment races with completion.
//
// * The callback receives the source Future already completed: its Get
// returns immediately with the recorded outcome.
//
// * The callback's return value or error becomes the outcome of the
// next Future in the chain.
//
// * If the callback panics, the panic is recovered and recorded in the
// next Future as a *PanicError; it doesn't propagate into the
// completing goroutine's stack.
package future
