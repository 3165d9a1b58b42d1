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

package future

import (
	"github.com/ytsurkan/future/unifunc"
)

// Future is the consuming half of a promise/future pair: a move-only,
// single-consumer handle on one eventual outcome.
//
// Get, Share, and After each consume the Future, leaving it without a
// state cell, and a consumed or zero Future reports ErrNoState from
// every operation. A Future belongs to one goroutine at a time; for
// many concurrent readers of the same outcome, turn it into a
// SharedFuture with Share.
type Future[T any] struct {
	cell *cell[T]
}

// Valid reports whether the Future still refers to a state cell, that
// is, whether it hasn't been consumed yet. A nil Future is invalid.
func (f *Future[T]) Valid() bool {
	return f != nil && f.cell != nil
}

// Wait blocks until the outcome is recorded. It doesn't consume the
// Future: Get still works afterwards, and returns without blocking.
func (f *Future[T]) Wait() error {
	if f == nil || f.cell == nil {
		return ErrNoState
	}
	f.cell.wait()
	return nil
}

// Get consumes the Future, waits for the outcome, and returns it: the
// recorded value, or the recorded error exactly as it was stored.
// The Future is consumed even while Get is still blocked, so a second
// Get, from any point on, returns ErrNoState.
func (f *Future[T]) Get() (T, error) {
	if f == nil || f.cell == nil {
		var zero T
		return zero, ErrNoState
	}
	c := f.cell
	f.cell = nil
	return c.get()
}

// Share consumes the Future and returns a SharedFuture over the same
// cell. Sharing an already consumed, zero, or nil Future doesn't fail,
// it yields an invalid SharedFuture.
func (f *Future[T]) Share() SharedFuture[T] {
	if f == nil {
		return SharedFuture[T]{}
	}
	c := f.cell
	f.cell = nil
	return SharedFuture[T]{cell: c}
}

// Then chains fn to run once this Future completes. It's the same-type
// form of After; see After for the full contract.
func (f *Future[T]) Then(fn func(*Future[T]) (T, error)) (*Future[T], error) {
	return After(f, fn)
}

// After consumes f and returns the Future of fn's own outcome.
//
// Once f's cell completes, fn receives the source Future, completed and
// ready to Get without blocking; fn is its one consumer. fn's return
// value or error becomes the outcome of the returned Future, and a
// panic out of fn is recovered into a *PanicError outcome, it never
// unwinds the goroutine that happened to complete the cell.
//
// fn runs on the goroutine that completes f's cell, or right here,
// before After returns, if the cell has already completed. Nothing is
// ever run on a new goroutine.
//
// After fails with ErrNoState if f was already consumed, and panics on
// a nil fn.
func After[T, R any](f *Future[T], fn func(*Future[T]) (R, error)) (*Future[R], error) {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	if f == nil || f.cell == nil {
		return nil, ErrNoState
	}

	next := NewPromise[R]()
	nf, err := next.Future()
	if err != nil {
		// a fresh promise's future can't have been retrieved
		return nil, err
	}

	src := f.cell
	f.cell = nil
	src.setContinuation(unifunc.Bind3(runAfter[T, R], src, next, fn))
	return nf, nil
}

// runAfter is the stored shape of every continuation: it rebuilds the
// source Future over the completed cell, hands it to fn, and routes
// fn's outcome, or its panic, into the next promise. Binding it with
// its three captures keeps an attachment free of closure allocations.
func runAfter[T, R any](src *cell[T], next *Promise[R], fn func(*Future[T]) (R, error), _ unifunc.Unit) (_ unifunc.Unit) {
	defer func() {
		if v := recover(); v != nil {
			_ = next.SetError(newPanicError(v))
		}
	}()

	v, err := fn(&Future[T]{cell: src})
	if err != nil {
		_ = next.SetError(err)
	} else {
		_ = next.SetValue(v)
	}
	return
}
