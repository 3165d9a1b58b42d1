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

// Promise is the producing half of a promise/future pair: the one place
// a state cell can be completed from, exactly once, with either a value
// or an error.
//
// A Promise is a single-writer handle: one goroutine owns it at a time,
// and handing the pointer to another goroutine hands over that
// ownership. The zero Promise has no state cell, and every operation on
// it reports ErrNoState.
type Promise[T any] struct {
	cell *cell[T]
}

// NewPromise allocates a fresh state cell and returns its Promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{cell: newCell[T]()}
}

// SetValue completes the promise with v. It returns ErrNoState on a
// promise without a cell, and ErrPromiseAlreadySatisfied if the promise
// was already completed; a double completion is always reported, never
// silently dropped. On success, all waiters wake, and an attached
// continuation chain runs on this goroutine before SetValue returns.
func (p *Promise[T]) SetValue(v T) error {
	if p.cell == nil {
		return ErrNoState
	}
	return p.cell.setValue(v)
}

// SetError completes the promise with err. Same contract as SetValue.
// A nil err is a bug at the call site, and panics.
func (p *Promise[T]) SetError(err error) error {
	if err == nil {
		panic(nilErrorPanicMsg)
	}
	if p.cell == nil {
		return ErrNoState
	}
	return p.cell.setError(err)
}

// Future returns the read handle of this promise. There is exactly one:
// the second and any later call returns ErrFutureAlreadyRetrieved.
// Retrieval works the same before and after completion.
func (p *Promise[T]) Future() (*Future[T], error) {
	if p.cell == nil {
		return nil, ErrNoState
	}
	if err := p.cell.markRetrieved(); err != nil {
		return nil, err
	}
	return &Future[T]{cell: p.cell}, nil
}

// Close releases the promise's cell and makes the promise stateless.
// If the cell was never completed, Close completes it with
// ErrBrokenPromise first, so waiters and any attached continuation
// chain observe an outcome instead of blocking forever.
//
// Close is idempotent, always returns nil, and closing the zero Promise
// is a no-op. A completed promise may be left to the garbage collector
// without closing; Close matters for promises abandoned before
// completion.
func (p *Promise[T]) Close() error {
	c := p.cell
	if c == nil {
		return nil
	}
	p.cell = nil
	if !c.completed() {
		c.debug(closeBroken)
		_ = c.setError(ErrBrokenPromise)
	}
	return nil
}
