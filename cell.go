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
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/ytsurkan/future/internal/status"
	"github.com/ytsurkan/future/unifunc"
)

// cell is the state shared between one Promise and its line of read
// handles. It records exactly one outcome, a value or an error, wakes
// every waiter when the outcome lands, and owns at most one pending
// continuation, which runs exactly once, on whichever goroutine turns
// out to be the one that observed "completed and continuation present"
// first.
type cell[T any] struct {
	// stat is the hot word: every wait and poll loads it without the
	// monitor, so it's kept off the monitor's cache line.
	stat status.CellStatus
	_    cpu.CacheLinePad

	mu   sync.Mutex
	cond sync.Cond

	val  T
	err  error
	cont unifunc.Proc

	id cellID
}

func newCell[T any]() *cell[T] {
	c := &cell[T]{id: newCellID()}
	c.cond.L = &c.mu
	c.debug(cellCreate)
	return c
}

// completed is the lock-free completion check.
func (c *cell[T]) completed() bool {
	return status.IsStateCompleted(c.stat.Load())
}

// setValue records v as the cell's outcome. It fails with
// ErrPromiseAlreadySatisfied if an outcome is already recorded.
// On success it wakes every waiter and then runs the detached
// continuation, if one was attached, on the calling goroutine.
func (c *cell[T]) setValue(v T) error {
	c.mu.Lock()
	if status.IsStateCompleted(c.stat.Load()) {
		c.mu.Unlock()
		return ErrPromiseAlreadySatisfied
	}
	// the outcome must be in place before the status flips, readers
	// check the status without the monitor.
	c.val = v
	c.stat.SetCompletedValue()
	cont := c.cont.Move()
	c.mu.Unlock()

	c.cond.Broadcast()
	c.debug(cellCompleteValue)
	if !cont.IsEmpty() {
		c.debug(contRunOnComplete)
		cont.Call(unifunc.Unit{})
	}
	return nil
}

// setError records err as the cell's outcome. Same contract as setValue.
func (c *cell[T]) setError(err error) error {
	c.mu.Lock()
	if status.IsStateCompleted(c.stat.Load()) {
		c.mu.Unlock()
		return ErrPromiseAlreadySatisfied
	}
	c.err = err
	c.stat.SetCompletedError()
	cont := c.cont.Move()
	c.mu.Unlock()

	c.cond.Broadcast()
	c.debug(cellCompleteError)
	if !cont.IsEmpty() {
		c.debug(contRunOnComplete)
		cont.Call(unifunc.Unit{})
	}
	return nil
}

// setContinuation hands the cell its continuation. If the cell is still
// pending, the continuation is stored, replacing any previous one, empty
// or not. If the cell already completed, the continuation runs right
// here, after the monitor is released. Exactly one side, the completer
// or the attacher, ever runs a given continuation.
func (c *cell[T]) setContinuation(p unifunc.Proc) {
	c.mu.Lock()
	if !status.IsStateCompleted(c.stat.Load()) {
		c.cont = p
		c.mu.Unlock()
		c.debug(contAttach)
		return
	}
	c.mu.Unlock()

	if !p.IsEmpty() {
		c.debug(contRunOnAttach)
		p.Call(unifunc.Unit{})
	}
}

// resetContinuation discards the stored continuation, if any, without
// running it.
func (c *cell[T]) resetContinuation() {
	c.mu.Lock()
	c.cont.Reset()
	c.mu.Unlock()
	c.debug(contDiscard)
}

// markRetrieved claims the cell's one read handle. Only the first call
// succeeds. It takes no part in the monitor: retrieval is independent
// of completion.
func (c *cell[T]) markRetrieved() error {
	if first, _ := c.stat.SetRetrieved(); !first {
		return ErrFutureAlreadyRetrieved
	}
	c.debug(cellRetrieve)
	return nil
}

// wait blocks until the cell completes. The fast path is one atomic
// load; the slow path parks on the monitor until a completer broadcasts.
// Any number of goroutines may wait at once.
func (c *cell[T]) wait() {
	if c.completed() {
		return
	}
	c.mu.Lock()
	for !status.IsStateCompleted(c.stat.Load()) {
		c.cond.Wait()
	}
	c.mu.Unlock()
}

// get waits for completion and returns the recorded outcome. The cell
// itself is never consumed: every call observes the same outcome.
func (c *cell[T]) get() (T, error) {
	c.wait()
	if status.IsOutcomeErrored(c.stat.Load()) {
		var zero T
		return zero, c.err
	}
	return c.val, nil
}
