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

package status

import (
	"runtime"
	"sync/atomic"
)

var (
	cas  = atomic.CompareAndSwapUint32
	load = atomic.LoadUint32
	swap = atomic.SwapUint32
)

// CellStatus holds the value that represents the completion and retrieval
// status of a state cell.
// It's read and written/updated atomically.
type CellStatus uint32

// the lock's related values and constants, using 4 bits(the [1st : 4th] bits)
const (
	// lockAcquired is the value of the status when some update call is
	// running(one of the Set methods).
	lockAcquired uint32 = 1 << iota
	_                   // reserved
	_                   // reserved
	_                   // reserved
)

// the state's related values and constants, using 2 bits(the [5th : 6th] bits)
const (
	// starting with a shift amount of 4, which is the number of bits used by
	// the previous section.

	// state modes, using 2 bits, with 2 values reserved
	statePending   uint32 = iota << 4
	stateCompleted uint32 = iota << 4

	// stateBitsSetMask and stateBitsClrMask are &-ed with the status to get
	// the state value and clear the state value, respectively.
	stateBitsSetMask uint32 = 3 << 4
	stateBitsClrMask        = ^stateBitsSetMask
)

// the outcome's related values and constants, using 2 bits(the [7th : 8th] bits)
const (
	// starting with a shift amount of 6, which is the number of bits used by
	// previous sections.

	// outcome kinds, using 2 bits, meaningful only once the state is
	// 'completed'
	outcomeNone    uint32 = iota << 6
	outcomeValue   uint32 = iota << 6
	outcomeErrored uint32 = iota << 6

	// outcomeBitsSetMask and outcomeBitsClrMask are &-ed with the status to
	// get the outcome value and clear the outcome value, respectively.
	outcomeBitsSetMask uint32 = 3 << 6
	outcomeBitsClrMask        = ^outcomeBitsSetMask
)

// the flags' related values and constants, using 4 bits(the [9th : 12th] bits)
const (
	// FlagsRetrieved is set by the first, and only successful, retrieval
	// of the cell's read handle.
	FlagsRetrieved uint32 = 1 << (iota + 8)
	_                     = 1 << (iota + 8) // reserved
	_                     = 1 << (iota + 8) // reserved
	_                     = 1 << (iota + 8) // reserved
)

func (s *CellStatus) readAndAcquireLock() (currentStatus uint32) {
	// read the current status value, and acquire the update lock,
	// by checking if there's any other, previous, update call is
	// still processing, and wait for it to finish.
	cs := swap((*uint32)(s), lockAcquired)
	for cs == lockAcquired {
		// don't actively wait for concurrent update calls, instead,
		// tell the go scheduler to run other goroutines(including the
		// one which has the lock) instead of the current(waiting) one.
		runtime.Gosched()
		cs = swap((*uint32)(s), lockAcquired)
	}
	// at this point, the value of the current status, cs, here is
	// only available to this method and its caller.
	return cs
}

func (s *CellStatus) saveAndReleaseLock(newStatus uint32) {
	// save the new status value, and release the update lock
	if !cas((*uint32)(s), lockAcquired, newStatus) {
		// panic if the status value has been changed unexpectedly
		panic("future: internal: unexpected status change")
	}
}

// Load returns the current status value, if it's not being updated right now,
// and if it's, it waits until it's updated then return the value.
func (s *CellStatus) Load() (currentStatus uint32) {
	// read the current status value, and return it, as long as the
	// read value is not the locked status, otherwise, wait until the
	// read value becomes different than the locked status.
	cs := load((*uint32)(s))
	for cs == lockAcquired {
		cs = load((*uint32)(s))
	}
	return cs
}

// SetCompletedValue moves the state to Completed with a Value outcome.
// It reports set = false, leaving the status unchanged, if the state
// was already Completed by a previous call.
func (s *CellStatus) SetCompletedValue() (set bool, status uint32) {
	return s.setCompleted(outcomeValue)
}

// SetCompletedError moves the state to Completed with an Errored outcome.
// It reports set = false, leaving the status unchanged, if the state
// was already Completed by a previous call.
func (s *CellStatus) SetCompletedError() (set bool, status uint32) {
	return s.setCompleted(outcomeErrored)
}

func (s *CellStatus) setCompleted(outcome uint32) (set bool, status uint32) {
	// read the current status value, and acquire the update lock
	cs := s.readAndAcquireLock()
	// create a new status value from the current one
	ns := cs

	// set the state to completed, only if the state is pending
	if ns&stateBitsSetMask == statePending {
		ns &= stateBitsClrMask   // clear the state bits
		ns &= outcomeBitsClrMask // clear the outcome bits
		ns |= stateCompleted     // set the state to completed
		ns |= outcome            // set the outcome kind
		set = true               // this is the completing call
	}

	// save the new status value, and release the update lock
	s.saveAndReleaseLock(ns)
	return set, ns
}

// SetRetrieved sets the retrieved flag. It reports first = false if the
// flag was already set by a previous call, so retrieval stays one-shot.
func (s *CellStatus) SetRetrieved() (first bool, status uint32) {
	// read the current status value, and acquire the update lock
	cs := s.readAndAcquireLock()
	// create a new status value from the current one
	ns := cs

	// set the retrieved flag, only if it hasn't been set before
	if ns&FlagsRetrieved == 0 {
		ns |= FlagsRetrieved // set the retrieved flag
		first = true         // this is the first retrieval
	}

	// save the new status value, and release the update lock
	s.saveAndReleaseLock(ns)
	return first, ns
}
