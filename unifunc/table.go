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

package unifunc

// tinySlots is the capacity of a Func's inline storage: one slot for the
// function value, and the rest for bound captures.
const tinySlots = 4

// store is the inline storage of a Func. Slot 0 always holds the function
// value, and slots 1 and up hold the captures bound by BindN, in order.
// Which slots are in use is known only to the table that filled them.
type store struct {
	slots [tinySlots]any
}

// table is the per-storage-kind dispatch table of a Func. Each kind is a
// zero-size type implementing these three operations, so a table value
// costs nothing to build, and a nil table is the empty sentinel.
//
// move expects dst to be zeroed; it transfers the used slots and clears
// them in src. drop clears the used slots in place.
type table[T, R any] interface {
	call(s *store, arg T) R
	move(dst, src *store)
	drop(s *store)
}

// direct is the storage kind of New: a bare func(T) R in slot 0.
type direct[T, R any] struct{}

func (direct[T, R]) call(s *store, arg T) R {
	return s.slots[0].(func(T) R)(arg)
}

func (direct[T, R]) move(dst, src *store) {
	dst.slots[0] = src.slots[0]
	src.slots[0] = nil
}

func (direct[T, R]) drop(s *store) {
	s.slots[0] = nil
}

// bound1 is the storage kind of Bind1: a func(C1, T) R in slot 0, and its
// bound capture in slot 1.
type bound1[C1, T, R any] struct{}

func (bound1[C1, T, R]) call(s *store, arg T) R {
	fn := s.slots[0].(func(C1, T) R)
	return fn(s.slots[1].(C1), arg)
}

func (bound1[C1, T, R]) move(dst, src *store) {
	dst.slots[0], dst.slots[1] = src.slots[0], src.slots[1]
	src.slots[0], src.slots[1] = nil, nil
}

func (bound1[C1, T, R]) drop(s *store) {
	s.slots[0], s.slots[1] = nil, nil
}

// bound2 is the storage kind of Bind2.
type bound2[C1, C2, T, R any] struct{}

func (bound2[C1, C2, T, R]) call(s *store, arg T) R {
	fn := s.slots[0].(func(C1, C2, T) R)
	return fn(s.slots[1].(C1), s.slots[2].(C2), arg)
}

func (bound2[C1, C2, T, R]) move(dst, src *store) {
	dst.slots[0], dst.slots[1], dst.slots[2] = src.slots[0], src.slots[1], src.slots[2]
	src.slots[0], src.slots[1], src.slots[2] = nil, nil, nil
}

func (bound2[C1, C2, T, R]) drop(s *store) {
	s.slots[0], s.slots[1], s.slots[2] = nil, nil, nil
}

// bound3 is the storage kind of Bind3. It fills every slot.
type bound3[C1, C2, C3, T, R any] struct{}

func (bound3[C1, C2, C3, T, R]) call(s *store, arg T) R {
	fn := s.slots[0].(func(C1, C2, C3, T) R)
	return fn(s.slots[1].(C1), s.slots[2].(C2), s.slots[3].(C3), arg)
}

func (bound3[C1, C2, C3, T, R]) move(dst, src *store) {
	*dst = *src
	*src = store{}
}

func (bound3[C1, C2, C3, T, R]) drop(s *store) {
	*s = store{}
}
