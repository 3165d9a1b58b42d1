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

import "errors"

// ErrBadCall is the panic value of Call on an empty Func.
var ErrBadCall = errors.New("unifunc: call of an empty Func")

// Unit is the argument and result type of callables that take and
// return nothing.
type Unit = struct{}

// Proc is the shape of a deferred niladic call, like a completion
// continuation.
type Proc = Func[Unit, Unit]

// Func is a move-only container for one callable of signature func(T) R.
// The zero Func is empty.
type Func[T, R any] struct {
	tab table[T, R]
	s   store
}

// New returns a Func holding fn. New(nil) returns an empty Func.
//
// fn may be any function value of the right signature: a closure, a
// method value, or a plain function. The Func stores only the one-word
// function value; whatever fn captured stays where the closure put it.
func New[T, R any](fn func(T) R) Func[T, R] {
	if fn == nil {
		return Func[T, R]{}
	}
	f := Func[T, R]{tab: direct[T, R]{}}
	f.s.slots[0] = fn
	return f
}

// NewProc adapts a plain func() into the Proc shape without wrapping it
// in a new closure. NewProc(nil) returns an empty Proc.
func NewProc(fn func()) Proc {
	if fn == nil {
		return Proc{}
	}
	return Bind1(runProc, fn)
}

func runProc(fn func(), _ Unit) Unit {
	fn()
	return Unit{}
}

// Bind1 returns a Func that calls fn with the bound capture c1 in front
// of the call argument. Bind1(nil, ...) returns an empty Func.
//
// The capture is stored in the Func's own slots, so binding a
// pointer-shaped capture allocates nothing, where the closure
// func(arg T) R { return fn(c1, arg) } would allocate to hold c1.
func Bind1[C1, T, R any](fn func(C1, T) R, c1 C1) Func[T, R] {
	if fn == nil {
		return Func[T, R]{}
	}
	f := Func[T, R]{tab: bound1[C1, T, R]{}}
	f.s.slots[0] = fn
	f.s.slots[1] = c1
	return f
}

// Bind2 is Bind1 with two bound captures.
func Bind2[C1, C2, T, R any](fn func(C1, C2, T) R, c1 C1, c2 C2) Func[T, R] {
	if fn == nil {
		return Func[T, R]{}
	}
	f := Func[T, R]{tab: bound2[C1, C2, T, R]{}}
	f.s.slots[0] = fn
	f.s.slots[1] = c1
	f.s.slots[2] = c2
	return f
}

// Bind3 is Bind1 with three bound captures, filling the inline storage.
func Bind3[C1, C2, C3, T, R any](fn func(C1, C2, C3, T) R, c1 C1, c2 C2, c3 C3) Func[T, R] {
	if fn == nil {
		return Func[T, R]{}
	}
	f := Func[T, R]{tab: bound3[C1, C2, C3, T, R]{}}
	f.s.slots[0] = fn
	f.s.slots[1] = c1
	f.s.slots[2] = c2
	f.s.slots[3] = c3
	return f
}

// Call invokes the held callable with arg and returns its result.
// It panics with ErrBadCall if the Func is empty. Calling doesn't consume
// the Func; a held callable may be called any number of times.
func (f *Func[T, R]) Call(arg T) R {
	if f.tab == nil {
		panic(ErrBadCall)
	}
	return f.tab.call(&f.s, arg)
}

// IsEmpty reports whether the Func holds no callable, either because it
// never held one, or because it was consumed by Move or dropped by Reset.
func (f *Func[T, R]) IsEmpty() bool {
	return f.tab == nil
}

// Move transfers the held callable into the returned Func, leaving f
// empty. Moving an empty Func returns an empty Func.
func (f *Func[T, R]) Move() Func[T, R] {
	if f.tab == nil {
		return Func[T, R]{}
	}
	n := Func[T, R]{tab: f.tab}
	f.tab.move(&n.s, &f.s)
	f.tab = nil
	return n
}

// Reset drops the held callable and clears its slots, so the bound
// captures are released right away, and leaves f empty. Resetting an
// empty Func is a no-op.
func (f *Func[T, R]) Reset() {
	if f.tab == nil {
		return
	}
	f.tab.drop(&f.s)
	f.tab = nil
}

// Swap exchanges the contents of f and g through a bounded temporary.
// Either or both may be empty. Swapping a Func with itself is a no-op.
func (f *Func[T, R]) Swap(g *Func[T, R]) {
	if f == g {
		return
	}
	ftab, gtab := f.tab, g.tab
	var tmp store
	if ftab != nil {
		ftab.move(&tmp, &f.s)
	}
	if gtab != nil {
		gtab.move(&f.s, &g.s)
	}
	if ftab != nil {
		ftab.move(&g.s, &tmp)
	}
	f.tab, g.tab = gtab, ftab
}
