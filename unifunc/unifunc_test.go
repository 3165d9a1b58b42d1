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

import (
	"errors"
	"testing"
)

func square(x int) int { return x * x }

func addBase(base, x int) int { return base + x }

func expectBadCall[T, R any](t *testing.T, f *Func[T, R], arg T) {
	t.Helper()
	defer func() {
		v := recover()
		if v == nil {
			t.Fatalf("Call on an empty Func didn't panic")
		}
		err, ok := v.(error)
		if !ok || !errors.Is(err, ErrBadCall) {
			t.Fatalf("panic value = %v, want: %v", v, ErrBadCall)
		}
	}()
	f.Call(arg)
}

func TestFunc_Empty(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		var f Func[int, int]
		if !f.IsEmpty() {
			t.Fatalf("IsEmpty = false, want: true")
		}
		expectBadCall(t, &f, 1)
	})

	t.Run("new with nil", func(t *testing.T) {
		f := New[int, int](nil)
		if !f.IsEmpty() {
			t.Fatalf("IsEmpty = false, want: true")
		}
	})

	t.Run("bind with nil", func(t *testing.T) {
		f1 := Bind1[int, int, int](nil, 1)
		f2 := Bind2[int, int, int, int](nil, 1, 2)
		f3 := Bind3[int, int, int, int, int](nil, 1, 2, 3)
		if !f1.IsEmpty() || !f2.IsEmpty() || !f3.IsEmpty() {
			t.Fatalf("a Func bound over a nil callable is not empty")
		}
	})

	t.Run("new proc with nil", func(t *testing.T) {
		p := NewProc(nil)
		if !p.IsEmpty() {
			t.Fatalf("IsEmpty = false, want: true")
		}
	})
}

func TestFunc_Call(t *testing.T) {
	t.Run("function value", func(t *testing.T) {
		f := New(square)
		if got := f.Call(5); got != 25 {
			t.Fatalf("Call(5) = %v, want: 25", got)
		}
		if f.IsEmpty() {
			t.Fatalf("IsEmpty = true after a call, want: false")
		}
	})

	t.Run("closure", func(t *testing.T) {
		base := 10
		f := New(func(x int) int { return base + x })
		if got := f.Call(5); got != 15 {
			t.Fatalf("Call(5) = %v, want: 15", got)
		}
	})

	t.Run("pointer argument", func(t *testing.T) {
		f := New(func(p *int) Unit {
			*p = *p + 1
			return Unit{}
		})
		n := 41
		f.Call(&n)
		if n != 42 {
			t.Fatalf("n = %v, want: 42", n)
		}
	})

	t.Run("repeated calls", func(t *testing.T) {
		total := 0
		f := New(func(x int) int {
			total += x
			return total
		})
		f.Call(1)
		f.Call(2)
		if got := f.Call(3); got != 6 {
			t.Fatalf("third Call = %v, want: 6", got)
		}
	})
}

func TestFunc_Bind(t *testing.T) {
	t.Run("bind1", func(t *testing.T) {
		f := Bind1(addBase, 100)
		if got := f.Call(5); got != 105 {
			t.Fatalf("Call(5) = %v, want: 105", got)
		}
	})

	t.Run("bind2", func(t *testing.T) {
		f := Bind2(func(a, b, x int) int { return a*b + x }, 3, 4)
		if got := f.Call(5); got != 17 {
			t.Fatalf("Call(5) = %v, want: 17", got)
		}
	})

	t.Run("bind3", func(t *testing.T) {
		f := Bind3(func(a, b, c, x int) int { return a + b + c + x }, 1, 2, 3)
		if got := f.Call(4); got != 10 {
			t.Fatalf("Call(4) = %v, want: 10", got)
		}
	})

	t.Run("bound pointers", func(t *testing.T) {
		a, b := 1, 2
		f := Bind2(func(pa, pb *int, x int) int { return *pa + *pb + x }, &a, &b)
		a = 10
		if got := f.Call(3); got != 15 {
			t.Fatalf("Call(3) = %v, want: 15", got)
		}
	})
}

func TestFunc_Move(t *testing.T) {
	t.Run("source becomes empty", func(t *testing.T) {
		f := New(square)
		g := f.Move()

		if !f.IsEmpty() {
			t.Fatalf("IsEmpty = false on the source, want: true")
		}
		if got := g.Call(6); got != 36 {
			t.Fatalf("Call(6) = %v, want: 36", got)
		}
		expectBadCall(t, &f, 1)
	})

	t.Run("source slots are cleared", func(t *testing.T) {
		f := Bind2(func(a, b, x int) int { return a + b + x }, 1, 2)
		_ = f.Move()
		for i, slot := range f.s.slots {
			if slot != nil {
				t.Fatalf("slots[%d] = %v after a move, want: nil", i, slot)
			}
		}
	})

	t.Run("moving empty", func(t *testing.T) {
		var f Func[int, int]
		g := f.Move()
		if !g.IsEmpty() {
			t.Fatalf("IsEmpty = false, want: true")
		}
	})

	t.Run("captures survive the move", func(t *testing.T) {
		count := 0
		f := Bind1(func(p *int, _ Unit) Unit {
			*p = *p + 1
			return Unit{}
		}, &count)
		g := f.Move()
		g.Call(Unit{})
		g.Call(Unit{})
		if count != 2 {
			t.Fatalf("count = %v, want: 2", count)
		}
	})
}

func TestFunc_Swap(t *testing.T) {
	t.Run("both held", func(t *testing.T) {
		f := New(square)
		g := Bind1(addBase, 100)

		f.Swap(&g)
		if got := f.Call(5); got != 105 {
			t.Fatalf("f.Call(5) = %v, want: 105", got)
		}
		if got := g.Call(5); got != 25 {
			t.Fatalf("g.Call(5) = %v, want: 25", got)
		}
	})

	t.Run("one empty", func(t *testing.T) {
		f := New(square)
		var g Func[int, int]

		f.Swap(&g)
		if !f.IsEmpty() {
			t.Fatalf("IsEmpty = false on f, want: true")
		}
		if got := g.Call(5); got != 25 {
			t.Fatalf("g.Call(5) = %v, want: 25", got)
		}
	})

	t.Run("both empty", func(t *testing.T) {
		var f, g Func[int, int]
		f.Swap(&g)
		if !f.IsEmpty() || !g.IsEmpty() {
			t.Fatalf("swapping two empty Funcs made one non-empty")
		}
	})

	t.Run("self swap", func(t *testing.T) {
		f := New(square)
		f.Swap(&f)
		if got := f.Call(5); got != 25 {
			t.Fatalf("Call(5) = %v after a self swap, want: 25", got)
		}
	})
}

func TestFunc_Reset(t *testing.T) {
	t.Run("becomes empty", func(t *testing.T) {
		f := New(square)
		f.Reset()
		if !f.IsEmpty() {
			t.Fatalf("IsEmpty = false, want: true")
		}
		expectBadCall(t, &f, 1)
	})

	t.Run("slots are cleared", func(t *testing.T) {
		f := Bind3(func(a, b, c, x int) int { return a + b + c + x }, 1, 2, 3)
		f.Reset()
		for i, slot := range f.s.slots {
			if slot != nil {
				t.Fatalf("slots[%d] = %v after a reset, want: nil", i, slot)
			}
		}
	})

	t.Run("reset of empty", func(t *testing.T) {
		var f Func[int, int]
		f.Reset()
		if !f.IsEmpty() {
			t.Fatalf("IsEmpty = false, want: true")
		}
	})
}

func TestNewProc(t *testing.T) {
	count := 0
	p := NewProc(func() { count++ })

	p.Call(Unit{})
	p.Call(Unit{})
	if count != 2 {
		t.Fatalf("count = %v, want: 2", count)
	}

	q := p.Move()
	q.Call(Unit{})
	if count != 3 {
		t.Fatalf("count = %v, want: 3", count)
	}
	expectBadCall(t, &p, Unit{})
}
