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

// Completed returns a Future that's completed, synchronously, with the
// provided value.
//
// It's a shorthand for creating a Promise, retrieving its Future, and
// completing it, for when the value is already at hand.
func Completed[T any](v T) *Future[T] {
	p := NewPromise[T]()
	f, _ := p.Future()
	_ = p.SetValue(v)
	return f
}

// Failed returns a Future that's completed, synchronously, with the
// provided error.
//
// It panics if err is a nil error value, like SetError does.
func Failed[T any](err error) *Future[T] {
	p := NewPromise[T]()
	f, _ := p.Future()
	_ = p.SetError(err)
	return f
}

// MustGet calls Get on the provided future, and returns its value, only
// if the returned error = nil, otherwise, it panics with that error.
//
// By name convention, the function will return the value successfully
// (error = nil), or a panic will happen.
// This function should be used on futures which are known to always
// complete with a value.
func MustGet[T any](f *Future[T]) T {
	v, err := f.Get()
	if err != nil {
		panic(err)
	}
	return v
}
