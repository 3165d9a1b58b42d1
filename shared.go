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

// SharedFuture is the multi-consumer read handle on one eventual
// outcome. Unlike a Future it has plain value semantics: copies share
// the same cell, nothing consumes it, and any number of copies may Get
// and Wait concurrently, all observing the identical outcome.
//
// A SharedFuture is made by Future.Share. The zero SharedFuture has no
// cell and reports ErrNoState.
type SharedFuture[T any] struct {
	cell *cell[T]
}

// Valid reports whether the SharedFuture refers to a state cell.
func (sf SharedFuture[T]) Valid() bool {
	return sf.cell != nil
}

// Wait blocks until the outcome is recorded.
func (sf SharedFuture[T]) Wait() error {
	if sf.cell == nil {
		return ErrNoState
	}
	sf.cell.wait()
	return nil
}

// Get waits for the outcome and returns it. It never consumes the
// handle: Get may be called again, by this copy or any other, and
// returns the same value or the same error every time.
func (sf SharedFuture[T]) Get() (T, error) {
	if sf.cell == nil {
		var zero T
		return zero, ErrNoState
	}
	return sf.cell.get()
}
