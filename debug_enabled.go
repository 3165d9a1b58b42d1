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

//go:build enable_future_debug

package future

import (
	"fmt"

	"github.com/google/uuid"
)

// cellID is the debug identity of a cell, assigned at creation, so
// events of different cells can be told apart across goroutines.
type cellID = uuid.UUID

func newCellID() cellID { return uuid.New() }

// debugCB receives every cell event. Tests may replace it to capture
// the trace; by default it prints to stdout.
var debugCB = func(id cellID, de debugEvent) {
	fmt.Printf("future: cell %s: event %v\n", id, de)
}

func (c *cell[T]) debug(de debugEvent) {
	// call the handler if one is provided
	if debugCB != nil {
		debugCB(c.id, de)
	}
}
