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

//go:build !enable_future_debug

package future

// cellID is the debug identity of a cell. It's compiled down to nothing
// unless the 'enable_future_debug' build tag is set.
type cellID = struct{}

func newCellID() cellID { return cellID{} }

func (c *cell[T]) debug(de debugEvent) {}
