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

type debugEvent int

const (
	_ debugEvent = iota

	// cell lifecycle values
	cellCreate
	cellCompleteValue
	cellCompleteError
	cellRetrieve

	// continuation values
	// note: for any one continuation, exactly one of the two run
	// events fires: contRunOnComplete on the completer's goroutine
	// when the continuation was already attached, contRunOnAttach on
	// the attacher's goroutine when the cell was already completed.
	contAttach
	contRunOnComplete
	contRunOnAttach
	contDiscard

	// promise teardown values
	closeBroken
)
