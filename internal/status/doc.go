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

// Package status represents values for the state cell's status.
//
// The value is split into 4 sections, flags, outcome, state, and lock, as
// follows, starting from the right:
// - The lock section takes 4 bits.
// - The state section takes 2 bits.
// - The outcome section takes 2 bits.
// - The flags section takes 4 bits.
//
// Description of the sections:
//
//   - The lock section.
//     = although it's named 'lock', it doesn't use any Mutexes.
//     = The lock is implemented through atomic writing, reading, and updating
//     of the status value.
//     = The lock logic is just a way to tell new comers(that want to update
//     the status) that: "the value is currently being updated by some previous
//     update call, so wait here until it finish, then you can get your chance
//     to update the status too".
//     = The whole waiting behaviour is passed to the 'go scheduler'(through a
//     call to runtime.Gosched) to decide which goroutine should run now(and
//     hence acquire the lock first).
//     = The lock is needed because the retrieved flag is updated without
//     holding the cell's monitor mutex, while the state transition happens
//     inside it, and both touch the same word.
//
//   - The state section describes where the cell is in its lifetime.
//     = 2 mutually exclusive possible modes, represented by 2 bits:
//   - pending: the cell's outcome hasn't been recorded yet.
//   - completed: the cell's outcome has been recorded, and is final.
//
//   - The outcome section describes the kind of the recorded outcome.
//     = It's meaningful only when the state is completed.
//     = 3 mutually exclusive possible kinds, represented by 2 bits:
//   - none: no outcome(the state is still pending).
//   - value: the cell holds a value.
//   - errored: the cell holds an error.
//
//   - The flags section carries the one-shot facts about the cell.
//     = retrieved: the cell's read handle has been retrieved, it can be
//     set once, and it never gets cleared.
//
// The state and outcome sections are only updated while the cell's monitor
// mutex is held, which is what makes completion one-shot, but they are
// still read, through Load, by fast paths that don't hold that mutex.
package status
