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

func IsStatePending(status uint32) bool {
	return status&stateBitsSetMask == statePending
}

func IsStateCompleted(status uint32) bool {
	return status&stateBitsSetMask == stateCompleted
}

// IsOutcomeValue returns true if the cell completed with a value.
// It's meaningful only when IsStateCompleted returns true for the
// same status value.
func IsOutcomeValue(status uint32) bool {
	return status&outcomeBitsSetMask == outcomeValue
}

// IsOutcomeErrored returns true if the cell completed with an error.
// It's meaningful only when IsStateCompleted returns true for the
// same status value.
func IsOutcomeErrored(status uint32) bool {
	return status&outcomeBitsSetMask == outcomeErrored
}

func IsFlagsRetrieved(status uint32) bool {
	return status&FlagsRetrieved == FlagsRetrieved
}
