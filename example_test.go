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

package future_test

import (
	"fmt"

	"github.com/ytsurkan/future"
)

func ExampleNewPromise() {
	p := future.NewPromise[int]()
	f, _ := p.Future()

	go func() {
		_ = p.SetValue(42)
	}()

	v, _ := f.Get()
	fmt.Println(v)

	// Output: 42
}

func ExampleFuture_Then() {
	p := future.NewPromise[int]()
	f, _ := p.Future()

	doubled, _ := f.Then(func(f *future.Future[int]) (int, error) {
		v, err := f.Get()
		if err != nil {
			return 0, err
		}
		return v * 2, nil
	})

	_ = p.SetValue(21)

	v, _ := doubled.Get()
	fmt.Println(v)

	// Output: 42
}

func ExampleAfter() {
	p := future.NewPromise[int]()
	f, _ := p.Future()

	msg, _ := future.After(f, func(f *future.Future[int]) (string, error) {
		v, err := f.Get()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("got %d", v), nil
	})

	_ = p.SetValue(7)

	s, _ := msg.Get()
	fmt.Println(s)

	// Output: got 7
}

func ExampleFuture_Share() {
	p := future.NewPromise[string]()
	f, _ := p.Future()
	sf := f.Share()

	_ = p.SetValue("ready")

	// a shared handle can be read any number of times
	for i := 0; i < 2; i++ {
		v, _ := sf.Get()
		fmt.Println(v)
	}

	// Output:
	// ready
	// ready
}

func ExamplePromise_Close() {
	p := future.NewPromise[int]()
	f, _ := p.Future()

	// closing an uncompleted promise releases its future with an error
	_ = p.Close()

	_, err := f.Get()
	fmt.Println(err)

	// Output: future: broken promise
}
