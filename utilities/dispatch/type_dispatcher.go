// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dispatch

// Dispatcher routes records to the first matching handler, handlers are evaluated in registration order
type Dispatcher struct {
	handlers []Handler
}

// New dispatcher with handlers in priority order
func New(handlers ...Handler) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

func (d *Dispatcher) route(record EventRecord) Handler {
	for _, handler := range d.handlers {
		if handler.Matches(record) {
			return handler
		}
	}
	return nil
}
