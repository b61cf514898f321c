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

package autoalarm

import (
	"github.com/BrunoReboul/autoalarm/utilities/dispatch"
	"github.com/BrunoReboul/autoalarm/utilities/restype"
)

// NewDispatcher one handler per catalogued resource type, in catalogue order
func NewDispatcher(engine *Engine) *dispatch.Dispatcher {
	var handlers []dispatch.Handler
	for _, resourceType := range restype.Catalogue() {
		handlers = append(handlers, dispatch.NewClassifiedHandler(resourceType, engine.Reconcile))
	}
	return dispatch.New(handlers...)
}
