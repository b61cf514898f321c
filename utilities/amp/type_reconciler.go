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

package amp

import "github.com/BrunoReboul/autoalarm/utilities/alarm"

// Reconciler Prometheus rule backend, one rule group per resource
// namespaces are named <Root>-<resource type>-<suffix>
type Reconciler struct {
	Manager *Manager
	Root    string
}

// RootFor namespace root name of the resource type of scope
func (r *Reconciler) RootFor(scope alarm.Scope) string {
	if scope.Root == "" {
		return r.Root
	}
	return r.Root + "-" + scope.Root
}
