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

import "github.com/BrunoReboul/autoalarm/utilities/erm"

// DefaultCapacity rules a namespace holds across all its groups
const DefaultCapacity = 1000

// Manager reads and writes the rule groups namespaces of one workspace
type Manager struct {
	API         API
	WorkspaceID string
	Capacity    int
	RetryPolicy erm.RetryPolicy
}

// NewManager manager with the default capacity and retry policy
func NewManager(api API, workspaceID string) *Manager {
	return &Manager{
		API:         api,
		WorkspaceID: workspaceID,
		Capacity:    DefaultCapacity,
		RetryPolicy: erm.DefaultRetryPolicy,
	}
}

func (m *Manager) capacity() int {
	if m.Capacity <= 0 {
		return DefaultCapacity
	}
	return m.Capacity
}
