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

package alarm

// Scope the alarms of one resource a backend may write or delete
type Scope struct {
	// Root resource type name, rule namespaces are allocated per root
	Root string
	// Prefix shared by every alarm name of the resource
	Prefix string
	// Owned every alarm name the configurations of the resource type can produce for this resource
	Owned map[string]bool
}

// NewScope scope of target, owned names cover each configuration in both classifications
func NewScope(root string, target Target, configs []MetricAlarmConfig) Scope {
	scope := Scope{
		Root:   root,
		Prefix: target.AlarmNamePrefix(),
		Owned:  make(map[string]bool, 2*len(configs)),
	}
	for _, config := range configs {
		for _, classification := range []Classification{Warning, Critical} {
			scope.Owned[BuildAlarmName(target.ServicePrefix, target.ResourceID, config.TagKey, config.Variant(), classification)] = true
		}
	}
	return scope
}

// Owns reports whether name belongs to the resource, a longer resource id sharing the prefix does not match
func (s Scope) Owns(name string) bool {
	return s.Owned[name]
}
