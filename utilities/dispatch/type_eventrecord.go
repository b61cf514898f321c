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

// Kind of resource event
type Kind string

// Kinds of event records
const (
	Create      Kind = "Create"
	Delete      Kind = "Delete"
	TagChange   Kind = "TagChange"
	StateChange Kind = "StateChange"
)

// EventRecord one inbound record of a batch
// Tags is nil when the event did not carry them
type EventRecord struct {
	SourceID           string            `json:"sourceID" yaml:"sourceID"`
	Kind               Kind              `json:"kind" yaml:"kind"`
	ResourceIdentifier string            `json:"resourceIdentifier" yaml:"resourceIdentifier"`
	Tags               map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// BatchItemFailure identifies a record to redeliver
type BatchItemFailure struct {
	ItemIdentifier string `json:"itemIdentifier"`
}
