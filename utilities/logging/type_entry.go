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

package logging

import (
	"encoding/json"
	"log"
	"time"
)

// Entry defines a structured log entry, one JSON object per line
// severity and message are the fields log based metrics and filters rely on
type Entry struct {
	MicroserviceName string     `json:"microservice_name"`
	InstanceName     string     `json:"instance_name"`
	Environment      string     `json:"environment"`
	Severity         string     `json:"severity,omitempty"`
	Message          string     `json:"message"`
	Description      string     `json:"description"`
	Now              *time.Time `json:"now,omitempty"`
	Component        string     `json:"component,omitempty"`
	InitID           string     `json:"init_id,omitempty"`
	InvocationID     string     `json:"invocation_id,omitempty"`
	RequestID        string     `json:"request_id,omitempty"`
	RecordID         string     `json:"record_id,omitempty"`
	EventKind        string     `json:"event_kind,omitempty"`
	ResourceType     string     `json:"resource_type,omitempty"`
	ResourceID       string     `json:"resource_id,omitempty"`
	Backend          string     `json:"backend,omitempty"`
	AlarmName        string     `json:"alarm_name,omitempty"`
	RecordCount      int        `json:"record_count,omitempty"`
	FailureCount     int        `json:"failure_count,omitempty"`
	LatencySeconds   float64    `json:"latency_seconds,omitempty"`
}

// String renders an entry structure to a JSON line
func (e Entry) String() string {
	if e.Severity == "" {
		e.Severity = "INFO"
	}
	out, err := json.Marshal(e)
	if err != nil {
		log.Printf("json.Marshal: %v", err)
	}
	return string(out)
}
