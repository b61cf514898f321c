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

import (
	"time"

	"github.com/BrunoReboul/autoalarm/utilities/logging"
)

// Invocation per invocation context handed to every handler
type Invocation struct {
	MicroserviceName string
	InstanceName     string
	Environment      string
	InitID           string
	InvocationID     string
	RequestID        string
	RecordID         string
	Backend          string
	DryRun           bool
	Deadline         time.Time
}

// ForRecord copy of the invocation scoped to one record
func (inv Invocation) ForRecord(recordID string) Invocation {
	inv.RecordID = recordID
	return inv
}

// Entry log entry carrying the invocation identity
func (inv Invocation) Entry(severity string, message string, description string) logging.Entry {
	now := time.Now()
	return logging.Entry{
		MicroserviceName: inv.MicroserviceName,
		InstanceName:     inv.InstanceName,
		Environment:      inv.Environment,
		Severity:         severity,
		Message:          message,
		Description:      description,
		Now:              &now,
		InitID:           inv.InitID,
		InvocationID:     inv.InvocationID,
		RequestID:        inv.RequestID,
		RecordID:         inv.RecordID,
		Backend:          inv.Backend,
	}
}
