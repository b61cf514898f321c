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

package cwa

import "github.com/BrunoReboul/autoalarm/utilities/alarm"

// maxDeleteAlarms DeleteAlarms accepts up to 100 names per call
const maxDeleteAlarms = 100

// Actions SNS topic ARNs notified per classification
type Actions struct {
	Warning  []string `yaml:"warning"`
	Critical []string `yaml:"critical"`
	OK       []string `yaml:"ok"`
}

func (a Actions) of(classification alarm.Classification) []string {
	if classification == alarm.Critical {
		return a.Critical
	}
	return a.Warning
}

// Reconciler CloudWatch alarm backend
type Reconciler struct {
	API     API
	Actions Actions
}
