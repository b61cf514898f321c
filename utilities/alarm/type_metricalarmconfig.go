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

import "github.com/BrunoReboul/autoalarm/utilities/tag"

// MetricAlarmConfig static configuration of one monitored metric for a resource type
type MetricAlarmConfig struct {
	TagKey         string `yaml:"tagKey"`
	MetricName     string `yaml:"metricName"`
	Namespace      string `yaml:"namespace"`
	DefaultCreate  bool   `yaml:"defaultCreate"`
	IsAnomaly      bool   `yaml:"isAnomaly"`
	DefaultOptions string `yaml:"defaultOptions"`
	// PromQL query template for the prometheus backend, placeholders {{resource}} and {{window}}
	PromQL string `yaml:"promQL,omitempty"`
}

// Variant of the alarms built from this configuration
func (c MetricAlarmConfig) Variant() tag.Variant {
	if c.IsAnomaly {
		return tag.Anomaly
	}
	return tag.Static
}

// TagName full tag key read on the resource
func (c MetricAlarmConfig) TagName() string {
	return TagPrefix + c.TagKey
}
