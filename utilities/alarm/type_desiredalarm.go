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

import (
	"fmt"
	"strings"

	"github.com/BrunoReboul/autoalarm/utilities/tag"
)

// Classification severity of an alarm
type Classification string

// Classifications, Warning first
const (
	Warning  Classification = "Warning"
	Critical Classification = "Critical"
)

// Dimension CloudWatch metric dimension
type Dimension struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Target identifies the resource the alarms are built for
type Target struct {
	ServicePrefix string
	ResourceID    string
	Dimensions    []Dimension
}

// AlarmNamePrefix prefix shared by every alarm of the target, used to list the observed set
func (t Target) AlarmNamePrefix() string {
	return AlarmNamePrefix(t.ServicePrefix, t.ResourceID)
}

// DesiredAlarm one alarm the tags of a resource imply should exist
type DesiredAlarm struct {
	Name           string           `yaml:"name"`
	ResourceID     string           `yaml:"resourceID"`
	TagKey         string           `yaml:"tagKey"`
	MetricName     string           `yaml:"metricName"`
	Namespace      string           `yaml:"namespace"`
	Dimensions     []Dimension      `yaml:"dimensions"`
	Classification Classification   `yaml:"classification"`
	Variant        tag.Variant      `yaml:"variant"`
	Options        tag.AlarmOptions `yaml:"options"`
	PromQL         string           `yaml:"promQL,omitempty"`
}

// Threshold of the alarm classification, band width for anomaly alarms
func (d DesiredAlarm) Threshold() float64 {
	threshold := d.Options.WarningThreshold
	if d.Classification == Critical {
		threshold = d.Options.CriticalThreshold
	}
	if threshold == nil {
		return 0
	}
	return *threshold
}

// AnomalyDetectorKey the anomaly detector model an anomaly alarm relies on
// metric, namespace, dimensions and statistic
func (d DesiredAlarm) AnomalyDetectorKey() string {
	dimensions := make([]string, 0, len(d.Dimensions))
	for _, dimension := range d.Dimensions {
		dimensions = append(dimensions, dimension.Name+"="+dimension.Value)
	}
	return fmt.Sprintf("%s/%s/%s/%s", d.Namespace, d.MetricName, strings.Join(dimensions, ","), d.Options.Statistic)
}

// SeverityLabel lower case classification, used as prometheus severity label
func (d DesiredAlarm) SeverityLabel() string {
	return strings.ToLower(string(d.Classification))
}
