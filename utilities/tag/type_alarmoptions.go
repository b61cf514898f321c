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

package tag

import "fmt"

// Variant kind of alarm: static threshold or anomaly detection band
type Variant int

const (
	// Static compares a statistic to a fixed threshold
	Static Variant = iota
	// Anomaly compares a statistic to the expected band of an anomaly detector
	Anomaly
)

func (v Variant) String() string {
	if v == Anomaly {
		return "anomaly"
	}
	return "static"
}

// MarshalYAML renders the variant name
func (v Variant) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML reads the variant name
func (v *Variant) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	switch name {
	case "anomaly":
		*v = Anomaly
	case "static", "":
		*v = Static
	default:
		return fmt.Errorf("tag unknown variant %s", name)
	}
	return nil
}

// ComparisonOperator CloudWatch comparison operator names
type ComparisonOperator string

// Comparison operators, the first four for static alarms, the last three for anomaly alarms
const (
	GreaterThanThreshold                     ComparisonOperator = "GreaterThanThreshold"
	GreaterThanOrEqualToThreshold            ComparisonOperator = "GreaterThanOrEqualToThreshold"
	LessThanThreshold                        ComparisonOperator = "LessThanThreshold"
	LessThanOrEqualToThreshold               ComparisonOperator = "LessThanOrEqualToThreshold"
	GreaterThanUpperThreshold                ComparisonOperator = "GreaterThanUpperThreshold"
	LessThanLowerThreshold                   ComparisonOperator = "LessThanLowerThreshold"
	LessThanLowerOrGreaterThanUpperThreshold ComparisonOperator = "LessThanLowerOrGreaterThanUpperThreshold"
)

// MissingDataTreatment how the alarm evaluates missing data points
type MissingDataTreatment string

// Missing data treatments
const (
	Missing      MissingDataTreatment = "missing"
	Ignore       MissingDataTreatment = "ignore"
	Breaching    MissingDataTreatment = "breaching"
	NotBreaching MissingDataTreatment = "notBreaching"
)

// Anomaly band widths, in standard deviations
const (
	WarningBandWidth  float64 = 2
	CriticalBandWidth float64 = 3
)

// AlarmOptions decoded from a tag value or from defaults
// A nil threshold means do not create the alarm for this severity
// For anomaly alarms thresholds hold the band width and Statistic is empty when disabled
type AlarmOptions struct {
	WarningThreshold     *float64             `yaml:"warningThreshold,omitempty"`
	CriticalThreshold    *float64             `yaml:"criticalThreshold,omitempty"`
	Period               int                  `yaml:"period"`
	EvaluationPeriods    int                  `yaml:"evaluationPeriods"`
	Statistic            string               `yaml:"statistic"`
	ComparisonOperator   ComparisonOperator   `yaml:"comparisonOperator"`
	MissingDataTreatment MissingDataTreatment `yaml:"missingDataTreatment"`
}

// Equal compares two options, thresholds by value
func (o AlarmOptions) Equal(other AlarmOptions) bool {
	return equalThreshold(o.WarningThreshold, other.WarningThreshold) &&
		equalThreshold(o.CriticalThreshold, other.CriticalThreshold) &&
		o.Period == other.Period &&
		o.EvaluationPeriods == other.EvaluationPeriods &&
		o.Statistic == other.Statistic &&
		o.ComparisonOperator == other.ComparisonOperator &&
		o.MissingDataTreatment == other.MissingDataTreatment
}

func equalThreshold(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Float64 returns a pointer to v, handy for thresholds
func Float64(v float64) *float64 {
	return &v
}

// baseline backs an invalid or incomplete defaults string
func baseline(variant Variant) AlarmOptions {
	options := AlarmOptions{
		Period:               300,
		EvaluationPeriods:    1,
		Statistic:            "Average",
		ComparisonOperator:   GreaterThanThreshold,
		MissingDataTreatment: Ignore,
	}
	if variant == Anomaly {
		options.ComparisonOperator = GreaterThanUpperThreshold
		options.WarningThreshold = Float64(WarningBandWidth)
		options.CriticalThreshold = Float64(CriticalBandWidth)
	}
	return options
}
