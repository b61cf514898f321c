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

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BrunoReboul/autoalarm/utilities/alarm"
	"github.com/BrunoReboul/autoalarm/utilities/tag"
	"github.com/prometheus/common/model"
)

// Query template placeholders
const (
	ResourcePlaceholder = "{{resource}}"
	WindowPlaceholder   = "{{window}}"
)

// BuildRule alerting rule of a desired alarm, false when the alarm has no Prometheus rendering:
// anomaly alarms, metrics without query template, band comparison operators
func BuildRule(desiredAlarm alarm.DesiredAlarm) (Rule, bool) {
	if desiredAlarm.Variant == tag.Anomaly || desiredAlarm.PromQL == "" {
		return Rule{}, false
	}
	operator := desiredAlarm.Options.ComparisonOperator.PromQL()
	if operator == "" {
		return Rule{}, false
	}
	period := time.Duration(desiredAlarm.Options.Period) * time.Second
	window := model.Duration(period).String()
	query := strings.NewReplacer(
		ResourcePlaceholder, desiredAlarm.ResourceID,
		WindowPlaceholder, window,
	).Replace(desiredAlarm.PromQL)
	threshold := strconv.FormatFloat(desiredAlarm.Threshold(), 'g', -1, 64)
	return Rule{
		Alert: desiredAlarm.Name,
		Expr:  fmt.Sprintf("%s %s %s", query, operator, threshold),
		For:   model.Duration(period * time.Duration(desiredAlarm.Options.EvaluationPeriods)).String(),
		Labels: map[string]string{
			"severity":    desiredAlarm.SeverityLabel(),
			"resource_id": desiredAlarm.ResourceID,
			"autoalarm":   desiredAlarm.TagKey,
		},
		Annotations: map[string]string{
			"summary": fmt.Sprintf("%s %s %s on %s", desiredAlarm.MetricName, operator, threshold, desiredAlarm.ResourceID),
			"source":  alarm.TagPrefix + desiredAlarm.TagKey,
		},
	}, true
}
