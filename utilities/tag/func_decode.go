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

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/BrunoReboul/autoalarm/utilities/logging"
)

// Field separator and suppression markers
const (
	Separator        = "/"
	SuppressMarker   = "-"
	DisabledKeyword  = "disabled"
	componentTagName = "tag"
)

// positions of each field, -1 when the variant does not carry it
type layout struct {
	warning, critical, period, evaluationPeriods, statistic, comparison, missingData, length int
}

var staticLayout = layout{warning: 0, critical: 1, period: 2, evaluationPeriods: 3, statistic: 4, comparison: 5, missingData: 6, length: 7}

var anomalyLayout = layout{warning: -1, critical: -1, statistic: 0, period: 1, evaluationPeriods: 2, comparison: 3, missingData: 4, length: 5}

func layoutOf(variant Variant) layout {
	if variant == Anomaly {
		return anomalyLayout
	}
	return staticLayout
}

// Decode tag value fields on top of the defaults fields, never fails
func Decode(variant Variant, tagValue string, defaults string) AlarmOptions {
	fallback := decodeFields(variant, splitFields(defaults), baseline(variant), "defaults")
	return decodeFields(variant, splitFields(tagValue), fallback, "tag")
}

// IsSuppressed true for `-` and `disabled`
func IsSuppressed(field string) bool {
	return field == SuppressMarker || strings.EqualFold(field, DisabledKeyword)
}

func splitFields(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	fields := strings.Split(value, Separator)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func fieldAt(fields []string, position int) string {
	if position < 0 || position >= len(fields) {
		return ""
	}
	return fields[position]
}

func decodeFields(variant Variant, fields []string, fallback AlarmOptions, origin string) AlarmOptions {
	l := layoutOf(variant)
	options := fallback
	if len(fields) > l.length {
		logInvalid(origin, strings.Join(fields, Separator), fmt.Sprintf("%d fields for %s alarm, expected at most %d, extra fields ignored", len(fields), variant, l.length))
	}

	if variant == Static {
		options.WarningThreshold = decodeThreshold(fieldAt(fields, l.warning), fallback.WarningThreshold, origin, "warningThreshold")
		options.CriticalThreshold = decodeThreshold(fieldAt(fields, l.critical), fallback.CriticalThreshold, origin, "criticalThreshold")
	}
	options.Period = decodePositiveInt(fieldAt(fields, l.period), fallback.Period, origin, "period")
	options.EvaluationPeriods = decodePositiveInt(fieldAt(fields, l.evaluationPeriods), fallback.EvaluationPeriods, origin, "evaluationPeriods")

	statisticField := fieldAt(fields, l.statistic)
	switch {
	case statisticField == "":
	case variant == Anomaly && IsSuppressed(statisticField):
		options.Statistic = ""
	default:
		statistic, ok := normalizeStatistic(statisticField)
		if ok {
			options.Statistic = statistic
		} else {
			logInvalid(origin, statisticField, "statistic not supported, use default")
		}
	}
	if variant == Anomaly {
		if options.Statistic == "" {
			options.WarningThreshold = nil
			options.CriticalThreshold = nil
		} else {
			options.WarningThreshold = Float64(WarningBandWidth)
			options.CriticalThreshold = Float64(CriticalBandWidth)
		}
	}

	if comparisonField := fieldAt(fields, l.comparison); comparisonField != "" {
		operator, ok := parseComparisonOperator(variant, comparisonField)
		if ok {
			options.ComparisonOperator = operator
		} else {
			logInvalid(origin, comparisonField, fmt.Sprintf("comparison operator not supported for %s alarm, use default", variant))
		}
	}
	if missingDataField := fieldAt(fields, l.missingData); missingDataField != "" {
		treatment, ok := parseMissingDataTreatment(missingDataField)
		if ok {
			options.MissingDataTreatment = treatment
		} else {
			logInvalid(origin, missingDataField, "missing data treatment not supported, use default")
		}
	}
	return options
}

func decodeThreshold(field string, fallback *float64, origin string, fieldName string) *float64 {
	if field == "" {
		return fallback
	}
	if IsSuppressed(field) {
		return nil
	}
	value, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		logInvalid(origin, field, fmt.Sprintf("%s is not a number, use default", fieldName))
		return fallback
	}
	return &value
}

func decodePositiveInt(field string, fallback int, origin string, fieldName string) int {
	if field == "" {
		return fallback
	}
	value, err := strconv.Atoi(field)
	if err != nil || value <= 0 {
		logInvalid(origin, field, fmt.Sprintf("%s is not a positive integer, use default", fieldName))
		return fallback
	}
	return value
}

func logInvalid(origin string, field string, description string) {
	log.Println(logging.Entry{
		Severity:    "WARNING",
		Message:     "invalid_tag_field",
		Component:   componentTagName,
		Description: fmt.Sprintf("%s field '%s' %s", origin, field, description),
	})
}
