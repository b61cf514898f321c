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
	"strconv"
	"strings"
)

// Encode renders options as a full tag value, every position filled
func Encode(variant Variant, options AlarmOptions) string {
	var fields []string
	if variant == Static {
		fields = append(fields, encodeThreshold(options.WarningThreshold), encodeThreshold(options.CriticalThreshold))
		fields = append(fields, strconv.Itoa(options.Period), strconv.Itoa(options.EvaluationPeriods), options.Statistic)
	} else {
		statistic := options.Statistic
		if statistic == "" {
			statistic = SuppressMarker
		}
		fields = append(fields, statistic, strconv.Itoa(options.Period), strconv.Itoa(options.EvaluationPeriods))
	}
	fields = append(fields, options.ComparisonOperator.Symbol(variant), string(options.MissingDataTreatment))
	return strings.Join(fields, Separator)
}

func encodeThreshold(threshold *float64) string {
	if threshold == nil {
		return SuppressMarker
	}
	return strconv.FormatFloat(*threshold, 'f', -1, 64)
}
