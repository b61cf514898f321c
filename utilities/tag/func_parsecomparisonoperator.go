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

import "strings"

var staticOperatorSymbols = map[string]ComparisonOperator{
	">":  GreaterThanThreshold,
	">=": GreaterThanOrEqualToThreshold,
	"<":  LessThanThreshold,
	"<=": LessThanOrEqualToThreshold,
}

var anomalyOperatorSymbols = map[string]ComparisonOperator{
	">":  GreaterThanUpperThreshold,
	"<":  LessThanLowerThreshold,
	"<>": LessThanLowerOrGreaterThanUpperThreshold,
}

func operatorSymbols(variant Variant) map[string]ComparisonOperator {
	if variant == Anomaly {
		return anomalyOperatorSymbols
	}
	return staticOperatorSymbols
}

// parseComparisonOperator accepts a symbol or a full operator name valid for the variant
func parseComparisonOperator(variant Variant, field string) (ComparisonOperator, bool) {
	symbols := operatorSymbols(variant)
	if operator, ok := symbols[field]; ok {
		return operator, true
	}
	for _, operator := range symbols {
		if strings.EqualFold(string(operator), field) {
			return operator, true
		}
	}
	return "", false
}

// Symbol short form of the operator used in tag values
func (c ComparisonOperator) Symbol(variant Variant) string {
	for symbol, operator := range operatorSymbols(variant) {
		if operator == c {
			return symbol
		}
	}
	return string(c)
}

// PromQL binary comparison operator, empty for anomaly operators
func (c ComparisonOperator) PromQL() string {
	for symbol, operator := range staticOperatorSymbols {
		if operator == c {
			return symbol
		}
	}
	return ""
}

func parseMissingDataTreatment(field string) (MissingDataTreatment, bool) {
	for _, treatment := range []MissingDataTreatment{Missing, Ignore, Breaching, NotBreaching} {
		if strings.EqualFold(string(treatment), field) {
			return treatment, true
		}
	}
	return "", false
}
