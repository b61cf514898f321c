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
	"strings"
	"unicode"
)

// two letters prefixes first so "tm" is not read as something else
var extendedStatisticPrefixes = []string{"tm", "tc", "ts", "wm", "p"}

var standardStatistics = []string{"Average", "Sum", "Maximum", "Minimum", "SampleCount"}

// IsExtendedStatistic true for percentiles and trimmed statistics like p99, tm90, TM(10%:90%), wm(5%:95%)
// Callers use it to fill ExtendedStatistic instead of Statistic
func IsExtendedStatistic(statistic string) bool {
	lower := strings.ToLower(strings.TrimSpace(statistic))
	for _, prefix := range extendedStatisticPrefixes {
		if !strings.HasPrefix(lower, prefix) {
			continue
		}
		rest := lower[len(prefix):]
		if rest == "" {
			return false
		}
		first := rune(rest[0])
		return unicode.IsDigit(first) || first == '('
	}
	return false
}

// normalizeStatistic returns the canonical statistic spelling, false when not a statistic
func normalizeStatistic(statistic string) (string, bool) {
	statistic = strings.TrimSpace(statistic)
	for _, standard := range standardStatistics {
		if strings.EqualFold(standard, statistic) {
			return standard, true
		}
	}
	if IsExtendedStatistic(statistic) {
		return statistic, true
	}
	return "", false
}
