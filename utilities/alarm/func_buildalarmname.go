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
	"strings"

	"github.com/BrunoReboul/autoalarm/utilities/tag"
)

const anomalyMarker = "anomaly"

// AlarmNamePrefix <servicePrefix>-<resourceID>- the trailing dash keeps i-1 apart from i-12
func AlarmNamePrefix(servicePrefix string, resourceID string) string {
	return servicePrefix + "-" + resourceID + "-"
}

// BuildAlarmName deterministic alarm name
// <servicePrefix>-<resourceID>-<tagKey>-<classification> for static alarms
// <servicePrefix>-<resourceID>-<tagKey>-anomaly-<classification> for anomaly alarms
func BuildAlarmName(servicePrefix string, resourceID string, tagKey string, variant tag.Variant, classification Classification) string {
	metricPart := tagKey
	if variant == tag.Anomaly && !strings.HasSuffix(tagKey, "-"+anomalyMarker) {
		metricPart = tagKey + "-" + anomalyMarker
	}
	return AlarmNamePrefix(servicePrefix, resourceID) + metricPart + "-" + string(classification)
}
