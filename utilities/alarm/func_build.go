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
	"github.com/BrunoReboul/autoalarm/utilities/tag"
)

// Resource level tags
const (
	TagPrefix     = "autoalarm:"
	EnabledTagKey = TagPrefix + "enabled"
	EnabledValue  = "true"
)

// IsEnabled true when the resource carries autoalarm:enabled=true
func IsEnabled(tags map[string]string) bool {
	return tags[EnabledTagKey] == EnabledValue
}

// Build desired alarms of a target from its tags and the resource type configuration table
func Build(target Target, tags map[string]string, configs []MetricAlarmConfig) (desiredAlarms []DesiredAlarm) {
	if !IsEnabled(tags) {
		return nil
	}
	for _, config := range configs {
		tagValue, found := tags[config.TagName()]
		if !found && !config.DefaultCreate {
			continue
		}
		variant := config.Variant()
		options := tag.Decode(variant, tagValue, config.DefaultOptions)
		if variant == tag.Anomaly && options.Statistic == "" {
			continue
		}
		for _, classification := range []Classification{Warning, Critical} {
			threshold := options.WarningThreshold
			if classification == Critical {
				threshold = options.CriticalThreshold
			}
			if threshold == nil {
				continue
			}
			desiredAlarms = append(desiredAlarms, DesiredAlarm{
				Name:           BuildAlarmName(target.ServicePrefix, target.ResourceID, config.TagKey, variant, classification),
				ResourceID:     target.ResourceID,
				TagKey:         config.TagKey,
				MetricName:     config.MetricName,
				Namespace:      config.Namespace,
				Dimensions:     target.Dimensions,
				Classification: classification,
				Variant:        variant,
				Options:        options,
				PromQL:         config.PromQL,
			})
		}
	}
	return desiredAlarms
}

// Names of a desired set
func Names(desiredAlarms []DesiredAlarm) []string {
	names := make([]string, 0, len(desiredAlarms))
	for _, desiredAlarm := range desiredAlarms {
		names = append(names, desiredAlarm.Name)
	}
	return names
}
