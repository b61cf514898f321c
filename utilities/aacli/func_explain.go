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

package aacli

import (
	"fmt"
	"log"

	"github.com/BrunoReboul/autoalarm/utilities/alarm"
	"github.com/BrunoReboul/autoalarm/utilities/restype"
	"github.com/BrunoReboul/autoalarm/utilities/str"
)

// Explain desired alarms of a checked command, computed offline
func Explain(command Command) ([]alarm.DesiredAlarm, error) {
	resourceType, found := restype.Lookup(command.ResourceType)
	if !found {
		return nil, fmt.Errorf("unknown resource type %s", command.ResourceType)
	}
	target := alarm.Target{
		ServicePrefix: resourceType.ServicePrefix,
		ResourceID:    command.ResourceID,
	}
	if command.ResourceARN != "" {
		target.Dimensions = resourceType.Dimensions(command.ResourceARN)
	} else {
		target.Dimensions = resourceType.DimensionsOf(command.ResourceID)
	}
	if resourceType.NeedsLoadBalancer {
		if command.LoadBalancer == "" {
			return nil, fmt.Errorf("a %s needs the -lb load balancer dimension", resourceType.Name())
		}
		target.Dimensions = append(target.Dimensions, alarm.Dimension{Name: restype.LoadBalancerDimension, Value: command.LoadBalancer})
	}
	log.Printf("aacli explain %s %s tags %s", resourceType.Name(), command.ResourceID, str.FlattenMapStringString(command.Tags))
	if !alarm.IsEnabled(command.Tags) {
		log.Printf("aacli %s is not set to true, no alarm", alarm.EnabledTagKey)
	}
	return alarm.Build(target, command.Tags, resourceType.ConfigsFor(target.Dimensions)), nil
}
