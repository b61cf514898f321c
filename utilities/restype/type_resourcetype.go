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

package restype

import (
	"regexp"
	"strings"

	"github.com/BrunoReboul/autoalarm/utilities/alarm"
	"github.com/BrunoReboul/autoalarm/utilities/dispatch"
)

// ResourceType one monitored AWS resource type
type ResourceType struct {
	name          string
	ServicePrefix string
	// matcher first submatch is the short identifier
	matcher         *regexp.Regexp
	dimensionName   string
	dimensionPrefix string
	Configs         []alarm.MetricAlarmConfig
	// NeedsLoadBalancer target group metrics are reported per load balancer
	NeedsLoadBalancer bool
}

// Name of the resource type, such as ec2 or targetgroup
func (r ResourceType) Name() string {
	return r.name
}

// Matches true for an ARN of this type
func (r ResourceType) Matches(resourceIdentifier string) bool {
	return r.matcher.MatchString(resourceIdentifier)
}

// ExtractIdentifier short identifier from the ARN
func (r ResourceType) ExtractIdentifier(resourceIdentifier string) string {
	submatches := r.matcher.FindStringSubmatch(resourceIdentifier)
	if len(submatches) < 2 {
		return ""
	}
	return submatches[1]
}

// ExtractTags tags carried by the record, nil when the record did not carry them
func (r ResourceType) ExtractTags(record dispatch.EventRecord) map[string]string {
	if record.Kind != dispatch.TagChange {
		return nil
	}
	return record.Tags
}

// Dimensions CloudWatch dimensions of the resource, the load balancer one excepted
func (r ResourceType) Dimensions(resourceIdentifier string) []alarm.Dimension {
	return r.DimensionsOf(r.ExtractIdentifier(resourceIdentifier))
}

// DimensionsOf CloudWatch dimensions from the short identifier
func (r ResourceType) DimensionsOf(resourceID string) []alarm.Dimension {
	return []alarm.Dimension{{Name: r.dimensionName, Value: r.dimensionPrefix + resourceID}}
}

// ConfigsFor metric table of the resource
// target groups behind a network load balancer report in the AWS/NetworkELB namespace
func (r ResourceType) ConfigsFor(dimensions []alarm.Dimension) []alarm.MetricAlarmConfig {
	if !r.NeedsLoadBalancer {
		return r.Configs
	}
	for _, dimension := range dimensions {
		if dimension.Name == LoadBalancerDimension && strings.HasPrefix(dimension.Value, "net/") {
			configs := make([]alarm.MetricAlarmConfig, 0, len(r.Configs))
			for _, config := range r.Configs {
				if config.Namespace == namespaceALB {
					config.Namespace = namespaceNLB
					config.PromQL = strings.ReplaceAll(config.PromQL, "aws_applicationelb_", "aws_networkelb_")
				}
				configs = append(configs, config)
			}
			return configs
		}
	}
	return r.Configs
}

var _ dispatch.Classifier = ResourceType{}
