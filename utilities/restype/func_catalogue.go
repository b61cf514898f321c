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

	"github.com/BrunoReboul/autoalarm/utilities/alarm"
)

const arnPrefix = `^arn:aws[a-z-]*:`

var catalogue = []ResourceType{
	{
		name:              "targetgroup",
		ServicePrefix:     "AutoAlarm-TG",
		matcher:           regexp.MustCompile(arnPrefix + `elasticloadbalancing:[^:]*:[0-9]*:targetgroup/([^/]+/[0-9a-f]+)$`),
		dimensionName:     "TargetGroup",
		dimensionPrefix:   "targetgroup/",
		Configs:           targetGroupConfigs,
		NeedsLoadBalancer: true,
	},
	{
		name:            "alb",
		ServicePrefix:   "AutoAlarm-ALB",
		matcher:         regexp.MustCompile(arnPrefix + `elasticloadbalancing:[^:]*:[0-9]*:loadbalancer/app/([^/]+/[0-9a-f]+)$`),
		dimensionName:   LoadBalancerDimension,
		dimensionPrefix: "app/",
		Configs:         albConfigs,
	},
	{
		name:            "nlb",
		ServicePrefix:   "AutoAlarm-NLB",
		matcher:         regexp.MustCompile(arnPrefix + `elasticloadbalancing:[^:]*:[0-9]*:loadbalancer/net/([^/]+/[0-9a-f]+)$`),
		dimensionName:   LoadBalancerDimension,
		dimensionPrefix: "net/",
		Configs:         nlbConfigs,
	},
	{
		name:          "ec2",
		ServicePrefix: "AutoAlarm-EC2",
		matcher:       regexp.MustCompile(arnPrefix + `ec2:[^:]*:[0-9]*:instance/(i-[0-9a-f]+)$`),
		dimensionName: "InstanceId",
		Configs:       ec2Configs,
	},
	{
		name:          "sqs",
		ServicePrefix: "AutoAlarm-SQS",
		matcher:       regexp.MustCompile(arnPrefix + `sqs:[^:]*:[0-9]*:([^:/]+)$`),
		dimensionName: "QueueName",
		Configs:       sqsConfigs,
	},
	{
		name:          "sns",
		ServicePrefix: "AutoAlarm-SNS",
		matcher:       regexp.MustCompile(arnPrefix + `sns:[^:]*:[0-9]*:([^:/]+)$`),
		dimensionName: "TopicName",
		Configs:       snsConfigs,
	},
	{
		name:          "lambda",
		ServicePrefix: "AutoAlarm-Lambda",
		matcher:       regexp.MustCompile(arnPrefix + `lambda:[^:]*:[0-9]*:function:([^:]+)(:[^:]+)?$`),
		dimensionName: "FunctionName",
		Configs:       lambdaConfigs,
	},
}

// Catalogue monitored resource types in classification order, target groups first
func Catalogue() []ResourceType {
	return append([]ResourceType(nil), catalogue...)
}

// Names of the catalogued resource types
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for _, resourceType := range catalogue {
		names = append(names, resourceType.name)
	}
	return names
}

// Lookup resource type by name
func Lookup(name string) (ResourceType, bool) {
	for _, resourceType := range catalogue {
		if resourceType.name == name {
			return resourceType, true
		}
	}
	return ResourceType{}, false
}

// Classify first resource type matching the ARN
func Classify(resourceIdentifier string) (ResourceType, bool) {
	for _, resourceType := range catalogue {
		if resourceType.Matches(resourceIdentifier) {
			return resourceType, true
		}
	}
	return ResourceType{}, false
}

// AllConfigs every metric alarm config, used to check the tables
func AllConfigs() (configs []alarm.MetricAlarmConfig) {
	for _, resourceType := range catalogue {
		configs = append(configs, resourceType.Configs...)
	}
	return configs
}
