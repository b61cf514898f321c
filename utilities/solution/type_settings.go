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

package solution

import (
	"github.com/BrunoReboul/autoalarm/utilities/cwa"
	"github.com/BrunoReboul/autoalarm/utilities/erm"
)

// Settings settings common to all autoalarm instances
// maps keyed by environment name are resolved by Situate
type Settings struct {
	MicroserviceName string `yaml:"microserviceName" valid:"isNotZeroValue"`
	InstanceName     string `yaml:"instanceName"`
	Environment      string `yaml:"environment" valid:"isNotZeroValue"`
	Backend          string `yaml:"backend" valid:"isAlarmBackend"`
	DryRun           bool   `yaml:"dryRun"`
	Hosting          struct {
		Region  string            `yaml:"region,omitempty"`
		Regions map[string]string `yaml:"regions" valid:"isNotZeroValue"`
	}
	CloudWatch struct {
		Actions              cwa.Actions            `yaml:"actions,omitempty"`
		ActionsByEnvironment map[string]cwa.Actions `yaml:"actionsByEnvironment"`
	} `yaml:"cloudWatch"`
	Prometheus struct {
		WorkspaceID   string            `yaml:"workspaceID,omitempty"`
		WorkspaceIDs  map[string]string `yaml:"workspaceIDs"`
		RootNamespace string            `yaml:"rootNamespace"`
		Capacity      int               `yaml:"capacity"`
		Retry         erm.RetryPolicy   `yaml:"retry"`
	}
	PubSub struct {
		ProjectID              string            `yaml:"projectID,omitempty"`
		ProjectIDs             map[string]string `yaml:"projectIDs"`
		SubscriptionID         string            `yaml:"subscriptionID"`
		MaxOutstandingMessages int               `yaml:"maxOutstandingMessages"`
	} `yaml:"pubSub"`
}
