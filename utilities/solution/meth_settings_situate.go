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
	"fmt"

	"github.com/BrunoReboul/autoalarm/utilities/amp"
	"github.com/BrunoReboul/autoalarm/utilities/erm"
)

// Default values of optional settings
const (
	DefaultRootNamespace          = "autoalarm"
	DefaultMaxOutstandingMessages = 10
)

// Situate set settings from settings based on a given situation
// Situation is the environment name (string)
// Set settings are: region, alarm actions, prometheus workspace, pubsub project
// and the defaults of optional settings
func (settings *Settings) Situate(environmentName string) {
	if environmentName != "" {
		settings.Environment = environmentName
	}
	if len(settings.Hosting.Regions) > 0 {
		settings.Hosting.Region = settings.Hosting.Regions[settings.Environment]
	}
	if len(settings.CloudWatch.ActionsByEnvironment) > 0 {
		settings.CloudWatch.Actions = settings.CloudWatch.ActionsByEnvironment[settings.Environment]
	}
	if len(settings.Prometheus.WorkspaceIDs) > 0 {
		settings.Prometheus.WorkspaceID = settings.Prometheus.WorkspaceIDs[settings.Environment]
	}
	if len(settings.PubSub.ProjectIDs) > 0 {
		settings.PubSub.ProjectID = settings.PubSub.ProjectIDs[settings.Environment]
	}
	if settings.Prometheus.RootNamespace == "" {
		settings.Prometheus.RootNamespace = DefaultRootNamespace
	}
	if settings.Prometheus.Capacity <= 0 {
		settings.Prometheus.Capacity = amp.DefaultCapacity
	}
	if settings.Prometheus.Retry.Attempts <= 0 {
		settings.Prometheus.Retry = erm.DefaultRetryPolicy
	}
	if settings.PubSub.MaxOutstandingMessages <= 0 {
		settings.PubSub.MaxOutstandingMessages = DefaultMaxOutstandingMessages
	}
}

// Check settings only consistent once situated
func (settings *Settings) Check() error {
	if settings.Hosting.Region == "" {
		return fmt.Errorf("solution no region for environment '%s'", settings.Environment)
	}
	if settings.Backend == "prometheus" && settings.Prometheus.WorkspaceID == "" {
		return fmt.Errorf("solution backend prometheus requires a workspace ID for environment '%s'", settings.Environment)
	}
	return nil
}
