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

package autoalarm

import (
	"context"

	"github.com/BrunoReboul/autoalarm/utilities/alarm"
	"github.com/BrunoReboul/autoalarm/utilities/dispatch"
)

// Backend converges the alarms owned by the resource of scope to the desired set
type Backend interface {
	Reconcile(ctx context.Context, inv dispatch.Invocation, scope alarm.Scope, desiredAlarms []alarm.DesiredAlarm) error
}

// ResourceReader reads the resource state events do not carry
type ResourceReader interface {
	FetchTags(ctx context.Context, resourceARN string) (map[string]string, error)
	LoadBalancerDimension(ctx context.Context, targetGroupARN string) (string, error)
}

// Engine turns a classified record into a backend reconciliation
type Engine struct {
	Backend   Backend
	Resources ResourceReader
}
