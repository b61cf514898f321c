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
	"fmt"
	"log"

	"github.com/BrunoReboul/autoalarm/utilities/alarm"
	"github.com/BrunoReboul/autoalarm/utilities/dispatch"
	"github.com/BrunoReboul/autoalarm/utilities/erm"
	"github.com/BrunoReboul/autoalarm/utilities/restype"
)

// Reconcile one record: a deleted resource converges to no alarm, else the alarms its tags ask for
func (e *Engine) Reconcile(ctx context.Context, inv dispatch.Invocation, classifier dispatch.Classifier, record dispatch.EventRecord) error {
	resourceType, ok := classifier.(restype.ResourceType)
	if !ok {
		return erm.Permanent(fmt.Errorf("autoalarm classifier %s is not a resource type", classifier.Name()))
	}
	resourceARN := record.ResourceIdentifier
	target := alarm.Target{
		ServicePrefix: resourceType.ServicePrefix,
		ResourceID:    resourceType.ExtractIdentifier(resourceARN),
		Dimensions:    resourceType.Dimensions(resourceARN),
	}
	scope := alarm.NewScope(resourceType.Name(), target, resourceType.ConfigsFor(target.Dimensions))
	desiredAlarms, err := e.desiredAlarms(ctx, inv, resourceType, target, record)
	if err != nil {
		return err
	}

	entry := inv.Entry("INFO", "start", fmt.Sprintf("%d desired alarms", len(desiredAlarms)))
	entry.EventKind = string(record.Kind)
	entry.ResourceType = resourceType.Name()
	entry.ResourceID = target.ResourceID
	log.Println(entry)

	return e.Backend.Reconcile(ctx, inv, scope, desiredAlarms)
}

func (e *Engine) desiredAlarms(ctx context.Context, inv dispatch.Invocation, resourceType restype.ResourceType, target alarm.Target, record dispatch.EventRecord) ([]alarm.DesiredAlarm, error) {
	if record.Kind == dispatch.Delete {
		return nil, nil
	}
	tags := resourceType.ExtractTags(record)
	if tags == nil {
		var err error
		tags, err = e.Resources.FetchTags(ctx, record.ResourceIdentifier)
		if err != nil {
			return nil, err
		}
	}
	if !alarm.IsEnabled(tags) {
		return nil, nil
	}
	if resourceType.NeedsLoadBalancer {
		loadBalancer, err := e.Resources.LoadBalancerDimension(ctx, record.ResourceIdentifier)
		if err != nil {
			return nil, err
		}
		if loadBalancer == "" {
			entry := inv.Entry("WARNING", "no_load_balancer", "target group metrics need a load balancer, no alarm until it is attached")
			entry.ResourceType = resourceType.Name()
			entry.ResourceID = target.ResourceID
			log.Println(entry)
			return nil, nil
		}
		target.Dimensions = append(target.Dimensions, alarm.Dimension{Name: restype.LoadBalancerDimension, Value: loadBalancer})
	}
	return alarm.Build(target, tags, resourceType.ConfigsFor(target.Dimensions)), nil
}
