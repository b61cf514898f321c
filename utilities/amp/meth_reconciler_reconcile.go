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

package amp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/BrunoReboul/autoalarm/utilities/alarm"
	"github.com/BrunoReboul/autoalarm/utilities/dispatch"
)

// Reconcile converge the rule group of a resource to its desired alarms
// the group lives in the namespaces of the resource type root, rules no longer desired are deleted only once every desired rule has been written
func (r *Reconciler) Reconcile(ctx context.Context, inv dispatch.Invocation, scope alarm.Scope, desiredAlarms []alarm.DesiredAlarm) error {
	root := r.RootFor(scope)
	groupName := strings.TrimSuffix(scope.Prefix, "-")
	var errs []error
	var keep []string
	for _, desiredAlarm := range desiredAlarms {
		rule, ok := BuildRule(desiredAlarm)
		if !ok {
			logRule(inv, "INFO", "rule_not_supported", desiredAlarm.Name, fmt.Sprintf("%s alarm on %s has no prometheus rule", desiredAlarm.Variant, desiredAlarm.MetricName))
			continue
		}
		keep = append(keep, rule.Alert)
		if inv.DryRun {
			logRule(inv, "INFO", "dry_run", rule.Alert, fmt.Sprintf("would upsert rule in %s group %s: %s", root, groupName, rule.Expr))
			continue
		}
		if err := r.Manager.UpsertRule(ctx, root, groupName, rule); err != nil {
			errs = append(errs, fmt.Errorf("amp.UpsertRule %s %w", rule.Alert, err))
		}
	}
	if len(errs) > 0 {
		logRule(inv, "WARNING", "delete_skipped", "", fmt.Sprintf("stale rules of group %s kept until every desired rule is written", groupName))
		return errors.Join(errs...)
	}
	if inv.DryRun {
		logRule(inv, "INFO", "dry_run", "", fmt.Sprintf("would delete rules of group %s except %s", groupName, strings.Join(keep, ", ")))
		return nil
	}
	if err := r.Manager.DeleteRules(ctx, root, groupName, keep); err != nil {
		return fmt.Errorf("amp.DeleteRules %s %w", groupName, err)
	}
	return nil
}

func logRule(inv dispatch.Invocation, severity string, message string, alarmName string, description string) {
	entry := inv.Entry(severity, message, description)
	entry.Component = "amp"
	entry.AlarmName = alarmName
	log.Println(entry)
}
