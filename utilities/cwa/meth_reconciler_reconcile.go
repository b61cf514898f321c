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

package cwa

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/BrunoReboul/autoalarm/utilities/alarm"
	"github.com/BrunoReboul/autoalarm/utilities/dispatch"
	"github.com/BrunoReboul/autoalarm/utilities/tag"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
)

// Reconcile converge the alarms owned by the resource of scope to the desired set
// alarms listed by prefix but not owned belong to another resource and are left alone
// stale alarms are deleted only once every desired alarm has been written
func (r *Reconciler) Reconcile(ctx context.Context, inv dispatch.Invocation, scope alarm.Scope, desiredAlarms []alarm.DesiredAlarm) error {
	observed, err := listObservedAlarms(ctx, r.API, scope.Prefix)
	if err != nil {
		return err
	}

	var errs []error
	desiredNames := make(map[string]bool, len(desiredAlarms))
	detectorErrors := make(map[string]error)
	for _, desiredAlarm := range desiredAlarms {
		desiredNames[desiredAlarm.Name] = true
		if desiredAlarm.Variant == tag.Anomaly {
			key := desiredAlarm.AnomalyDetectorKey()
			detectorErr, done := detectorErrors[key]
			if !done {
				detectorErr = r.putAnomalyDetector(ctx, inv, desiredAlarm)
				detectorErrors[key] = detectorErr
			}
			if detectorErr != nil {
				errs = append(errs, fmt.Errorf("alarm %s skipped: %w", desiredAlarm.Name, detectorErr))
				continue
			}
		}
		input := BuildPutMetricAlarmInput(desiredAlarm, r.Actions)
		if retrieved, found := observed[desiredAlarm.Name]; found {
			diff := checkMetricAlarm(input, retrieved)
			if diff == nil {
				continue
			}
			logAlarm(inv, "INFO", "alarm_differs", desiredAlarm.Name, diff.Error())
		}
		if err := r.putMetricAlarm(ctx, inv, input); err != nil {
			errs = append(errs, err)
		}
	}

	var staleNames []string
	for name := range observed {
		if !desiredNames[name] && scope.Owns(name) {
			staleNames = append(staleNames, name)
		}
	}
	sort.Strings(staleNames)
	if len(staleNames) > 0 {
		if len(errs) > 0 {
			logAlarm(inv, "WARNING", "delete_skipped", "", fmt.Sprintf("%d stale alarms kept until every desired alarm is written: %s", len(staleNames), strings.Join(staleNames, ", ")))
		} else {
			errs = append(errs, r.deleteAlarms(ctx, inv, staleNames)...)
		}
	}
	return errors.Join(errs...)
}

func (r *Reconciler) putAnomalyDetector(ctx context.Context, inv dispatch.Invocation, desiredAlarm alarm.DesiredAlarm) error {
	if inv.DryRun {
		logAlarm(inv, "INFO", "dry_run", desiredAlarm.Name, "would put anomaly detector "+desiredAlarm.AnomalyDetectorKey())
		return nil
	}
	if _, err := r.API.PutAnomalyDetector(ctx, BuildPutAnomalyDetectorInput(desiredAlarm)); err != nil {
		return fmt.Errorf("cwa.PutAnomalyDetector %s %w", desiredAlarm.AnomalyDetectorKey(), err)
	}
	return nil
}

func (r *Reconciler) putMetricAlarm(ctx context.Context, inv dispatch.Invocation, input *cloudwatch.PutMetricAlarmInput) error {
	name := *input.AlarmName
	if inv.DryRun {
		logAlarm(inv, "INFO", "dry_run", name, "would put metric alarm")
		return nil
	}
	if _, err := r.API.PutMetricAlarm(ctx, input); err != nil {
		return fmt.Errorf("cwa.PutMetricAlarm %s %w", name, err)
	}
	logAlarm(inv, "NOTICE", "alarm_put", name, "")
	return nil
}

func (r *Reconciler) deleteAlarms(ctx context.Context, inv dispatch.Invocation, names []string) (errs []error) {
	for start := 0; start < len(names); start += maxDeleteAlarms {
		end := start + maxDeleteAlarms
		if end > len(names) {
			end = len(names)
		}
		chunk := names[start:end]
		if inv.DryRun {
			logAlarm(inv, "INFO", "dry_run", "", "would delete alarms "+strings.Join(chunk, ", "))
			continue
		}
		if _, err := r.API.DeleteAlarms(ctx, &cloudwatch.DeleteAlarmsInput{AlarmNames: chunk}); err != nil {
			errs = append(errs, fmt.Errorf("cwa.DeleteAlarms %s %w", strings.Join(chunk, ", "), err))
			continue
		}
		logAlarm(inv, "NOTICE", "alarm_deleted", "", strings.Join(chunk, ", "))
	}
	return errs
}

func logAlarm(inv dispatch.Invocation, severity string, message string, alarmName string, description string) {
	entry := inv.Entry(severity, message, description)
	entry.Component = "cwa"
	entry.AlarmName = alarmName
	log.Println(entry)
}
