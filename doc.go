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

/*
Package autoalarm AutoAlarm, monitoring alarms managed from AWS resource tags

## What

Create, update and delete the monitoring alarms of AWS resources from their tags. Tag a resource with
`autoalarm:enabled=true`, optionally tune each metric with an `autoalarm:<metric>` tag, and the alarms follow the
resource through its lifecycle.

Alarms land in one of two backends:

- CloudWatch metric alarms, static thresholds or anomaly detection bands
- Prometheus alerting rules in Amazon Managed Service for Prometheus rule groups namespaces

### Tag values

Static threshold alarms: `warningThreshold/criticalThreshold/period/evaluationPeriods/statistic`, e.g.
`autoalarm:cpu=90/95/60/5/Average`. An empty field takes the default, `-` drops the alarm of this severity.

Anomaly detection alarms: `statistic/period/evaluationPeriods`, e.g. `autoalarm:cpu-anomaly=p90/300/2`.

## How

EventBridge resource events, tag changes, EC2 state changes and CloudTrail create/delete calls, reach the
`autoalarm` Lambda function through an SQS queue, or the `autoalarmpubsub` receiver through a Pub/Sub
subscription. Each record is reconciled on its own: a failed record is reported for redelivery, the others are
not replayed. Reconciliation is idempotent so a redelivered record converges to the same alarms.

`autoalarmcli` explains the alarms a tag set asks for without calling AWS.
*/
package autoalarm
