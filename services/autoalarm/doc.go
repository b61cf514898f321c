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
Package autoalarm reconciles monitoring alarms of AWS resources from their autoalarm tags

Triggering event: EventBridge resource events, delivered by an SQS queue to a Lambda function or pulled from a Pub/Sub subscription

Instances: one per environment and alarm backend

Output: CloudWatch metric alarms and anomaly detectors, or Prometheus alerting rules in Amazon Managed Service for Prometheus

Implementation:

- decode each message into an event record, ignore the events autoalarm has nothing to do with
- classify the record by resource identifier and fetch the resource tags when the event did not carry them
- build the desired alarms from the tags, then converge the backend to them
- report the failed records so only them are redelivered
*/
package autoalarm
