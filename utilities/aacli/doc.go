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
Package aacli autoalarm command line: explain the alarms a tag set asks for, replay resource events

Explain, resource by ARN:

	autoalarmcli -arn arn:aws:ec2:eu-west-1:123456789012:instance/i-0123 -tag autoalarm:enabled=true -tag autoalarm:cpu=90/95/60/5/Average

Explain, resource by type and id, written to a file:

	autoalarmcli -type sqs -id orders -tag autoalarm:enabled=true -out orders.yaml

Replay EventBridge events, one JSON document per line, to the Pub/Sub topic autoalarmpubsub receives from:

	autoalarmcli -replay events.jsonl -project autoalarm-dev -topic autoalarm-events
*/
package aacli
