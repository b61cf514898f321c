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
Package tag encodes and decodes the alarm options carried by autoalarm resource tags

A tag value is a list of `/` delimited positional fields.

Static threshold alarms:

	warningThreshold/criticalThreshold/period/evaluationPeriods/statistic[/comparisonOperator[/missingData]]

Anomaly detection alarms:

	statistic/period/evaluationPeriods[/comparisonOperator[/missingData]]

An empty or absent field takes the value at the same position in the defaults string.
A threshold set to `-` or `disabled` means no alarm at this severity, which is not the same as using the default.
For anomaly alarms a `-` or `disabled` statistic disables both severities.

Decoding never fails: an invalid field is logged and replaced by its default.
*/
package tag
