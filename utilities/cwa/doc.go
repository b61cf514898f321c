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

// Package cwa reconciles the CloudWatch metric alarms of a resource with its desired alarm set
//
// Observed alarms are listed by name prefix, each desired alarm is written only when it differs from the
// observed one, then alarms observed but no longer desired are deleted. Anomaly alarms register their anomaly
// detector model before the alarm is written.
package cwa
