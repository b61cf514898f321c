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
Package alarm computes the desired alarms of one resource from its tags

The desired set is recomputed on every event, never persisted. Alarm names are a pure function of
the service prefix, the resource identifier, the metric tag key, the variant and the classification,
so two computations for the same tags always produce the same names and backend writes are upserts.

The resource level tag `autoalarm:enabled` must be `true`, otherwise the desired set is empty.
*/
package alarm
