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

// Package amp manages alert rules stored in Amazon Managed Service for Prometheus rule groups namespaces
//
// Rules of a root are spread over namespaces named <root>-1, <root>-2 ... each holding at most Capacity rules.
// A rule is written to the namespace already holding it, else to the first namespace with room left, else to a
// new namespace <root>-<max+1>. Every read-modify-write call runs in a bounded retry loop.
package amp
