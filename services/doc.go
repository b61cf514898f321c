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
Package services structure

All service packages share a consistent structure

## Two functions and one type

### `Initialize` function

- Goal
  - Optimize function performance by reducing the invocation latency
- Implementation
  - Is executed once per function instance as a cold start.
  - Cache objects expensive to create, like AWS clients and the dispatcher
  - Retrieve settings once, from the settings file and environment variables
  - Cached objects and retrieved settings are exposed in one global variable of type `Global`

### `Global` type

- A `struct` to define a global variable carrying cached objects and retrieved settings by `Initialize` function and used by `EntryPoint` function

### `EntryPoint` function

- Goal
  - Execute operations to be performed each time the function is invoked
- Implementation
  - Is executed on every batch of events triggering the function
  - Uses cached objects and retrieved settings prepared by the `Initialize` function and carried by a global variable of type `Global`
  - Builds a per invocation context handed to every record handler, nothing is shared through package variables
  - Performs the task a given service is targetted to do that is described before the `package` key word

*/
package services
