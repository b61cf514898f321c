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

package aacli

import (
	"fmt"
	"strings"
)

// Command parsed command line
type Command struct {
	ResourceType string
	ResourceARN  string
	ResourceID   string
	LoadBalancer string
	Tags         TagFlag
	OutputPath   string
	ReplayPath   string
	ProjectID    string
	TopicID      string
}

// TagFlag repeatable key=value flag
type TagFlag map[string]string

// String flag.Value interface
func (f TagFlag) String() string {
	pairs := make([]string, 0, len(f))
	for key, value := range f {
		pairs = append(pairs, key+"="+value)
	}
	return strings.Join(pairs, ",")
}

// Set flag.Value interface, the value itself may contain an equal sign
func (f TagFlag) Set(pair string) error {
	parts := strings.SplitN(pair, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return fmt.Errorf("want key=value got '%s'", pair)
	}
	f[parts[0]] = parts[1]
	return nil
}
