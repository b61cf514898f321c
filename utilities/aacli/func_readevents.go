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
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// maxEventSize EventBridge events are at most 256 KB
const maxEventSize = 256 * 1024

// ReadEvents one JSON event per non empty line
func ReadEvents(path string) (bodies [][]byte, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open %s %v", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if !gjson.ValidBytes(line) {
			return nil, fmt.Errorf("%s line %d is not a JSON document", path, lineNumber)
		}
		bodies = append(bodies, append([]byte(nil), line...))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner %s %v", path, err)
	}
	return bodies, nil
}
