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

package ffo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUnitReadUnmarshalYAML(t *testing.T) {
	type settings struct {
		Backend   string `yaml:"backend"`
		Attempts  int    `yaml:"attempts"`
		Workspace string `yaml:"workspace,omitempty"`
	}
	var testCases = []struct {
		name    string
		content string
		want    settings
		wantErr bool
	}{
		{
			name:    "valid",
			content: "backend: cloudwatch\nattempts: 3\n",
			want:    settings{Backend: "cloudwatch", Attempts: 3},
		},
		{
			name:    "unknownField",
			content: "backend: cloudwatch\nattemps: 3\n",
			wantErr: true,
		},
		{
			name:    "notYAML",
			content: "backend: [cloudwatch\n",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "settings.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}
			var got settings
			err := ReadUnmarshalYAML(path, &got)
			if (err != nil) != tc.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("want %v got %v", tc.want, got)
			}
		})
	}
}

func TestUnitMarshalYAMLWriteThenRead(t *testing.T) {
	type alarm struct {
		Name      string  `yaml:"name"`
		Threshold float64 `yaml:"threshold"`
	}
	path := filepath.Join(t.TempDir(), "alarms.yaml")
	want := []alarm{{Name: "AutoAlarm-EC2-i-1-cpu-Warning", Threshold: 90}}
	if err := MarshalYAMLWrite(path, want); err != nil {
		t.Fatal(err)
	}
	var got []alarm
	if err := ReadUnmarshalYAML(path, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("want %v got %v", want, got)
	}
}

func TestUnitReadUnmarshalYAMLMissingFile(t *testing.T) {
	var v map[string]string
	err := ReadUnmarshalYAML(filepath.Join(t.TempDir(), "nope.yaml"), &v)
	if err == nil {
		t.Errorf("want an error on missing file")
	}
}
