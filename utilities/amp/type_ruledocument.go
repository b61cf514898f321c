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

package amp

import (
	"errors"
	"fmt"

	"github.com/BrunoReboul/autoalarm/utilities/erm"
	"github.com/prometheus/prometheus/model/rulefmt"
	"gopkg.in/yaml.v2"
)

// Placeholder rule seeding new namespaces, a namespace cannot be created empty
const (
	PlaceholderGroupName = "autoalarm-placeholder"
	PlaceholderAlertName = "AutoAlarmPlaceholder"
	placeholderExpr      = "vector(1) < 0"
)

// Rule Prometheus alerting rule
type Rule struct {
	Alert       string            `yaml:"alert"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// RuleGroup named list of rules
type RuleGroup struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
}

// RuleDocument content of a rule groups namespace, Prometheus rule file format
type RuleDocument struct {
	Groups []RuleGroup `yaml:"groups"`
}

// PlaceholderDocument document new namespaces are created with
func PlaceholderDocument() RuleDocument {
	return RuleDocument{
		Groups: []RuleGroup{
			{
				Name: PlaceholderGroupName,
				Rules: []Rule{
					{
						Alert:       PlaceholderAlertName,
						Expr:        placeholderExpr,
						Annotations: map[string]string{"summary": "Keeps the namespace valid, never fires"},
					},
				},
			},
		},
	}
}

// Equal true when both rules render the same
func (r Rule) Equal(other Rule) bool {
	return r.Alert == other.Alert &&
		r.Expr == other.Expr &&
		r.For == other.For &&
		equalMap(r.Labels, other.Labels) &&
		equalMap(r.Annotations, other.Annotations)
}

func equalMap(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for key, value := range a {
		if otherValue, found := b[key]; !found || otherValue != value {
			return false
		}
	}
	return true
}

// RuleCount number of rules across all groups
func (d RuleDocument) RuleCount() (count int) {
	for _, group := range d.Groups {
		count += len(group.Rules)
	}
	return count
}

// Contains true when the group holds a rule with this alert name
func (d RuleDocument) Contains(groupName string, alertName string) bool {
	for _, group := range d.Groups {
		if group.Name != groupName {
			continue
		}
		for _, rule := range group.Rules {
			if rule.Alert == alertName {
				return true
			}
		}
	}
	return false
}

// ParseRuleDocument decode a namespace content
func ParseRuleDocument(data []byte) (doc RuleDocument, err error) {
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return doc, erm.Permanent(fmt.Errorf("amp yaml.Unmarshal rule document %w", err))
	}
	return doc, nil
}

// Marshal encode and validate the document, an invalid document is a permanent error
func (d RuleDocument) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, erm.Permanent(fmt.Errorf("amp yaml.Marshal rule document %w", err))
	}
	if _, errs := rulefmt.Parse(data); len(errs) > 0 {
		return nil, erm.Permanent(fmt.Errorf("amp invalid rule document: %w", errors.Join(errs...)))
	}
	return data, nil
}
