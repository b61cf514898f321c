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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitMergeRule(t *testing.T) {
	base := RuleDocument{Groups: []RuleGroup{
		{Name: "web-1", Rules: []Rule{testRule("web-1-cpu-Warning", 90)}},
	}}
	var testCases = []struct {
		name        string
		groupName   string
		rule        Rule
		wantChanged bool
		wantGroups  map[string]int
	}{
		{
			name:        "sameRuleUnchanged",
			groupName:   "web-1",
			rule:        testRule("web-1-cpu-Warning", 90),
			wantChanged: false,
			wantGroups:  map[string]int{"web-1": 1},
		},
		{
			name:        "differentRuleReplaced",
			groupName:   "web-1",
			rule:        testRule("web-1-cpu-Warning", 80),
			wantChanged: true,
			wantGroups:  map[string]int{"web-1": 1},
		},
		{
			name:        "appendedToGroup",
			groupName:   "web-1",
			rule:        testRule("web-1-cpu-Critical", 95),
			wantChanged: true,
			wantGroups:  map[string]int{"web-1": 2},
		},
		{
			name:        "newGroup",
			groupName:   "web-2",
			rule:        testRule("web-2-cpu-Warning", 90),
			wantChanged: true,
			wantGroups:  map[string]int{"web-1": 1, "web-2": 1},
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			merged, changed := MergeRule(base, tc.groupName, tc.rule)
			assert.Equal(t, tc.wantChanged, changed)
			gotGroups := make(map[string]int)
			for _, group := range merged.Groups {
				gotGroups[group.Name] = len(group.Rules)
			}
			assert.Equal(t, tc.wantGroups, gotGroups)
			assert.True(t, merged.Contains(tc.groupName, tc.rule.Alert))
			for _, group := range merged.Groups {
				for _, rule := range group.Rules {
					if rule.Alert == tc.rule.Alert {
						assert.True(t, rule.Equal(tc.rule))
					}
				}
			}
			assert.Equal(t, 1, base.RuleCount(), "input document must not be modified")
			assert.Equal(t, 90, thresholdOf(base.Groups[0].Rules[0]))
		})
	}
}

func thresholdOf(rule Rule) (threshold int) {
	for i := len(rule.Expr) - 1; i >= 0; i-- {
		if rule.Expr[i] == ' ' {
			for _, c := range rule.Expr[i+1:] {
				threshold = threshold*10 + int(c-'0')
			}
			return threshold
		}
	}
	return 0
}

func TestUnitRemoveRules(t *testing.T) {
	doc := RuleDocument{Groups: []RuleGroup{
		{Name: "web-1", Rules: []Rule{testRule("web-1-cpu-Warning", 90), testRule("web-1-cpu-Critical", 95)}},
		{Name: "web-2", Rules: []Rule{testRule("web-2-cpu-Warning", 90)}},
	}}

	pruned, changed := RemoveRules(doc, "web-1", []string{"web-1-cpu-Critical"})
	assert.True(t, changed)
	assert.Equal(t, 2, pruned.RuleCount())
	assert.False(t, pruned.Contains("web-1", "web-1-cpu-Warning"))
	assert.True(t, pruned.Contains("web-1", "web-1-cpu-Critical"))

	pruned, changed = RemoveRules(doc, "web-2", nil)
	assert.True(t, changed)
	assert.Len(t, pruned.Groups, 1)
	assert.Equal(t, "web-1", pruned.Groups[0].Name)

	_, changed = RemoveRules(doc, "web-3", nil)
	assert.False(t, changed)

	_, changed = RemoveRules(doc, "web-1", []string{"web-1-cpu-Warning", "web-1-cpu-Critical"})
	assert.False(t, changed)

	single := RuleDocument{Groups: []RuleGroup{{Name: "web-2", Rules: []Rule{testRule("web-2-cpu-Warning", 90)}}}}
	pruned, changed = RemoveRules(single, "web-2", nil)
	assert.True(t, changed)
	assert.Equal(t, PlaceholderDocument(), pruned)
}

func TestUnitRuleDocumentMarshal(t *testing.T) {
	data, err := fullDocument("web-1", 2).Marshal()
	assert.NoError(t, err)
	doc, err := ParseRuleDocument(data)
	assert.NoError(t, err)
	assert.Equal(t, fullDocument("web-1", 2), doc)

	_, err = PlaceholderDocument().Marshal()
	assert.NoError(t, err)

	invalid := RuleDocument{Groups: []RuleGroup{{Name: "web-1", Rules: []Rule{{Alert: "broken", Expr: "sum(rate(x[5m]) >"}}}}}
	_, err = invalid.Marshal()
	assert.Error(t, err)
}
