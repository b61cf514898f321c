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

// MergeRule document with the rule set in its group
// an equal rule leaves the document unchanged, a different one with the same alert name is replaced,
// else the rule is appended to its group, created when missing
func MergeRule(doc RuleDocument, groupName string, rule Rule) (merged RuleDocument, changed bool) {
	merged = doc.clone()
	for i, group := range merged.Groups {
		if group.Name != groupName {
			continue
		}
		for j, existing := range group.Rules {
			if existing.Alert != rule.Alert {
				continue
			}
			if existing.Equal(rule) {
				return doc, false
			}
			merged.Groups[i].Rules[j] = rule
			return merged, true
		}
		merged.Groups[i].Rules = append(merged.Groups[i].Rules, rule)
		return merged, true
	}
	merged.Groups = append(merged.Groups, RuleGroup{Name: groupName, Rules: []Rule{rule}})
	return merged, true
}

// RemoveRules document without the rules of the group whose alert name is not kept
// a group left empty is removed, a document left empty gets the placeholder back
func RemoveRules(doc RuleDocument, groupName string, keep []string) (pruned RuleDocument, changed bool) {
	kept := make(map[string]bool, len(keep))
	for _, alertName := range keep {
		kept[alertName] = true
	}
	for _, group := range doc.Groups {
		if group.Name != groupName {
			pruned.Groups = append(pruned.Groups, group)
			continue
		}
		var rules []Rule
		for _, rule := range group.Rules {
			if kept[rule.Alert] {
				rules = append(rules, rule)
			} else {
				changed = true
			}
		}
		if len(rules) > 0 {
			pruned.Groups = append(pruned.Groups, RuleGroup{Name: group.Name, Rules: rules})
		}
	}
	if !changed {
		return doc, false
	}
	if len(pruned.Groups) == 0 {
		pruned = PlaceholderDocument()
	}
	return pruned, true
}

func (d RuleDocument) clone() RuleDocument {
	groups := make([]RuleGroup, 0, len(d.Groups))
	for _, group := range d.Groups {
		groups = append(groups, RuleGroup{Name: group.Name, Rules: append([]Rule(nil), group.Rules...)})
	}
	return RuleDocument{Groups: groups}
}
