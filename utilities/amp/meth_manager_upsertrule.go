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
	"context"
	"log"
)

// UpsertRule write the rule in its group, at most once across the namespaces of the root
func (m *Manager) UpsertRule(ctx context.Context, root string, groupName string, rule Rule) error {
	namespaces, maxSuffix, err := m.listNamespaces(ctx, root)
	if err != nil {
		return err
	}

	var firstWithRoom string
	var firstWithRoomDoc RuleDocument
	for _, ns := range namespaces {
		doc, err := m.describe(ctx, ns.name)
		if err != nil {
			return err
		}
		if doc.Contains(groupName, rule.Alert) {
			return m.merge(ctx, ns.name, doc, groupName, rule)
		}
		if firstWithRoom == "" && doc.RuleCount() < m.capacity() {
			firstWithRoom = ns.name
			firstWithRoomDoc = doc
		}
	}
	if firstWithRoom != "" {
		return m.merge(ctx, firstWithRoom, firstWithRoomDoc, groupName, rule)
	}

	name := NamespaceName(root, maxSuffix+1)
	if err := m.create(ctx, name); err != nil {
		return err
	}
	return m.merge(ctx, name, PlaceholderDocument(), groupName, rule)
}

func (m *Manager) merge(ctx context.Context, name string, doc RuleDocument, groupName string, rule Rule) error {
	merged, changed := MergeRule(doc, groupName, rule)
	if !changed {
		log.Printf("amp rule %s unchanged in namespace %s", rule.Alert, name)
		return nil
	}
	return m.put(ctx, name, merged)
}
