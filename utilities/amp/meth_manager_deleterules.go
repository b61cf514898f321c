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
	"errors"
)

// DeleteRules drop the rules of the group not listed in keep, across every namespace of the root
func (m *Manager) DeleteRules(ctx context.Context, root string, groupName string, keep []string) error {
	namespaces, _, err := m.listNamespaces(ctx, root)
	if err != nil {
		return err
	}
	var errs []error
	for _, ns := range namespaces {
		doc, err := m.describe(ctx, ns.name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pruned, changed := RemoveRules(doc, groupName, keep)
		if !changed {
			continue
		}
		if err := m.put(ctx, ns.name, pruned); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
