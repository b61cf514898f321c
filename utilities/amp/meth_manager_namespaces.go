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
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/BrunoReboul/autoalarm/utilities/erm"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsamp "github.com/aws/aws-sdk-go-v2/service/amp"
	"github.com/google/uuid"
)

type namespace struct {
	name   string
	suffix int
}

// NamespaceName <root>-<suffix>
func NamespaceName(root string, suffix int) string {
	return fmt.Sprintf("%s-%d", root, suffix)
}

// listNamespaces namespaces of the root ordered by suffix, and the highest suffix, 0 when none
func (m *Manager) listNamespaces(ctx context.Context, root string) (namespaces []namespace, maxSuffix int, err error) {
	input := &awsamp.ListRuleGroupsNamespacesInput{
		WorkspaceId: aws.String(m.WorkspaceID),
		Name:        aws.String(root + "-"),
	}
	for {
		var output *awsamp.ListRuleGroupsNamespacesOutput
		err = erm.Retry(ctx, m.RetryPolicy, "amp.ListRuleGroupsNamespaces", func(ctx context.Context) (err error) {
			output, err = m.API.ListRuleGroupsNamespaces(ctx, input)
			return err
		})
		if err != nil {
			return nil, 0, err
		}
		for _, summary := range output.RuleGroupsNamespaces {
			name := aws.ToString(summary.Name)
			suffix, ok := parseSuffix(root, name)
			if !ok {
				continue
			}
			namespaces = append(namespaces, namespace{name: name, suffix: suffix})
			if suffix > maxSuffix {
				maxSuffix = suffix
			}
		}
		if aws.ToString(output.NextToken) == "" {
			break
		}
		input.NextToken = output.NextToken
	}
	sort.Slice(namespaces, func(i, j int) bool { return namespaces[i].suffix < namespaces[j].suffix })
	return namespaces, maxSuffix, nil
}

// parseSuffix numeric suffix of <root>-<n>, names of other roots sharing the prefix are rejected
func parseSuffix(root string, name string) (int, bool) {
	rest := strings.TrimPrefix(name, root+"-")
	if rest == name || rest == "" {
		return 0, false
	}
	suffix, err := strconv.Atoi(rest)
	if err != nil || suffix <= 0 || strconv.Itoa(suffix) != rest {
		return 0, false
	}
	return suffix, true
}

func (m *Manager) describe(ctx context.Context, name string) (doc RuleDocument, err error) {
	var output *awsamp.DescribeRuleGroupsNamespaceOutput
	err = erm.Retry(ctx, m.RetryPolicy, "amp.DescribeRuleGroupsNamespace "+name, func(ctx context.Context) (err error) {
		output, err = m.API.DescribeRuleGroupsNamespace(ctx, &awsamp.DescribeRuleGroupsNamespaceInput{
			WorkspaceId: aws.String(m.WorkspaceID),
			Name:        aws.String(name),
		})
		return err
	})
	if err != nil {
		return doc, err
	}
	if output.RuleGroupsNamespace == nil {
		return doc, fmt.Errorf("amp.DescribeRuleGroupsNamespace %s returned no namespace", name)
	}
	return ParseRuleDocument(output.RuleGroupsNamespace.Data)
}

func (m *Manager) put(ctx context.Context, name string, doc RuleDocument) error {
	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("amp namespace %s %w", name, err)
	}
	clientToken := uuid.NewString()
	err = erm.Retry(ctx, m.RetryPolicy, "amp.PutRuleGroupsNamespace "+name, func(ctx context.Context) error {
		_, err := m.API.PutRuleGroupsNamespace(ctx, &awsamp.PutRuleGroupsNamespaceInput{
			WorkspaceId: aws.String(m.WorkspaceID),
			Name:        aws.String(name),
			Data:        data,
			ClientToken: aws.String(clientToken),
		})
		return err
	})
	if err != nil {
		return err
	}
	log.Printf("amp put namespace %s %d rules", name, doc.RuleCount())
	return nil
}

func (m *Manager) create(ctx context.Context, name string) error {
	data, err := PlaceholderDocument().Marshal()
	if err != nil {
		return err
	}
	clientToken := uuid.NewString()
	err = erm.Retry(ctx, m.RetryPolicy, "amp.CreateRuleGroupsNamespace "+name, func(ctx context.Context) error {
		_, err := m.API.CreateRuleGroupsNamespace(ctx, &awsamp.CreateRuleGroupsNamespaceInput{
			WorkspaceId: aws.String(m.WorkspaceID),
			Name:        aws.String(name),
			Data:        data,
			ClientToken: aws.String(clientToken),
		})
		return err
	})
	if err != nil {
		return err
	}
	log.Printf("amp created namespace %s", name)
	return nil
}
