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
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/BrunoReboul/autoalarm/utilities/erm"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsamp "github.com/aws/aws-sdk-go-v2/service/amp"
	"github.com/aws/aws-sdk-go-v2/service/amp/types"
	"github.com/aws/smithy-go"
	"gopkg.in/yaml.v2"
)

// fakeAPI in memory workspace, one namespace per list page
// a namespace just created answers its first put with a conflict, as while its status is CREATING
type fakeAPI struct {
	mu          sync.Mutex
	namespaces  map[string][]byte
	creating    map[string]bool
	putCalls    []string
	createCalls []string
	failPuts    int
	listCalls   int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{namespaces: make(map[string][]byte), creating: make(map[string]bool)}
}

func (f *fakeAPI) ListRuleGroupsNamespaces(ctx context.Context, params *awsamp.ListRuleGroupsNamespacesInput, optFns ...func(*awsamp.Options)) (*awsamp.ListRuleGroupsNamespacesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	var names []string
	for name := range f.namespaces {
		if strings.HasPrefix(name, aws.ToString(params.Name)) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	start := 0
	if params.NextToken != nil {
		start, _ = strconv.Atoi(*params.NextToken)
	}
	output := &awsamp.ListRuleGroupsNamespacesOutput{}
	if start < len(names) {
		output.RuleGroupsNamespaces = []types.RuleGroupsNamespaceSummary{{Name: aws.String(names[start])}}
	}
	if start+1 < len(names) {
		output.NextToken = aws.String(strconv.Itoa(start + 1))
	}
	return output, nil
}

func (f *fakeAPI) DescribeRuleGroupsNamespace(ctx context.Context, params *awsamp.DescribeRuleGroupsNamespaceInput, optFns ...func(*awsamp.Options)) (*awsamp.DescribeRuleGroupsNamespaceOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, found := f.namespaces[aws.ToString(params.Name)]
	if !found {
		return nil, &smithy.GenericAPIError{Code: "ResourceNotFoundException", Fault: smithy.FaultClient}
	}
	return &awsamp.DescribeRuleGroupsNamespaceOutput{
		RuleGroupsNamespace: &types.RuleGroupsNamespaceDescription{Name: params.Name, Data: data},
	}, nil
}

func (f *fakeAPI) CreateRuleGroupsNamespace(ctx context.Context, params *awsamp.CreateRuleGroupsNamespaceInput, optFns ...func(*awsamp.Options)) (*awsamp.CreateRuleGroupsNamespaceOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(params.Name)
	if _, found := f.namespaces[name]; found {
		return nil, &smithy.GenericAPIError{Code: "ValidationException", Message: "namespace exists", Fault: smithy.FaultClient}
	}
	f.createCalls = append(f.createCalls, name)
	f.namespaces[name] = params.Data
	f.creating[name] = true
	return &awsamp.CreateRuleGroupsNamespaceOutput{Name: params.Name}, nil
}

func (f *fakeAPI) PutRuleGroupsNamespace(ctx context.Context, params *awsamp.PutRuleGroupsNamespaceInput, optFns ...func(*awsamp.Options)) (*awsamp.PutRuleGroupsNamespaceOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(params.Name)
	if f.creating[name] {
		f.creating[name] = false
		return nil, &smithy.GenericAPIError{Code: "ConflictException", Message: "namespace is CREATING", Fault: smithy.FaultClient}
	}
	if f.failPuts > 0 {
		f.failPuts--
		return nil, &smithy.GenericAPIError{Code: "ThrottlingException", Message: "Rate exceeded", Fault: smithy.FaultClient}
	}
	f.putCalls = append(f.putCalls, name)
	f.namespaces[name] = params.Data
	return &awsamp.PutRuleGroupsNamespaceOutput{Name: params.Name}, nil
}

func (f *fakeAPI) seed(t *testing.T, name string, doc RuleDocument) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	f.namespaces[name] = data
}

func (f *fakeAPI) document(t *testing.T, name string) RuleDocument {
	data, found := f.namespaces[name]
	if !found {
		t.Fatalf("namespace %s not found", name)
	}
	doc, err := ParseRuleDocument(data)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func testManager(api API, capacity int) *Manager {
	return &Manager{
		API:         api,
		WorkspaceID: "ws-6d6f1b36-8c1d-4a39-9f57-0b6f5e1a2c3d",
		Capacity:    capacity,
		RetryPolicy: erm.RetryPolicy{Attempts: 3, Delay: time.Millisecond},
	}
}

func testRule(alert string, threshold int) Rule {
	return Rule{
		Alert:  alert,
		Expr:   fmt.Sprintf(`avg(rate(container_cpu_usage_seconds_total{pod="%s"}[5m])) > %d`, alert, threshold),
		For:    "10m",
		Labels: map[string]string{"severity": "warning"},
	}
}

func fullDocument(groupName string, count int) RuleDocument {
	var rules []Rule
	for i := 0; i < count; i++ {
		rules = append(rules, testRule(fmt.Sprintf("%s-r%d", groupName, i), 90))
	}
	return RuleDocument{Groups: []RuleGroup{{Name: groupName, Rules: rules}}}
}
