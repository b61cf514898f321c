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

	awsamp "github.com/aws/aws-sdk-go-v2/service/amp"
)

// API subset of the Amazon Managed Service for Prometheus client the manager relies on
type API interface {
	ListRuleGroupsNamespaces(ctx context.Context, params *awsamp.ListRuleGroupsNamespacesInput, optFns ...func(*awsamp.Options)) (*awsamp.ListRuleGroupsNamespacesOutput, error)
	DescribeRuleGroupsNamespace(ctx context.Context, params *awsamp.DescribeRuleGroupsNamespaceInput, optFns ...func(*awsamp.Options)) (*awsamp.DescribeRuleGroupsNamespaceOutput, error)
	CreateRuleGroupsNamespace(ctx context.Context, params *awsamp.CreateRuleGroupsNamespaceInput, optFns ...func(*awsamp.Options)) (*awsamp.CreateRuleGroupsNamespaceOutput, error)
	PutRuleGroupsNamespace(ctx context.Context, params *awsamp.PutRuleGroupsNamespaceInput, optFns ...func(*awsamp.Options)) (*awsamp.PutRuleGroupsNamespaceOutput, error)
}
