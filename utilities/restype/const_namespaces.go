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

package restype

// CloudWatch namespaces
const (
	namespaceEC2     = "AWS/EC2"
	namespaceCWAgent = "CWAgent"
	namespaceALB     = "AWS/ApplicationELB"
	namespaceNLB     = "AWS/NetworkELB"
	namespaceSQS     = "AWS/SQS"
	namespaceSNS     = "AWS/SNS"
	namespaceLambda  = "AWS/Lambda"
)

// LoadBalancerDimension dimension target group metrics are reported with
const LoadBalancerDimension = "LoadBalancer"
