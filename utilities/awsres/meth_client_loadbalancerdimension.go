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

package awsres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/BrunoReboul/autoalarm/utilities/erm"
)

const loadBalancerMarker = ":loadbalancer/"

// LoadBalancerDimension value of the LoadBalancer dimension of a target group, app/<name>/<id> or net/<name>/<id>
// empty when the target group is not attached or no longer exists
func (c *Client) LoadBalancerDimension(ctx context.Context, targetGroupARN string) (string, error) {
	var output *elb.DescribeTargetGroupsOutput
	err := erm.Retry(ctx, c.RetryPolicy, "elb.DescribeTargetGroups", func(ctx context.Context) (err error) {
		output, err = c.ELB.DescribeTargetGroups(ctx, &elb.DescribeTargetGroupsInput{
			TargetGroupArns: []string{targetGroupARN},
		})
		return err
	})
	if err != nil {
		var notFound *types.TargetGroupNotFoundException
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("elb.DescribeTargetGroups %s %w", targetGroupARN, err)
	}
	for _, targetGroup := range output.TargetGroups {
		for _, loadBalancerARN := range targetGroup.LoadBalancerArns {
			if dimension := loadBalancerDimension(loadBalancerARN); dimension != "" {
				return dimension, nil
			}
		}
	}
	return "", nil
}

// loadBalancerDimension the ARN part after loadbalancer/
func loadBalancerDimension(loadBalancerARN string) string {
	i := strings.Index(loadBalancerARN, loadBalancerMarker)
	if i < 0 {
		return ""
	}
	return loadBalancerARN[i+len(loadBalancerMarker):]
}
