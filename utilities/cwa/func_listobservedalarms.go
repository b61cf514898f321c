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

package cwa

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// listObservedAlarms metric alarms whose name starts with prefix, by name
func listObservedAlarms(ctx context.Context, api API, prefix string) (map[string]types.MetricAlarm, error) {
	observed := make(map[string]types.MetricAlarm)
	input := &cloudwatch.DescribeAlarmsInput{
		AlarmNamePrefix: aws.String(prefix),
		AlarmTypes:      []types.AlarmType{types.AlarmTypeMetricAlarm},
	}
	for {
		output, err := api.DescribeAlarms(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("cwa.DescribeAlarms %s %w", prefix, err)
		}
		for _, metricAlarm := range output.MetricAlarms {
			observed[aws.ToString(metricAlarm.AlarmName)] = metricAlarm
		}
		if aws.ToString(output.NextToken) == "" {
			return observed, nil
		}
		input.NextToken = output.NextToken
	}
}
