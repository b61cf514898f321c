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
	"testing"

	"github.com/BrunoReboul/autoalarm/utilities/alarm"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitBuildPutMetricAlarmInputExtendedStatistic(t *testing.T) {
	desiredAlarms := desired(map[string]string{"autoalarm:network-in": "1000"})
	require.Len(t, desiredAlarms, 3)
	input := BuildPutMetricAlarmInput(desiredAlarms[2], actions)
	assert.Equal(t, "p99", aws.ToString(input.ExtendedStatistic))
	assert.Equal(t, types.Statistic(""), input.Statistic)
	assert.Equal(t, "AWS/EC2", aws.ToString(input.Namespace))
	assert.Equal(t, "InstanceId", aws.ToString(input.Dimensions[0].Name))
}

func TestUnitBuildPutMetricAlarmInputAnomaly(t *testing.T) {
	desiredAlarms := desired(map[string]string{
		"autoalarm:cpu":         "-/-",
		"autoalarm:cpu-anomaly": "p95/60/3/</breaching",
	})
	require.Len(t, desiredAlarms, 2)

	warning := BuildPutMetricAlarmInput(desiredAlarms[0], actions)
	assert.Equal(t, alarm.Warning, desiredAlarms[0].Classification)
	assert.Nil(t, warning.MetricName)
	assert.Nil(t, warning.Threshold)
	assert.Equal(t, "ad1", aws.ToString(warning.ThresholdMetricId))
	assert.Equal(t, types.ComparisonOperatorLessThanLowerThreshold, warning.ComparisonOperator)
	assert.Equal(t, "breaching", aws.ToString(warning.TreatMissingData))
	require.Len(t, warning.Metrics, 2)
	assert.Equal(t, "p95", aws.ToString(warning.Metrics[0].MetricStat.Stat))
	assert.Equal(t, int32(60), aws.ToInt32(warning.Metrics[0].MetricStat.Period))
	assert.Equal(t, "ANOMALY_DETECTION_BAND(m1, 2)", aws.ToString(warning.Metrics[1].Expression))

	critical := BuildPutMetricAlarmInput(desiredAlarms[1], actions)
	assert.Equal(t, "ANOMALY_DETECTION_BAND(m1, 3)", aws.ToString(critical.Metrics[1].Expression))

	detector := BuildPutAnomalyDetectorInput(desiredAlarms[0])
	assert.Equal(t, "CPUUtilization", aws.ToString(detector.SingleMetricAnomalyDetector.MetricName))
	assert.Equal(t, "p95", aws.ToString(detector.SingleMetricAnomalyDetector.Stat))
}

func TestUnitCheckMetricAlarm(t *testing.T) {
	desiredAlarms := desired(map[string]string{"autoalarm:cpu": "90/95/60/5/Average"})
	input := BuildPutMetricAlarmInput(desiredAlarms[0], actions)
	retrieved := types.MetricAlarm{
		AlarmName:          input.AlarmName,
		AlarmDescription:   input.AlarmDescription,
		ActionsEnabled:     aws.Bool(true),
		AlarmActions:       input.AlarmActions,
		ComparisonOperator: input.ComparisonOperator,
		EvaluationPeriods:  aws.Int32(5),
		TreatMissingData:   aws.String("ignore"),
		Namespace:          aws.String("AWS/EC2"),
		MetricName:         aws.String("CPUUtilization"),
		Dimensions:         []types.Dimension{{Name: aws.String("InstanceId"), Value: aws.String(ec2Target.ResourceID)}},
		Period:             aws.Int32(60),
		Statistic:          types.StatisticAverage,
		Threshold:          aws.Float64(90),
	}
	assert.NoError(t, checkMetricAlarm(input, retrieved))

	retrieved.Period = aws.Int32(300)
	retrieved.AlarmActions = nil
	err := checkMetricAlarm(input, retrieved)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "period\nwant 60\nhave 300")
	assert.Contains(t, err.Error(), "alarmActions")
}
