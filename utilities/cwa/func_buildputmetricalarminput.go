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
	"fmt"

	"github.com/BrunoReboul/autoalarm/utilities/alarm"
	"github.com/BrunoReboul/autoalarm/utilities/tag"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metric data query ids of anomaly alarms
const (
	metricQueryID        = "m1"
	anomalyBandQueryID   = "ad1"
	anomalyBandFormat    = "ANOMALY_DETECTION_BAND(%s, %s)"
	alarmDescriptionForm = "Managed by autoalarm from tag %s%s on %s, edits are overwritten"
)

func dimensionsOf(desiredAlarm alarm.DesiredAlarm) []types.Dimension {
	dimensions := make([]types.Dimension, 0, len(desiredAlarm.Dimensions))
	for _, dimension := range desiredAlarm.Dimensions {
		dimensions = append(dimensions, types.Dimension{
			Name:  aws.String(dimension.Name),
			Value: aws.String(dimension.Value),
		})
	}
	return dimensions
}

func buildAlarmDescription(desiredAlarm alarm.DesiredAlarm) string {
	return fmt.Sprintf(alarmDescriptionForm, alarm.TagPrefix, desiredAlarm.TagKey, desiredAlarm.ResourceID)
}

// BuildPutMetricAlarmInput CloudWatch representation of a desired alarm
// extended statistics such as p99 go to ExtendedStatistic, anomaly alarms compare the metric to its band
func BuildPutMetricAlarmInput(desiredAlarm alarm.DesiredAlarm, actions Actions) *cloudwatch.PutMetricAlarmInput {
	options := desiredAlarm.Options
	input := &cloudwatch.PutMetricAlarmInput{
		AlarmName:          aws.String(desiredAlarm.Name),
		AlarmDescription:   aws.String(buildAlarmDescription(desiredAlarm)),
		ActionsEnabled:     aws.Bool(true),
		AlarmActions:       actions.of(desiredAlarm.Classification),
		OKActions:          actions.OK,
		ComparisonOperator: types.ComparisonOperator(options.ComparisonOperator),
		EvaluationPeriods:  aws.Int32(int32(options.EvaluationPeriods)),
		TreatMissingData:   aws.String(string(options.MissingDataTreatment)),
	}
	if desiredAlarm.Variant == tag.Anomaly {
		input.ThresholdMetricId = aws.String(anomalyBandQueryID)
		input.Metrics = []types.MetricDataQuery{
			{
				Id: aws.String(metricQueryID),
				MetricStat: &types.MetricStat{
					Metric: &types.Metric{
						Namespace:  aws.String(desiredAlarm.Namespace),
						MetricName: aws.String(desiredAlarm.MetricName),
						Dimensions: dimensionsOf(desiredAlarm),
					},
					Period: aws.Int32(int32(options.Period)),
					Stat:   aws.String(options.Statistic),
				},
				ReturnData: aws.Bool(true),
			},
			{
				Id:         aws.String(anomalyBandQueryID),
				Expression: aws.String(fmt.Sprintf(anomalyBandFormat, metricQueryID, formatFloat(desiredAlarm.Threshold()))),
				Label:      aws.String(fmt.Sprintf("%s (expected)", desiredAlarm.MetricName)),
				ReturnData: aws.Bool(true),
			},
		}
		return input
	}
	input.Namespace = aws.String(desiredAlarm.Namespace)
	input.MetricName = aws.String(desiredAlarm.MetricName)
	input.Dimensions = dimensionsOf(desiredAlarm)
	input.Period = aws.Int32(int32(options.Period))
	input.Threshold = aws.Float64(desiredAlarm.Threshold())
	if tag.IsExtendedStatistic(options.Statistic) {
		input.ExtendedStatistic = aws.String(options.Statistic)
	} else {
		input.Statistic = types.Statistic(options.Statistic)
	}
	return input
}

// BuildPutAnomalyDetectorInput anomaly detector model of an anomaly alarm
func BuildPutAnomalyDetectorInput(desiredAlarm alarm.DesiredAlarm) *cloudwatch.PutAnomalyDetectorInput {
	return &cloudwatch.PutAnomalyDetectorInput{
		SingleMetricAnomalyDetector: &types.SingleMetricAnomalyDetector{
			Namespace:  aws.String(desiredAlarm.Namespace),
			MetricName: aws.String(desiredAlarm.MetricName),
			Dimensions: dimensionsOf(desiredAlarm),
			Stat:       aws.String(desiredAlarm.Options.Statistic),
		},
	}
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
