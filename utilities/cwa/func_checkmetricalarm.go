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
	"sort"
	"strings"

	"github.com/BrunoReboul/autoalarm/utilities/tag"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// checkMetricAlarm nil when the observed alarm already matches the put input, else the list of differences
func checkMetricAlarm(input *cloudwatch.PutMetricAlarmInput, retrieved types.MetricAlarm) (err error) {
	var s string
	if aws.ToString(input.AlarmDescription) != aws.ToString(retrieved.AlarmDescription) {
		s = fmt.Sprintf("%salarmDescription\nwant %s\nhave %s\n", s,
			aws.ToString(input.AlarmDescription),
			aws.ToString(retrieved.AlarmDescription))
	}
	if aws.ToBool(input.ActionsEnabled) != aws.ToBool(retrieved.ActionsEnabled) {
		s = fmt.Sprintf("%sactionsEnabled\nwant %v\nhave %v\n", s,
			aws.ToBool(input.ActionsEnabled),
			aws.ToBool(retrieved.ActionsEnabled))
	}
	if sortedJoin(input.AlarmActions) != sortedJoin(retrieved.AlarmActions) {
		s = fmt.Sprintf("%salarmActions\nwant %v\nhave %v\n", s, input.AlarmActions, retrieved.AlarmActions)
	}
	if sortedJoin(input.OKActions) != sortedJoin(retrieved.OKActions) {
		s = fmt.Sprintf("%sokActions\nwant %v\nhave %v\n", s, input.OKActions, retrieved.OKActions)
	}
	if input.ComparisonOperator != retrieved.ComparisonOperator {
		s = fmt.Sprintf("%scomparisonOperator\nwant %s\nhave %s\n", s,
			input.ComparisonOperator,
			retrieved.ComparisonOperator)
	}
	if aws.ToInt32(input.EvaluationPeriods) != aws.ToInt32(retrieved.EvaluationPeriods) {
		s = fmt.Sprintf("%sevaluationPeriods\nwant %d\nhave %d\n", s,
			aws.ToInt32(input.EvaluationPeriods),
			aws.ToInt32(retrieved.EvaluationPeriods))
	}
	if treatMissingData(input.TreatMissingData) != treatMissingData(retrieved.TreatMissingData) {
		s = fmt.Sprintf("%streatMissingData\nwant %s\nhave %s\n", s,
			treatMissingData(input.TreatMissingData),
			treatMissingData(retrieved.TreatMissingData))
	}
	if aws.ToString(input.ThresholdMetricId) != aws.ToString(retrieved.ThresholdMetricId) {
		s = fmt.Sprintf("%sthresholdMetricId\nwant %s\nhave %s\n", s,
			aws.ToString(input.ThresholdMetricId),
			aws.ToString(retrieved.ThresholdMetricId))
	}
	if input.Metrics != nil {
		want := metricQueriesKey(input.Metrics)
		have := metricQueriesKey(retrieved.Metrics)
		if want != have {
			s = fmt.Sprintf("%smetrics\nwant %s\nhave %s\n", s, want, have)
		}
	} else {
		if aws.ToString(input.Namespace) != aws.ToString(retrieved.Namespace) {
			s = fmt.Sprintf("%snamespace\nwant %s\nhave %s\n", s,
				aws.ToString(input.Namespace),
				aws.ToString(retrieved.Namespace))
		}
		if aws.ToString(input.MetricName) != aws.ToString(retrieved.MetricName) {
			s = fmt.Sprintf("%smetricName\nwant %s\nhave %s\n", s,
				aws.ToString(input.MetricName),
				aws.ToString(retrieved.MetricName))
		}
		if dimensionsKey(input.Dimensions) != dimensionsKey(retrieved.Dimensions) {
			s = fmt.Sprintf("%sdimensions\nwant %s\nhave %s\n", s,
				dimensionsKey(input.Dimensions),
				dimensionsKey(retrieved.Dimensions))
		}
		if aws.ToInt32(input.Period) != aws.ToInt32(retrieved.Period) {
			s = fmt.Sprintf("%speriod\nwant %d\nhave %d\n", s,
				aws.ToInt32(input.Period),
				aws.ToInt32(retrieved.Period))
		}
		if input.Statistic != retrieved.Statistic {
			s = fmt.Sprintf("%sstatistic\nwant %s\nhave %s\n", s, input.Statistic, retrieved.Statistic)
		}
		if aws.ToString(input.ExtendedStatistic) != aws.ToString(retrieved.ExtendedStatistic) {
			s = fmt.Sprintf("%sextendedStatistic\nwant %s\nhave %s\n", s,
				aws.ToString(input.ExtendedStatistic),
				aws.ToString(retrieved.ExtendedStatistic))
		}
		if retrieved.Threshold == nil || aws.ToFloat64(input.Threshold) != aws.ToFloat64(retrieved.Threshold) {
			s = fmt.Sprintf("%sthreshold\nwant %v\nhave %v\n", s,
				aws.ToFloat64(input.Threshold),
				retrieved.Threshold)
		}
	}
	if len(s) > 0 {
		return fmt.Errorf("cwa alarm %s differs:\n%s", aws.ToString(input.AlarmName), s)
	}
	return nil
}

func treatMissingData(value *string) string {
	if value == nil {
		return string(tag.Missing)
	}
	return *value
}

func sortedJoin(values []string) string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func dimensionsKey(dimensions []types.Dimension) string {
	pairs := make([]string, 0, len(dimensions))
	for _, dimension := range dimensions {
		pairs = append(pairs, aws.ToString(dimension.Name)+"="+aws.ToString(dimension.Value))
	}
	return sortedJoin(pairs)
}

func metricQueriesKey(queries []types.MetricDataQuery) string {
	keys := make([]string, 0, len(queries))
	for _, query := range queries {
		key := fmt.Sprintf("%s|%s|%v", aws.ToString(query.Id), aws.ToString(query.Expression), aws.ToBool(query.ReturnData))
		if query.MetricStat != nil {
			key = fmt.Sprintf("%s|%d|%s", key, aws.ToInt32(query.MetricStat.Period), aws.ToString(query.MetricStat.Stat))
			if query.MetricStat.Metric != nil {
				key = fmt.Sprintf("%s|%s|%s|%s", key,
					aws.ToString(query.MetricStat.Metric.Namespace),
					aws.ToString(query.MetricStat.Metric.MetricName),
					dimensionsKey(query.MetricStat.Metric.Dimensions))
			}
		}
		keys = append(keys, key)
	}
	return sortedJoin(keys)
}
