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
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/smithy-go"
)

// fakeAPI in memory CloudWatch, two alarms per DescribeAlarms page
type fakeAPI struct {
	mu             sync.Mutex
	alarms         map[string]types.MetricAlarm
	detectors      []string
	putCalls       []string
	deleteCalls    [][]string
	failPutOn      string
	failDetectorOn string
	describeCalls  int
	pageSize       int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{alarms: make(map[string]types.MetricAlarm), pageSize: 2}
}

func (f *fakeAPI) DescribeAlarms(ctx context.Context, params *cloudwatch.DescribeAlarmsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DescribeAlarmsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.describeCalls++
	var names []string
	for name := range f.alarms {
		if strings.HasPrefix(name, aws.ToString(params.AlarmNamePrefix)) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	start := 0
	if params.NextToken != nil {
		start, _ = strconv.Atoi(*params.NextToken)
	}
	end := start + f.pageSize
	output := &cloudwatch.DescribeAlarmsOutput{}
	if end < len(names) {
		output.NextToken = aws.String(strconv.Itoa(end))
	} else {
		end = len(names)
	}
	for _, name := range names[start:end] {
		output.MetricAlarms = append(output.MetricAlarms, f.alarms[name])
	}
	return output, nil
}

func (f *fakeAPI) PutMetricAlarm(ctx context.Context, params *cloudwatch.PutMetricAlarmInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricAlarmOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(params.AlarmName)
	if name == f.failPutOn {
		return nil, &smithy.GenericAPIError{Code: "LimitExceeded", Message: "too many alarms", Fault: smithy.FaultClient}
	}
	f.putCalls = append(f.putCalls, name)
	f.alarms[name] = types.MetricAlarm{
		AlarmName:          params.AlarmName,
		AlarmDescription:   params.AlarmDescription,
		ActionsEnabled:     params.ActionsEnabled,
		AlarmActions:       params.AlarmActions,
		OKActions:          params.OKActions,
		ComparisonOperator: params.ComparisonOperator,
		EvaluationPeriods:  params.EvaluationPeriods,
		TreatMissingData:   params.TreatMissingData,
		ThresholdMetricId:  params.ThresholdMetricId,
		Metrics:            params.Metrics,
		Namespace:          params.Namespace,
		MetricName:         params.MetricName,
		Dimensions:         params.Dimensions,
		Period:             params.Period,
		Statistic:          params.Statistic,
		ExtendedStatistic:  params.ExtendedStatistic,
		Threshold:          params.Threshold,
	}
	return &cloudwatch.PutMetricAlarmOutput{}, nil
}

func (f *fakeAPI) DeleteAlarms(ctx context.Context, params *cloudwatch.DeleteAlarmsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DeleteAlarmsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls = append(f.deleteCalls, params.AlarmNames)
	for _, name := range params.AlarmNames {
		delete(f.alarms, name)
	}
	return &cloudwatch.DeleteAlarmsOutput{}, nil
}

func (f *fakeAPI) PutAnomalyDetector(ctx context.Context, params *cloudwatch.PutAnomalyDetectorInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutAnomalyDetectorOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	metricName := aws.ToString(params.SingleMetricAnomalyDetector.MetricName)
	if metricName == f.failDetectorOn {
		return nil, &smithy.GenericAPIError{Code: "InvalidParameterValue", Message: "invalid stat", Fault: smithy.FaultClient}
	}
	f.detectors = append(f.detectors, metricName+"/"+aws.ToString(params.SingleMetricAnomalyDetector.Stat))
	return &cloudwatch.PutAnomalyDetectorOutput{}, nil
}

func (f *fakeAPI) names() (names []string) {
	for name := range f.alarms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
