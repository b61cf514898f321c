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

package evt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BrunoReboul/autoalarm/utilities/dispatch"
	"github.com/tidwall/gjson"
)

// ErrIgnored a well formed event autoalarm has nothing to do with
var ErrIgnored = errors.New("evt event ignored")

// cloudTrailCall how to find the resource of a CloudTrail API call
type cloudTrailCall struct {
	kind dispatch.Kind
	path string
	arn  func(value string, event gjson.Result) string
}

var cloudTrailCalls = map[string]cloudTrailCall{
	"CreateLoadBalancer":     {kind: dispatch.Create, path: "detail.responseElements.loadBalancers.0.loadBalancerArn"},
	"DeleteLoadBalancer":     {kind: dispatch.Delete, path: "detail.requestParameters.loadBalancerArn"},
	"CreateTargetGroup":      {kind: dispatch.Create, path: "detail.responseElements.targetGroups.0.targetGroupArn"},
	"DeleteTargetGroup":      {kind: dispatch.Delete, path: "detail.requestParameters.targetGroupArn"},
	"CreateQueue":            {kind: dispatch.Create, path: "detail.responseElements.queueUrl", arn: queueARN},
	"DeleteQueue":            {kind: dispatch.Delete, path: "detail.requestParameters.queueUrl", arn: queueARN},
	"CreateTopic":            {kind: dispatch.Create, path: "detail.responseElements.topicArn"},
	"DeleteTopic":            {kind: dispatch.Delete, path: "detail.requestParameters.topicArn"},
	"CreateFunction20150331": {kind: dispatch.Create, path: "detail.responseElements.functionArn"},
	"DeleteFunction20150331": {kind: dispatch.Delete, path: "detail.requestParameters.functionName", arn: functionARN},
}

// Decode EventBridge event to record, ErrIgnored when the event requires no reconciliation
func Decode(sourceID string, body []byte) (record dispatch.EventRecord, err error) {
	record.SourceID = sourceID
	if !gjson.ValidBytes(body) {
		return record, fmt.Errorf("evt invalid JSON body")
	}
	event := gjson.ParseBytes(body)
	detailType := event.Get("detail-type").String()
	switch detailType {
	case detailTypeTagChange:
		record.Kind = dispatch.TagChange
		record.ResourceIdentifier = event.Get("resources.0").String()
		record.Tags = make(map[string]string)
		event.Get("detail.tags").ForEach(func(key, value gjson.Result) bool {
			record.Tags[key.String()] = value.String()
			return true
		})
	case detailTypeEC2State:
		record.ResourceIdentifier = event.Get("resources.0").String()
		if record.ResourceIdentifier == "" {
			record.ResourceIdentifier = instanceARN(event.Get("detail.instance-id").String(), event)
		}
		switch state := event.Get("detail.state").String(); state {
		case statePending, stateRunning:
			record.Kind = dispatch.StateChange
		case stateTerminated:
			record.Kind = dispatch.Delete
		default:
			return record, fmt.Errorf("%w: instance state %s", ErrIgnored, state)
		}
	case detailTypeCloudTrailAPI:
		if event.Get("detail.errorCode").Exists() {
			return record, fmt.Errorf("%w: failed API call %s", ErrIgnored, event.Get("detail.errorCode").String())
		}
		eventName := event.Get("detail.eventName").String()
		call, found := cloudTrailCalls[eventName]
		if !found {
			return record, fmt.Errorf("%w: API call %s", ErrIgnored, eventName)
		}
		record.Kind = call.kind
		record.ResourceIdentifier = event.Get(call.path).String()
		if call.arn != nil && record.ResourceIdentifier != "" {
			record.ResourceIdentifier = call.arn(record.ResourceIdentifier, event)
		}
	default:
		return record, fmt.Errorf("%w: detail-type '%s'", ErrIgnored, detailType)
	}
	if record.ResourceIdentifier == "" {
		return record, fmt.Errorf("evt no resource identifier in %s event", detailType)
	}
	return record, nil
}

func partition(event gjson.Result) string {
	region := event.Get("region").String()
	switch {
	case strings.HasPrefix(region, "cn-"):
		return "aws-cn"
	case strings.HasPrefix(region, "us-gov-"):
		return "aws-us-gov"
	}
	return "aws"
}

func buildARN(event gjson.Result, service string, resource string) string {
	return fmt.Sprintf("arn:%s:%s:%s:%s:%s", partition(event), service, event.Get("region").String(), event.Get("account").String(), resource)
}

func instanceARN(instanceID string, event gjson.Result) string {
	if instanceID == "" {
		return ""
	}
	return buildARN(event, "ec2", "instance/"+instanceID)
}

// queueARN from https://sqs.<region>.amazonaws.com/<account>/<name>
func queueARN(queueURL string, event gjson.Result) string {
	parts := strings.Split(strings.TrimSuffix(queueURL, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return fmt.Sprintf("arn:%s:sqs:%s:%s:%s", partition(event), event.Get("region").String(), parts[len(parts)-2], parts[len(parts)-1])
}

// functionARN function name, partial or full ARN
func functionARN(functionName string, event gjson.Result) string {
	if strings.HasPrefix(functionName, "arn:") {
		return functionName
	}
	return buildARN(event, "lambda", "function:"+functionName)
}
