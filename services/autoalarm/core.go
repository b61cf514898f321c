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

package autoalarm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/config"
	awsamp "github.com/aws/aws-sdk-go-v2/service/amp"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	"github.com/google/uuid"

	"github.com/BrunoReboul/autoalarm/utilities/amp"
	"github.com/BrunoReboul/autoalarm/utilities/awsres"
	"github.com/BrunoReboul/autoalarm/utilities/cwa"
	"github.com/BrunoReboul/autoalarm/utilities/dispatch"
	"github.com/BrunoReboul/autoalarm/utilities/evt"
	"github.com/BrunoReboul/autoalarm/utilities/ffo"
	"github.com/BrunoReboul/autoalarm/utilities/logging"
	"github.com/BrunoReboul/autoalarm/utilities/solution"
	"github.com/BrunoReboul/autoalarm/utilities/validater"
)

// Environment variables read at cold start
const (
	SettingsPathEnvVar  = "AUTOALARM_SETTINGS"
	EnvironmentEnvVar   = "AUTOALARM_ENVIRONMENT"
	DefaultSettingsPath = "./settings.yaml"
)

// Global structure for global variables to optimize the function performances
type Global struct {
	dispatcher *dispatch.Dispatcher
	initID     string
	settings   solution.Settings
}

// Initialize is to be executed once per cold start, before the first invocation
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.initID = uuid.NewString()
	log.Println(logging.Entry{
		Severity:    "NOTICE",
		Message:     "coldstart",
		Description: "init_id " + global.initID,
		InitID:      global.initID,
	})

	settingsPath := os.Getenv(SettingsPathEnvVar)
	if settingsPath == "" {
		settingsPath = DefaultSettingsPath
	}
	err = ffo.ReadUnmarshalYAML(settingsPath, &global.settings)
	if err != nil {
		return fmt.Errorf("init_id %s ReadUnmarshalYAML %s %v", global.initID, settingsPath, err)
	}
	err = validater.ValidateStruct(global.settings, "settings")
	if err != nil {
		return fmt.Errorf("init_id %s ValidateStruct %v", global.initID, err)
	}
	global.settings.Situate(os.Getenv(EnvironmentEnvVar))
	err = global.settings.Check()
	if err != nil {
		return fmt.Errorf("init_id %s %v", global.initID, err)
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(global.settings.Hosting.Region))
	if err != nil {
		return fmt.Errorf("init_id %s config.LoadDefaultConfig %v", global.initID, err)
	}
	var backend Backend
	switch global.settings.Backend {
	case "prometheus":
		manager := amp.NewManager(awsamp.NewFromConfig(cfg), global.settings.Prometheus.WorkspaceID)
		manager.Capacity = global.settings.Prometheus.Capacity
		manager.RetryPolicy = global.settings.Prometheus.Retry
		backend = &amp.Reconciler{Manager: manager, Root: global.settings.Prometheus.RootNamespace}
	default:
		backend = &cwa.Reconciler{API: cloudwatch.NewFromConfig(cfg), Actions: global.settings.CloudWatch.Actions}
	}
	resources := &awsres.Client{
		Tagging: resourcegroupstaggingapi.NewFromConfig(cfg),
		ELB:     elb.NewFromConfig(cfg),
	}
	global.dispatcher = NewDispatcher(&Engine{Backend: backend, Resources: resources})
	return nil
}

// EntryPoint is the function to be executed for each SQS batch
// the failed records are reported as batch item failures, the other ones are deleted from the queue
func EntryPoint(ctx context.Context, event events.SQSEvent, global *Global) (response events.SQSEventResponse, err error) {
	inv := global.invocation(ctx)
	records := make([]dispatch.EventRecord, 0, len(event.Records))
	for _, message := range event.Records {
		record, ok := decode(inv, message.MessageId, []byte(message.Body))
		if ok {
			records = append(records, record)
		}
	}
	response.BatchItemFailures = make([]events.SQSBatchItemFailure, 0)
	for _, failure := range global.dispatcher.ProcessBatch(ctx, inv, records) {
		response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: failure.ItemIdentifier})
	}
	return response, nil
}

// invocation context of one batch
func (global *Global) invocation(ctx context.Context) dispatch.Invocation {
	inv := dispatch.Invocation{
		MicroserviceName: global.settings.MicroserviceName,
		InstanceName:     global.settings.InstanceName,
		Environment:      global.settings.Environment,
		InitID:           global.initID,
		InvocationID:     uuid.NewString(),
		Backend:          global.settings.Backend,
		DryRun:           global.settings.DryRun,
	}
	if lambdaContext, ok := lambdacontext.FromContext(ctx); ok {
		inv.RequestID = lambdaContext.AwsRequestID
	}
	if deadline, ok := ctx.Deadline(); ok {
		inv.Deadline = deadline
	}
	return inv
}

// decode a message body, undecodable and ignored events are logged and dropped
func decode(inv dispatch.Invocation, messageID string, body []byte) (dispatch.EventRecord, bool) {
	record, err := evt.Decode(messageID, body)
	if err == nil {
		return record, true
	}
	entry := inv.ForRecord(messageID).Entry("WARNING", "noretry", err.Error())
	if errors.Is(err, evt.ErrIgnored) {
		entry = inv.ForRecord(messageID).Entry("INFO", "ignored", err.Error())
	}
	log.Println(entry)
	return dispatch.EventRecord{}, false
}
