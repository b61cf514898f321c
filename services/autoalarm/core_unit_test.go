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
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrunoReboul/autoalarm/utilities/solution"
)

const queueARN = "arn:aws:sqs:eu-west-1:123456789012:orders"

func tagChangeBody(resourceARN string, enabled string) string {
	return fmt.Sprintf(`{"detail-type":"Tag Change on Resource","source":"aws.tag","resources":["%s"],
		"detail":{"changed-tag-keys":["autoalarm:enabled"],"tags":{"autoalarm:enabled":"%s"}}}`, resourceARN, enabled)
}

func testGlobal(backend Backend, resources ResourceReader, dryRun bool) *Global {
	var settings solution.Settings
	settings.MicroserviceName = "autoalarm"
	settings.Environment = "dev"
	settings.Backend = "cloudwatch"
	settings.DryRun = dryRun
	return &Global{
		dispatcher: NewDispatcher(&Engine{Backend: backend, Resources: resources}),
		initID:     "test-init",
		settings:   settings,
	}
}

func TestUnitEntryPoint(t *testing.T) {
	backend := newFakeBackend()
	backend.failOn = "AutoAlarm-SQS-orders-"
	global := testGlobal(backend, &fakeResources{}, false)

	event := events.SQSEvent{Records: []events.SQSMessage{
		{MessageId: "m1", Body: tagChangeBody(instanceARN, "true")},
		{MessageId: "m2", Body: tagChangeBody(queueARN, "true")},
		{MessageId: "m3", Body: `{"detail-type":`},
		{MessageId: "m4", Body: `{"detail-type":"EC2 Instance State-change Notification","resources":["` + instanceARN + `"],"detail":{"state":"stopped"}}`},
		{MessageId: "m5", Body: tagChangeBody("arn:aws:rds:eu-west-1:123456789012:db:orders", "true")},
	}}
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})
	response, err := EntryPoint(ctx, event, global)
	require.NoError(t, err)
	assert.Equal(t, []events.SQSBatchItemFailure{{ItemIdentifier: "m2"}}, response.BatchItemFailures)

	call, found := backend.call(instancePrefix)
	require.True(t, found)
	assert.Len(t, call.desiredAlarms, 3)
	assert.Len(t, backend.calls, 2)
}

func TestUnitEntryPointEmptyBatch(t *testing.T) {
	global := testGlobal(newFakeBackend(), &fakeResources{}, false)
	response, err := EntryPoint(context.Background(), events.SQSEvent{}, global)
	require.NoError(t, err)
	assert.NotNil(t, response.BatchItemFailures)
	assert.Empty(t, response.BatchItemFailures)
}

func TestUnitEntryPointPanicFailsOnlyItsRecord(t *testing.T) {
	backend := newFakeBackend()
	backend.panicOn = "AutoAlarm-SQS-orders-"
	global := testGlobal(backend, &fakeResources{}, false)
	event := events.SQSEvent{Records: []events.SQSMessage{
		{MessageId: "m1", Body: tagChangeBody(queueARN, "true")},
		{MessageId: "m2", Body: tagChangeBody(instanceARN, "true")},
	}}
	response, err := EntryPoint(context.Background(), event, global)
	require.NoError(t, err)
	assert.Equal(t, []events.SQSBatchItemFailure{{ItemIdentifier: "m1"}}, response.BatchItemFailures)
	_, found := backend.call(instancePrefix)
	assert.True(t, found)
}

func TestUnitEntryPointDryRun(t *testing.T) {
	backend := newFakeBackend()
	global := testGlobal(backend, &fakeResources{}, true)
	event := events.SQSEvent{Records: []events.SQSMessage{{MessageId: "m1", Body: tagChangeBody(instanceARN, "true")}}}
	_, err := EntryPoint(context.Background(), event, global)
	require.NoError(t, err)
	call, found := backend.call(instancePrefix)
	require.True(t, found)
	assert.True(t, call.dryRun)
}

type fakeMessage struct {
	acked  bool
	nacked bool
}

func (m *fakeMessage) Ack()  { m.acked = true }
func (m *fakeMessage) Nack() { m.nacked = true }

func TestUnitHandleMessage(t *testing.T) {
	var testCases = []struct {
		name      string
		body      string
		wantAck   bool
		wantNack  bool
		wantCalls int
	}{
		{
			name:      "processed",
			body:      tagChangeBody(instanceARN, "true"),
			wantAck:   true,
			wantCalls: 1,
		},
		{
			name:      "failed",
			body:      tagChangeBody(queueARN, "true"),
			wantNack:  true,
			wantCalls: 1,
		},
		{
			name:    "undecodable",
			body:    "not json",
			wantAck: true,
		},
		{
			name:    "ignored",
			body:    `{"detail-type":"Scheduled Event"}`,
			wantAck: true,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			backend := newFakeBackend()
			backend.failOn = "AutoAlarm-SQS-orders-"
			global := testGlobal(backend, &fakeResources{}, false)
			message := &fakeMessage{}
			global.handleMessage(context.Background(), "p1", []byte(tc.body), message)
			assert.Equal(t, tc.wantAck, message.acked)
			assert.Equal(t, tc.wantNack, message.nacked)
			assert.Len(t, backend.calls, tc.wantCalls)
		})
	}
}

func TestUnitInitialize(t *testing.T) {
	settingsPath := filepath.Join(t.TempDir(), "settings.yaml")
	err := os.WriteFile(settingsPath, []byte(`---
microserviceName: autoalarm
environment: dev
backend: prometheus
hosting:
  regions:
    dev: eu-west-1
    prd: us-east-1
prometheus:
  workspaceIDs:
    dev: ws-11111111-1111-1111-1111-111111111111
    prd: ws-22222222-2222-2222-2222-222222222222
`), 0o600)
	require.NoError(t, err)
	t.Setenv(SettingsPathEnvVar, settingsPath)
	t.Setenv(EnvironmentEnvVar, "prd")

	var global Global
	require.NoError(t, Initialize(context.Background(), &global))
	assert.NotNil(t, global.dispatcher)
	assert.NotEmpty(t, global.initID)
	assert.Equal(t, "us-east-1", global.settings.Hosting.Region)
	assert.Equal(t, "ws-22222222-2222-2222-2222-222222222222", global.settings.Prometheus.WorkspaceID)
}

func TestUnitInitializeRejectsInvalidSettings(t *testing.T) {
	var testCases = []struct {
		name     string
		settings string
	}{
		{
			name:     "missingMicroserviceName",
			settings: "environment: dev\nbackend: cloudwatch\nhosting:\n  regions:\n    dev: eu-west-1\n",
		},
		{
			name:     "unknownBackend",
			settings: "microserviceName: autoalarm\nenvironment: dev\nbackend: datadog\nhosting:\n  regions:\n    dev: eu-west-1\n",
		},
		{
			name:     "noRegionForEnvironment",
			settings: "microserviceName: autoalarm\nenvironment: dev\nbackend: cloudwatch\nhosting:\n  regions:\n    prd: us-east-1\n",
		},
		{
			name:     "unknownField",
			settings: "microserviceName: autoalarm\nenvironment: dev\nbackend: cloudwatch\nregion: eu-west-1\n",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			settingsPath := filepath.Join(t.TempDir(), "settings.yaml")
			require.NoError(t, os.WriteFile(settingsPath, []byte(tc.settings), 0o600))
			t.Setenv(SettingsPathEnvVar, settingsPath)
			t.Setenv(EnvironmentEnvVar, "")
			var global Global
			assert.Error(t, Initialize(context.Background(), &global))
		})
	}
}
