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

package dispatch

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prefixClassifier struct {
	name   string
	prefix string
}

func (c prefixClassifier) Name() string { return c.name }

func (c prefixClassifier) Matches(resourceIdentifier string) bool {
	return strings.HasPrefix(resourceIdentifier, c.prefix)
}

func (c prefixClassifier) ExtractIdentifier(resourceIdentifier string) string {
	return strings.TrimPrefix(resourceIdentifier, c.prefix)
}

func (c prefixClassifier) ExtractTags(record EventRecord) map[string]string { return record.Tags }

type recorder struct {
	mu      sync.Mutex
	applied map[string]string
}

func (r *recorder) reconcile(failOn string) ReconcileFunc {
	return func(ctx context.Context, inv Invocation, classifier Classifier, record EventRecord) error {
		if record.SourceID != inv.RecordID {
			return errors.New("invocation not scoped to the record")
		}
		if record.SourceID == failOn {
			return errors.New("ValidationException: alarm backend rejected the record")
		}
		r.mu.Lock()
		defer r.mu.Unlock()
		r.applied[record.SourceID] = classifier.Name() + ":" + classifier.ExtractIdentifier(record.ResourceIdentifier)
		return nil
	}
}

func TestUnitProcessBatchIsolatesFailures(t *testing.T) {
	r := &recorder{applied: make(map[string]string)}
	d := New(NewClassifiedHandler(prefixClassifier{name: "ec2", prefix: "arn:aws:ec2:"}, r.reconcile("msg-2")))
	records := []EventRecord{
		{SourceID: "msg-1", Kind: TagChange, ResourceIdentifier: "arn:aws:ec2:i-1"},
		{SourceID: "msg-2", Kind: TagChange, ResourceIdentifier: "arn:aws:ec2:i-2"},
		{SourceID: "msg-3", Kind: TagChange, ResourceIdentifier: "arn:aws:ec2:i-3"},
	}

	failures := d.ProcessBatch(context.Background(), Invocation{RequestID: "req"}, records)

	assert.Equal(t, []BatchItemFailure{{ItemIdentifier: "msg-2"}}, failures)
	assert.Equal(t, map[string]string{"msg-1": "ec2:i-1", "msg-3": "ec2:i-3"}, r.applied)
}

func TestUnitProcessBatchFailuresInInputOrder(t *testing.T) {
	d := New(NewClassifiedHandler(prefixClassifier{name: "any", prefix: ""},
		func(ctx context.Context, inv Invocation, classifier Classifier, record EventRecord) error {
			if strings.HasSuffix(record.SourceID, "odd") {
				return errors.New("failed")
			}
			return nil
		}))
	var records []EventRecord
	var want []BatchItemFailure
	for _, id := range []string{"a-odd", "b", "c-odd", "d", "e-odd", "f-odd", "g"} {
		records = append(records, EventRecord{SourceID: id, ResourceIdentifier: id})
		if strings.HasSuffix(id, "odd") {
			want = append(want, BatchItemFailure{ItemIdentifier: id})
		}
	}
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, d.ProcessBatch(context.Background(), Invocation{}, records))
	}
}

func TestUnitProcessBatchFirstMatchWins(t *testing.T) {
	r := &recorder{applied: make(map[string]string)}
	d := New(
		NewClassifiedHandler(prefixClassifier{name: "targetgroup", prefix: "arn:aws:elasticloadbalancing:targetgroup/"}, r.reconcile("")),
		NewClassifiedHandler(prefixClassifier{name: "loadbalancer", prefix: "arn:aws:elasticloadbalancing:"}, r.reconcile("")),
	)
	records := []EventRecord{
		{SourceID: "1", ResourceIdentifier: "arn:aws:elasticloadbalancing:targetgroup/web/73e2d6bc24d8a067"},
		{SourceID: "2", ResourceIdentifier: "arn:aws:elasticloadbalancing:loadbalancer/app/web/50dc6c495c0c9188"},
	}
	failures := d.ProcessBatch(context.Background(), Invocation{}, records)
	assert.Empty(t, failures)
	assert.Equal(t, "targetgroup:web/73e2d6bc24d8a067", r.applied["1"])
	assert.Equal(t, "loadbalancer:loadbalancer/app/web/50dc6c495c0c9188", r.applied["2"])
}

func TestUnitProcessBatchUnmatchedRecordDropped(t *testing.T) {
	var buffer bytes.Buffer
	log.SetOutput(&buffer)
	defer log.SetOutput(os.Stderr)

	r := &recorder{applied: make(map[string]string)}
	d := New(NewClassifiedHandler(prefixClassifier{name: "ec2", prefix: "arn:aws:ec2:"}, r.reconcile("")))
	records := []EventRecord{
		{SourceID: "1", ResourceIdentifier: "arn:aws:dynamodb:table/orders"},
		{SourceID: "2", ResourceIdentifier: "arn:aws:ec2:i-2"},
	}
	failures := d.ProcessBatch(context.Background(), Invocation{}, records)
	assert.Empty(t, failures)
	assert.Len(t, r.applied, 1)
	assert.Contains(t, buffer.String(), "no handler for resource identifier 'arn:aws:dynamodb:table/orders'")
}

func TestUnitProcessBatchPanicFailsOnlyItsRecord(t *testing.T) {
	d := New(NewClassifiedHandler(prefixClassifier{name: "any", prefix: ""},
		func(ctx context.Context, inv Invocation, classifier Classifier, record EventRecord) error {
			if record.SourceID == "boom" {
				var tags map[string]string
				tags["autoalarm:enabled"] = "true"
			}
			return nil
		}))
	records := []EventRecord{{SourceID: "ok"}, {SourceID: "boom"}}
	failures := d.ProcessBatch(context.Background(), Invocation{}, records)
	require.Len(t, failures, 1)
	assert.Equal(t, "boom", failures[0].ItemIdentifier)
}

func TestUnitProcessBatchEmpty(t *testing.T) {
	assert.Empty(t, New().ProcessBatch(context.Background(), Invocation{}, nil))
}
