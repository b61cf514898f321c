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
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/BrunoReboul/autoalarm/utilities/erm"
)

// ProcessBatch handle each record in its own go routine and collect the failed ones in input order
// unmatched records are logged and dropped, they are not failures
func (d *Dispatcher) ProcessBatch(ctx context.Context, inv Invocation, records []EventRecord) (failures []BatchItemFailure) {
	start := time.Now()
	failed := make([]bool, len(records))
	var failureCount uint64
	var waitgroup sync.WaitGroup
	for i, record := range records {
		handler := d.route(record)
		if handler == nil {
			entry := inv.ForRecord(record.SourceID).Entry("WARNING", "noretry", fmt.Sprintf("no handler for resource identifier '%s', record dropped", record.ResourceIdentifier))
			entry.EventKind = string(record.Kind)
			log.Println(entry)
			continue
		}
		waitgroup.Add(1)
		go func(i int, record EventRecord, handler Handler) {
			defer waitgroup.Done()
			if err := handle(ctx, inv.ForRecord(record.SourceID), record, handler); err != nil {
				failed[i] = true
				atomic.AddUint64(&failureCount, 1)
			}
		}(i, record, handler)
	}
	waitgroup.Wait()

	for i, record := range records {
		if failed[i] {
			failures = append(failures, BatchItemFailure{ItemIdentifier: record.SourceID})
		}
	}
	entry := inv.Entry("INFO", "finish", "batch processed")
	entry.RecordCount = len(records)
	entry.FailureCount = int(atomic.LoadUint64(&failureCount))
	entry.LatencySeconds = time.Since(start).Seconds()
	if entry.FailureCount > 0 {
		entry.Severity = "WARNING"
	}
	log.Println(entry)
	return failures
}

// handle run one handler, a panic fails the record not the batch
func handle(ctx context.Context, inv Invocation, record EventRecord, handler Handler) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic %v", r)
		}
		var entry = inv.Entry("INFO", "finish", "record processed")
		if err != nil {
			entry.Severity = "ERROR"
			entry.Message = "record_failed"
			if erm.IsTransient(err) {
				entry.Severity = "WARNING"
				entry.Message = "redo_on_transient"
			}
			entry.Description = err.Error()
		}
		entry.EventKind = string(record.Kind)
		entry.ResourceID = record.ResourceIdentifier
		entry.LatencySeconds = time.Since(start).Seconds()
		log.Println(entry)
	}()
	return handler.Handle(ctx, inv, record)
}
