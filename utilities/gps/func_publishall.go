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

package gps

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/pubsub"
)

// PublishAll publish each body as one message and wait for every result
// the publish retries are the ones of the Go client, none is added here
func PublishAll(ctx context.Context, topic *pubsub.Topic, bodies [][]byte, attributes map[string]string, logEventEveryXPubSubMsg uint64) (counters PublishCounters, err error) {
	var waitgroup sync.WaitGroup
	for i, body := range bodies {
		publishResult := topic.Publish(ctx, &pubsub.Message{Data: body, Attributes: attributes})
		waitgroup.Add(1)
		go GetPublishCallResult(ctx, publishResult, &waitgroup, fmt.Sprintf("event %d", i), &counters, logEventEveryXPubSubMsg)
	}
	waitgroup.Wait()
	topic.Stop()
	if counters.Failed > 0 {
		return counters, fmt.Errorf("gps %d of %d messages not published to %s", counters.Failed, len(bodies), topic.String())
	}
	return counters, nil
}
