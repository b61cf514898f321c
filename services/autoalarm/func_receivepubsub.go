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
	"log"

	"cloud.google.com/go/pubsub"

	"github.com/BrunoReboul/autoalarm/utilities/dispatch"
)

// acknowledger the part of a Pub/Sub message the receiver settles
type acknowledger interface {
	Ack()
	Nack()
}

// ReceivePubSub pull the configured subscription until ctx is done
// each message is a batch of one record: acked when processed or dropped, nacked to be redelivered
func ReceivePubSub(ctx context.Context, global *Global) error {
	client, err := pubsub.NewClient(ctx, global.settings.PubSub.ProjectID)
	if err != nil {
		return fmt.Errorf("init_id %s pubsub.NewClient %v", global.initID, err)
	}
	defer client.Close()
	subscription := client.Subscription(global.settings.PubSub.SubscriptionID)
	subscription.ReceiveSettings.MaxOutstandingMessages = global.settings.PubSub.MaxOutstandingMessages

	log.Println(global.invocation(ctx).Entry("INFO", "start", fmt.Sprintf("receive from subscription %s", subscription.String())))
	err = subscription.Receive(ctx, func(ctx context.Context, message *pubsub.Message) {
		global.handleMessage(ctx, message.ID, message.Data, message)
	})
	if err != nil {
		return fmt.Errorf("subscription.Receive %s %v", subscription.String(), err)
	}
	return nil
}

func (global *Global) handleMessage(ctx context.Context, messageID string, data []byte, message acknowledger) {
	inv := global.invocation(ctx)
	record, ok := decode(inv, messageID, data)
	if !ok {
		message.Ack()
		return
	}
	if failures := global.dispatcher.ProcessBatch(ctx, inv, []dispatch.EventRecord{record}); len(failures) > 0 {
		message.Nack()
		return
	}
	message.Ack()
}
