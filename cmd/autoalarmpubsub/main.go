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

// Command autoalarmpubsub long running receiver of resource events from a Pub/Sub subscription
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrunoReboul/autoalarm/services/autoalarm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var global autoalarm.Global
	if err := autoalarm.Initialize(ctx, &global); err != nil {
		log.Fatalln(err)
	}
	if err := autoalarm.ReceivePubSub(ctx, &global); err != nil {
		log.Fatalln(err)
	}
}
