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

// Command autoalarmcli explains the alarms a tag set asks for and replays resource events
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/pubsub"
	"gopkg.in/yaml.v2"

	"github.com/BrunoReboul/autoalarm/utilities/aacli"
	"github.com/BrunoReboul/autoalarm/utilities/ffo"
	"github.com/BrunoReboul/autoalarm/utilities/gps"
	"github.com/BrunoReboul/autoalarm/utilities/str"
)

const logEventEveryXPubSubMsg = 100

func main() {
	log.SetFlags(0)
	command, err := aacli.CheckArguments(os.Args[1:])
	if err != nil {
		log.Fatalln(err)
	}
	if command.ReplayPath != "" {
		if err := replay(context.Background(), command); err != nil {
			log.Fatalln(err)
		}
		return
	}

	desiredAlarms, err := aacli.Explain(command)
	if err != nil {
		log.Fatalln(err)
	}
	if command.OutputPath != "" {
		if err := ffo.MarshalYAMLWrite(command.OutputPath, desiredAlarms); err != nil {
			log.Fatalln(err)
		}
		log.Printf("%d desired alarms written to %s", len(desiredAlarms), command.OutputPath)
		return
	}
	bytes, err := yaml.Marshal(desiredAlarms)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Print(str.YAMLDisclaimer + string(bytes))
}

func replay(ctx context.Context, command aacli.Command) error {
	bodies, err := aacli.ReadEvents(command.ReplayPath)
	if err != nil {
		return err
	}
	client, err := pubsub.NewClient(ctx, command.ProjectID)
	if err != nil {
		return fmt.Errorf("pubsub.NewClient %v", err)
	}
	defer client.Close()
	counters, err := gps.PublishAll(ctx, client.Topic(command.TopicID), bodies, map[string]string{"origin": "autoalarmcli"}, logEventEveryXPubSubMsg)
	log.Printf("%d events published from %s", counters.Published, command.ReplayPath)
	return err
}
