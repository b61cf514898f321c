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

package aacli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/BrunoReboul/autoalarm/utilities/restype"
	"github.com/BrunoReboul/autoalarm/utilities/str"
)

// CheckArguments parse and check the command line arguments
func CheckArguments(args []string) (command Command, err error) {
	command.Tags = make(TagFlag)
	flags := flag.NewFlagSet("autoalarmcli", flag.ContinueOnError)
	flags.StringVar(&command.ResourceARN, "arn", "", "resource ARN, the resource type is deduced from it")
	flags.StringVar(&command.ResourceType, "type", "", fmt.Sprintf("resource type, one of %s", strings.Join(restype.Names(), ", ")))
	flags.StringVar(&command.ResourceID, "id", "", "short resource identifier, with -type")
	flags.StringVar(&command.LoadBalancer, "lb", "", "load balancer dimension of a target group e.g. app/front/50dc6c495c0c9188")
	flags.Var(command.Tags, "tag", "resource tag key=value, repeatable")
	flags.StringVar(&command.OutputPath, "out", "", "write the desired alarms to this YAML file instead of stdout")
	flags.StringVar(&command.ReplayPath, "replay", "", "file of EventBridge events to publish, one JSON document per line")
	flags.StringVar(&command.ProjectID, "project", "", "Pub/Sub project ID, with -replay")
	flags.StringVar(&command.TopicID, "topic", "", "Pub/Sub topic ID, with -replay")
	err = flags.Parse(args)
	if err != nil {
		return command, err
	}

	if command.ReplayPath != "" {
		if command.ProjectID == "" || command.TopicID == "" {
			return command, fmt.Errorf("-replay requires -project and -topic")
		}
		return command, nil
	}
	switch {
	case command.ResourceARN != "":
		resourceType, found := restype.Classify(command.ResourceARN)
		if !found {
			return command, fmt.Errorf("no resource type matches ARN %s", command.ResourceARN)
		}
		if command.ResourceType != "" && command.ResourceType != resourceType.Name() {
			return command, fmt.Errorf("ARN %s is a %s not a %s", command.ResourceARN, resourceType.Name(), command.ResourceType)
		}
		command.ResourceType = resourceType.Name()
		command.ResourceID = resourceType.ExtractIdentifier(command.ResourceARN)
	case command.ResourceType != "":
		if !str.Find(restype.Names(), command.ResourceType) {
			return command, fmt.Errorf("unknown resource type %s, want one of %s", command.ResourceType, strings.Join(restype.Names(), ", "))
		}
		if command.ResourceID == "" {
			return command, fmt.Errorf("-type requires -id")
		}
	default:
		return command, fmt.Errorf("missing -arn, -type or -replay argument")
	}
	return command, nil
}
