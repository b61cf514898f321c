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

package awsres

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"

	"github.com/BrunoReboul/autoalarm/utilities/erm"
)

// FetchTags current tags of a resource
// a resource the tagging API does not know, deleted or never tagged, has no tags
func (c *Client) FetchTags(ctx context.Context, resourceARN string) (tags map[string]string, err error) {
	var output *resourcegroupstaggingapi.GetResourcesOutput
	err = erm.Retry(ctx, c.RetryPolicy, "tagging.GetResources", func(ctx context.Context) (err error) {
		output, err = c.Tagging.GetResources(ctx, &resourcegroupstaggingapi.GetResourcesInput{
			ResourceARNList: []string{resourceARN},
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("tagging.GetResources %s %w", resourceARN, err)
	}
	tags = make(map[string]string)
	for _, mapping := range output.ResourceTagMappingList {
		if aws.ToString(mapping.ResourceARN) != resourceARN {
			continue
		}
		for _, t := range mapping.Tags {
			tags[aws.ToString(t.Key)] = aws.ToString(t.Value)
		}
	}
	return tags, nil
}
