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

import "context"

// Handler processes the records it matches
type Handler interface {
	Matches(record EventRecord) bool
	Handle(ctx context.Context, inv Invocation, record EventRecord) error
}

// Classifier recognizes the resource identifiers of one resource type
type Classifier interface {
	Name() string
	Matches(resourceIdentifier string) bool
	// ExtractIdentifier short resource id used in alarm names
	ExtractIdentifier(resourceIdentifier string) string
	// ExtractTags tags carried by the record, nil when they must be fetched
	ExtractTags(record EventRecord) map[string]string
}

// ReconcileFunc applies a classified record
type ReconcileFunc func(ctx context.Context, inv Invocation, classifier Classifier, record EventRecord) error

type classifiedHandler struct {
	classifier Classifier
	reconcile  ReconcileFunc
}

// NewClassifiedHandler handler matching the records of a classifier, so one engine serves every resource type
func NewClassifiedHandler(classifier Classifier, reconcile ReconcileFunc) Handler {
	return classifiedHandler{classifier: classifier, reconcile: reconcile}
}

func (h classifiedHandler) Matches(record EventRecord) bool {
	return h.classifier.Matches(record.ResourceIdentifier)
}

func (h classifiedHandler) Handle(ctx context.Context, inv Invocation, record EventRecord) error {
	return h.reconcile(ctx, inv, h.classifier, record)
}
