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
	"errors"
	"sync"

	"github.com/BrunoReboul/autoalarm/utilities/alarm"
	"github.com/BrunoReboul/autoalarm/utilities/dispatch"
)

type reconcileCall struct {
	prefix        string
	scope         alarm.Scope
	desiredAlarms []alarm.DesiredAlarm
	dryRun        bool
}

type fakeBackend struct {
	mu       sync.Mutex
	calls    map[string]reconcileCall
	failOn   string
	panicOn  string
	failWith error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{calls: make(map[string]reconcileCall)}
}

func (f *fakeBackend) Reconcile(ctx context.Context, inv dispatch.Invocation, scope alarm.Scope, desiredAlarms []alarm.DesiredAlarm) error {
	prefix := scope.Prefix
	if f.panicOn != "" && prefix == f.panicOn {
		panic("backend bug")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[prefix] = reconcileCall{prefix: prefix, scope: scope, desiredAlarms: desiredAlarms, dryRun: inv.DryRun}
	if prefix == f.failOn {
		if f.failWith != nil {
			return f.failWith
		}
		return errors.New("backend failure")
	}
	return nil
}

func (f *fakeBackend) call(prefix string) (reconcileCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	call, found := f.calls[prefix]
	return call, found
}

type fakeResources struct {
	mu            sync.Mutex
	tags          map[string]map[string]string
	loadBalancers map[string]string
	fetchErr      error
	tagCalls      int
	lbCalls       int
}

func (f *fakeResources) FetchTags(ctx context.Context, resourceARN string) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tagCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	tags := make(map[string]string)
	for key, value := range f.tags[resourceARN] {
		tags[key] = value
	}
	return tags, nil
}

func (f *fakeResources) LoadBalancerDimension(ctx context.Context, targetGroupARN string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lbCalls++
	return f.loadBalancers[targetGroupARN], nil
}
