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

package erm

import (
	"context"
	"fmt"
	"log"
	"time"
)

// RetryPolicy fixed number of attempts separated by a fixed delay
// AttemptTimeout, when set, bounds each attempt inside the caller deadline
type RetryPolicy struct {
	Attempts       int           `yaml:"attempts"`
	Delay          time.Duration `yaml:"delay"`
	AttemptTimeout time.Duration `yaml:"attemptTimeout"`
}

// DefaultRetryPolicy used when settings do not provide one
var DefaultRetryPolicy = RetryPolicy{
	Attempts: 3,
	Delay:    2 * time.Second,
}

// permanentError stops the retry loop
type permanentError struct {
	err error
}

func (e permanentError) Error() string { return e.err.Error() }

func (e permanentError) Unwrap() error { return e.err }

// Permanent marks an error as not worth a retry
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanentError{err: err}
}

// Retry call fn until it succeeds, fails with a non transient error, or the attempts are exhausted
// The last error is returned, never swallowed
func Retry(ctx context.Context, policy RetryPolicy, callName string, fn func(ctx context.Context) error) (err error) {
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}
	for attempt := 1; attempt <= policy.Attempts; attempt++ {
		err = callWithTimeout(ctx, policy.AttemptTimeout, fn)
		if err == nil {
			return nil
		}
		if !IsTransient(err) {
			return err
		}
		if attempt == policy.Attempts {
			break
		}
		log.Printf("%s transient error attempt %d/%d, wait %v and retry: %v", callName, attempt, policy.Attempts, policy.Delay, err)
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s %v after %d attempts: %w", callName, ctx.Err(), attempt, err)
		case <-time.After(policy.Delay):
		}
	}
	return fmt.Errorf("%s failed after %d attempts: %w", callName, policy.Attempts, err)
}

func callWithTimeout(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	if timeout <= 0 {
		return fn(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(attemptCtx)
}
