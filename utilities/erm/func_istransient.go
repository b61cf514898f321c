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
	"errors"
	"net"
	"regexp"

	"github.com/aws/smithy-go"
)

// transientErrorCodes AWS API error codes worth another attempt
// ConflictException is returned while a rule groups namespace is still being created or updated
var transientErrorCodes = []string{
	"ConflictException",
	"InternalFailure",
	"InternalServerException",
	"InternalServiceError",
	"LimitExceededException",
	"RequestLimitExceeded",
	"RequestTimeout",
	"RequestTimeoutException",
	"ServiceUnavailable",
	"ServiceUnavailableException",
	"Throttling",
	"ThrottlingException",
	"TooManyRequestsException",
}

// transientHTTPStatus a 5xx status standing alone in the message, names like ns-500 or errors-503 do not match
var transientHTTPStatus = regexp.MustCompile(`(^|[^0-9A-Za-z_./:-])5(0[0-8]|1[01])([^0-9A-Za-z_./-]|$)`)

// IsTransient check if the error is worth a retry: throttling, 5xx, timeout
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var permanent permanentError
	if errors.As(err, &permanent) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr smithy.APIError
	isAPIError := errors.As(err, &apiErr)
	if isAPIError {
		for _, code := range transientErrorCodes {
			if apiErr.ErrorCode() == code {
				return true
			}
		}
		if apiErr.ErrorFault() == smithy.FaultServer {
			return true
		}
	}
	var statusErr interface{ HTTPStatusCode() int }
	if errors.As(err, &statusErr) {
		return statusErr.HTTPStatusCode() >= 500 || statusErr.HTTPStatusCode() == 429
	}
	if isAPIError {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return transientHTTPStatus.MatchString(err.Error())
}
