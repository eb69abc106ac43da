//  Copyright (c) 2025 dingodb.com, Inc. All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http:www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package error

import (
	"fmt"
	"net/http"
)

type Error struct {
	code int
	msg  string
}

func (e Error) Error() string {
	return e.msg
}

func (e Error) StatusCode() int {
	return e.code
}

// New creates a business error answered with 500.
func New(msg string) Error {
	return Error{code: http.StatusInternalServerError, msg: msg}
}

func NewAppendCode(code int, msg string) Error {
	return Error{code: code, msg: msg}
}

func Errorf(code int, format string, args ...any) Error {
	return Error{code: code, msg: fmt.Sprintf(format, args...)}
}
