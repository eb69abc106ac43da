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

package util

import (
	"errors"
	"net/http"

	myerr "tunevideo/pkg/error"

	"github.com/labstack/echo/v4"
)

type ResponseData struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func NormalResponseData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, ResponseData{Code: http.StatusOK, Msg: "success", Data: data})
}

func ErrorEntryUnknown(c echo.Context, code int, msg string) error {
	return c.JSON(code, ResponseData{Code: code, Msg: msg})
}

func ErrorRequestParam(c echo.Context) error {
	return ErrorEntryUnknown(c, http.StatusBadRequest, "invalid request parameter")
}

func ErrorRequestParamMsg(c echo.Context, msg string) error {
	return ErrorEntryUnknown(c, http.StatusBadRequest, msg)
}

// ResponseError 若错误链中带有myerr.Error，则使用其状态码
func ResponseError(c echo.Context, errs ...error) error {
	if len(errs) > 0 && errs[0] != nil {
		var e myerr.Error
		if errors.As(errs[0], &e) {
			return ErrorEntryUnknown(c, e.StatusCode(), e.Error())
		}
		return ErrorEntryUnknown(c, http.StatusInternalServerError, errs[0].Error())
	}
	return ErrorEntryUnknown(c, http.StatusInternalServerError, "internal server error")
}
