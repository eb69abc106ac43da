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

package handler

import (
	"errors"
	"net/http"

	"tunevideo/internal/service"
	"tunevideo/pkg/consts"
	"tunevideo/pkg/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TrainingHandler struct {
	trainingService *service.TrainingService
	logService      *service.LogService
}

func NewTrainingHandler(trainingService *service.TrainingService, logService *service.LogService) *TrainingHandler {
	return &TrainingHandler{
		trainingService: trainingService,
		logService:      logService,
	}
}

func (handler *TrainingHandler) FormHandler(c echo.Context) error {
	return util.NormalResponseData(c, handler.trainingService.FormSchema())
}

func (handler *TrainingHandler) TrainHandler(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		zap.S().Errorf("parse training form err.%v", err)
		return util.ErrorRequestParam(c)
	}
	params := handler.trainingService.NewParameters()
	if err = collectParameters(values, params, handler.trainingService.Env()); err != nil {
		return util.ErrorRequestParamMsg(c, err.Error())
	}

	fh, err := c.FormFile(consts.TrainingVideoField)
	switch {
	case err == nil:
		if params.TrainingVideo, err = handler.trainingService.SaveVideo(fh); err != nil {
			return util.ResponseError(c, err)
		}
	case errors.Is(err, http.ErrMissingFile):
	default:
		return util.ErrorRequestParam(c)
	}

	resp, err := handler.trainingService.Submit(c.Request().Context(), params)
	if err != nil {
		return util.ResponseError(c, err)
	}
	return util.NormalResponseData(c, resp)
}

func (handler *TrainingHandler) LogHandler(c echo.Context) error {
	resp, err := handler.logService.Tail()
	if err != nil {
		zap.S().Errorf("read trainer log err.%v", err)
		return util.ResponseError(c, err)
	}
	return util.NormalResponseData(c, resp)
}
