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

package router

import (
	"tunevideo/internal/handler"
	"tunevideo/pkg/config"
	"tunevideo/pkg/middleware"

	"github.com/google/wire"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var RouterProvider = wire.NewSet(NewHttpRouter)

type HttpRouter struct {
	echo            *echo.Echo
	config          *config.Config
	sysHandler      *handler.SysHandler
	trainingHandler *handler.TrainingHandler
	queue           *middleware.QueueLimit
}

func NewHttpRouter(echo *echo.Echo, config *config.Config, sysHandler *handler.SysHandler,
	trainingHandler *handler.TrainingHandler) *HttpRouter {
	r := &HttpRouter{
		echo:            echo,
		config:          config,
		sysHandler:      sysHandler,
		trainingHandler: trainingHandler,
		queue:           middleware.NewQueueLimit(config.Server.QueueSize),
	}
	r.initRouter()
	return r
}

func (r *HttpRouter) GetHandler() *echo.Echo {
	return r.echo
}

func (r *HttpRouter) initRouter() {
	// 系统信息
	r.echo.GET("/info", r.sysHandler.Info)
	if r.config.EnableMetric() {
		r.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
	r.trainingRouter()
}

func (r *HttpRouter) trainingRouter() {
	r.echo.GET("/api/v1/form", r.trainingHandler.FormHandler)                                  // 表单字段与默认值
	r.echo.POST("/api/v1/train", r.trainingHandler.TrainHandler, r.queue.QueueLimitMiddleware) // 提交训练
	r.echo.GET("/api/v1/log", r.trainingHandler.LogHandler)                                    // 训练日志
}
