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

package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"tunevideo/internal/router"
	"tunevideo/pkg/config"
	"tunevideo/pkg/consts"
	"tunevideo/pkg/middleware"

	"github.com/klauspost/compress/gzhttp"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPServer struct {
	*http.Server
	lis     net.Listener
	network string
	address string
	http    *router.HttpRouter
}

func NewHTTPServer(config *config.Config, httpRouter *router.HttpRouter) *HTTPServer {
	s := &HTTPServer{
		network: "tcp",
		address: config.GetAddress(),
		http:    httpRouter,
	}
	var h http.Handler = s.http.GetHandler()
	if config.Server.Gzip {
		h = gzhttp.GzipHandler(h)
	}
	s.Server = &http.Server{
		Handler:        h,
		ReadTimeout:    0,
		WriteTimeout:   0, // 训练请求会一直阻塞到训练结束，不设超时
		MaxHeaderBytes: 1 << 20,
	}
	return s
}

func (s *HTTPServer) Start(ctx context.Context) error {
	lis, err := net.Listen(s.network, s.address)
	if err != nil {
		return err
	}
	s.lis = lis
	s.BaseContext = func(net.Listener) context.Context {
		return ctx
	}
	zap.S().Infof("[HTTP] server listening on: %s", s.lis.Addr().String())
	if err := s.Serve(s.lis); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	zap.S().Infof("[HTTP] server shutdown.")
	return s.Shutdown(ctx)
}

func NewEngine(config *config.Config) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.Debug = config.Server.Mode == consts.ServerModeDebug
	r.Use(middleware.AccessLogMiddleware)
	return r
}
