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

package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Server is a long running component started and stopped with the App.
type Server interface {
	Start(context.Context) error
	Stop(context.Context) error
}

type AppInfo interface {
	ID() string
	Name() string
	Version() string
	StartTime() time.Time
}

type options struct {
	id          string
	name        string
	version     string
	servers     []Server
	sigs        []os.Signal
	stopTimeout time.Duration
}

type Option func(o *options)

func ID(id string) Option { return func(o *options) { o.id = id } }

func Name(name string) Option { return func(o *options) { o.name = name } }

func Version(version string) Option { return func(o *options) { o.version = version } }

func Servers(srv ...Server) Option { return func(o *options) { o.servers = srv } }

func Signal(sigs ...os.Signal) Option { return func(o *options) { o.sigs = sigs } }

func StopTimeout(d time.Duration) Option { return func(o *options) { o.stopTimeout = d } }

type App struct {
	opts      options
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

func New(opts ...Option) *App {
	o := options{
		sigs:        []os.Signal{syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT},
		stopTimeout: 10 * time.Second,
	}
	if id, err := uuid.NewUUID(); err == nil {
		o.id = id.String()
	}
	for _, opt := range opts {
		opt(&o)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &App{opts: o, ctx: ctx, cancel: cancel}
}

func (a *App) ID() string { return a.opts.id }

func (a *App) Name() string { return a.opts.name }

func (a *App) Version() string { return a.opts.version }

func (a *App) StartTime() time.Time { return a.startTime }

// Run starts every server and blocks until a stop signal arrives or one of them fails.
func (a *App) Run() error {
	a.startTime = time.Now()
	ctx := NewContext(a.ctx, a)
	eg, ctx := errgroup.WithContext(ctx)
	for _, srv := range a.opts.servers {
		srv := srv
		eg.Go(func() error {
			<-ctx.Done()
			stopCtx, cancel := context.WithTimeout(NewContext(context.Background(), a), a.opts.stopTimeout)
			defer cancel()
			return srv.Stop(stopCtx)
		})
		eg.Go(func() error {
			return srv.Start(ctx)
		})
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, a.opts.sigs...)
	defer signal.Stop(c)
	eg.Go(func() error {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-c:
			zap.S().Infof("receive signal %v, stopping", sig)
			return a.Stop()
		}
	})
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) Stop() error {
	if a.cancel != nil {
		a.cancel()
	}
	return nil
}

type appKey struct{}

func NewContext(ctx context.Context, s AppInfo) context.Context {
	return context.WithValue(ctx, appKey{}, s)
}

func FromContext(ctx context.Context) (s AppInfo, ok bool) {
	s, ok = ctx.Value(appKey{}).(AppInfo)
	return
}
