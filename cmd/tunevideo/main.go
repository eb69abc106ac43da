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

package main

import (
	"os"

	"tunevideo/internal/form"
	"tunevideo/internal/server"
	"tunevideo/internal/service"
	"tunevideo/pkg/app"
	"tunevideo/pkg/config"
	"tunevideo/pkg/consts"
	"tunevideo/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	Name    = "tunevideo"
	Version = "dev"
)

func newApp(httpServer *server.HTTPServer, sysService *service.SysService) *app.App {
	return app.New(
		app.Name(Name),
		app.Version(Version),
		app.Servers(httpServer, sysService),
	)
}

// envFromProcess is the only place the process environment is read.
func envFromProcess() form.Env {
	return form.Env{
		HfToken: os.Getenv(consts.EnvHfToken),
		SpaceID: os.Getenv(consts.EnvSpaceId),
	}
}

func newServeCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the training form and forward submissions to the trainer",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Scan(configPath)
			if err != nil {
				return err
			}
			l := logger.InitLogger(&conf.Log)
			defer l.Sync()

			a, cleanup, err := wireApp(conf, envFromProcess())
			if err != nil {
				zap.S().Errorf("init app err: %v", err)
				return err
			}
			defer cleanup()
			return a.Run()
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "./config/config.yaml", "config file path")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:          Name,
		Short:        "Tune-A-Video training job front service",
		Version:      Version,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newLogTailCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
