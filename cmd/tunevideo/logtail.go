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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tunevideo/internal/model/dto"
	"tunevideo/pkg/util"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

type logEnvelope struct {
	Code int          `json:"code"`
	Msg  string       `json:"msg"`
	Data *dto.LogResp `json:"data"`
}

// fetchLog reads one log tail from the service. ok is false while the
// trainer has not created its log file yet.
func fetchLog(ctx context.Context, domain string) (content string, ok bool, err error) {
	resp, err := util.GetForDomain(ctx, domain, "/api/v1/log", nil)
	if err != nil {
		return "", false, err
	}
	if !resp.Ok() {
		return "", false, fmt.Errorf("log endpoint responded %d: %s", resp.StatusCode, string(resp.Body))
	}
	var env logEnvelope
	if err = sonic.Unmarshal(resp.Body, &env); err != nil {
		return "", false, err
	}
	if env.Data == nil || !env.Data.Ready {
		return "", false, nil
	}
	return env.Data.Log, true, nil
}

// pollLog prints the tail each time it changes until ctx is done.
func pollLog(ctx context.Context, domain string, interval time.Duration, out io.Writer) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	var last string
	waiting := false
	for {
		content, ok, err := fetchLog(ctx, domain)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil
			}
			fmt.Fprintf(os.Stderr, "poll log: %v\n", err)
		case !ok:
			if !waiting {
				fmt.Fprintln(out, "waiting for the trainer log...")
				waiting = true
			}
		case content != last:
			fmt.Fprintf(out, "\033[H\033[2J%s", content)
			last = content
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func newLogTailCmd() *cobra.Command {
	var (
		domain   string
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "logtail",
		Short: "Poll the service for the last lines of the training log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return pollLog(ctx, domain, interval, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&domain, "addr", "http://localhost:7860", "service address")
	cmd.Flags().DurationVar(&interval, "every", time.Second, "poll interval")
	return cmd
}
