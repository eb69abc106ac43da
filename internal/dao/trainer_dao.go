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

package dao

import (
	"context"
	"fmt"
	"net/http"

	"tunevideo/internal/form"
	"tunevideo/pkg/common"
	"tunevideo/pkg/config"
	"tunevideo/pkg/consts"
	myerr "tunevideo/pkg/error"
	"tunevideo/pkg/util"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

const (
	trainerRunUri    = "/api/run"
	trainerHealthUri = "/api/health"
)

var _ form.Trainer = (*TrainerDao)(nil)

type runRequest struct {
	Args   []any         `json:"args"`
	Params *form.Payload `json:"params"`
}

// TrainerDao forwards training jobs to the remote trainer process.
type TrainerDao struct {
	domain  string
	logFile string
	retry   *config.Retry
}

func NewTrainerDao(config *config.Config) *TrainerDao {
	return &TrainerDao{
		domain:  config.Trainer.Domain,
		logFile: config.Trainer.LogFile,
		retry:   &config.Retry,
	}
}

func (d *TrainerDao) LogFile() string {
	return d.logFile
}

func (d *TrainerDao) Run(ctx context.Context, payload *form.Payload) error {
	b, err := sonic.Marshal(&runRequest{Args: payload.Args(), Params: payload})
	if err != nil {
		return err
	}
	fields := map[string]string{consts.TrainerPayloadField: string(b)}
	resp, err := util.PostMultipartForDomain(ctx, d.domain, trainerRunUri, fields,
		consts.TrainingVideoField, payload.TrainingVideo, nil)
	if err != nil {
		return err
	}
	if !resp.Ok() {
		zap.S().Errorf("trainer run failed, status:%d, body:%s", resp.StatusCode, string(resp.Body))
		return remoteError("trainer", resp)
	}
	return nil
}

// Ping waits for the trainer to answer its health endpoint.
func (d *TrainerDao) Ping(ctx context.Context) error {
	_, err := util.RetryRequest(d.retry, func() (*common.Response, error) {
		resp, err := util.GetForDomain(ctx, d.domain, trainerHealthUri, nil)
		if err != nil {
			return nil, err
		}
		if !resp.Ok() {
			return nil, remoteError("trainer", resp)
		}
		return resp, nil
	})
	return err
}

func remoteError(name string, resp *common.Response) error {
	msg := string(resp.Body)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return myerr.NewAppendCode(http.StatusBadGateway, fmt.Sprintf("%s responded %d: %s", name, resp.StatusCode, msg))
}
