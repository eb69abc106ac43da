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

	"tunevideo/internal/form"
	"tunevideo/pkg/config"
	"tunevideo/pkg/util"

	"go.uber.org/zap"
)

const pipelineClearUri = "/api/clear"

var _ form.InferencePipeline = (*PipelineDao)(nil)

type PipelineDao struct {
	domain string
}

// NewPipelineDao returns nil when no inference service is configured.
func NewPipelineDao(config *config.Config) *PipelineDao {
	if !config.Inference.Enabled {
		return nil
	}
	return &PipelineDao{domain: config.Inference.Domain}
}

func (d *PipelineDao) Clear(ctx context.Context) error {
	resp, err := util.PostForDomain(ctx, d.domain, pipelineClearUri, "application/json", []byte("{}"), nil)
	if err != nil {
		return err
	}
	if !resp.Ok() {
		zap.S().Errorf("pipeline clear failed, status:%d, body:%s", resp.StatusCode, string(resp.Body))
		return remoteError("inference pipeline", resp)
	}
	return nil
}
