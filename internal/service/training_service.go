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

package service

import (
	"context"
	"mime/multipart"
	"net/http"

	"tunevideo/internal/dao"
	"tunevideo/internal/form"
	"tunevideo/internal/model/dto"
	"tunevideo/pkg/config"
	"tunevideo/pkg/consts"
	myerr "tunevideo/pkg/error"
	"tunevideo/pkg/prom"

	"github.com/google/uuid"
	"github.com/young2j/gocopy"
	"go.uber.org/zap"
)

type TrainingService struct {
	trainer    form.Trainer
	pipeline   form.InferencePipeline
	uploadDao  *dao.UploadDao
	env        form.Env
	disableRun bool
	seedOpts   []form.Option
}

func NewTrainingService(config *config.Config, env form.Env, trainerDao *dao.TrainerDao,
	pipelineDao *dao.PipelineDao, uploadDao *dao.UploadDao) *TrainingService {
	s := &TrainingService{
		trainer:    trainerDao,
		uploadDao:  uploadDao,
		env:        env,
		disableRun: config.Form.DisableRunButton,
	}
	// a nil *PipelineDao must not become a non-nil interface
	if pipelineDao != nil {
		s.pipeline = pipelineDao
	}
	return s
}

func (s *TrainingService) Env() form.Env {
	return s.env
}

// NewParameters returns fresh defaults, with a newly drawn seed.
func (s *TrainingService) NewParameters() *form.Parameters {
	return form.NewParameters(s.seedOpts...)
}

func (s *TrainingService) FormSchema() *dto.FormResp {
	params := s.NewParameters()
	defaults := &dto.ParametersResp{}
	gocopy.Copy(defaults, params)
	return &dto.FormResp{
		Fields:           form.Schema(s.env, params),
		Defaults:         defaults,
		RunButtonEnabled: !s.disableRun,
	}
}

func (s *TrainingService) SaveVideo(fh *multipart.FileHeader) (string, error) {
	return s.uploadDao.Save(fh)
}

// Submit dispatches params to the trainer once. The run outlives the caller's
// request: cancellation of ctx is not forwarded.
func (s *TrainingService) Submit(ctx context.Context, params *form.Parameters) (*dto.SubmitResp, error) {
	if s.disableRun {
		prom.TrainingSubmissions.WithLabelValues(consts.SubmitResultRejected).Inc()
		return nil, myerr.NewAppendCode(http.StatusForbidden, "training is disabled on this instance")
	}
	id := uuid.NewString()
	zap.S().Infof("submit training job %s, model:%s, base:%s, steps:%d, seed:%d", id,
		params.OutputModelName, params.BaseModel, params.NumTrainingSteps, params.Seed)

	f := form.New(s.trainer, s.pipeline)
	if err := f.Submit(context.WithoutCancel(ctx), params); err != nil {
		prom.TrainingSubmissions.WithLabelValues(consts.SubmitResultFailed).Inc()
		zap.S().Errorf("training job %s failed: %v", id, err)
		return nil, err
	}
	prom.TrainingSubmissions.WithLabelValues(consts.SubmitResultOk).Inc()
	zap.S().Infof("training job %s finished", id)
	return &dto.SubmitResp{Id: id, State: f.State().String(), Prompt: params.TrainingPrompt}, nil
}
