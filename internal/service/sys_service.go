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
	"time"

	"tunevideo/internal/dao"
	"tunevideo/internal/form"
	"tunevideo/internal/model"
	"tunevideo/pkg/app"
	"tunevideo/pkg/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type SysService struct {
	config     *config.Config
	env        form.Env
	trainerDao *dao.TrainerDao
	uploadDao  *dao.UploadDao
	cron       *cron.Cron
}

func NewSysService(config *config.Config, env form.Env, trainerDao *dao.TrainerDao, uploadDao *dao.UploadDao) *SysService {
	return &SysService{
		config:     config,
		env:        env,
		trainerDao: trainerDao,
		uploadDao:  uploadDao,
		cron:       cron.New(cron.WithSeconds()),
	}
}

func (s *SysService) Info(ctx context.Context) *model.SystemInfo {
	info := &model.SystemInfo{
		HfTokenSet: s.env.HfToken != "",
		SpaceId:    s.env.SpaceID,
	}
	if appInfo, ok := app.FromContext(ctx); ok {
		info.Id = appInfo.ID()
		info.Name = appInfo.Name()
		info.Version = appInfo.Version()
		info.StartTime = appInfo.StartTime()
		info.Uptime = int64(time.Since(appInfo.StartTime()).Seconds())
	}
	return info
}

// Start probes the trainer once and runs the upload cleanup until ctx is done.
func (s *SysService) Start(ctx context.Context) error {
	go func() {
		if err := s.trainerDao.Ping(ctx); err != nil {
			zap.S().Warnf("trainer %s is not reachable yet: %v", s.config.Trainer.Domain, err)
			return
		}
		zap.S().Infof("trainer %s is reachable", s.config.Trainer.Domain)
	}()

	if s.config.GetEnableUploadCleanup() {
		if _, err := s.cron.AddFunc(s.config.Upload.CleanupCron, s.cleanupUploads); err != nil {
			zap.S().Errorf("add upload cleanup job err: %v", err)
			return err
		}
		s.cron.Start()
	}
	<-ctx.Done()
	return nil
}

func (s *SysService) Stop(ctx context.Context) error {
	zap.S().Infof("[CRON] scheduler shutdown.")
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
	return nil
}

func (s *SysService) cleanupUploads() {
	removed, err := s.uploadDao.Cleanup(time.Now(), s.config.GetUploadRetention())
	if err != nil {
		zap.S().Errorf("cleanup uploads in %s err: %v", s.uploadDao.Dir(), err)
		return
	}
	if removed > 0 {
		zap.S().Infof("removed %d expired training videos", removed)
	}
}
