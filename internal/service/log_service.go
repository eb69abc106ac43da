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
	"errors"
	"io/fs"

	"tunevideo/internal/dao"
	"tunevideo/internal/data"
	"tunevideo/internal/form"
	"tunevideo/internal/model/dto"
	"tunevideo/pkg/consts"
	"tunevideo/pkg/prom"

	"github.com/patrickmn/go-cache"
)

type LogService struct {
	baseData *data.BaseData
	form     *form.Form
}

func NewLogService(baseData *data.BaseData, trainerDao *dao.TrainerDao) *LogService {
	return &LogService{
		baseData: baseData,
		form:     form.New(trainerDao, nil),
	}
}

// Tail returns the trainer log tail. A log file that does not exist yet is
// reported as not ready.
func (s *LogService) Tail() (*dto.LogResp, error) {
	if val, ok := s.baseData.Cache.Get(consts.LogTailCacheKey); ok {
		return val.(*dto.LogResp), nil
	}
	prom.LogTailReads.Inc()
	content, err := s.form.ReadLog()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &dto.LogResp{Ready: false}, nil
		}
		return nil, err
	}
	resp := &dto.LogResp{Ready: true, Log: content}
	s.baseData.Cache.Set(consts.LogTailCacheKey, resp, cache.DefaultExpiration)
	return resp, nil
}
