// Copyright (c) 2025 dingodb.com, Inc. All Rights Reserved
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http:www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package data

import (
	"time"

	"tunevideo/pkg/config"

	"github.com/google/wire"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

var BaseDataProvider = wire.NewSet(NewBaseData)

type BaseData struct {
	Cache *cache.Cache
}

func NewBaseData(config *config.Config) (*BaseData, func(), error) {
	ttl := config.GetLogPollInterval()
	if ttl <= 0 {
		ttl = time.Second
	}
	c := cache.New(ttl, 2*ttl)
	cleanup := func() {
		c.Flush()
		zap.S().Info("datasource cleanup ok")
	}
	return &BaseData{
		Cache: c,
	}, cleanup, nil
}
