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

package model

import "time"

type SystemInfo struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	StartTime time.Time `json:"startTime"`
	Uptime    int64     `json:"uptime"`

	// 只暴露是否配置了token，不返回token本身
	HfTokenSet bool   `json:"hfTokenSet"`
	SpaceId    string `json:"spaceId"`
}
