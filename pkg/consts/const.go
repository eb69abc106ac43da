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

package consts

// UploadTarget 模型上传的目标位置
type UploadTarget string

const (
	UploadTargetPersonalProfile UploadTarget = "personal_profile"
	UploadTargetModelLibrary    UploadTarget = "model_library"
)

// UploadTargets returns the valid upload destinations in display order.
func UploadTargets() []UploadTarget {
	return []UploadTarget{UploadTargetPersonalProfile, UploadTargetModelLibrary}
}

type Resolution string

const (
	Resolution512 Resolution = "512"
	Resolution768 Resolution = "768"
)

func Resolutions() []Resolution {
	return []Resolution{Resolution512, Resolution768}
}

const (
	DefaultBaseModel            = "CompVis/stable-diffusion-v1-4"
	DefaultNumTrainingSteps     = 300
	DefaultLearningRate         = 0.000035
	DefaultGradientAccumulation = 1
	DefaultCheckpointingSteps   = 1000
	DefaultValidationEpochs     = 100
)

const (
	SeedMin = 0
	SeedMax = 100000
)

const LogTailLines = 10

const (
	TrainingVideoField  = "training_video"
	TrainerPayloadField = "payload"
)

const (
	EnvHfToken = "HF_TOKEN"
	EnvSpaceId = "SPACE_ID"
)

const (
	PromResult           = "result"
	SubmitResultOk       = "ok"
	SubmitResultRejected = "rejected"
	SubmitResultFailed   = "failed"
)

const LogTailCacheKey = "logTail"

const (
	ServerModeRelease = "release"
	ServerModeDebug   = "debug"
)
