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

package dto

import (
	"tunevideo/internal/form"
	"tunevideo/pkg/consts"
)

// ParametersResp is the default record shown to the user, without the token.
type ParametersResp struct {
	TrainingPrompt          string              `json:"training_prompt"`
	OutputModelName         string              `json:"output_model_name"`
	DeleteExistingRepo      bool                `json:"delete_existing_repo"`
	ValidationPrompt        string              `json:"validation_prompt"`
	BaseModel               string              `json:"base_model"`
	Resolution              consts.Resolution   `json:"resolution"`
	NumTrainingSteps        int                 `json:"num_training_steps"`
	LearningRate            float64             `json:"learning_rate"`
	GradientAccumulation    int                 `json:"gradient_accumulation"`
	Seed                    int                 `json:"seed"`
	Fp16                    bool                `json:"fp16"`
	Use8bitAdam             bool                `json:"use_8bit_adam"`
	CheckpointingSteps      int                 `json:"checkpointing_steps"`
	ValidationEpochs        int                 `json:"validation_epochs"`
	UploadToHub             bool                `json:"upload_to_hub"`
	UsePrivateRepo          bool                `json:"use_private_repo"`
	UploadTo                consts.UploadTarget `json:"upload_to"`
	PauseSpaceAfterTraining bool                `json:"pause_space_after_training"`
}

type FormResp struct {
	Fields           []form.Field    `json:"fields"`
	Defaults         *ParametersResp `json:"defaults"`
	RunButtonEnabled bool            `json:"runButtonEnabled"`
}

type SubmitResp struct {
	Id     string `json:"id"`
	State  string `json:"state"`
	Prompt string `json:"prompt"`
}

type LogResp struct {
	Ready bool   `json:"ready"`
	Log   string `json:"log"`
}
