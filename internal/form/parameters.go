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

package form

import (
	"math/rand/v2"

	"tunevideo/pkg/consts"
)

// Parameters is the record a user fills in to start one training job.
type Parameters struct {
	TrainingVideo           string              `json:"training_video"`
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
	HfToken                 string              `json:"hf_token"`
}

type options struct {
	seed func() int
}

type Option func(*options)

// WithSeedSource replaces the random seed draw.
func WithSeedSource(f func() int) Option {
	return func(o *options) {
		o.seed = f
	}
}

func randomSeed() int {
	return consts.SeedMin + rand.IntN(consts.SeedMax-consts.SeedMin+1)
}

// NewParameters returns the default record. The seed is drawn again on every call.
func NewParameters(opts ...Option) *Parameters {
	o := &options{seed: randomSeed}
	for _, opt := range opts {
		opt(o)
	}
	return &Parameters{
		BaseModel:            consts.DefaultBaseModel,
		Resolution:           consts.Resolution512,
		NumTrainingSteps:     consts.DefaultNumTrainingSteps,
		LearningRate:         consts.DefaultLearningRate,
		GradientAccumulation: consts.DefaultGradientAccumulation,
		Seed:                 o.seed(),
		Fp16:                 true,
		CheckpointingSteps:   consts.DefaultCheckpointingSteps,
		ValidationEpochs:     consts.DefaultValidationEpochs,
		UploadToHub:          true,
		UsePrivateRepo:       true,
		UploadTo:             consts.UploadTargetModelLibrary,
	}
}

// Payload is the trainer's argument list. OverwriteExistingModel and
// DeleteExistingRepo are both fed from Parameters.DeleteExistingRepo; the trainer
// expects the value in both slots.
type Payload struct {
	TrainingVideo           string              `json:"training_video"`
	TrainingPrompt          string              `json:"training_prompt"`
	OutputModelName         string              `json:"output_model_name"`
	OverwriteExistingModel  bool                `json:"overwrite_existing_model"`
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
	DeleteExistingRepo      bool                `json:"delete_existing_repo"`
	UploadTo                consts.UploadTarget `json:"upload_to"`
	PauseSpaceAfterTraining bool                `json:"pause_space_after_training"`
	HfToken                 string              `json:"hf_token"`
}

func (p *Parameters) Payload() *Payload {
	return &Payload{
		TrainingVideo:           p.TrainingVideo,
		TrainingPrompt:          p.TrainingPrompt,
		OutputModelName:         p.OutputModelName,
		OverwriteExistingModel:  p.DeleteExistingRepo,
		ValidationPrompt:        p.ValidationPrompt,
		BaseModel:               p.BaseModel,
		Resolution:              p.Resolution,
		NumTrainingSteps:        p.NumTrainingSteps,
		LearningRate:            p.LearningRate,
		GradientAccumulation:    p.GradientAccumulation,
		Seed:                    p.Seed,
		Fp16:                    p.Fp16,
		Use8bitAdam:             p.Use8bitAdam,
		CheckpointingSteps:      p.CheckpointingSteps,
		ValidationEpochs:        p.ValidationEpochs,
		UploadToHub:             p.UploadToHub,
		UsePrivateRepo:          p.UsePrivateRepo,
		DeleteExistingRepo:      p.DeleteExistingRepo,
		UploadTo:                p.UploadTo,
		PauseSpaceAfterTraining: p.PauseSpaceAfterTraining,
		HfToken:                 p.HfToken,
	}
}

// Args lists the payload in the trainer's positional order.
func (p *Payload) Args() []any {
	return []any{
		p.TrainingVideo,
		p.TrainingPrompt,
		p.OutputModelName,
		p.OverwriteExistingModel,
		p.ValidationPrompt,
		p.BaseModel,
		p.Resolution,
		p.NumTrainingSteps,
		p.LearningRate,
		p.GradientAccumulation,
		p.Seed,
		p.Fp16,
		p.Use8bitAdam,
		p.CheckpointingSteps,
		p.ValidationEpochs,
		p.UploadToHub,
		p.UsePrivateRepo,
		p.DeleteExistingRepo,
		p.UploadTo,
		p.PauseSpaceAfterTraining,
		p.HfToken,
	}
}
