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

import "tunevideo/pkg/consts"

// Env carries the process-level settings the form depends on.
type Env struct {
	HfToken string
	SpaceID string
}

type Kind string

const (
	KindFile     Kind = "file"
	KindText     Kind = "text"
	KindPassword Kind = "password"
	KindNumber   Kind = "number"
	KindSlider   Kind = "slider"
	KindCheckbox Kind = "checkbox"
	KindDropdown Kind = "dropdown"
	KindRadio    Kind = "radio"
)

type Field struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Kind        Kind     `json:"kind"`
	Default     any      `json:"default,omitempty"`
	Choices     []string `json:"choices,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Step        *float64 `json:"step,omitempty"`
	Precision   *int     `json:"precision,omitempty"`
	MaxLines    int      `json:"maxLines,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Visible     bool     `json:"visible"`
	Interactive bool     `json:"interactive"`
}

func ptr[T any](v T) *T {
	return &v
}

// TokenFieldVisible reports whether the user must type a write token.
func (e Env) TokenFieldVisible() bool {
	return e.HfToken == ""
}

// CanPauseSpace reports whether the pause toggle is usable.
func (e Env) CanPauseSpace() bool {
	return e.SpaceID != ""
}

// Schema describes the form fields in display order, with defaults taken from p.
func Schema(env Env, p *Parameters) []Field {
	resolutions := make([]string, 0, len(consts.Resolutions()))
	for _, r := range consts.Resolutions() {
		resolutions = append(resolutions, string(r))
	}
	targets := make([]string, 0, len(consts.UploadTargets()))
	for _, t := range consts.UploadTargets() {
		targets = append(targets, string(t))
	}
	return []Field{
		{Name: "training_video", Label: "Training video", Kind: KindFile, Visible: true, Interactive: true},
		{Name: "training_prompt", Label: "Training prompt", Kind: KindText, MaxLines: 1,
			Placeholder: "A man is surfing", Visible: true, Interactive: true},
		{Name: "base_model", Label: "Base Model", Kind: KindText, Default: p.BaseModel, MaxLines: 1,
			Visible: true, Interactive: true},
		{Name: "resolution", Label: "Resolution", Kind: KindDropdown, Default: string(p.Resolution),
			Choices: resolutions, Interactive: true},
		{Name: "hf_token", Label: "Hugging Face Write Token", Kind: KindPassword,
			Visible: env.TokenFieldVisible(), Interactive: true},
		{Name: "num_training_steps", Label: "Number of Training Steps", Kind: KindNumber,
			Default: p.NumTrainingSteps, Precision: ptr(0), Visible: true, Interactive: true},
		{Name: "learning_rate", Label: "Learning Rate", Kind: KindNumber, Default: p.LearningRate,
			Visible: true, Interactive: true},
		{Name: "gradient_accumulation", Label: "Number of Gradient Accumulation", Kind: KindNumber,
			Default: p.GradientAccumulation, Precision: ptr(0), Visible: true, Interactive: true},
		{Name: "seed", Label: "Seed", Kind: KindSlider, Default: p.Seed, Min: ptr(float64(consts.SeedMin)),
			Max: ptr(float64(consts.SeedMax)), Step: ptr(1.0), Visible: true, Interactive: true},
		{Name: "fp16", Label: "FP16", Kind: KindCheckbox, Default: p.Fp16, Visible: true, Interactive: true},
		{Name: "use_8bit_adam", Label: "Use 8bit Adam", Kind: KindCheckbox, Default: p.Use8bitAdam,
			Visible: true, Interactive: true},
		{Name: "checkpointing_steps", Label: "Checkpointing Steps", Kind: KindNumber,
			Default: p.CheckpointingSteps, Precision: ptr(0), Visible: true, Interactive: true},
		{Name: "validation_epochs", Label: "Validation Epochs", Kind: KindNumber,
			Default: p.ValidationEpochs, Precision: ptr(0), Visible: true, Interactive: true},
		{Name: "output_model_name", Label: "Name of your model", Kind: KindText, MaxLines: 1,
			Placeholder: "The surfer man", Visible: true, Interactive: true},
		{Name: "validation_prompt", Label: "Validation Prompt", Kind: KindText,
			Placeholder: "prompt to test the model, e.g: a dog is surfing", Visible: true, Interactive: true},
		{Name: "upload_to_hub", Label: "Upload model to Hub", Kind: KindCheckbox, Default: p.UploadToHub,
			Visible: true, Interactive: true},
		{Name: "use_private_repo", Label: "Private", Kind: KindCheckbox, Default: p.UsePrivateRepo,
			Visible: true, Interactive: true},
		{Name: "delete_existing_repo", Label: "Delete existing repo of the same name", Kind: KindCheckbox,
			Default: p.DeleteExistingRepo, Visible: true, Interactive: true},
		{Name: "upload_to", Label: "Upload to", Kind: KindRadio, Default: string(p.UploadTo),
			Choices: targets, Visible: true, Interactive: true},
		{Name: "pause_space_after_training", Label: "Pause this Space after training", Kind: KindCheckbox,
			Default: p.PauseSpaceAfterTraining, Interactive: env.CanPauseSpace()},
	}
}
