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

package handler

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"tunevideo/internal/form"
	"tunevideo/pkg/consts"
)

// collectParameters overlays submitted values on p. Fields that were not sent keep
// their default, and ranges are left for the trainer to judge.
func collectParameters(values url.Values, p *form.Parameters, env form.Env) error {
	c := &collector{values: values}
	c.str("training_prompt", &p.TrainingPrompt)
	c.str("output_model_name", &p.OutputModelName)
	c.boolean("delete_existing_repo", &p.DeleteExistingRepo)
	c.str("validation_prompt", &p.ValidationPrompt)
	c.str("base_model", &p.BaseModel)
	if v, ok := c.get("resolution"); ok {
		p.Resolution = consts.Resolution(v)
	}
	c.integer("num_training_steps", &p.NumTrainingSteps)
	c.float("learning_rate", &p.LearningRate)
	c.integer("gradient_accumulation", &p.GradientAccumulation)
	c.integer("seed", &p.Seed)
	c.boolean("fp16", &p.Fp16)
	c.boolean("use_8bit_adam", &p.Use8bitAdam)
	c.integer("checkpointing_steps", &p.CheckpointingSteps)
	c.integer("validation_epochs", &p.ValidationEpochs)
	c.boolean("upload_to_hub", &p.UploadToHub)
	c.boolean("use_private_repo", &p.UsePrivateRepo)
	if v, ok := c.get("upload_to"); ok {
		p.UploadTo = consts.UploadTarget(v)
	}
	if env.CanPauseSpace() {
		c.boolean("pause_space_after_training", &p.PauseSpaceAfterTraining)
	}
	c.str("hf_token", &p.HfToken)
	return c.err
}

type collector struct {
	values url.Values
	err    error
}

func (c *collector) get(name string) (string, bool) {
	if _, ok := c.values[name]; !ok {
		return "", false
	}
	return c.values.Get(name), true
}

func (c *collector) fail(name, v string) {
	if c.err == nil {
		c.err = fmt.Errorf("invalid %s: %q", name, v)
	}
}

func (c *collector) str(name string, dst *string) {
	if v, ok := c.get(name); ok {
		*dst = v
	}
}

func (c *collector) boolean(name string, dst *bool) {
	v, ok := c.get(name)
	if !ok {
		return
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes":
		*dst = true
	case "off", "no":
		*dst = false
	default:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			c.fail(name, v)
			return
		}
		*dst = b
	}
}

// integer accepts "300" as well as "300.0"; fractional input is rounded like a
// precision-0 number box.
func (c *collector) integer(name string, dst *int) {
	v, ok := c.get(name)
	if !ok {
		return
	}
	f, ok := parseFinite(v)
	if !ok {
		c.fail(name, v)
		return
	}
	f = math.Round(f)
	// float64(math.MaxInt) rounds up to 2^63, which does not fit
	if f >= math.MaxInt || f < math.MinInt {
		c.fail(name, v)
		return
	}
	*dst = int(f)
}

func (c *collector) float(name string, dst *float64) {
	v, ok := c.get(name)
	if !ok {
		return
	}
	f, ok := parseFinite(v)
	if !ok {
		c.fail(name, v)
		return
	}
	*dst = f
}

// parseFinite rejects NaN and infinities as well as syntax errors; neither can be
// encoded into the trainer payload.
func parseFinite(v string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
