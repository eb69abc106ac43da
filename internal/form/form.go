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
	"context"
	"errors"

	"tunevideo/pkg/consts"
	"tunevideo/pkg/util"
)

// Trainer runs a fine-tuning job and reports progress through its log file.
type Trainer interface {
	Run(ctx context.Context, payload *Payload) error
	LogFile() string
}

// InferencePipeline holds cached inference state that must be dropped before training.
type InferencePipeline interface {
	Clear(ctx context.Context) error
}

type State int

const (
	StateIdle State = iota
	StateSubmitted
)

func (s State) String() string {
	if s == StateSubmitted {
		return "submitted"
	}
	return "idle"
}

var ErrAlreadySubmitted = errors.New("form already submitted")

// Form forwards one submission to the trainer. It is not safe for concurrent use;
// build a new Form per submission.
type Form struct {
	trainer  Trainer
	pipeline InferencePipeline
	state    State
}

// New returns an idle form. pipeline may be nil.
func New(trainer Trainer, pipeline InferencePipeline) *Form {
	return &Form{trainer: trainer, pipeline: pipeline}
}

func (f *Form) State() State {
	return f.state
}

// Submit clears the attached pipeline, then runs the trainer. Parameters are not
// checked here and collaborator errors are returned as is.
func (f *Form) Submit(ctx context.Context, params *Parameters) error {
	if f.state == StateSubmitted {
		return ErrAlreadySubmitted
	}
	f.state = StateSubmitted
	if f.pipeline != nil {
		if err := f.pipeline.Clear(ctx); err != nil {
			return err
		}
	}
	return f.trainer.Run(ctx, params.Payload())
}

// ReadLog returns the last lines of the trainer log. It fails while the file does
// not exist yet; pollers should treat fs.ErrNotExist as transient.
func (f *Form) ReadLog() (string, error) {
	return util.TailLines(f.trainer.LogFile(), consts.LogTailLines)
}
