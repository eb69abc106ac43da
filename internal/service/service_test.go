package service

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tunevideo/internal/data"
	"tunevideo/internal/form"
	"tunevideo/internal/model/dto"
	"tunevideo/pkg/app"
	"tunevideo/pkg/config"
	myerr "tunevideo/pkg/error"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrainer struct {
	calls   []string
	ctxErr  error
	err     error
	logFile string
	got     *form.Payload
}

func (t *fakeTrainer) Run(ctx context.Context, payload *form.Payload) error {
	t.calls = append(t.calls, "run")
	t.ctxErr = ctx.Err()
	t.got = payload
	return t.err
}

func (t *fakeTrainer) LogFile() string { return t.logFile }

type fakePipeline struct {
	trainer *fakeTrainer
}

func (p *fakePipeline) Clear(context.Context) error {
	p.trainer.calls = append(p.trainer.calls, "clear")
	return nil
}

func TestTrainingServiceSubmit(t *testing.T) {
	trainer := &fakeTrainer{}
	s := &TrainingService{trainer: trainer, pipeline: &fakePipeline{trainer: trainer}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	params := s.NewParameters()
	params.TrainingPrompt = "A man is surfing"
	resp, err := s.Submit(ctx, params)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Id)
	assert.Equal(t, "submitted", resp.State)
	assert.Equal(t, []string{"clear", "run"}, trainer.calls)
	assert.NoError(t, trainer.ctxErr, "request cancellation must not reach the trainer")
	assert.Equal(t, "CompVis/stable-diffusion-v1-4", trainer.got.BaseModel)
	assert.Equal(t, "model_library", string(trainer.got.UploadTo))
}

func TestTrainingServiceSubmitDisabled(t *testing.T) {
	trainer := &fakeTrainer{}
	s := &TrainingService{trainer: trainer, disableRun: true}
	_, err := s.Submit(context.Background(), s.NewParameters())
	var e myerr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, http.StatusForbidden, e.StatusCode())
	assert.Empty(t, trainer.calls)
}

func TestTrainingServiceSubmitPropagatesError(t *testing.T) {
	boom := errors.New("no training video")
	s := &TrainingService{trainer: &fakeTrainer{err: boom}}
	_, err := s.Submit(context.Background(), s.NewParameters())
	assert.Same(t, boom, err)
}

func TestNewTrainingServiceWithoutPipeline(t *testing.T) {
	s := NewTrainingService(&config.Config{}, form.Env{}, nil, nil, nil)
	assert.Nil(t, s.pipeline)
}

func TestFormSchemaHidesToken(t *testing.T) {
	s := &TrainingService{
		env:      form.Env{HfToken: "hf_secret"},
		seedOpts: []form.Option{form.WithSeedSource(func() int { return 99 })},
	}
	resp := s.FormSchema()
	assert.True(t, resp.RunButtonEnabled)
	assert.Equal(t, 99, resp.Defaults.Seed)
	assert.Equal(t, "CompVis/stable-diffusion-v1-4", resp.Defaults.BaseModel)
	assert.Equal(t, 300, resp.Defaults.NumTrainingSteps)
	assert.True(t, resp.Defaults.Fp16)
	assert.Equal(t, "512", string(resp.Defaults.Resolution))
	assert.Equal(t, "model_library", string(resp.Defaults.UploadTo))
	for _, f := range resp.Fields {
		if f.Name == "hf_token" {
			assert.False(t, f.Visible)
		}
	}
}

func newLogService(t *testing.T, logFile string) *LogService {
	t.Helper()
	return &LogService{
		baseData: &data.BaseData{Cache: cache.New(time.Minute, time.Minute)},
		form:     form.New(&fakeTrainer{logFile: logFile}, nil),
	}
}

func TestLogServiceTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	s := newLogService(t, path)

	resp, err := s.Tail()
	require.NoError(t, err)
	assert.Equal(t, &dto.LogResp{Ready: false}, resp)

	require.NoError(t, os.WriteFile(path, []byte("epoch 1\n"), 0o644))
	resp, err = s.Tail()
	require.NoError(t, err)
	assert.Equal(t, &dto.LogResp{Ready: true, Log: "epoch 1\n"}, resp)

	// served from cache within the poll interval
	require.NoError(t, os.WriteFile(path, []byte("epoch 1\nepoch 2\n"), 0o644))
	resp, err = s.Tail()
	require.NoError(t, err)
	assert.Equal(t, "epoch 1\n", resp.Log)
}

func TestLogServiceTailReadError(t *testing.T) {
	s := newLogService(t, t.TempDir())
	_, err := s.Tail()
	assert.Error(t, err)
}

func TestSysServiceInfo(t *testing.T) {
	s := &SysService{env: form.Env{HfToken: "hf_secret", SpaceID: "user/tune-a-video"}}
	a := app.New(app.Name("tunevideo"), app.Version("v1"))
	info := s.Info(app.NewContext(context.Background(), a))
	assert.True(t, info.HfTokenSet)
	assert.Equal(t, "user/tune-a-video", info.SpaceId)
	assert.Equal(t, "tunevideo", info.Name)
	assert.Equal(t, "v1", info.Version)

	info = s.Info(context.Background())
	assert.Empty(t, info.Name)
}
