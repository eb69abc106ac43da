package dao

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"tunevideo/internal/form"
	"tunevideo/pkg/config"
	myerr "tunevideo/pkg/error"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(trainerURL, inferenceURL string) *config.Config {
	return &config.Config{
		Trainer:   config.TrainerConfig{Domain: trainerURL, LogFile: "/tmp/log.txt"},
		Inference: config.InferenceConfig{Enabled: inferenceURL != "", Domain: inferenceURL},
		Retry:     config.Retry{Attempts: 2},
	}
}

func TestTrainerDaoRunSendsPayloadAndVideo(t *testing.T) {
	video := filepath.Join(t.TempDir(), "surf.mp4")
	require.NoError(t, os.WriteFile(video, []byte("frames"), 0o644))

	var got struct {
		Args   []any          `json:"args"`
		Params map[string]any `json:"params"`
	}
	var fileBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/run", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.NoError(t, sonic.UnmarshalString(r.FormValue("payload"), &got))
		f, _, err := r.FormFile("training_video")
		if !assert.NoError(t, err) {
			return
		}
		fileBody, _ = io.ReadAll(f)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	params := form.NewParameters()
	params.TrainingVideo = video
	params.TrainingPrompt = "A man is surfing"
	params.DeleteExistingRepo = true

	d := NewTrainerDao(testConfig(srv.URL, ""))
	require.NoError(t, d.Run(context.Background(), params.Payload()))
	assert.Equal(t, "/tmp/log.txt", d.LogFile())
	assert.Equal(t, []byte("frames"), fileBody)
	require.Len(t, got.Args, 21)
	assert.Equal(t, "A man is surfing", got.Args[1])
	assert.Equal(t, true, got.Args[3])
	assert.Equal(t, true, got.Args[17])
	assert.Equal(t, "model_library", got.Params["upload_to"])
	assert.Equal(t, true, got.Params["overwrite_existing_model"])
}

func TestTrainerDaoRunWithoutVideo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("training_video")
		assert.ErrorIs(t, err, http.ErrMissingFile)
	}))
	defer srv.Close()
	require.NoError(t, NewTrainerDao(testConfig(srv.URL, "")).Run(context.Background(), form.NewParameters().Payload()))
}

func TestTrainerDaoRunRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "training video is missing", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	err := NewTrainerDao(testConfig(srv.URL, "")).Run(context.Background(), form.NewParameters().Payload())
	var e myerr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, http.StatusBadGateway, e.StatusCode())
	assert.Contains(t, e.Error(), "training video is missing")
}

func TestTrainerDaoRunMissingVideoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
	}))
	defer srv.Close()

	p := form.NewParameters()
	p.TrainingVideo = filepath.Join(t.TempDir(), "absent.mp4")
	assert.Error(t, NewTrainerDao(testConfig(srv.URL, "")).Run(context.Background(), p.Payload()))
}

func TestTrainerDaoPingRetries(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, NewTrainerDao(testConfig(srv.URL, "")).Ping(context.Background()))
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestPipelineDao(t *testing.T) {
	assert.Nil(t, NewPipelineDao(testConfig("http://trainer", "")))

	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/clear", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(status)
	}))
	defer srv.Close()

	d := NewPipelineDao(testConfig("http://trainer", srv.URL))
	require.NotNil(t, d)
	require.NoError(t, d.Clear(context.Background()))

	status = http.StatusInternalServerError
	assert.Error(t, d.Clear(context.Background()))
}

func multipartHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("training_video", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	mf, err := multipart.NewReader(body, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return mf.File["training_video"][0]
}

func TestUploadDaoSaveAndCleanup(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	d := &UploadDao{dir: dir, maxSize: 1 << 10}

	path, err := d.Save(multipartHeader(t, "Surf.MP4", []byte("frames")))
	require.NoError(t, err)
	assert.Equal(t, ".mp4", filepath.Ext(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("frames"), b)

	other := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(other, nil, 0o644))

	removed, err := d.Cleanup(time.Now(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	removed, err = d.Cleanup(time.Now().Add(2*time.Hour), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, path)
	assert.FileExists(t, other)
}

func TestUploadDaoRejectsLargeVideo(t *testing.T) {
	d := &UploadDao{dir: t.TempDir(), maxSize: 4}
	_, err := d.Save(multipartHeader(t, "surf.mp4", []byte("too many frames")))
	var e myerr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, http.StatusRequestEntityTooLarge, e.StatusCode())
}

func TestUploadDaoCleanupMissingDir(t *testing.T) {
	d := &UploadDao{dir: filepath.Join(t.TempDir(), "never")}
	removed, err := d.Cleanup(time.Now(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}
