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

package dao

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tunevideo/pkg/config"
	myerr "tunevideo/pkg/error"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const uploadPrefix = "video-"

// UploadDao stores training videos received with a submission.
type UploadDao struct {
	dir     string
	maxSize int64
}

func NewUploadDao(config *config.Config) *UploadDao {
	return &UploadDao{dir: config.Upload.Dir, maxSize: config.Upload.MaxSize}
}

func (d *UploadDao) Dir() string {
	return d.dir
}

// Save copies the upload into the upload dir and returns its path.
func (d *UploadDao) Save(fh *multipart.FileHeader) (string, error) {
	if d.maxSize > 0 && fh.Size > d.maxSize {
		return "", myerr.Errorf(http.StatusRequestEntityTooLarge, "training video too large: %d > %d bytes", fh.Size, d.maxSize)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", err
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%s%s%s", uploadPrefix, uuid.NewString(), strings.ToLower(filepath.Ext(fh.Filename)))
	path := filepath.Join(d.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err = dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	zap.S().Infof("saved training video %s as %s", fh.Filename, path)
	return path, nil
}

// Cleanup removes stored videos last modified before now-retention.
func (d *UploadDao) Cleanup(now time.Time, retention time.Duration) (int, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), uploadPrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) < retention {
			continue
		}
		if err = os.Remove(filepath.Join(d.dir, e.Name())); err != nil {
			zap.S().Warnf("remove expired upload %s err.%v", e.Name(), err)
			continue
		}
		removed++
	}
	return removed, nil
}
