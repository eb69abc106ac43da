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

package util

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"tunevideo/pkg/common"
	"tunevideo/pkg/config"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
)

var (
	simpleClient *http.Client
	simpleOnce   sync.Once
)

func RetryRequest(retryConfig *config.Retry, f func() (*common.Response, error)) (*common.Response, error) {
	var resp *common.Response
	err := retry.Do(
		func() error {
			var err error
			resp, err = f()
			return err
		},
		retry.Delay(time.Duration(retryConfig.Delay)*time.Second),
		retry.Attempts(retryConfig.Attempts),
		retry.DelayType(retry.FixedDelay),
	)
	return resp, err
}

// NewHTTPClient 训练请求可能持续很久，默认不设超时
func NewHTTPClient() *http.Client {
	simpleOnce.Do(
		func() {
			var timeout time.Duration
			if config.SysConfig != nil {
				timeout = config.SysConfig.GetTrainerTimeout()
			}
			simpleClient = &http.Client{Timeout: timeout}
		})
	return simpleClient
}

func GetForDomain(ctx context.Context, domain, requestUri string, headers map[string]string) (*common.Response, error) {
	requestURL := fmt.Sprintf("%s%s", domain, requestUri)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create GET request: %v", err)
	}
	return do(NewHTTPClient(), req, headers)
}

func PostForDomain(ctx context.Context, domain, requestUri string, contentType string, data []byte, headers map[string]string) (*common.Response, error) {
	requestURL := fmt.Sprintf("%s%s", domain, requestUri)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewBuffer(data))
	if err != nil {
		return nil, fmt.Errorf("create POST request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)
	return do(NewHTTPClient(), req, headers)
}

// PostMultipartForDomain sends fields as form values and, when filePath is not empty,
// streams the file under fileField.
func PostMultipartForDomain(ctx context.Context, domain, requestUri string, fields map[string]string,
	fileField, filePath string, headers map[string]string) (*common.Response, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeMultipart(mw, fields, fileField, filePath))
	}()

	requestURL := fmt.Sprintf("%s%s", domain, requestUri)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("create POST request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return do(NewHTTPClient(), req, headers)
}

func writeMultipart(mw *multipart.Writer, fields map[string]string, fileField, filePath string) error {
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	if filePath != "" {
		f, err := os.Open(filePath)
		if err != nil {
			return err
		}
		defer f.Close()
		part, err := mw.CreateFormFile(fileField, filepath.Base(filePath))
		if err != nil {
			return err
		}
		if _, err = io.Copy(part, f); err != nil {
			return err
		}
	}
	return mw.Close()
}

func do(client *http.Client, req *http.Request, headers map[string]string) (*common.Response, error) {
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	resp, err := client.Do(req)
	if err != nil {
		zap.S().Warnf("request %s %s failed: %v", req.Method, req.URL.String(), err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %v", err)
	}

	respHeaders := make(map[string]interface{})
	for key, values := range resp.Header {
		respHeaders[key] = values
	}

	return &common.Response{
		StatusCode: resp.StatusCode,
		Headers:    respHeaders,
		Body:       body,
	}, nil
}
