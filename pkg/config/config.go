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

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"tunevideo/pkg/consts"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var SysConfig *Config

type Config struct {
	Server    ServerConfig    `json:"server" yaml:"server"`
	Form      FormConfig      `json:"form" yaml:"form"`
	Trainer   TrainerConfig   `json:"trainer" yaml:"trainer"`
	Inference InferenceConfig `json:"inference" yaml:"inference"`
	Upload    UploadConfig    `json:"upload" yaml:"upload"`
	Retry     Retry           `json:"retry" yaml:"retry"`
	Log       LogConfig       `json:"log" yaml:"log"`
}

type ServerConfig struct {
	Mode      string `json:"mode" yaml:"mode" validate:"omitempty,oneof=release debug"`
	Host      string `json:"host" yaml:"host"`
	Port      int    `json:"port" yaml:"port" validate:"min=1,max=65535"`
	Metrics   bool   `json:"metrics" yaml:"metrics"`
	Gzip      bool   `json:"gzip" yaml:"gzip"`
	QueueSize int64  `json:"queueSize" yaml:"queueSize" validate:"min=1"`
}

type FormConfig struct {
	DisableRunButton bool `json:"disableRunButton" yaml:"disableRunButton"`
}

type TrainerConfig struct {
	Domain  string `json:"domain" yaml:"domain" validate:"required,url"`
	LogFile string `json:"logFile" yaml:"logFile" validate:"required"`
	// Timeout 秒, 0 表示永不超时
	Timeout int `json:"timeout" yaml:"timeout" validate:"min=0"`
}

type InferenceConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Domain  string `json:"domain" yaml:"domain" validate:"required_if=Enabled true"`
}

type UploadConfig struct {
	Dir          string `json:"dir" yaml:"dir"`
	MaxSize      int64  `json:"maxSize" yaml:"maxSize"`
	CleanupCron  string `json:"cleanupCron" yaml:"cleanupCron"`
	RetentionHrs int    `json:"retentionHrs" yaml:"retentionHrs" validate:"min=0"`
}

type Retry struct {
	Delay    int  `json:"delay" yaml:"delay" validate:"min=0,max=60"`
	Attempts uint `json:"attempts" yaml:"attempts" validate:"min=1,max=5"`
}

type LogConfig struct {
	Path         string `json:"path" yaml:"path"`
	Level        string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	MaxSize      int    `json:"maxSize" yaml:"maxSize"`
	MaxBackups   int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAge       int    `json:"maxAge" yaml:"maxAge"`
	PollInterval int    `json:"pollInterval" yaml:"pollInterval"`
}

func (c *Config) GetHost() string {
	return c.Server.Host
}

func (c *Config) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) EnableMetric() bool {
	return c.Server.Metrics
}

func (c *Config) SetDefaults() {
	if c.Server.Mode == "" {
		c.Server.Mode = consts.ServerModeRelease
	}
	if c.Server.Port == 0 {
		c.Server.Port = 7860
	}
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.QueueSize == 0 {
		c.Server.QueueSize = 1
	}
	if c.Upload.Dir == "" {
		c.Upload.Dir = os.TempDir()
	}
	if c.Upload.MaxSize == 0 {
		c.Upload.MaxSize = 512 << 20
	}
	if c.Retry.Attempts == 0 {
		c.Retry.Attempts = 3
	}
	if c.Log.PollInterval == 0 {
		c.Log.PollInterval = 1
	}
	if c.Upload.RetentionHrs == 0 {
		c.Upload.RetentionHrs = 24
	}
}

func (c *Config) GetTrainerTimeout() time.Duration {
	return time.Duration(c.Trainer.Timeout) * time.Second
}

func (c *Config) GetUploadRetention() time.Duration {
	return time.Duration(c.Upload.RetentionHrs) * time.Hour
}

func (c *Config) GetEnableUploadCleanup() bool {
	return c.Upload.CleanupCron != ""
}

func (c *Config) GetLogPollInterval() time.Duration {
	return time.Duration(c.Log.PollInterval) * time.Second
}

func Scan(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) (*Config, error) {
	var c Config
	err := yaml.Unmarshal(b, &c)
	if err != nil {
		return nil, err
	}
	c.SetDefaults()

	validate := validator.New()
	err = validate.Struct(&c)
	if err != nil {
		var invalidValidationError *validator.InvalidValidationError
		if errors.As(err, &invalidValidationError) {
			zap.S().Errorf("Invalid validation error: %v\n", err)
		}
		return nil, err
	}
	SysConfig = &c

	marshal, err := yaml.Marshal(c)
	if err != nil {
		return nil, err
	}
	log.Info(string(marshal))
	return &c, nil
}
