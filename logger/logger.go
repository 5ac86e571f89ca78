/*
 * Copyright (c) 2024 Yunshan Networks
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"os"
	"path"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	logging "github.com/op/go-logging"
	"github.com/pkg/errors"
)

const (
	LOG_ROTATION_INTERVAL = 24 * time.Hour      // every day
	LOG_MAX_AGE           = 30 * 24 * time.Hour // every month
	LOG_FORMAT            = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{shortfile} %{message}"
	LOG_COLOR_FORMAT      = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{shortfile} %{message}"
)

var backends []logging.LeveledBackend

// ParseLevel 接受 error/warn/warning/info/debug，大小写不敏感
func ParseLevel(levelString string) (logging.Level, error) {
	levelString = strings.ToUpper(levelString)
	if levelString == "WARN" {
		levelString = "WARNING"
	}
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return level, errors.Wrapf(err, "log level %q", levelString)
	}
	return level, nil
}

func consoleBackend() logging.LeveledBackend {
	return logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(os.Stderr, "", 0),
			logging.MustStringFormatter(LOG_COLOR_FORMAT),
		),
	)
}

func apply(level logging.Level, leveled ...logging.LeveledBackend) {
	plain := make([]logging.Backend, 0, len(leveled))
	for _, b := range leveled {
		b.SetLevel(level, "")
		plain = append(plain, b)
	}
	backends = leveled
	logging.SetBackend(plain...)
}

func InitConsoleLog(levelString string) error {
	level, err := ParseLevel(levelString)
	if err != nil {
		return err
	}
	apply(level, consoleBackend())
	return nil
}

// InitLog 同时输出至终端和按天切分的日志文件，文件保留30天
func InitLog(filePath string, levelString string) error {
	level, err := ParseLevel(levelString)
	if err != nil {
		return err
	}

	dir := path.Dir(filePath)
	if _, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, "stat %s", dir)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "mkdir %s", dir)
		}
	}

	ioWriter, err := rotatelogs.New(
		filePath+".%Y-%m-%d",
		rotatelogs.WithLinkName(filePath),
		rotatelogs.WithMaxAge(LOG_MAX_AGE),
		rotatelogs.WithRotationTime(LOG_ROTATION_INTERVAL),
	)
	if err != nil {
		return errors.Wrapf(err, "rotate %s", filePath)
	}

	file := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(ioWriter, "", 0),
			logging.MustStringFormatter(LOG_FORMAT),
		),
	)
	apply(level, consoleBackend(), file)
	return nil
}

// SetLevel 修改已初始化的所有 backend 的日志级别
func SetLevel(levelString string) error {
	level, err := ParseLevel(levelString)
	if err != nil {
		return err
	}
	for _, b := range backends {
		b.SetLevel(level, "")
	}
	return nil
}
