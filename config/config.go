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

package config

import (
	"os"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	logging "github.com/op/go-logging"
	"github.com/pkg/errors"

	"github.com/deepflowio/dlist/datastructure"
)

var log = logging.MustGetLogger("config")

const (
	OUTPUT_TEXT = "text"
	OUTPUT_JSON = "json"

	DEFAULT_BLOCK_SIZE = 64
)

type Config struct {
	LogFile  string     `yaml:"log-file"`
	LogLevel string     `yaml:"log-level"`
	Output   string     `yaml:"output"`
	Check    bool       `yaml:"check"` // 每次操作后校验链表
	List     ListConfig `yaml:"list"`
}

type ListConfig struct {
	BlockSize      int  `yaml:"block-size"`
	ReleaseOnEmpty bool `yaml:"release-on-empty"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Output:   OUTPUT_TEXT,
		List: ListConfig{
			BlockSize:      DEFAULT_BLOCK_SIZE,
			ReleaseOnEmpty: true,
		},
	}
}

func (c *ListConfig) Options() []datastructure.Option {
	return []datastructure.Option{
		datastructure.OptionBlockSize(c.BlockSize),
		datastructure.OptionReleaseOnEmpty(c.ReleaseOnEmpty),
	}
}

func (c *Config) Validate() error {
	level := strings.ToLower(c.LogLevel)
	c.LogLevel = "info"
	for _, l := range []string{"error", "warn", "info", "debug"} {
		if level == l {
			c.LogLevel = l
		}
	}

	c.Output = strings.ToLower(c.Output)
	if c.Output == "" {
		c.Output = OUTPUT_TEXT
	}
	if c.Output != OUTPUT_TEXT && c.Output != OUTPUT_JSON {
		return errors.Errorf("output %q is neither %s nor %s", c.Output, OUTPUT_TEXT, OUTPUT_JSON)
	}

	if c.List.BlockSize < 0 {
		return errors.Errorf("list.block-size %d is negative", c.List.BlockSize)
	}
	if c.List.BlockSize == 0 {
		c.List.BlockSize = DEFAULT_BLOCK_SIZE
	}
	return nil
}

// Parse 未出现的配置项保持默认值
func Parse(data []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), kyaml.Parser()); err != nil {
		return nil, errors.Wrap(err, "load yaml")
	}
	c := DefaultConfig()
	if err := k.UnmarshalWithConf("", c, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, errors.Wrap(err, "unmarshal")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load 路径为空时返回默认配置
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	log.Debugf("loaded config %s: %+v", path, *c)
	return c, nil
}
