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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
log-file: /tmp/dlist/dlist.log
log-level: DEBUG
output: json
check: true
list:
  block-size: 16
  release-on-empty: false
`))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dlist/dlist.log", c.LogFile)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, OUTPUT_JSON, c.Output)
	assert.True(t, c.Check)
	assert.Equal(t, 16, c.List.BlockSize)
	assert.False(t, c.List.ReleaseOnEmpty)
	assert.Len(t, c.List.Options(), 2)
}

func TestParseKeepsDefaults(t *testing.T) {
	c, err := Parse([]byte("log-level: verbose\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, OUTPUT_TEXT, c.Output)
	assert.Equal(t, DEFAULT_BLOCK_SIZE, c.List.BlockSize)
	assert.True(t, c.List.ReleaseOnEmpty)
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{
		"output: xml\n",
		"list:\n  block-size: -1\n",
		"list: [1, 2\n",
	} {
		_, err := Parse([]byte(input))
		assert.Error(t, err, input)
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	path := filepath.Join(t.TempDir(), "dlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: JSON\n"), 0644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, OUTPUT_JSON, c.Output)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
