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
	"path/filepath"
	"testing"

	logging "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		input  string
		output logging.Level
	}{
		{"debug", logging.DEBUG},
		{"INFO", logging.INFO},
		{"warn", logging.WARNING},
		{"Warning", logging.WARNING},
		{"error", logging.ERROR},
	} {
		level, err := ParseLevel(tc.input)
		assert.NoError(t, err, tc.input)
		assert.Equal(t, tc.output, level, tc.input)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, InitConsoleLog("info"))
	log := logging.MustGetLogger("logger-test")
	assert.False(t, log.IsEnabledFor(logging.DEBUG))
	require.NoError(t, SetLevel("debug"))
	assert.True(t, log.IsEnabledFor(logging.DEBUG))
	assert.Error(t, SetLevel("nope"))
}

func TestInitLog(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "sub", "dlist.log")
	require.NoError(t, InitLog(filePath, "info"))
	logging.MustGetLogger("logger-test").Info("hello")

	_, err := os.Stat(filepath.Dir(filePath))
	assert.NoError(t, err)
	require.NoError(t, InitConsoleLog("info"))
}
