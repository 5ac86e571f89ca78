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

package dlistctl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunExec(t *testing.T) {
	out, err := execute(t, "", "run", "--check",
		"-e", "push_front 1", "-e", "push_front 2", "-e", "push_front 3",
		"-e", "pop_front", "-e", "pop_back", "-e", "pop_back", "-e", "pop_back")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"push_front 1: ok",
		"push_front 2: ok",
		"push_front 3: ok",
		"pop_front: 3",
		"pop_back: 1",
		"pop_back: 2",
		"pop_back: <none>",
		"list: []",
		"",
	}, "\n"), out)
}

func TestRunStdin(t *testing.T) {
	out, err := execute(t, "push_back a\npush_back b\ndump\n", "run")
	require.NoError(t, err)
	assert.Contains(t, out, "dump: [a b]\n")
	assert.True(t, strings.HasSuffix(out, "list: [a b]\n"))
}

func TestRunScriptJSON(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "ops.txt")
	require.NoError(t, os.WriteFile(script, []byte("# scenario B\npush_back 1\npush_back 2\npop_back\n"), 0644))
	conf := filepath.Join(dir, "dlist.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("output: json\ncheck: true\nlist:\n  block-size: 2\n"), 0644))

	out, err := execute(t, "", "run", "-f", conf, script)
	require.NoError(t, err)

	var decoded struct {
		Results []struct {
			Op    string `json:"op"`
			Value string `json:"value"`
			Found bool   `json:"found"`
		} `json:"results"`
		List []string `json:"list"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, "pop_back", decoded.Results[2].Op)
	assert.Equal(t, "2", decoded.Results[2].Value)
	assert.Equal(t, []string{"1"}, decoded.List)
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "", "run", "-e", "rotate")
	assert.Error(t, err)
	_, err = execute(t, "", "run", "-e", "pop_back", "ops.txt")
	assert.Error(t, err)
	_, err = execute(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	_, err = execute(t, "", "run", "-o", "xml", "-e", "len")
	assert.Error(t, err)
	_, err = execute(t, "", "--log-level", "debug", "-f", filepath.Join(t.TempDir(), "none.yaml"), "version")
	assert.Error(t, err)
}

func TestFrom(t *testing.T) {
	out, err := execute(t, "", "from", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "list: [1 2 3]\npop_back: 3 2 1\n", out)

	dir := t.TempDir()
	conf := filepath.Join(dir, "dlist.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("output: json\n"), 0644))
	out, err = execute(t, "", "from", "-f", conf, "x", "y")
	require.NoError(t, err)
	assert.JSONEq(t, `{"list":["x","y"],"pop_back":["y","x"]}`, out)

	_, err = execute(t, "", "from")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	RevCount, Revision, CommitDate = "42", "abc", "2024-01-01"
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "42-abc 2024-01-01\n", out)
}

func TestRunStats(t *testing.T) {
	out, err := execute(t, "", "run", "--stats", "-e", "push_back 1", "-e", "pop_front", "-e", "pop_front")
	require.NoError(t, err)
	assert.Contains(t, out, "stats: replay {name: exec} &{PushFront:0 PushBack:1 PopFront:1 PopBack:0 PopEmpty:1 Remove:0 Len:0 Slots:0}\n")
}
