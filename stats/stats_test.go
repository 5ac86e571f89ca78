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

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepflowio/dlist/datastructure"
)

func TestRegisterCollect(t *testing.T) {
	list := datastructure.From(1, 2, 3)
	require.NoError(t, RegisterCountable("list", list, OptionStatTags{"name": "a"}))
	defer DeregisterCountable(list)
	assert.Error(t, RegisterCountable("list", list))
	assert.Error(t, RegisterCountable("", datastructure.New[int]()))

	list.PopBack()
	var found *datastructure.Counter
	for _, s := range Collect() {
		if s.Module == "list" && s.Tags["name"] == "a" {
			found = s.Counter.(*datastructure.Counter)
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, uint64(3), found.PushBack)
	assert.Equal(t, uint64(1), found.PopBack)
	assert.Equal(t, 2, found.Len)

	DeregisterCountable(list)
	for _, s := range Collect() {
		assert.NotEqual(t, "a", s.Tags["name"])
	}
}

func TestTagsString(t *testing.T) {
	assert.Equal(t, "{}", OptionStatTags{}.String())
	assert.Equal(t, "{a: 1, b: 2}", OptionStatTags{"b": "2", "a": "1"}.String())
}
