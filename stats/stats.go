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
	"bytes"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

type Option = interface{}
type OptionStatTags map[string]string

func (t OptionStatTags) String() string {
	if len(t) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var strBuf bytes.Buffer
	strBuf.WriteString("{")
	for _, key := range keys {
		strBuf.WriteString(key + ": " + t[key] + ", ")
	}
	strBuf.Truncate(strBuf.Len() - 2)
	return strBuf.String() + "}"
}

type Countable interface {
	// clear is required after read
	// accept struct or []StatItem
	GetCounter() interface{}
}

type Stat struct {
	Module  string         `json:"module"`
	Tags    OptionStatTags `json:"tags,omitempty"`
	Counter interface{}    `json:"counter"`
}

type registration struct {
	module    string
	tags      OptionStatTags
	countable Countable
}

var (
	lock          sync.Mutex
	registrations []*registration
)

func RegisterCountable(module string, countable Countable, opts ...Option) error {
	if module == "" {
		return errors.New("module is empty")
	}
	r := &registration{module: module, countable: countable, tags: OptionStatTags{}}
	for _, opt := range opts {
		if tags, ok := opt.(OptionStatTags); ok {
			for k, v := range tags {
				r.tags[k] = v
			}
		}
	}

	lock.Lock()
	defer lock.Unlock()
	for _, old := range registrations {
		if old.countable == countable {
			return errors.Errorf("countable of module %s %s already registered", module, r.tags)
		}
	}
	registrations = append(registrations, r)
	return nil
}

func DeregisterCountable(countable Countable) {
	lock.Lock()
	defer lock.Unlock()
	for i, r := range registrations {
		if r.countable == countable {
			registrations = append(registrations[:i], registrations[i+1:]...)
			return
		}
	}
}

// Collect 按注册顺序读取所有 Countable，读取后其累计值被清零
func Collect() []Stat {
	lock.Lock()
	defer lock.Unlock()
	stats := make([]Stat, 0, len(registrations))
	for _, r := range registrations {
		stats = append(stats, Stat{Module: r.module, Tags: r.tags, Counter: r.countable.GetCounter()})
	}
	return stats
}
