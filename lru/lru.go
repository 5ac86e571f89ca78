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

package lru

import (
	"github.com/deepflowio/dlist/datastructure"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache 最近使用的在链表头部，超出容量时淘汰尾部。
// 注意：不是线程安全的
type Cache[K comparable, V any] struct {
	capacity int
	lruList  *datastructure.LinkedList[entry[K, V]]
	cache    map[K]datastructure.Iterator[entry[K, V]]
}

func NewCache[K comparable, V any](maxEntries int) *Cache[K, V] {
	return &Cache[K, V]{
		capacity: maxEntries,
		lruList:  datastructure.New[entry[K, V]](),
		cache:    make(map[K]datastructure.Iterator[entry[K, V]]),
	}
}

func (c *Cache[K, V]) moveToFront(key K, value V) {
	if it, ok := c.cache[key]; ok {
		c.lruList.Remove(&it)
	}
	c.lruList.PushFront(entry[K, V]{key, value})
	c.cache[key] = c.lruList.Iterator()
}

func (c *Cache[K, V]) Add(key K, value V) {
	c.moveToFront(key, value)
	if c.lruList.Len() > c.capacity {
		c.removeOldest()
	}
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	it, hit := c.cache[key]
	if !hit {
		return
	}
	value = it.Value().value
	c.moveToFront(key, value)
	return value, true
}

// Peek will return the key value but not modify the list
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	if it, hit := c.cache[key]; hit {
		return it.Value().value, true
	}
	return
}

func (c *Cache[K, V]) Contain(key K) bool {
	_, ok := c.cache[key]
	return ok
}

func (c *Cache[K, V]) Remove(key K) {
	if it, hit := c.cache[key]; hit {
		c.lruList.Remove(&it)
		delete(c.cache, key)
	}
}

func (c *Cache[K, V]) removeOldest() {
	if e, ok := c.lruList.PopBack(); ok {
		delete(c.cache, e.key)
	}
}

// Keys returns a slice of all keys, from oldest to newest
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.cache))
	for e := range c.lruList.Backward() {
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns a slice of all values, from oldest to newest
func (c *Cache[K, V]) Values() []V {
	values := make([]V, 0, len(c.cache))
	for e := range c.lruList.Backward() {
		values = append(values, e.value)
	}
	return values
}

func (c *Cache[K, V]) Len() int {
	return c.lruList.Len()
}

func (c *Cache[K, V]) Clear() {
	c.lruList.Clear()
	clear(c.cache)
}
