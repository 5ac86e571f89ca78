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

package datastructure

type Counter struct {
	PushFront uint64 `statsd:"push_front"`
	PushBack  uint64 `statsd:"push_back"`
	PopFront  uint64 `statsd:"pop_front"`
	PopBack   uint64 `statsd:"pop_back"`
	PopEmpty  uint64 `statsd:"pop_empty"`
	Remove    uint64 `statsd:"remove"`

	Len   int `statsd:"len,gauge"`
	Slots int `statsd:"slots,gauge"`
}

// GetCounter 读取后清零累计值，Len 与 Slots 为当前值
func (l *LinkedList[T]) GetCounter() interface{} {
	counter := l.counter
	l.counter = Counter{}
	counter.Len = l.size
	counter.Slots = l.arena.slots()
	return &counter
}
