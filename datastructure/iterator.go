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

import (
	"iter"
)

// Iterator 指向链表中的一个节点。节点被其它操作删除或 Clear 后，
// Iterator 变为 Empty
type Iterator[T any] struct {
	list  *LinkedList[T]
	cur   ref
	gen   uint32
	epoch uint32
}

func (l *LinkedList[T]) Iterator() Iterator[T] {
	return l.iteratorAt(l.head)
}

func (l *LinkedList[T]) ReverseIterator() Iterator[T] {
	return l.iteratorAt(l.tail)
}

func (l *LinkedList[T]) iteratorAt(r ref) Iterator[T] {
	it := Iterator[T]{list: l, cur: r, epoch: l.arena.epoch}
	if r != nilRef {
		it.gen = l.arena.get(r).gen
	}
	return it
}

func (it *Iterator[T]) valid() bool {
	if it.list == nil || it.cur == nilRef || it.epoch != it.list.arena.epoch {
		return false
	}
	if !it.list.arena.contains(it.cur) {
		return false
	}
	n := it.list.arena.get(it.cur)
	return n.used && n.gen == it.gen
}

func (it *Iterator[T]) Empty() bool {
	return !it.valid()
}

func (it *Iterator[T]) Value() T {
	if !it.valid() {
		var zero T
		return zero
	}
	return it.list.arena.get(it.cur).data
}

func (it *Iterator[T]) Next() {
	if !it.valid() {
		it.cur = nilRef
		return
	}
	*it = it.list.iteratorAt(it.list.arena.get(it.cur).next)
}

func (it *Iterator[T]) Prev() {
	if !it.valid() {
		it.cur = nilRef
		return
	}
	*it = it.list.iteratorAt(it.list.arena.get(it.cur).prev)
}

// Remove 删除 Iterator 指向的节点并返回其数据，Iterator 移至下一个节点。
// Iterator 已失效时返回零值
func (l *LinkedList[T]) Remove(it *Iterator[T]) T {
	if it.list != nil && it.list != l {
		panic("datastructure: iterator belongs to another list")
	}
	if !it.valid() {
		var zero T
		return zero
	}
	next := l.arena.get(it.cur).next
	l.counter.Remove++
	data := l.unlink(it.cur)
	*it = l.iteratorAt(next)
	return data
}

// All 从头至尾遍历，遍历过程中不能修改链表
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := l.head; r != nilRef; {
			n := l.arena.get(r)
			if !yield(n.data) {
				return
			}
			r = n.next
		}
	}
}

// Backward 从尾至头遍历
func (l *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := l.tail; r != nilRef; {
			n := l.arena.get(r)
			if !yield(n.data) {
				return
			}
			r = n.prev
		}
	}
}

func (l *LinkedList[T]) Walk(callback func(data T)) {
	for data := range l.All() {
		callback(data)
	}
}

func (l *LinkedList[T]) ToSlice() []T {
	items := make([]T, 0, l.Len())
	for data := range l.All() {
		items = append(items, data)
	}
	return items
}
