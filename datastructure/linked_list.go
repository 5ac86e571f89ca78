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
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("datastructure")

type Option = interface{}
type OptionBlockSize int       // arena 每块的节点数，上取整至2^N
type OptionReleaseOnEmpty bool // 链表清空时是否释放 arena，默认释放

// LinkedList 双向链表，节点存放于 arena 中，相互之间以下标引用。
// 零值为空链表，可直接使用。
// 注意：不是线程安全的
type LinkedList[T any] struct {
	arena arena[T]
	head  ref
	tail  ref
	size  int

	keepStorage bool
	counter     Counter
}

func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func NewWithOptions[T any](options ...Option) *LinkedList[T] {
	l := &LinkedList[T]{}
	for _, opt := range options {
		if size, ok := opt.(OptionBlockSize); ok {
			l.arena.setBlockSize(int(size))
		} else if release, ok := opt.(OptionReleaseOnEmpty); ok {
			l.keepStorage = !bool(release)
		}
	}
	return l
}

// From 依次 PushBack 每个元素，链表顺序与输入一致
func From[T any](items ...T) *LinkedList[T] {
	l := New[T]()
	for _, item := range items {
		l.PushBack(item)
	}
	return l
}

func (l *LinkedList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.Len() == 0
}

func (l *LinkedList[T]) PushFront(data T) {
	r := l.arena.alloc(data)
	if l.head == nilRef {
		l.head, l.tail = r, r
	} else {
		l.arena.get(r).next = l.head
		l.arena.get(l.head).prev = r
		l.head = r
	}
	l.size++
	l.counter.PushFront++
}

func (l *LinkedList[T]) PushBack(data T) {
	r := l.arena.alloc(data)
	if l.tail == nilRef {
		l.head, l.tail = r, r
	} else {
		l.arena.get(r).prev = l.tail
		l.arena.get(l.tail).next = r
		l.tail = r
	}
	l.size++
	l.counter.PushBack++
}

// PopFront 链表为空时返回 false，不视为错误
func (l *LinkedList[T]) PopFront() (T, bool) {
	if l.head == nilRef {
		l.counter.PopEmpty++
		var zero T
		return zero, false
	}
	l.counter.PopFront++
	return l.unlink(l.head), true
}

func (l *LinkedList[T]) PopBack() (T, bool) {
	if l.tail == nilRef {
		l.counter.PopEmpty++
		var zero T
		return zero, false
	}
	l.counter.PopBack++
	return l.unlink(l.tail), true
}

func (l *LinkedList[T]) Front() (T, bool) {
	if l.head == nilRef {
		var zero T
		return zero, false
	}
	return l.arena.get(l.head).data, true
}

func (l *LinkedList[T]) Back() (T, bool) {
	if l.tail == nilRef {
		var zero T
		return zero, false
	}
	return l.arena.get(l.tail).data, true
}

// Clear 丢弃所有节点，已有的 Iterator 全部失效
func (l *LinkedList[T]) Clear() {
	if l.keepStorage {
		for l.head != nilRef {
			l.unlink(l.head)
		}
		return
	}
	l.arena.reset()
	l.head, l.tail = nilRef, nilRef
	l.size = 0
}

// unlink 将节点从链上摘除，两侧邻居不再引用该节点，随后释放其位置
func (l *LinkedList[T]) unlink(r ref) T {
	n := l.arena.get(r)
	if n.prev != nilRef {
		l.arena.get(n.prev).next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nilRef {
		l.arena.get(n.next).prev = n.prev
	} else {
		l.tail = n.prev
	}

	data := l.arena.release(r)
	l.size--
	if l.size == 0 && !l.keepStorage {
		l.arena.reset()
	}
	return data
}
