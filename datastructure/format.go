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
	"fmt"

	"github.com/goccy/go-json"
)

// Equal 长度相同且从头至尾元素逐一相等即视为相等，与节点在 arena 中的位置无关
func Equal[T comparable](a, b *LinkedList[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

func (l *LinkedList[T]) EqualFunc(other *LinkedList[T], eq func(a, b T) bool) bool {
	if l == other {
		return true
	}
	if l.Len() != other.Len() {
		return false
	}
	if l.Len() == 0 {
		return true
	}
	for r, o := l.head, other.head; r != nilRef; {
		n, m := l.arena.get(r), other.arena.get(o)
		if !eq(n.data, m.data) {
			return false
		}
		r, o = n.next, m.next
	}
	return true
}

func (l *LinkedList[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}

func (l *LinkedList[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToSlice())
}

// UnmarshalJSON 以 JSON 数组替换链表内容
func (l *LinkedList[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	l.Clear()
	for _, item := range items {
		l.PushBack(item)
	}
	return nil
}
