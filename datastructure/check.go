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
	"github.com/pkg/errors"
)

// Check 双向遍历链表，校验首尾指针、前后链接是否对称、链是否无环
func (l *LinkedList[T]) Check() error {
	if (l.head == nilRef) != (l.tail == nilRef) {
		return errors.Errorf("head %d and tail %d disagree on emptiness", l.head, l.tail)
	}
	if l.head == nilRef {
		if l.size != 0 {
			return errors.Errorf("empty chain with size %d", l.size)
		}
		return nil
	}

	forward, err := l.checkChain(l.head, l.tail, func(n *node[T]) (ref, ref) { return n.prev, n.next })
	if err != nil {
		return errors.Wrap(err, "forward")
	}
	backward, err := l.checkChain(l.tail, l.head, func(n *node[T]) (ref, ref) { return n.next, n.prev })
	if err != nil {
		return errors.Wrap(err, "backward")
	}
	if forward != backward || forward != l.size {
		return errors.Errorf("forward %d, backward %d nodes, size %d", forward, backward, l.size)
	}
	if forward != l.arena.inUse {
		return errors.Errorf("%d nodes linked but %d allocated", forward, l.arena.inUse)
	}
	return nil
}

// checkChain 从 first 沿 links 返回的 (后向, 前向) 链接走到尾，返回节点数
func (l *LinkedList[T]) checkChain(first, last ref, links func(*node[T]) (ref, ref)) (int, error) {
	count := 0
	prev := nilRef
	for r := first; r != nilRef; {
		if !l.arena.contains(r) {
			return count, errors.Errorf("dangling link %d after %d", r, prev)
		}
		n := l.arena.get(r)
		if !n.used {
			return count, errors.Errorf("released node %d still linked", r)
		}
		back, forth := links(n)
		if back != prev {
			return count, errors.Errorf("node %d links back to %d, expected %d", r, back, prev)
		}
		count++
		if count > l.arena.inUse {
			return count, errors.Errorf("cycle through node %d", r)
		}
		prev, r = r, forth
	}
	if prev != last {
		return count, errors.Errorf("chain ends at %d, expected %d", prev, last)
	}
	return count, nil
}
