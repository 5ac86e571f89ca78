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

const (
	_DEFAULT_BLOCK_SIZE_BITS = 6
	_MAX_BLOCK_SIZE_BITS     = 20
)

// ref 为节点在 arena 中的下标加一，0 表示不存在，
// 这样 LinkedList 的零值即为合法的空链表
type ref int

const nilRef ref = 0

type node[T any] struct {
	data T
	prev ref // 仅用于反向遍历，节点的存活只由 arena 决定
	next ref
	gen  uint32 // 每次释放加一，用于识别失效的 Iterator
	used bool
}

type nodeBlock[T any] []node[T]

// arena 按固定大小的块存储节点，释放的位置压入 free 栈后进先出复用。
// 注意：不是线程安全的
type arena[T any] struct {
	blocks    []nodeBlock[T]
	blockBits uint32
	sized     bool

	end   ref   // 下一个从未分配过的位置
	free  []ref // 已释放的位置
	inUse int

	epoch uint32 // reset 时加一，此前的 Iterator 全部失效
}

func (a *arena[T]) setBlockSize(size int) {
	bits := uint32(0)
	for 1<<bits < size && bits < _MAX_BLOCK_SIZE_BITS {
		bits++
	}
	a.blockBits = bits
	a.sized = true
}

func (a *arena[T]) blockSize() int {
	if !a.sized {
		a.setBlockSize(1 << _DEFAULT_BLOCK_SIZE_BITS)
	}
	return 1 << a.blockBits
}

func (a *arena[T]) contains(r ref) bool {
	return r > nilRef && r <= a.end
}

func (a *arena[T]) get(r ref) *node[T] {
	i := int(r) - 1
	return &a.blocks[i>>a.blockBits][i&(1<<a.blockBits-1)]
}

func (a *arena[T]) alloc(data T) ref {
	var r ref
	if n := len(a.free); n > 0 {
		r = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		blockSize := a.blockSize()
		if int(a.end)>>a.blockBits >= len(a.blocks) {
			a.blocks = append(a.blocks, make(nodeBlock[T], blockSize))
			log.Debugf("arena grows to %d blocks of %d nodes", len(a.blocks), blockSize)
		}
		a.end++
		r = a.end
	}
	n := a.get(r)
	n.data = data
	n.prev, n.next = nilRef, nilRef
	n.used = true
	a.inUse++
	return r
}

// release 清空节点并归还位置，返回节点中的数据
func (a *arena[T]) release(r ref) T {
	n := a.get(r)
	data := n.data
	*n = node[T]{gen: n.gen + 1}
	a.free = append(a.free, r)
	a.inUse--
	return data
}

// reset 丢弃所有块，交由GC回收
func (a *arena[T]) reset() {
	a.blocks = nil
	a.free = nil
	a.end = nilRef
	a.inUse = 0
	a.epoch++
}

func (a *arena[T]) slots() int {
	return len(a.blocks) << a.blockBits
}
