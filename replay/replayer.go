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

package replay

import (
	"strconv"

	logging "github.com/op/go-logging"
	"github.com/pkg/errors"

	"github.com/deepflowio/dlist/datastructure"
	"github.com/deepflowio/dlist/logger"
	"github.com/deepflowio/dlist/stats"
)

var log = logging.MustGetLogger("replay")

type Result struct {
	Op    string   `json:"op"`
	Value string   `json:"value,omitempty"`
	Found bool     `json:"found"`
	Items []string `json:"items,omitempty"`
}

// Replayer 将操作依次作用于一个字符串链表
type Replayer struct {
	list  *datastructure.LinkedList[string]
	check bool
	log   *logger.PrefixLogger
}

// NewReplayer 链表的计数器以 replay 模块注册，使用完毕需 Close
func NewReplayer(name string, check bool, options ...datastructure.Option) *Replayer {
	r := &Replayer{
		list:  datastructure.NewWithOptions[string](options...),
		check: check,
		log:   logger.WrapWithPrefixLogger("["+name+"]", log),
	}
	if err := stats.RegisterCountable("replay", r.list, stats.OptionStatTags{"name": name}); err != nil {
		r.log.Warningf("register stats failed: %s", err)
	}
	return r
}

func (r *Replayer) Close() error {
	stats.DeregisterCountable(r.list)
	return nil
}

func (r *Replayer) List() *datastructure.LinkedList[string] {
	return r.list
}

func (r *Replayer) Apply(op Op) (Result, error) {
	result := Result{Op: op.String()}
	switch op.Code {
	case OP_PUSH_FRONT:
		r.list.PushFront(op.Arg)
		result.Found = true
	case OP_PUSH_BACK:
		r.list.PushBack(op.Arg)
		result.Found = true
	case OP_POP_FRONT:
		result.Value, result.Found = r.list.PopFront()
	case OP_POP_BACK:
		result.Value, result.Found = r.list.PopBack()
	case OP_FRONT:
		result.Value, result.Found = r.list.Front()
	case OP_BACK:
		result.Value, result.Found = r.list.Back()
	case OP_LEN:
		result.Value, result.Found = strconv.Itoa(r.list.Len()), true
	case OP_CLEAR:
		r.list.Clear()
		result.Found = true
	case OP_DUMP:
		result.Items, result.Found = r.list.ToSlice(), true
	default:
		return result, errors.Errorf("unsupported op %d", op.Code)
	}
	r.log.Debugf("line %d: %s => %q %v, len %d", op.Line, result.Op, result.Value, result.Found, r.list.Len())

	if r.check {
		if err := r.list.Check(); err != nil {
			r.log.Errorf("line %d: %s corrupts list: %s", op.Line, result.Op, err)
			return result, errors.Wrapf(err, "line %d: %s", op.Line, result.Op)
		}
	}
	return result, nil
}

func (r *Replayer) Run(ops []Op) ([]Result, error) {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		result, err := r.Apply(op)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	r.log.Infof("replayed %d ops, %d items left", len(ops), r.list.Len())
	return results, nil
}
