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
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type OpCode uint8

const (
	OP_PUSH_FRONT OpCode = iota
	OP_PUSH_BACK
	OP_POP_FRONT
	OP_POP_BACK
	OP_FRONT
	OP_BACK
	OP_LEN
	OP_CLEAR
	OP_DUMP
	OP_MAX
)

var opNames = [OP_MAX]string{
	OP_PUSH_FRONT: "push_front",
	OP_PUSH_BACK:  "push_back",
	OP_POP_FRONT:  "pop_front",
	OP_POP_BACK:   "pop_back",
	OP_FRONT:      "front",
	OP_BACK:       "back",
	OP_LEN:        "len",
	OP_CLEAR:      "clear",
	OP_DUMP:       "dump",
}

func (c OpCode) String() string {
	if c < OP_MAX {
		return opNames[c]
	}
	return "unknown"
}

func (c OpCode) hasArg() bool {
	return c == OP_PUSH_FRONT || c == OP_PUSH_BACK
}

type Op struct {
	Code OpCode
	Arg  string
	Line int
}

func (o Op) String() string {
	if o.Code.hasArg() {
		return o.Code.String() + " " + o.Arg
	}
	return o.Code.String()
}

// ParseOp 解析单条操作，push 操作的参数为操作名之后的全部内容
func ParseOp(s string) (Op, error) {
	s = strings.TrimSpace(s)
	name, arg, _ := strings.Cut(s, " ")
	arg = strings.TrimSpace(arg)
	for code, opName := range opNames {
		if !strings.EqualFold(name, opName) {
			continue
		}
		op := Op{Code: OpCode(code), Arg: arg}
		if op.Code.hasArg() && arg == "" {
			return op, errors.Errorf("%s requires a value", opName)
		}
		if !op.Code.hasArg() && arg != "" {
			return op, errors.Errorf("%s takes no value, got %q", opName, arg)
		}
		return op, nil
	}
	return Op{}, errors.Errorf("unknown op %q", name)
}

// Parse 按行解析操作脚本，忽略空行及 # 开头的注释
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		op, err := ParseOp(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		op.Line = line
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return ops, nil
}
