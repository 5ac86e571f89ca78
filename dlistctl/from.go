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

package dlistctl

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/deepflowio/dlist/config"
	"github.com/deepflowio/dlist/datastructure"
)

func init() {
	RegisterCommand(DLISTCTL_FROM, newFromCommand)
	RegisterCommand(DLISTCTL_VERSION, newVersionCommand)
}

type fromOutput struct {
	List    json.RawMessage `json:"list"`
	PopBack []string        `json:"pop_back"`
}

func newFromCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "from <value>...",
		Short: "build a list from values, then drain it from the back",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := datastructure.From(args...)
			out := cmd.OutOrStdout()
			if opts.Config.Output == config.OUTPUT_JSON {
				// PopBack 会清空链表，需先编码
				data, err := json.Marshal(list)
				if err != nil {
					return err
				}
				return json.NewEncoder(out).Encode(fromOutput{List: data, PopBack: drainBack(list)})
			}
			fmt.Fprintf(out, "list: %s\n", list)
			fmt.Fprintf(out, "pop_back: %s\n", strings.Join(drainBack(list), " "))
			return nil
		},
	}
}

func drainBack(list *datastructure.LinkedList[string]) []string {
	items := make([]string, 0, list.Len())
	for {
		v, ok := list.PopBack()
		if !ok {
			return items
		}
		items = append(items, v)
	}
}

func newVersionCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "display the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s-%s %s\n", RevCount, Revision, CommitDate)
			return nil
		},
	}
}
