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
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/deepflowio/dlist/config"
	"github.com/deepflowio/dlist/datastructure"
	"github.com/deepflowio/dlist/replay"
	"github.com/deepflowio/dlist/stats"
)

func init() {
	RegisterCommand(DLISTCTL_RUN, newRunCommand)
}

type runOutput struct {
	Results []replay.Result                   `json:"results"`
	List    *datastructure.LinkedList[string] `json:"list"`
	Stats   []stats.Stat                      `json:"stats,omitempty"`
}

func newRunCommand(opts *Options) *cobra.Command {
	var exec []string
	var check bool
	var output string
	var showStats bool
	cmd := &cobra.Command{
		Use:   "run [script|-]",
		Short: "replay list operations from a script, stdin or -e",
		Example: "  dlist run -e 'push_back 1' -e 'push_front 2' -e pop_back\n" +
			"  dlist run ops.txt --check --output json",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.Config
			if cmd.Flags().Changed("check") {
				c.Check = check
			}
			if cmd.Flags().Changed("output") {
				c.Output = output
				if err := c.Validate(); err != nil {
					return err
				}
			}

			name, ops, err := loadOps(cmd, args, exec)
			if err != nil {
				return err
			}
			replayer := replay.NewReplayer(name, c.Check, c.List.Options()...)
			defer replayer.Close()
			results, err := replayer.Run(ops)
			var collected []stats.Stat
			if showStats {
				collected = stats.Collect()
			}
			if werr := writeResults(cmd.OutOrStdout(), c.Output, results, replayer, collected); werr != nil && err == nil {
				err = werr
			}
			return err
		},
	}
	cmd.Flags().StringArrayVarP(&exec, "exec", "e", nil, "operation to replay, may be repeated")
	cmd.Flags().BoolVar(&check, "check", false, "verify list links after every operation")
	cmd.Flags().StringVarP(&output, "output", "o", config.OUTPUT_TEXT, "output format, text or json")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print list counters after replay")
	return cmd
}

func loadOps(cmd *cobra.Command, args, exec []string) (string, []replay.Op, error) {
	if len(exec) > 0 {
		if len(args) > 0 {
			return "", nil, errors.New("script and -e are mutually exclusive")
		}
		ops := make([]replay.Op, 0, len(exec))
		for i, e := range exec {
			op, err := replay.ParseOp(e)
			if err != nil {
				return "", nil, errors.Wrapf(err, "-e #%d", i+1)
			}
			op.Line = i + 1
			ops = append(ops, op)
		}
		return "exec", ops, nil
	}

	if len(args) == 0 || args[0] == "-" {
		ops, err := replay.Parse(cmd.InOrStdin())
		return "stdin", ops, err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return "", nil, errors.Wrap(err, "open script")
	}
	defer f.Close()
	ops, err := replay.Parse(f)
	return args[0], ops, err
}

func writeResults(w io.Writer, format string, results []replay.Result, replayer *replay.Replayer, collected []stats.Stat) error {
	if format == config.OUTPUT_JSON {
		encoder := json.NewEncoder(w)
		return encoder.Encode(runOutput{Results: results, List: replayer.List(), Stats: collected})
	}
	for _, r := range results {
		switch {
		case r.Items != nil:
			fmt.Fprintf(w, "%s: %v\n", r.Op, r.Items)
		case !r.Found:
			fmt.Fprintf(w, "%s: <none>\n", r.Op)
		case r.Value != "":
			fmt.Fprintf(w, "%s: %s\n", r.Op, r.Value)
		default:
			fmt.Fprintf(w, "%s: ok\n", r.Op)
		}
	}
	fmt.Fprintf(w, "list: %s\n", replayer.List())
	for _, s := range collected {
		fmt.Fprintf(w, "stats: %s %s %+v\n", s.Module, s.Tags, s.Counter)
	}
	return nil
}
