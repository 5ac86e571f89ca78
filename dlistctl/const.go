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
	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/deepflowio/dlist/config"
	"github.com/deepflowio/dlist/logger"
)

var log = logging.MustGetLogger("dlistctl")

type DlistCtlModuleId uint16

const (
	DLISTCTL_RUN DlistCtlModuleId = iota
	DLISTCTL_FROM
	DLISTCTL_VERSION
	DLISTCTL_MAX
)

type RegisterCommmandLine func(*Options) *cobra.Command

var RegisterHandlers = [DLISTCTL_MAX]RegisterCommmandLine{}

var RevCount, Revision, CommitDate string

func RegisterCommand(module DlistCtlModuleId, cmd RegisterCommmandLine) {
	RegisterHandlers[module] = cmd
}

// Options 为各子命令共享的全局参数，config 在子命令执行前加载
type Options struct {
	ConfigPath string
	LogLevel   string

	Config *config.Config
}

func (o *Options) init() error {
	c, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
		if err := c.Validate(); err != nil {
			return err
		}
	}
	if c.LogFile != "" {
		err = logger.InitLog(c.LogFile, c.LogLevel)
	} else {
		err = logger.InitConsoleLog(c.LogLevel)
	}
	if err != nil {
		return err
	}
	o.Config = c
	log.Debugf("config %s, log level %s", o.ConfigPath, c.LogLevel)
	return nil
}

func NewRootCommand() *cobra.Command {
	opts := &Options{}
	root := &cobra.Command{
		Use:           "dlist",
		Short:         "Doubly Linked List Replay Tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init()
		},
	}
	root.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "f", "", "Specify config file location")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Override log-level of config file")
	for _, handler := range RegisterHandlers {
		if handler != nil {
			root.AddCommand(handler(opts))
		}
	}
	return root
}
