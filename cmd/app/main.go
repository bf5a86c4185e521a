package main

import (
	"fmt"
	"os"

	"github-value-tracker/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

// rootOptions 全局参数
type rootOptions struct {
	configFile string
	verbose    bool
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "tracker",
		Short:         "GitHub 开源项目商业价值追踪",
		Long:          "抓取 GitHub 仓库信号，计算 0-100 的商业价值评分，并输出追踪列表、新项目发现和趋势。",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			if opts.verbose {
				cfg.Log.Level = "debug"
			}
			opts.cfg = cfg
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "配置文件路径 (默认查找 ./tracker.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "输出 debug 日志")

	root.AddCommand(
		newServeCmd(opts),
		newRunCmd(opts),
		newScoreCmd(opts),
		newNotifyCmd(opts),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
