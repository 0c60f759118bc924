package main

import (
	"autograph-openre/config"
	"autograph-openre/logging"
	"autograph-openre/utils"
	"github.com/spf13/cobra"
)

var (
	v          = config.New()
	configPath string
)

/*
bindFlags 让命令行参数（value）覆盖配置中的 key。
多个子命令可能绑定同一个 key，因此在命令执行前才绑定。
*/
func bindFlags(cmd *cobra.Command, flags map[string]string) error {
	for key, flag := range flags {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return utils.WrapErrorf(err, "bind flag [%s] to [%s] fail", flag, key)
		}
	}
	return nil
}

/*
setup 读取配置并初始化日志，所有子命令在执行前调用。
*/
func setup() (*config.Config, error) {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, err
	}

	logConf, err := loggingConf(cfg)
	if err != nil {
		return nil, err
	}
	logging.SetDefaultConfig(logConf)

	return cfg, nil
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "openre",
		Short:         "Entity-anchored open relation extraction",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (yaml), default ./openre.yaml")

	cmd.AddCommand(extractCmd())
	cmd.AddCommand(serveCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(modesCmd())
	return cmd
}
