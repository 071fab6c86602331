package main

import (
	"fmt"
	"os"

	"resource-share/internal/router"
	"resource-share/internal/utils"

	"github.com/spf13/cobra"
)

var configFile string

// rootCmd 资源分享站服务入口
var rootCmd = &cobra.Command{
	Use:           "server",
	Short:         "资源分享站 API 服务",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// serveCmd 启动HTTP服务
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(configFile)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()

		// 恢复上次的登录状态
		if err := a.session.Restore(ctx); err != nil {
			a.logger.WithError(err).Warn("恢复登录状态失败")
		}

		jwtManager := utils.NewJWTManager(
			a.cfg.JWT.SecretKey,
			a.cfg.JWT.Algorithm,
			a.cfg.JWT.GetExpireDuration(),
		)

		// 设置路由
		r := router.SetupRouter(a.cfg, a.logger, a.resources, a.session, jwtManager)

		addr := a.cfg.Server.GetAddress()
		a.logger.WithField("storage", a.cfg.Storage.Driver).Infof("服务器启动在 %s", addr)

		if !a.cfg.Server.ProductionMode {
			a.logger.Infof("开发模式: 管理员账号 %s", a.cfg.Admin.Username)
		}

		if err := r.Run(addr); err != nil {
			return fmt.Errorf("启动服务器失败: %w", err)
		}
		return nil
	},
}

// resetCmd 清除已保存的资源，恢复初始数据
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "清除已保存的资源并恢复初始数据",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(configFile)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.resources.Reset(cmd.Context()); err != nil {
			return err
		}
		a.logger.Info("资源数据已重置")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "配置文件路径 (默认在 . 和 ./config 下查找 config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
