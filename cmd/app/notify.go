package main

import (
	"github-value-tracker/internal/adapter/feishu"
	"github-value-tracker/internal/common"

	"github.com/spf13/cobra"
)

func newNotifyCmd(opts *rootOptions) *cobra.Command {
	var webhook string

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "执行一次新项目发现，并把结果推送到飞书群",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if webhook != "" {
				opts.cfg.Notify.FeishuWebhook = webhook
			}
			if opts.cfg.Notify.FeishuWebhook == "" {
				return common.NewError(common.ErrCodeInvalidInput, "未配置飞书 Webhook (notify.feishu_webhook 或 FEISHU_WEBHOOK)")
			}

			app, err := buildApplication(opts.cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			feed, err := app.dashboard.Discoveries(ctx)
			if err != nil {
				return err
			}
			if len(feed.Discoveries) == 0 {
				app.logger.Info("😴 本次没有发现新项目，跳过推送")
				return nil
			}

			notifier := feishu.NewNotifier(opts.cfg.Notify.FeishuWebhook, app.logger)
			if err := notifier.NotifyDiscoveries(ctx, feed); err != nil {
				return err
			}
			app.logger.WithField("count", len(feed.Discoveries)).Info("✅ 已推送到飞书")
			return nil
		},
	}

	cmd.Flags().StringVar(&webhook, "webhook", "", "飞书 Webhook 地址，覆盖 notify.feishu_webhook")
	return cmd
}
