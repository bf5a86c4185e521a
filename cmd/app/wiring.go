package main

import (
	"context"
	"time"

	"github-value-tracker/internal/adapter/analyzer"
	"github-value-tracker/internal/adapter/demo"
	"github-value-tracker/internal/adapter/github"
	"github-value-tracker/internal/adapter/repository"
	"github-value-tracker/internal/adapter/scorer"
	"github-value-tracker/internal/common"
	"github-value-tracker/internal/config"
	"github-value-tracker/internal/port"
	"github-value-tracker/internal/service"

	"github.com/sirupsen/logrus"
)

// application 组装好的依赖
type application struct {
	cfg       *config.Config
	logger    *logrus.Logger
	dashboard port.Dashboard
	fetcher   *github.Fetcher // 演示模式下为 nil
	metrics   *service.MetricsService
	store     *repository.PostgresRepo // 未配置快照存储时为 nil
}

// buildApplication 没有 token 时在这里一次性决定进入演示模式
func buildApplication(cfg *config.Config) (*application, error) {
	logger := common.NewLogger(cfg.Log.Level, cfg.Log.Format)
	annotator := analyzer.NewAnnotator()
	app := &application{cfg: cfg, logger: logger}

	if cfg.DemoMode() {
		logger.Warn("🎭 未配置 GITHUB_TOKEN，使用演示数据")
		app.dashboard = demo.NewDashboard(annotator)
		return app, nil
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return nil, err
	}
	app.fetcher = fetcher

	var store port.SnapshotStore
	if cfg.SnapshotsEnabled() {
		repo, err := repository.NewPostgresRepo(cfg.Store.PostgresDSN)
		if err != nil {
			// 快照存储是可选的，连不上时增长字段保持为 0
			logger.WithError(err).Warn("⚠️ star 快照存储不可用")
		} else {
			app.store = repo
			store = repo
		}
	}

	app.metrics = service.NewMetricsService(fetcher, scorer.NewValueScorer(), store, logger)
	trender := github.NewTrender(fetcher, logger, cfg.Pipeline.EventLookups)
	app.dashboard = service.NewDashboardService(fetcher, trender, app.metrics, annotator, logger, cfg.Pipeline.Concurrency)
	return app, nil
}

func newFetcher(cfg *config.Config) (*github.Fetcher, error) {
	return github.NewFetcher(github.Options{
		Token:   cfg.GitHub.Token,
		BaseURL: cfg.GitHub.BaseURL,
		Timeout: cfg.GitHub.Timeout,
	})
}

// pruneSnapshots 清理超过保留期的快照
func (a *application) pruneSnapshots(ctx context.Context) {
	if a.store == nil || a.cfg.Store.RetentionDays <= 0 {
		return
	}
	before := time.Now().AddDate(0, 0, -a.cfg.Store.RetentionDays)
	n, err := a.store.Prune(ctx, before)
	if err != nil {
		a.logger.WithError(err).Warn("⚠️ 清理 star 快照失败")
		return
	}
	a.logger.WithField("deleted", n).Info("🧹 已清理过期的 star 快照")
}
