package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github-value-tracker/internal/adapter/analyzer"
	"github-value-tracker/internal/adapter/github"
	"github-value-tracker/internal/adapter/scorer"
	"github-value-tracker/internal/common"
	"github-value-tracker/internal/config"
	"github-value-tracker/internal/service"
)

func main() {
	configFile := flag.String("config", "", "配置文件路径")
	top := flag.Int("top", 3, "对前 N 个趋势项目做完整评分")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 加载配置失败: %v\n", err)
		os.Exit(1)
	}
	logger := common.NewLogger("debug", cfg.Log.Format)
	if cfg.DemoMode() {
		logger.Fatal("❌ 调试模式需要 GITHUB_TOKEN")
	}

	ctx := context.Background()

	fetcher, err := github.NewFetcher(github.Options{
		Token:   cfg.GitHub.Token,
		BaseURL: cfg.GitHub.BaseURL,
		Timeout: cfg.GitHub.Timeout,
	})
	if err != nil {
		logger.WithError(err).Fatal("❌ 初始化 GitHub 客户端失败")
	}
	trender := github.NewTrender(fetcher, logger, cfg.Pipeline.EventLookups)
	valueScorer := scorer.NewValueScorer()
	metrics := service.NewMetricsService(fetcher, valueScorer, nil, logger)
	annotator := analyzer.NewAnnotator()

	fmt.Println("🔍 调试模式：趋势近似 + 价值评分")

	// 1. 趋势近似
	fmt.Println("📥 正在统计近 7 天的趋势项目...")
	trending, err := trender.Trending(ctx, 7, 10, 20)
	if err != nil {
		logger.WithError(err).Error("❌ 趋势统计失败")
		return
	}
	fmt.Printf("✅ 获取 %d 个趋势项目\n", len(trending))
	for i, tr := range trending {
		fmt.Printf("  %2d. %-40s +%d stars, +%d forks, %d events, %d contributors\n",
			i+1, tr.Repo.FullName, tr.StarsAdded, tr.ForksAdded, tr.TotalEvents, tr.UniqueContributors)
	}

	if len(trending) == 0 {
		fmt.Println("❌ 没有获取到任何项目")
		return
	}

	// 2. 完整评分
	n := min(*top, len(trending))
	fmt.Printf("🧮 对前 %d 个项目计算完整指标:\n", n)
	for _, tr := range trending[:n] {
		m := metrics.ComputeMetrics(ctx, tr.Repo)
		b := valueScorer.Breakdown(tr.Repo, m.Partial())

		fmt.Printf("\n📦 %s (%s)\n", tr.Repo.FullName, tr.Repo.HTMLURL)
		fmt.Printf("   ⭐ %d stars | 🍴 %d forks | 👥 %d contributors\n",
			tr.Repo.StargazersCount, tr.Repo.ForksCount, m.ContributorsCount)
		fmt.Printf("   commits/30d=%d releases/365d=%d close_rate=%.2f fork_ratio=%.3f\n",
			m.CommitFrequency, m.ReleaseFrequency, m.IssueCloseRate, m.ForkStarRatio)
		fmt.Printf("   growth=%.1f maturity=%.1f commercial=%.1f community=%.1f => %d\n",
			b.Growth, b.Maturity, b.Commercial, b.Community, m.ValueScore)
		fmt.Printf("   📝 分析模板: %s\n", annotator.TemplateName(tr.Repo))
	}

	fmt.Println("\n🏁 调试完成")
}
