package service

import (
	"context"
	"time"

	"github-value-tracker/internal/adapter/filter"
	"github-value-tracker/internal/domain"
	"github-value-tracker/internal/port"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	day           = 24 * time.Hour
	commitWindow  = 30 * day
	releaseWindow = 365 * day
)

// growthWindow 只接受 days 天前、最多再早 tolerance 的快照
type growthWindow struct {
	days      int
	tolerance time.Duration
}

var (
	growthWindow7d  = growthWindow{days: 7, tolerance: day}
	growthWindow30d = growthWindow{days: 30, tolerance: 3 * day}
)

// MetricsService 实现了 port.MetricsAggregator 接口
// 单个仓库的四路请求并发发出、各自容错，整体永远不会失败
type MetricsService struct {
	fetcher port.RepoFetcher
	scorer  port.Scorer
	store   port.SnapshotStore // 可选，为 nil 时增长字段恒为 0
	logger  logrus.FieldLogger
	counter *filter.RepoFilter
	nowFunc func() time.Time
}

// NewMetricsService 创建指标聚合服务，store 可以为 nil
func NewMetricsService(fetcher port.RepoFetcher, scorer port.Scorer, store port.SnapshotStore, logger logrus.FieldLogger) *MetricsService {
	s := &MetricsService{
		fetcher: fetcher,
		scorer:  scorer,
		store:   store,
		logger:  logger,
		nowFunc: time.Now,
	}
	s.counter = filter.NewRepoFilter().WithNow(func() time.Time { return s.nowFunc() })
	return s
}

// ComputeMetrics 拉取辅助信号并计算完整指标
func (s *MetricsService) ComputeMetrics(ctx context.Context, repo *domain.Repository) *domain.DerivedMetrics {
	now := s.nowFunc()
	log := s.logger.WithField("repo", repo.FullName)

	metrics := &domain.DerivedMetrics{
		Project:       repo,
		ForkStarRatio: domain.ForkStarRatio(repo.ForksCount, repo.StargazersCount),
		LastUpdated:   now,
	}

	owner, name, ok := repo.OwnerAndName()
	if !ok {
		// full_name 不合法时无法请求辅助数据，只用仓库本身的字段评分
		log.Warn("⚠️ 无法解析 full_name，只计算基础指标")
		metrics.ValueScore = s.scorer.Score(repo, domain.PartialMetrics{})
		return metrics
	}

	var (
		contributors []*domain.Contributor
		commits      []*domain.Commit
		releases     []*domain.Release
		closed       []*domain.Issue
	)

	// 每一路失败只记日志并当作空结果，所以 goroutine 永远返回 nil
	var g errgroup.Group
	g.Go(func() error {
		res, err := s.fetcher.GetContributors(ctx, owner, name)
		if err != nil {
			log.WithError(err).Warn("⚠️ 获取贡献者失败")
			return nil
		}
		contributors = res
		return nil
	})
	g.Go(func() error {
		res, err := s.fetcher.GetCommits(ctx, owner, name, now.Add(-commitWindow))
		if err != nil {
			log.WithError(err).Warn("⚠️ 获取提交失败")
			return nil
		}
		commits = res
		return nil
	})
	g.Go(func() error {
		res, err := s.fetcher.GetReleases(ctx, owner, name)
		if err != nil {
			log.WithError(err).Warn("⚠️ 获取发布失败")
			return nil
		}
		releases = res
		return nil
	})
	g.Go(func() error {
		res, err := s.fetcher.GetIssues(ctx, owner, name, "closed")
		if err != nil {
			log.WithError(err).Warn("⚠️ 获取 issue 失败")
			return nil
		}
		closed = res
		return nil
	})
	_ = g.Wait()

	metrics.ContributorsCount = len(contributors)
	metrics.CommitFrequency = s.counter.CountCommitsSince(commits, commitWindow)
	metrics.ReleaseFrequency = s.counter.CountReleasesSince(releases, releaseWindow)
	metrics.IssueCloseRate = domain.IssueCloseRate(repo.OpenIssuesCount, filter.CountByState(closed, "closed"))
	metrics.StarsGrowth7d, metrics.StarsGrowth30d = s.starGrowth(ctx, log, repo, now)

	metrics.ValueScore = s.scorer.Score(repo, metrics.Partial())
	return metrics
}

// starGrowth 有快照存储时用历史快照计算增长，并记录本次的 star 数
func (s *MetricsService) starGrowth(ctx context.Context, log logrus.FieldLogger, repo *domain.Repository, now time.Time) (int, int) {
	if s.store == nil {
		return 0, 0
	}

	growth := func(w growthWindow) int {
		at := now.AddDate(0, 0, -w.days)
		past, found, err := s.store.StarsAsOf(ctx, repo.FullName, at.Add(-w.tolerance), at)
		if err != nil {
			log.WithError(err).Warn("⚠️ 查询 star 快照失败")
			return 0
		}
		if !found {
			return 0
		}
		return max(repo.StargazersCount-past, 0)
	}
	growth7d, growth30d := growth(growthWindow7d), growth(growthWindow30d)

	if err := s.store.RecordStars(ctx, repo.FullName, repo.StargazersCount, now); err != nil {
		log.WithError(err).Warn("⚠️ 记录 star 快照失败")
	}
	return growth7d, growth30d
}
