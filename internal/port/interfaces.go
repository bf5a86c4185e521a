package port

import (
	"context"
	"time"

	"github-value-tracker/internal/domain"
)

// RepoFetcher (数据抓取): 对 GitHub REST API 的薄封装
// 所有方法在非 2xx 时返回错误，由调用方决定是跳过还是降级
type RepoFetcher interface {
	GetRepository(ctx context.Context, owner, name string) (*domain.Repository, error)
	SearchRepositories(ctx context.Context, query, sort string, perPage int) ([]*domain.Repository, error)
	GetContributors(ctx context.Context, owner, name string) ([]*domain.Contributor, error)
	GetCommits(ctx context.Context, owner, name string, since time.Time) ([]*domain.Commit, error)
	GetReleases(ctx context.Context, owner, name string) ([]*domain.Release, error)
	GetIssues(ctx context.Context, owner, name, state string) ([]*domain.Issue, error)
	GetRepositoryEvents(ctx context.Context, owner, name string) ([]*domain.RepoEvent, error)
}

// Trender (趋势侦察): 用一组搜索近似“最近 N 天的热门仓库”
type Trender interface {
	// Trending 返回去重且顺序稳定的候选列表；所有查询都失败时返回错误
	Trending(ctx context.Context, days, minStars, limit int) ([]*domain.TrendingRepo, error)
	// Simple 四条固定查询的简化版趋势搜索
	Simple(ctx context.Context) ([]*domain.Repository, error)
	// Search 带过滤条件的仓库搜索
	Search(ctx context.Context, filters domain.SearchFilters) ([]*domain.Repository, error)
}

// Scorer (价值评分): 纯函数，结果在 [0,100]
type Scorer interface {
	Score(repo *domain.Repository, partial domain.PartialMetrics) int
}

// MetricsAggregator (指标聚合): 单个仓库 -> 完整指标，整体不会失败
type MetricsAggregator interface {
	ComputeMetrics(ctx context.Context, repo *domain.Repository) *domain.DerivedMetrics
}

// Annotator (分析师): 模板化的项目解读
type Annotator interface {
	Analyze(repo *domain.Repository, metrics *domain.DerivedMetrics) *domain.Analysis
}

// SnapshotStore (仓库管理员): 可选的 star 时间序列存储
type SnapshotStore interface {
	// RecordStars 记录一次 star 数快照
	RecordStars(ctx context.Context, fullName string, stars int, at time.Time) error
	// StarsAsOf 返回 [notBefore, at] 内最近的一次快照，区间内没有快照时 ok 为 false
	StarsAsOf(ctx context.Context, fullName string, notBefore, at time.Time) (int, bool, error)
}

// Dashboard 对外的 action 接口，live 和 demo 两种实现
type Dashboard interface {
	Projects(ctx context.Context) (*domain.ProjectsFeed, error)
	Discoveries(ctx context.Context) (*domain.DiscoveriesFeed, error)
	Trending(ctx context.Context) (*domain.TrendingFeed, error)
	Search(ctx context.Context, filters domain.SearchFilters) (*domain.ProjectsFeed, error)
	Analytics(ctx context.Context, owner, name string) (*domain.AnalyticsReport, error)
}
