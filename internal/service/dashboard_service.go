package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github-value-tracker/internal/adapter/filter"
	"github-value-tracker/internal/common"
	"github-value-tracker/internal/domain"
	"github-value-tracker/internal/port"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// 流水线参数
const (
	projectsTrendDays     = 7
	projectsTrendMinStars = 10
	projectsTrendLimit    = 100
	projectsCandidates    = 50
	projectsFloor         = 30
	fallbackSeeds         = 50

	discoverTrendDays     = 3
	discoverTrendMinStars = 20
	discoverTrendLimit    = 50
	discoverCandidates    = 20
	discoverMinScore      = 60
	viralStarsAdded       = 50
	discoverKeep          = 15
	fallbackDiscoverKeep  = 10
	trendingTopicsShown   = 3

	trendingKeep       = 15
	defaultSearchLimit = 50
)

var errNilRepository = errors.New("仓库记录为空")

// DashboardService 实现 port.Dashboard，负责五个 action 的排名与发现流水线
type DashboardService struct {
	fetcher     port.RepoFetcher
	trender     port.Trender
	metrics     port.MetricsAggregator
	annotator   port.Annotator
	logger      logrus.FieldLogger
	concurrency int
	seeds       []string
	nowFunc     func() time.Time
}

// NewDashboardService 创建流水线服务
// concurrency <= 1 时逐个处理候选仓库，否则使用有界 worker 池
func NewDashboardService(
	fetcher port.RepoFetcher,
	trender port.Trender,
	metrics port.MetricsAggregator,
	annotator port.Annotator,
	logger logrus.FieldLogger,
	concurrency int,
) *DashboardService {
	return &DashboardService{
		fetcher:     fetcher,
		trender:     trender,
		metrics:     metrics,
		annotator:   annotator,
		logger:      logger,
		concurrency: concurrency,
		seeds:       DefaultSeeds,
		nowFunc:     time.Now,
	}
}

// runLogger 每次运行带上独立的 run_id，方便在日志里串起一次请求
func (s *DashboardService) runLogger(action string) logrus.FieldLogger {
	return s.logger.WithFields(logrus.Fields{
		"action": action,
		"run_id": uuid.NewString(),
	})
}

// evaluate 单个仓库: 聚合指标 + 附加分析
func (s *DashboardService) evaluate(ctx context.Context, repo *domain.Repository) (*domain.DerivedMetrics, error) {
	if repo == nil {
		return nil, errNilRepository
	}
	return s.scoreAndAnnotate(ctx, repo), nil
}

// scoreAndAnnotate 计算指标并附上分析，repo 不能为 nil
func (s *DashboardService) scoreAndAnnotate(ctx context.Context, repo *domain.Repository) *domain.DerivedMetrics {
	metrics := s.metrics.ComputeMetrics(ctx, repo)
	metrics.AIAnalysis = s.annotator.Analyze(repo, metrics)
	return metrics
}

// fetchAndEvaluate 按 full_name 拉取仓库后评估
func (s *DashboardService) fetchAndEvaluate(ctx context.Context, fullName string) (*domain.DerivedMetrics, error) {
	owner, name, ok := domain.SplitFullName(fullName)
	if !ok {
		return nil, fmt.Errorf("无效的仓库名 %q", fullName)
	}
	repo, err := s.fetcher.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	return s.evaluate(ctx, repo)
}

func skipLogger[T any](log logrus.FieldLogger, msg string, key func(T) string) func(T, error) {
	return func(item T, err error) {
		log.WithError(err).WithField("repo", key(item)).Warn(msg)
	}
}

func trendName(tr *domain.TrendingRepo) string {
	if tr == nil || tr.Repo == nil {
		return ""
	}
	return tr.Repo.FullName
}

func seedName(name string) string { return name }

// Projects 追踪项目列表
func (s *DashboardService) Projects(ctx context.Context) (*domain.ProjectsFeed, error) {
	log := s.runLogger("projects")

	trending, err := s.trender.Trending(ctx, projectsTrendDays, projectsTrendMinStars, projectsTrendLimit)
	if err != nil {
		log.WithError(err).Warn("⚠️ 趋势扫描失败，降级为种子项目")
		return s.seedProjects(ctx, log), nil
	}

	candidates := trending[:min(len(trending), projectsCandidates)]
	projects := processOrdered(ctx, s.concurrency, candidates,
		func(ctx context.Context, tr *domain.TrendingRepo) (*domain.DerivedMetrics, error) {
			return s.evaluate(ctx, tr.Repo)
		},
		skipLogger(log, "❌ 处理趋势项目失败，跳过", trendName),
	)

	if len(projects) < projectsFloor {
		projects = s.backfill(ctx, log, projects)
	}

	projects = filter.DedupeByFullName(projects)
	filter.SortByValueScore(projects)

	log.WithField("count", len(projects)).Info("✅ 项目列表生成完成")
	return &domain.ProjectsFeed{
		Projects:    projects,
		Total:       len(projects),
		LastUpdated: s.nowFunc(),
		Source:      domain.SourceTrendEnhanced,
	}, nil
}

// backfill 用种子项目补齐到下限，跳过已经存在的仓库
func (s *DashboardService) backfill(ctx context.Context, log logrus.FieldLogger, projects []*domain.DerivedMetrics) []*domain.DerivedMetrics {
	seen := make(map[string]struct{}, len(projects))
	for _, m := range projects {
		seen[domain.CanonicalName(m.Project.FullName)] = struct{}{}
	}

	for _, seed := range s.seeds {
		if len(projects) >= projectsFloor || ctx.Err() != nil {
			break
		}
		if _, ok := seen[domain.CanonicalName(seed)]; ok {
			continue
		}

		metrics, err := s.fetchAndEvaluate(ctx, seed)
		if err != nil {
			log.WithError(err).WithField("repo", seed).Warn("❌ 获取种子项目失败，跳过")
			continue
		}
		// 种子名可能和仓库的真实名字不同 (改名或重定向)
		key := domain.CanonicalName(metrics.Project.FullName)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		seen[domain.CanonicalName(seed)] = struct{}{}
		projects = append(projects, metrics)
	}
	return projects
}

// seedProjects 趋势扫描不可用时只扫描种子项目
func (s *DashboardService) seedProjects(ctx context.Context, log logrus.FieldLogger) *domain.ProjectsFeed {
	seeds := s.seeds[:min(len(s.seeds), fallbackSeeds)]
	projects := processOrdered(ctx, s.concurrency, seeds, s.fetchAndEvaluate,
		skipLogger(log, "❌ 获取种子项目失败，跳过", seedName),
	)

	projects = filter.DedupeByFullName(projects)
	filter.SortByValueScore(projects)

	log.WithField("count", len(projects)).Info("✅ 种子项目列表生成完成")
	return &domain.ProjectsFeed{
		Projects:    projects,
		Total:       len(projects),
		LastUpdated: s.nowFunc(),
		Source:      domain.SourceFallback,
	}
}

// Discoveries 新项目发现；保留趋势扫描的顺序，不按分数重排
func (s *DashboardService) Discoveries(ctx context.Context) (*domain.DiscoveriesFeed, error) {
	log := s.runLogger("discover")

	trending, err := s.trender.Trending(ctx, discoverTrendDays, discoverTrendMinStars, discoverTrendLimit)
	if err != nil {
		log.WithError(err).Warn("⚠️ 趋势扫描失败，降级为趋势搜索")
		return s.searchDiscoveries(ctx, log), nil
	}

	now := s.nowFunc()
	candidates := trending[:min(len(trending), discoverCandidates)]
	entries := processOrdered(ctx, s.concurrency, candidates,
		func(ctx context.Context, tr *domain.TrendingRepo) (*domain.DiscoveryEntry, error) {
			metrics, err := s.evaluate(ctx, tr.Repo)
			if err != nil {
				return nil, err
			}
			reason := domain.ReasonHighValueDiscovery
			if tr.StarsAdded > viralStarsAdded {
				reason = domain.ReasonViralGrowth
			}
			return &domain.DiscoveryEntry{
				Project:      metrics,
				Reason:       reason,
				DiscoveredAt: now,
				GrowthIndicators: &domain.GrowthIndicators{
					StarsAdded7d:       tr.StarsAdded,
					UniqueContributors: tr.UniqueContributors,
					TrendingTopics:     headTopics(tr.Repo.Topics),
				},
			}, nil
		},
		skipLogger(log, "❌ 处理发现项目失败，跳过", trendName),
	)

	discoveries := keepAboveScore(entries, discoverMinScore)
	total := len(discoveries)

	log.WithField("count", total).Info("✅ 发现列表生成完成")
	return &domain.DiscoveriesFeed{
		Discoveries: discoveries[:min(total, discoverKeep)],
		Total:       total,
		LastUpdated: now,
		Source:      domain.SourceTrendDiscovery,
	}, nil
}

// searchDiscoveries 第二级降级: 简化趋势搜索；再失败则返回空列表
func (s *DashboardService) searchDiscoveries(ctx context.Context, log logrus.FieldLogger) *domain.DiscoveriesFeed {
	now := s.nowFunc()

	repos, err := s.trender.Simple(ctx)
	if err != nil {
		log.WithError(err).Error("❌ 趋势搜索也失败了，返回空列表")
		return &domain.DiscoveriesFeed{Discoveries: []*domain.DiscoveryEntry{}, LastUpdated: now}
	}

	candidates := repos[:min(len(repos), discoverCandidates)]
	entries := processOrdered(ctx, s.concurrency, candidates,
		func(ctx context.Context, repo *domain.Repository) (*domain.DiscoveryEntry, error) {
			metrics, err := s.evaluate(ctx, repo)
			if err != nil {
				return nil, err
			}
			return &domain.DiscoveryEntry{
				Project:      metrics,
				Reason:       domain.ReasonHighValueDiscovery,
				DiscoveredAt: now,
			}, nil
		},
		skipLogger(log, "❌ 处理发现项目失败，跳过", func(r *domain.Repository) string {
			if r == nil {
				return ""
			}
			return r.FullName
		}),
	)

	discoveries := keepAboveScore(entries, discoverMinScore)
	total := len(discoveries)
	return &domain.DiscoveriesFeed{
		Discoveries: discoveries[:min(total, fallbackDiscoverKeep)],
		Total:       total,
		LastUpdated: now,
		Source:      domain.SourceSearchFallback,
	}
}

func keepAboveScore(entries []*domain.DiscoveryEntry, threshold int) []*domain.DiscoveryEntry {
	kept := make([]*domain.DiscoveryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Project.ValueScore > threshold {
			kept = append(kept, e)
		}
	}
	return kept
}

func headTopics(topics []string) []string {
	out := make([]string, 0, trendingTopicsShown)
	return append(out, topics[:min(len(topics), trendingTopicsShown)]...)
}

// Trending 简化趋势搜索的前 15 个仓库，total 为去重后的全部数量
func (s *DashboardService) Trending(ctx context.Context) (*domain.TrendingFeed, error) {
	log := s.runLogger("trending")
	now := s.nowFunc()

	repos, err := s.trender.Simple(ctx)
	if err != nil {
		log.WithError(err).Error("❌ 趋势搜索失败")
		return &domain.TrendingFeed{Trending: []*domain.Repository{}, LastUpdated: now}, nil
	}

	return &domain.TrendingFeed{
		Trending:    repos[:min(len(repos), trendingKeep)],
		Total:       len(repos),
		LastUpdated: now,
	}, nil
}

// Search 按条件搜索并评分排序；上游搜索失败时返回空列表
func (s *DashboardService) Search(ctx context.Context, filters domain.SearchFilters) (*domain.ProjectsFeed, error) {
	filters.Query = strings.TrimSpace(filters.Query)
	if filters.Query == "" {
		return nil, common.NewError(common.ErrCodeInvalidInput, "Search query is required")
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultSearchLimit
	}
	if filters.Topics == nil {
		filters.Topics = []string{}
	}

	log := s.runLogger("search").WithField("query", filters.Query)
	feed := &domain.ProjectsFeed{
		Projects: []*domain.DerivedMetrics{},
		Query:    filters.Query,
		Filters:  &filters,
	}

	repos, err := s.trender.Search(ctx, filters)
	if err != nil {
		log.WithError(err).Error("❌ 搜索失败")
		feed.LastUpdated = s.nowFunc()
		return feed, nil
	}

	projects := processOrdered(ctx, s.concurrency, repos, s.evaluate,
		skipLogger(log, "❌ 处理搜索结果失败，跳过", func(r *domain.Repository) string {
			if r == nil {
				return ""
			}
			return r.FullName
		}),
	)
	filter.SortByValueScore(projects)

	feed.Projects = projects
	feed.Total = len(projects)
	feed.LastUpdated = s.nowFunc()
	return feed, nil
}

// Analytics 单个项目的社区分析
func (s *DashboardService) Analytics(ctx context.Context, owner, name string) (*domain.AnalyticsReport, error) {
	owner, name = strings.TrimSpace(owner), strings.TrimSpace(name)
	if owner == "" || name == "" {
		return nil, common.NewError(common.ErrCodeInvalidInput, "Owner and repo parameters are required")
	}
	log := s.runLogger("analytics").WithField("repo", owner+"/"+name)

	var (
		repo         *domain.Repository
		contributors []*domain.Contributor
		releases     []*domain.Release
		issues       []*domain.Issue
	)

	// 只有仓库本身是必需的，其余三路失败按空结果处理
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.fetcher.GetRepository(gctx, owner, name)
		if err != nil {
			return err
		}
		repo = res
		return nil
	})
	g.Go(func() error {
		res, err := s.fetcher.GetContributors(gctx, owner, name)
		if err != nil {
			log.WithError(err).Warn("⚠️ 获取贡献者失败")
			return nil
		}
		contributors = res
		return nil
	})
	g.Go(func() error {
		res, err := s.fetcher.GetReleases(gctx, owner, name)
		if err != nil {
			log.WithError(err).Warn("⚠️ 获取发布失败")
			return nil
		}
		releases = res
		return nil
	})
	g.Go(func() error {
		res, err := s.fetcher.GetIssues(gctx, owner, name, "all")
		if err != nil {
			log.WithError(err).Warn("⚠️ 获取 issue 失败")
			return nil
		}
		issues = res
		return nil
	})
	if err := g.Wait(); err != nil || repo == nil {
		log.WithError(err).Error("❌ 获取项目失败")
		return nil, common.WrapError(common.ErrCodeNotFound, "Failed to fetch project analytics", err)
	}

	now := s.nowFunc()
	metrics := s.scoreAndAnnotate(ctx, repo)

	return &domain.AnalyticsReport{
		Repository:        repo,
		ContributorsCount: len(contributors),
		ReleasesCount:     len(releases),
		IssuesCount:       len(issues),
		Analytics:         buildAnalytics(repo, contributors, releases, issues, now),
		ValueMetrics:      metrics,
		GeneratedAt:       now,
	}, nil
}
