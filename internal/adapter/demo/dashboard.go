package demo

import (
	"context"
	"strings"
	"time"

	"github-value-tracker/internal/common"
	"github-value-tracker/internal/domain"
	"github-value-tracker/internal/port"
)

const trendingShown = 5

// Dashboard 没有配置 GitHub token 时使用的 port.Dashboard 实现
// 所有 action 都返回固定数据并标记 demo_mode，不发起任何网络请求
type Dashboard struct {
	annotator port.Annotator
	nowFunc   func() time.Time
}

// NewDashboard 创建演示模式面板
func NewDashboard(annotator port.Annotator) *Dashboard {
	return &Dashboard{annotator: annotator, nowFunc: time.Now}
}

// projects 每次调用都构造新的副本，调用方可以随意修改
func (d *Dashboard) projects() []*domain.DerivedMetrics {
	samples := projectSamples()
	out := make([]*domain.DerivedMetrics, 0, len(samples))
	for _, s := range samples {
		m := s.metrics
		m.AIAnalysis = d.annotator.Analyze(m.Project, &m)
		out = append(out, &m)
	}
	return out
}

// Projects 固定的 5 个追踪项目
func (d *Dashboard) Projects(ctx context.Context) (*domain.ProjectsFeed, error) {
	projects := d.projects()
	return &domain.ProjectsFeed{
		Projects:    projects,
		Total:       len(projects),
		LastUpdated: d.nowFunc(),
		DemoMode:    true,
		Source:      domain.SourceDemo,
	}, nil
}

// Discoveries 固定的 2 个发现
func (d *Dashboard) Discoveries(ctx context.Context) (*domain.DiscoveriesFeed, error) {
	discoveries := discoverySamples()
	return &domain.DiscoveriesFeed{
		Discoveries: discoveries,
		Total:       len(discoveries),
		LastUpdated: d.nowFunc(),
		DemoMode:    true,
		Source:      domain.SourceDemo,
	}, nil
}

// Trending 追踪项目里的仓库
func (d *Dashboard) Trending(ctx context.Context) (*domain.TrendingFeed, error) {
	projects := d.projects()
	trending := make([]*domain.Repository, 0, trendingShown)
	for _, m := range projects[:min(len(projects), trendingShown)] {
		trending = append(trending, m.Project)
	}
	return &domain.TrendingFeed{
		Trending:    trending,
		Total:       len(trending),
		LastUpdated: d.nowFunc(),
		DemoMode:    true,
	}, nil
}

// Search 在演示数据里做关键词匹配；没有命中时返回全部演示项目
func (d *Dashboard) Search(ctx context.Context, filters domain.SearchFilters) (*domain.ProjectsFeed, error) {
	filters.Query = strings.TrimSpace(filters.Query)
	if filters.Query == "" {
		return nil, common.NewError(common.ErrCodeInvalidInput, "Search query is required")
	}
	if filters.Topics == nil {
		filters.Topics = []string{}
	}

	all := d.projects()
	var matched []*domain.DerivedMetrics
	for _, m := range all {
		if matches(m.Project, filters.Query) {
			matched = append(matched, m)
		}
	}
	if len(matched) == 0 {
		matched = all
	}
	if filters.Limit > 0 {
		matched = matched[:min(len(matched), filters.Limit)]
	}

	return &domain.ProjectsFeed{
		Projects:    matched,
		Total:       len(matched),
		LastUpdated: d.nowFunc(),
		DemoMode:    true,
		Source:      domain.SourceDemo,
		Query:       filters.Query,
		Filters:     &filters,
	}, nil
}

func matches(repo *domain.Repository, query string) bool {
	query = strings.ToLower(query)
	if strings.Contains(strings.ToLower(repo.FullName), query) ||
		strings.Contains(strings.ToLower(repo.Description), query) {
		return true
	}
	for _, topic := range repo.Topics {
		if strings.Contains(strings.ToLower(topic), query) {
			return true
		}
	}
	return false
}

// Analytics 演示项目的分析数据；不认识的仓库返回排名第一的演示项目
func (d *Dashboard) Analytics(ctx context.Context, owner, name string) (*domain.AnalyticsReport, error) {
	owner, name = strings.TrimSpace(owner), strings.TrimSpace(name)
	if owner == "" || name == "" {
		return nil, common.NewError(common.ErrCodeInvalidInput, "Owner and repo parameters are required")
	}

	samples := projectSamples()
	picked := samples[0]
	key := domain.CanonicalName(owner + "/" + name)
	for _, s := range samples {
		if domain.CanonicalName(s.metrics.Project.FullName) == key {
			picked = s
			break
		}
	}

	m := picked.metrics
	m.AIAnalysis = d.annotator.Analyze(m.Project, &m)
	return &domain.AnalyticsReport{
		Repository:        m.Project,
		ContributorsCount: m.ContributorsCount,
		ReleasesCount:     m.ReleaseFrequency,
		IssuesCount:       m.Project.OpenIssuesCount,
		Analytics: domain.ProjectAnalytics{
			ContributorGrowth:    min(float64(m.ContributorsCount)/10, 100),
			ReleaseFrequency:     m.ReleaseFrequency,
			IssueResolutionRate:  m.IssueCloseRate * 100,
			CommunityHealthScore: picked.healthScore,
		},
		ValueMetrics: &m,
		GeneratedAt:  d.nowFunc(),
		DemoMode:     true,
	}, nil
}
