package domain

import "time"

// 数据来源标签
const (
	SourceTrendEnhanced  = "trend_enhanced"
	SourceFallback       = "fallback"
	SourceTrendDiscovery = "trend_discovery"
	SourceSearchFallback = "search_fallback"
	SourceDemo           = "demo"
)

// ProjectsFeed 追踪项目列表 (action=projects / search)
type ProjectsFeed struct {
	Projects    []*DerivedMetrics `json:"projects"`
	Total       int               `json:"total"`
	LastUpdated time.Time         `json:"last_updated"`
	DemoMode    bool              `json:"demo_mode,omitempty"`
	Source      string            `json:"source,omitempty"`
	Query       string            `json:"query,omitempty"`
	Filters     *SearchFilters    `json:"filters,omitempty"`
}

// DiscoveriesFeed 新项目发现列表 (action=discover)
type DiscoveriesFeed struct {
	Discoveries []*DiscoveryEntry `json:"discoveries"`
	Total       int               `json:"total"`
	LastUpdated time.Time         `json:"last_updated"`
	DemoMode    bool              `json:"demo_mode,omitempty"`
	Source      string            `json:"source,omitempty"`
}

// TrendingFeed 趋势仓库列表 (action=trending)
type TrendingFeed struct {
	Trending    []*Repository `json:"trending"`
	Total       int           `json:"total"`
	LastUpdated time.Time     `json:"last_updated"`
	DemoMode    bool          `json:"demo_mode,omitempty"`
}

// SearchFilters 搜索参数
type SearchFilters struct {
	Query      string   `json:"-"`
	Language   string   `json:"language,omitempty"`
	MinStars   int      `json:"minStars"`
	Topics     []string `json:"topics"`
	MaxAgeDays int      `json:"-"`
	Limit      int      `json:"-"`
}

// ProjectAnalytics 单个项目的社区分析数据
type ProjectAnalytics struct {
	ContributorGrowth    float64 `json:"contributor_growth"`
	ReleaseFrequency     int     `json:"release_frequency"`
	IssueResolutionRate  float64 `json:"issue_resolution_rate"`
	CommunityHealthScore int     `json:"community_health_score"`
}

// AnalyticsReport action=analytics 的返回
type AnalyticsReport struct {
	Repository        *Repository      `json:"repository"`
	ContributorsCount int              `json:"contributors_count"`
	ReleasesCount     int              `json:"releases_count"`
	IssuesCount       int              `json:"issues_count"`
	Analytics         ProjectAnalytics `json:"analytics"`
	ValueMetrics      *DerivedMetrics  `json:"value_metrics"`
	GeneratedAt       time.Time        `json:"generated_at"`
	DemoMode          bool             `json:"demo_mode,omitempty"`
}

// Contributor 贡献者
type Contributor struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
}

// Commit 提交
type Commit struct {
	SHA        string    `json:"sha"`
	AuthorName string    `json:"author_name"`
	Date       time.Time `json:"date"` // 提交日期 (committer)，缺失时退回作者日期
}

// Release 发布
type Release struct {
	TagName     string    `json:"tag_name"`
	PublishedAt time.Time `json:"published_at"`
}

// Issue issue (GitHub 的 issue 列表里也包含 PR)
type Issue struct {
	Number int    `json:"number"`
	State  string `json:"state"`
}

// 事件类型
const (
	EventWatch = "WatchEvent"
	EventFork  = "ForkEvent"
	EventPush  = "PushEvent"
)

// RepoEvent 仓库事件
type RepoEvent struct {
	Type      string    `json:"type"`
	Actor     string    `json:"actor"`
	RepoName  string    `json:"repo_name"`
	CreatedAt time.Time `json:"created_at"`
}
