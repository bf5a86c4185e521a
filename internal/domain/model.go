package domain

import (
	"strings"
	"time"
)

// License 仓库许可证 (GitHub license 对象的子集)
type License struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Repository 代表某一时刻抓取到的仓库快照，抓取后不再修改
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"` // owner/name，一次运行内的唯一键
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	WatchersCount   int       `json:"watchers_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Language        *string   `json:"language"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	PushedAt        time.Time `json:"pushed_at"`
	Homepage        string    `json:"homepage"`
	Topics          []string  `json:"topics"`
	License         *License  `json:"license"`
	OwnerLogin      string    `json:"owner_login"`
	HasWiki         bool      `json:"has_wiki"`
}

// OwnerAndName 拆分 full_name
func (r *Repository) OwnerAndName() (string, string, bool) {
	return SplitFullName(r.FullName)
}

// LanguageName 返回主语言，没有时返回空字符串
func (r *Repository) LanguageName() string {
	if r.Language == nil {
		return ""
	}
	return *r.Language
}

// SplitFullName 把 "owner/name" 拆成两段
func SplitFullName(fullName string) (string, string, bool) {
	owner, name, ok := strings.Cut(strings.TrimSpace(fullName), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return owner, name, true
}

// CanonicalName 去重用的规范化键，GitHub 的 owner/name 大小写不敏感
func CanonicalName(fullName string) string {
	return strings.ToLower(strings.TrimSpace(fullName))
}

// UniqueTopics 去重 topic，保留首次出现的顺序
func UniqueTopics(topics []string) []string {
	seen := make(map[string]struct{}, len(topics))
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// PartialMetrics 是评分器的输入，nil 字段表示“没有观测到”，对应的子项直接跳过
type PartialMetrics struct {
	StarsGrowth30d    *int
	ContributorsCount *int
	IssueCloseRate    *float64
	ReleaseFrequency  *int
}

// DerivedMetrics 由一个 Repository 加上辅助信号计算得出
type DerivedMetrics struct {
	Project           *Repository `json:"project"`
	StarsGrowth7d     int         `json:"stars_growth_7d"`
	StarsGrowth30d    int         `json:"stars_growth_30d"`
	ForkStarRatio     float64     `json:"fork_star_ratio"`
	CommitFrequency   int         `json:"commit_frequency"`
	ContributorsCount int         `json:"contributors_count"`
	ReleaseFrequency  int         `json:"release_frequency"`
	IssueCloseRate    float64     `json:"issue_close_rate"`
	ValueScore        int         `json:"value_score"`
	LastUpdated       time.Time   `json:"last_updated"`
	AIAnalysis        *Analysis   `json:"ai_analysis,omitempty"`
}

// Partial 把已经算好的指标转成评分器输入
func (m *DerivedMetrics) Partial() PartialMetrics {
	growth := m.StarsGrowth30d
	contributors := m.ContributorsCount
	closeRate := m.IssueCloseRate
	releases := m.ReleaseFrequency
	return PartialMetrics{
		StarsGrowth30d:    &growth,
		ContributorsCount: &contributors,
		IssueCloseRate:    &closeRate,
		ReleaseFrequency:  &releases,
	}
}

// ForkStarRatio forks / max(stars,1)
func ForkStarRatio(forks, stars int) float64 {
	return float64(forks) / float64(max(stars, 1))
}

// IssueCloseRate closed / max(open+closed,1)，结果落在 [0,1]
func IssueCloseRate(open, closed int) float64 {
	open, closed = max(open, 0), max(closed, 0)
	return float64(closed) / float64(max(open+closed, 1))
}

// DifficultyLevel 变现难度
type DifficultyLevel string

const (
	DifficultyLow    DifficultyLevel = "low"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHigh   DifficultyLevel = "high"
)

// Bilingual 中英文文案对
type Bilingual struct {
	En string `json:"en"`
	Zh string `json:"zh"`
}

// BilingualList 中英文列表对
type BilingualList struct {
	En []string `json:"en"`
	Zh []string `json:"zh"`
}

// RevenueGeneration 变现分析
type RevenueGeneration struct {
	Level      DifficultyLevel `json:"level"`
	Pathways   BilingualList   `json:"pathways"`
	Challenges Bilingual       `json:"challenges"`
}

// Analysis 模板化的项目分析，只用于展示，绝不参与评分
type Analysis struct {
	MarketProblem      Bilingual         `json:"marketProblem"`
	UserCatalyst       Bilingual         `json:"userCatalyst"`
	DeveloperRetention Bilingual         `json:"developerRetention"`
	RevenueGeneration  RevenueGeneration `json:"revenueGeneration"`
	CompetitiveMoat    *Bilingual        `json:"competitiveMoat,omitempty"`
	GlobalReadiness    *Bilingual        `json:"globalReadiness,omitempty"`
}

// 发现原因
const (
	ReasonViralGrowth        = "viral_growth"
	ReasonHighValueDiscovery = "high_value_discovery"
)

// GrowthIndicators 趋势扫描得到的增长信号
type GrowthIndicators struct {
	StarsAdded7d       int      `json:"stars_added_7d"`
	UniqueContributors int      `json:"unique_contributors"`
	TrendingTopics     []string `json:"trending_topics"`
}

// DiscoveryEntry 发现流中的一条记录，每次请求重新计算
type DiscoveryEntry struct {
	Project          *DerivedMetrics   `json:"project"`
	Reason           string            `json:"reason"`
	DiscoveredAt     time.Time         `json:"discovered_at"`
	GrowthIndicators *GrowthIndicators `json:"growth_indicators,omitempty"`
}

// TrendingRepo 是趋势近似的输出：候选仓库加上启发式的事件统计
type TrendingRepo struct {
	Repo               *Repository `json:"repo"`
	StarsAdded         int         `json:"stars_added"`
	ForksAdded         int         `json:"forks_added"`
	TotalEvents        int         `json:"total_events"`
	UniqueContributors int         `json:"unique_contributors"`
	Languages          []string    `json:"languages"`
	Topics             []string    `json:"topics"`
}
