package scorer

import (
	"math"
	"slices"
	"strings"
	"time"

	"github-value-tracker/internal/domain"
)

// 四个子项的权重，和为 1
const (
	WeightGrowth     = 0.30
	WeightMaturity   = 0.25
	WeightCommercial = 0.25
	WeightCommunity  = 0.20
)

const day = 24 * time.Hour

// businessLanguages 更容易商业化的语言
var businessLanguages = []string{"TypeScript", "JavaScript", "Python", "Go", "Java", "C#"}

// commercialKeywords 名称、描述、topic 里的商业关键词
var commercialKeywords = []string{
	"saas", "b2b", "enterprise", "commercial", "business", "revenue",
	"monetization", "platform", "dashboard", "analytics", "api",
	"workflow", "automation", "management", "crm", "cms",
}

// Breakdown 各子项得分 (已截断到 [0,100]) 和最终加权分
type Breakdown struct {
	Growth     float64 `json:"growth"`
	Maturity   float64 `json:"maturity"`
	Commercial float64 `json:"commercial"`
	Community  float64 `json:"community"`
	Total      int     `json:"total"`
}

// ValueScorer 价值评分器：纯函数，没有 I/O，没有随机性
type ValueScorer struct {
	nowFunc func() time.Time
}

// NewValueScorer 创建评分器
func NewValueScorer() *ValueScorer {
	return &ValueScorer{nowFunc: time.Now}
}

// NewValueScorerAt 固定“当前时间”，便于测试和复现
func NewValueScorerAt(now time.Time) *ValueScorer {
	return &ValueScorer{nowFunc: func() time.Time { return now }}
}

func (s *ValueScorer) now() time.Time {
	if s == nil || s.nowFunc == nil {
		return time.Now()
	}
	return s.nowFunc()
}

// Score 综合评分，结果一定在 [0,100]
func (s *ValueScorer) Score(repo *domain.Repository, partial domain.PartialMetrics) int {
	return s.Breakdown(repo, partial).Total
}

// Breakdown 计算四个子项并加权
func (s *ValueScorer) Breakdown(repo *domain.Repository, partial domain.PartialMetrics) Breakdown {
	if repo == nil {
		return Breakdown{}
	}
	now := s.now()

	b := Breakdown{
		Growth:     clamp(growthScore(repo, partial, now)),
		Maturity:   clamp(maturityScore(repo, now)),
		Commercial: clamp(commercialScore(repo)),
		Community:  clamp(communityScore(repo, partial)),
	}
	total := b.Growth*WeightGrowth +
		b.Maturity*WeightMaturity +
		b.Commercial*WeightCommercial +
		b.Community*WeightCommunity
	b.Total = int(math.Round(clamp(total)))
	return b
}

// growthScore 只读取 partial.StarsGrowth30d
func growthScore(repo *domain.Repository, partial domain.PartialMetrics, now time.Time) float64 {
	score := 0.0
	stars := float64(max(repo.StargazersCount, 1))

	if partial.StarsGrowth30d != nil {
		score += math.Min(float64(*partial.StarsGrowth30d)/stars*100, 40)
	}

	score += math.Min(float64(repo.ForksCount)/stars*200, 30)

	// 新项目增长空间更大
	age := now.Sub(repo.CreatedAt)
	switch {
	case age < 365*day:
		score += 30
	case age < 2*365*day:
		score += 15
	}
	return score
}

// maturityScore 不读取 partial
func maturityScore(repo *domain.Repository, now time.Time) float64 {
	score := 0.0
	if len([]rune(repo.Description)) > 20 {
		score += 20
	}
	if repo.Homepage != "" {
		score += 15
	}
	if repo.License != nil {
		score += 15
	}
	if len(repo.Topics) > 0 {
		score += 10
	}

	sincePush := now.Sub(repo.PushedAt)
	switch {
	case sincePush < 7*day:
		score += 25
	case sincePush < 30*day:
		score += 15
	case sincePush < 90*day:
		score += 10
	}

	if slices.Contains(businessLanguages, repo.LanguageName()) {
		score += 15
	}
	return score
}

// commercialScore 不读取 partial
func commercialScore(repo *domain.Repository) float64 {
	score := 0.0

	text := strings.ToLower(repo.Name + " " + repo.Description)
	matched := 0
	for _, kw := range commercialKeywords {
		if strings.Contains(text, kw) {
			matched++
		}
	}
	score += math.Min(float64(matched*10), 40)

	businessTopics := 0
	for _, topic := range repo.Topics {
		if containsKeyword(strings.ToLower(topic)) {
			businessTopics++
		}
	}
	score += math.Min(float64(businessTopics*15), 30)

	switch {
	case repo.StargazersCount > 10000:
		score += 30
	case repo.StargazersCount > 1000:
		score += 20
	case repo.StargazersCount > 100:
		score += 10
	}
	return score
}

// communityScore 读取 partial.ContributorsCount / IssueCloseRate / ReleaseFrequency
func communityScore(repo *domain.Repository, partial domain.PartialMetrics) float64 {
	score := 0.0

	if partial.ContributorsCount != nil {
		switch c := *partial.ContributorsCount; {
		case c > 50:
			score += 30
		case c > 10:
			score += 20
		case c > 3:
			score += 10
		}
	}

	if partial.IssueCloseRate != nil {
		score += *partial.IssueCloseRate * 25
	}

	watcherRatio := float64(repo.WatchersCount) / float64(max(repo.StargazersCount, 1))
	score += math.Min(watcherRatio*100, 20)

	switch open := repo.OpenIssuesCount; {
	case open > 0 && open < 100:
		score += 15
	case open >= 100:
		score += 5
	}

	if partial.ReleaseFrequency != nil {
		score += math.Min(float64(*partial.ReleaseFrequency)*10, 10)
	}
	return score
}

func containsKeyword(s string) bool {
	for _, kw := range commercialKeywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, 100)
}
