package github

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github-value-tracker/internal/common"
	"github-value-tracker/internal/domain"
	"github-value-tracker/internal/port"

	"github.com/sirupsen/logrus"
)

const (
	trendPerPage   = 30
	simplePerPage  = 20
	defaultSearchN = 50
	searchMaxAge   = 365
	simpleWindow   = 7
	dateLayout     = "2006-01-02"
	sortByStars    = "stars"
)

// DefaultEventLookups 每次趋势扫描默认补充事件信号的仓库数
const DefaultEventLookups = 30

// Trender 实现了 port.Trender 接口
// 用一组按时间、语言、topic 划分的搜索近似“最近 N 天的热门仓库”，不是真正的事件流
type Trender struct {
	fetcher      port.RepoFetcher
	logger       logrus.FieldLogger
	eventLookups int
	nowFunc      func() time.Time
}

// NewTrender eventLookups 为每次扫描最多补充事件信号的仓库数，0 表示只用搜索信号
func NewTrender(fetcher port.RepoFetcher, logger logrus.FieldLogger, eventLookups int) *Trender {
	return &Trender{
		fetcher:      fetcher,
		logger:       logger,
		eventLookups: max(eventLookups, 0),
		nowFunc:      time.Now,
	}
}

// trendQueries 趋势扫描用的固定查询组
func trendQueries(since time.Time) []string {
	date := since.Format(dateLayout)
	return []string{
		fmt.Sprintf("created:>%s stars:>10", date),
		fmt.Sprintf("pushed:>%s stars:>50", date),
		fmt.Sprintf("language:typescript stars:>20 pushed:>%s", date),
		fmt.Sprintf("language:javascript stars:>20 pushed:>%s", date),
		fmt.Sprintf("language:python stars:>20 pushed:>%s", date),
		fmt.Sprintf("topic:ai stars:>10 pushed:>%s", date),
		fmt.Sprintf("topic:automation stars:>10 pushed:>%s", date),
		fmt.Sprintf("topic:saas stars:>10 pushed:>%s", date),
		fmt.Sprintf("topic:productivity stars:>10 pushed:>%s", date),
	}
}

// simpleQueries 简化版趋势搜索的四条查询
func simpleQueries(since time.Time) []string {
	date := since.Format(dateLayout)
	return []string{
		fmt.Sprintf("created:>%s stars:>10", date),
		fmt.Sprintf("pushed:>%s stars:>50", date),
		"SaaS OR B2B OR enterprise language:typescript stars:>100",
		"revenue OR monetization OR commercial stars:>50",
	}
}

// Trending 趋势扫描
// 1. 跑完整组查询，单条失败只记日志；全部失败才返回错误
// 2. 按仓库 id 合并 (先到先得)，每次命中记一次 watch 信号
// 3. 对满足 minStars 的候选补充仓库事件信号
// 4. 按估算的新增 star 稳定排序并截断
func (t *Trender) Trending(ctx context.Context, days, minStars, limit int) ([]*domain.TrendingRepo, error) {
	since := t.nowFunc().AddDate(0, 0, -days)
	queries := trendQueries(since)

	var (
		tallies []*eventTally
		index   = make(map[int64]*eventTally)
		failed  int
		lastErr error
	)
	for _, q := range queries {
		hits, err := t.fetcher.SearchRepositories(ctx, q, sortByStars, trendPerPage)
		if err != nil {
			failed++
			lastErr = err
			t.logger.WithFields(logrus.Fields{"query": q, "error": err}).Warn("⚠️ 趋势查询失败，跳过")
			continue
		}
		for _, repo := range hits {
			tally, ok := index[repo.ID]
			if !ok {
				tally = newEventTally(repo)
				index[repo.ID] = tally
				tallies = append(tallies, tally)
			}
			accumulateSearchHit(tally, repo)
		}
	}
	if failed == len(queries) {
		return nil, common.WrapError(common.ErrCodeUpstream, "趋势查询全部失败", lastErr)
	}

	candidates := make([]*eventTally, 0, len(tallies))
	for _, tally := range tallies {
		if tally.repo.StargazersCount >= minStars {
			candidates = append(candidates, tally)
		}
	}

	for i, tally := range candidates {
		if i >= t.eventLookups {
			break
		}
		owner, name, ok := tally.repo.OwnerAndName()
		if !ok {
			continue
		}
		events, err := t.fetcher.GetRepositoryEvents(ctx, owner, name)
		if err != nil {
			t.logger.WithFields(logrus.Fields{"repo": tally.repo.FullName, "error": err}).Warn("⚠️ 获取仓库事件失败，只使用搜索信号")
			continue
		}
		accumulateEvents(tally, events, since)
	}

	trending := finalizeTallies(candidates)
	slices.SortStableFunc(trending, func(a, b *domain.TrendingRepo) int {
		return b.StarsAdded - a.StarsAdded
	})
	if limit >= 0 && len(trending) > limit {
		trending = trending[:limit]
	}

	t.logger.WithFields(logrus.Fields{
		"days":       days,
		"queries":    len(queries),
		"failed":     failed,
		"candidates": len(trending),
	}).Info("📈 趋势扫描完成")
	return trending, nil
}

// Simple 四条固定查询，按 id 去重；全部失败时返回错误
func (t *Trender) Simple(ctx context.Context) ([]*domain.Repository, error) {
	queries := simpleQueries(t.nowFunc().AddDate(0, 0, -simpleWindow))

	var (
		all     []*domain.Repository
		failed  int
		lastErr error
	)
	for _, q := range queries {
		repos, err := t.fetcher.SearchRepositories(ctx, q, sortByStars, simplePerPage)
		if err != nil {
			failed++
			lastErr = err
			t.logger.WithFields(logrus.Fields{"query": q, "error": err}).Warn("⚠️ 搜索失败，跳过")
			continue
		}
		all = append(all, repos...)
	}
	if failed == len(queries) {
		return nil, common.WrapError(common.ErrCodeUpstream, "趋势搜索全部失败", lastErr)
	}
	return dedupeByID(all), nil
}

// Search 按过滤条件拼装查询，按 star 降序
func (t *Trender) Search(ctx context.Context, filters domain.SearchFilters) ([]*domain.Repository, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultSearchN
	}
	query := BuildSearchQuery(filters, t.nowFunc())

	repos, err := t.fetcher.SearchRepositories(ctx, query, sortByStars, limit)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeGitHubAPI, "搜索仓库失败", err)
	}
	return repos, nil
}

// BuildSearchQuery 自由文本 + language / stars / created / topic 限定符
func BuildSearchQuery(filters domain.SearchFilters, now time.Time) string {
	parts := []string{strings.TrimSpace(filters.Query)}
	if filters.Language != "" {
		parts = append(parts, "language:"+filters.Language)
	}
	if filters.MinStars > 0 {
		parts = append(parts, fmt.Sprintf("stars:>%d", filters.MinStars))
	}
	maxAge := filters.MaxAgeDays
	if maxAge <= 0 {
		maxAge = searchMaxAge
	}
	parts = append(parts, "created:>"+now.AddDate(0, 0, -maxAge).Format(dateLayout))
	for _, topic := range filters.Topics {
		if topic = strings.TrimSpace(topic); topic != "" {
			parts = append(parts, "topic:"+topic)
		}
	}
	return strings.Join(parts, " ")
}

func dedupeByID(repos []*domain.Repository) []*domain.Repository {
	seen := make(map[int64]struct{}, len(repos))
	out := make([]*domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if _, ok := seen[repo.ID]; ok {
			continue
		}
		seen[repo.ID] = struct{}{}
		out = append(out, repo)
	}
	return out
}
