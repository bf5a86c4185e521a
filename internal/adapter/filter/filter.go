package filter

import (
	"slices"
	"time"

	"github-value-tracker/internal/domain"
)

// RepoFilter 去重、阈值过滤、排序以及时间窗口计数
type RepoFilter struct {
	nowFunc func() time.Time
}

// NewRepoFilter 创建新的过滤器实例
func NewRepoFilter() *RepoFilter {
	return &RepoFilter{nowFunc: time.Now}
}

// WithNow 替换时钟，便于测试注入当前时间
func (f *RepoFilter) WithNow(now func() time.Time) *RepoFilter {
	f.nowFunc = now
	return f
}

func (f *RepoFilter) now() time.Time {
	if f != nil && f.nowFunc != nil {
		return f.nowFunc()
	}
	return time.Now()
}

// DedupeByFullName 按规范化的 full_name 去重，保留第一次出现的记录
func DedupeByFullName(items []*domain.DerivedMetrics) []*domain.DerivedMetrics {
	seen := make(map[string]struct{}, len(items))
	out := make([]*domain.DerivedMetrics, 0, len(items))
	for _, m := range items {
		if m == nil || m.Project == nil {
			continue
		}
		key := domain.CanonicalName(m.Project.FullName)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

// FilterByMinScore 只保留 value_score 严格大于 threshold 的记录，保持原顺序
func FilterByMinScore(items []*domain.DerivedMetrics, threshold int) []*domain.DerivedMetrics {
	var filtered []*domain.DerivedMetrics
	for _, m := range items {
		if m != nil && m.ValueScore > threshold {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// SortByValueScore 按 value_score 降序稳定排序 (原地)
func SortByValueScore(items []*domain.DerivedMetrics) {
	slices.SortStableFunc(items, func(a, b *domain.DerivedMetrics) int {
		return b.ValueScore - a.ValueScore
	})
}

// CountCommitsSince 统计窗口内的提交；没有日期的提交视为窗口内 (接口已按 since 过滤)
func (f *RepoFilter) CountCommitsSince(commits []*domain.Commit, window time.Duration) int {
	since := f.now().Add(-window)
	count := 0
	for _, c := range commits {
		if c == nil {
			continue
		}
		if c.Date.IsZero() || !c.Date.Before(since) {
			count++
		}
	}
	return count
}

// CountReleasesSince 统计窗口内发布的版本；未发布 (草稿) 的不算
func (f *RepoFilter) CountReleasesSince(releases []*domain.Release, window time.Duration) int {
	since := f.now().Add(-window)
	count := 0
	for _, r := range releases {
		if r == nil || r.PublishedAt.IsZero() {
			continue
		}
		if !r.PublishedAt.Before(since) {
			count++
		}
	}
	return count
}

// CountByState 统计指定状态的 issue 数
func CountByState(issues []*domain.Issue, state string) int {
	count := 0
	for _, issue := range issues {
		if issue != nil && issue.State == state {
			count++
		}
	}
	return count
}
