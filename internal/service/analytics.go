package service

import (
	"time"

	"github-value-tracker/internal/adapter/filter"
	"github-value-tracker/internal/domain"
)

// contributorGrowth 贡献者数的简化增长指标，上限 100
func contributorGrowth(contributors []*domain.Contributor) float64 {
	return min(float64(len(contributors))/10, 100)
}

// releasesWithinYear 统计最近一年 (按日历年回推) 内发布的版本
func releasesWithinYear(releases []*domain.Release, now time.Time) int {
	oneYearAgo := now.AddDate(-1, 0, 0)
	count := 0
	for _, r := range releases {
		if r == nil || r.PublishedAt.IsZero() {
			continue
		}
		if !r.PublishedAt.Before(oneYearAgo) {
			count++
		}
	}
	return count
}

// issueResolutionRate 已关闭 issue 的百分比；没有 issue 时视为 100
func issueResolutionRate(issues []*domain.Issue) float64 {
	if len(issues) == 0 {
		return 100
	}
	return float64(filter.CountByState(issues, "closed")) / float64(len(issues)) * 100
}

// communityHealthScore 社区健康评分 (0-100)
func communityHealthScore(repo *domain.Repository, contributors []*domain.Contributor, issues []*domain.Issue, now time.Time) int {
	score := 0

	// 活跃度
	if !repo.PushedAt.IsZero() {
		switch days := now.Sub(repo.PushedAt).Hours() / 24; {
		case days < 7:
			score += 25
		case days < 30:
			score += 15
		default:
			score += 5
		}
	}

	// 贡献者多样性
	score += min(len(contributors), 25)

	// 文档
	if repo.HasWiki {
		score += 10
	}
	if repo.Description != "" {
		score += 10
	}
	if repo.Homepage != "" {
		score += 10
	}

	// issue 管理
	switch rate := issueResolutionRate(issues); {
	case rate > 80:
		score += 20
	case rate > 60:
		score += 15
	default:
		score += 10
	}

	return min(score, 100)
}

// buildAnalytics 汇总 action=analytics 的社区指标
func buildAnalytics(repo *domain.Repository, contributors []*domain.Contributor, releases []*domain.Release, issues []*domain.Issue, now time.Time) domain.ProjectAnalytics {
	return domain.ProjectAnalytics{
		ContributorGrowth:    contributorGrowth(contributors),
		ReleaseFrequency:     releasesWithinYear(releases, now),
		IssueResolutionRate:  issueResolutionRate(issues),
		CommunityHealthScore: communityHealthScore(repo, contributors, issues, now),
	}
}
