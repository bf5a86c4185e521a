package demo

import (
	"context"
	"testing"
	"time"

	"github-value-tracker/internal/adapter/analyzer"
	"github-value-tracker/internal/common"
	"github-value-tracker/internal/domain"
	"github-value-tracker/internal/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demoNow = time.Date(2025, 9, 3, 12, 0, 0, 0, time.UTC)

var _ port.Dashboard = (*Dashboard)(nil)

func newTestDashboard() *Dashboard {
	d := NewDashboard(analyzer.NewAnnotator())
	d.nowFunc = func() time.Time { return demoNow }
	return d
}

func TestDashboard_Projects(t *testing.T) {
	feed, err := newTestDashboard().Projects(context.Background())

	require.NoError(t, err)
	assert.True(t, feed.DemoMode)
	assert.Equal(t, domain.SourceDemo, feed.Source)
	assert.Equal(t, 5, feed.Total)
	assert.Equal(t, demoNow, feed.LastUpdated)
	require.Len(t, feed.Projects, 5)

	wantScores := []int{92, 89, 86, 82, 79}
	for i, m := range feed.Projects {
		assert.Equal(t, wantScores[i], m.ValueScore)
		assert.NotNil(t, m.AIAnalysis, m.Project.FullName)
	}
	assert.Equal(t, "vercel/next.js", feed.Projects[0].Project.FullName)
	assert.Contains(t, feed.Projects[4].AIAnalysis.MarketProblem.En, "Airtable")
}

func TestDashboard_ProjectsAreFreshCopies(t *testing.T) {
	d := newTestDashboard()
	first, err := d.Projects(context.Background())
	require.NoError(t, err)
	first.Projects[0].ValueScore = 0

	second, err := d.Projects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 92, second.Projects[0].ValueScore)
}

func TestDashboard_Discoveries(t *testing.T) {
	feed, err := newTestDashboard().Discoveries(context.Background())

	require.NoError(t, err)
	assert.True(t, feed.DemoMode)
	assert.Equal(t, 2, feed.Total)
	require.Len(t, feed.Discoveries, 2)
	assert.Equal(t, "coollabsio/coolify", feed.Discoveries[0].Project.Project.FullName)
	assert.Equal(t, 75, feed.Discoveries[0].Project.ValueScore)
	assert.Equal(t, 68, feed.Discoveries[1].Project.ValueScore)
	for _, d := range feed.Discoveries {
		assert.Greater(t, d.Project.ValueScore, 60)
		assert.Equal(t, domain.ReasonHighValueDiscovery, d.Reason)
	}
}

func TestDashboard_Trending(t *testing.T) {
	feed, err := newTestDashboard().Trending(context.Background())

	require.NoError(t, err)
	assert.True(t, feed.DemoMode)
	assert.Equal(t, 5, feed.Total)
	require.Len(t, feed.Trending, 5)
	assert.Equal(t, "supabase/supabase", feed.Trending[1].FullName)
}

func TestDashboard_Search(t *testing.T) {
	tests := []struct {
		name    string
		filters domain.SearchFilters
		want    []string
	}{
		{
			name:    "按 topic 命中",
			filters: domain.SearchFilters{Query: "database"},
			want:    []string{"supabase/supabase", "nocodb/nocodb"},
		},
		{
			name:    "按描述命中且大小写不敏感",
			filters: domain.SearchFilters{Query: "HEADLESS"},
			want:    []string{"strapi/strapi"},
		},
		{
			name:    "没有命中时返回全部",
			filters: domain.SearchFilters{Query: "kubernetes"},
			want:    []string{"vercel/next.js", "supabase/supabase", "PostHog/posthog", "strapi/strapi", "nocodb/nocodb"},
		},
		{
			name:    "limit 截断",
			filters: domain.SearchFilters{Query: "saas", Limit: 2},
			want:    []string{"supabase/supabase", "PostHog/posthog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed, err := newTestDashboard().Search(context.Background(), tt.filters)

			require.NoError(t, err)
			assert.True(t, feed.DemoMode)
			var got []string
			for _, m := range feed.Projects {
				got = append(got, m.Project.FullName)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), feed.Total)
			assert.Equal(t, tt.filters.Query, feed.Query)
			require.NotNil(t, feed.Filters)
			assert.NotNil(t, feed.Filters.Topics)
		})
	}
}

func TestDashboard_Search_RequiresQuery(t *testing.T) {
	feed, err := newTestDashboard().Search(context.Background(), domain.SearchFilters{Query: " "})

	assert.Nil(t, feed)
	require.Error(t, err)
	assert.Equal(t, common.ErrCodeInvalidInput, common.CodeOf(err))
}

func TestDashboard_Analytics(t *testing.T) {
	d := newTestDashboard()

	report, err := d.Analytics(context.Background(), "posthog", "PostHog")
	require.NoError(t, err)
	assert.True(t, report.DemoMode)
	assert.Equal(t, "PostHog/posthog", report.Repository.FullName)
	assert.Equal(t, 89, report.ContributorsCount)
	assert.InDelta(t, 8.9, report.Analytics.ContributorGrowth, 1e-9)
	assert.InDelta(t, 92.0, report.Analytics.IssueResolutionRate, 1e-9)
	assert.Equal(t, 90, report.Analytics.CommunityHealthScore)
	require.NotNil(t, report.ValueMetrics)
	assert.Equal(t, 86, report.ValueMetrics.ValueScore)
	assert.NotNil(t, report.ValueMetrics.AIAnalysis)
	assert.Equal(t, demoNow, report.GeneratedAt)

	// 不认识的仓库也返回非空数据
	report, err = d.Analytics(context.Background(), "someone", "unknown")
	require.NoError(t, err)
	assert.Equal(t, "vercel/next.js", report.Repository.FullName)
	assert.Equal(t, 100.0, report.Analytics.ContributorGrowth)
}

func TestDashboard_Analytics_RequiresOwnerAndRepo(t *testing.T) {
	for _, args := range [][2]string{{"", "posthog"}, {"PostHog", ""}, {"", ""}} {
		report, err := newTestDashboard().Analytics(context.Background(), args[0], args[1])
		assert.Nil(t, report)
		require.Error(t, err)
		assert.Equal(t, common.ErrCodeInvalidInput, common.CodeOf(err))
	}
}
