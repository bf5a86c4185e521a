package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github-value-tracker/internal/domain"
	"github-value-tracker/internal/port"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var actions = []string{"projects", "discover", "trending", "search", "analytics"}

// runOptions run 子命令参数，和 HTTP 接口的 query 参数一一对应
type runOptions struct {
	asJSON   bool
	query    string
	language string
	minStars int
	topics   []string
	limit    int
	owner    string
	repo     string
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	ro := &runOptions{}

	cmd := &cobra.Command{
		Use:       "run <action>",
		Short:     "执行一次 action 并输出结果 (projects|discover|trending|search|analytics)",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: actions,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApplication(opts.cfg)
			if err != nil {
				return err
			}
			payload, err := runAction(cmd, app.dashboard, args[0], ro)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if ro.asJSON {
				return writeJSON(out, payload)
			}
			return renderTable(out, payload)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&ro.asJSON, "json", false, "以 JSON 输出")
	f.StringVarP(&ro.query, "query", "q", "", "搜索关键词 (search)")
	f.StringVar(&ro.language, "language", "", "语言过滤 (search)")
	f.IntVar(&ro.minStars, "min-stars", 0, "最少 star 数 (search)")
	f.StringSliceVar(&ro.topics, "topics", nil, "topic 过滤，逗号分隔 (search)")
	f.IntVar(&ro.limit, "limit", 0, "结果数量上限 (search，默认 50)")
	f.StringVar(&ro.owner, "owner", "", "仓库 owner (analytics)")
	f.StringVar(&ro.repo, "repo", "", "仓库名 (analytics)")
	return cmd
}

func runAction(cmd *cobra.Command, dashboard port.Dashboard, action string, ro *runOptions) (any, error) {
	ctx := cmd.Context()
	switch action {
	case "projects":
		return dashboard.Projects(ctx)
	case "discover":
		return dashboard.Discoveries(ctx)
	case "trending":
		return dashboard.Trending(ctx)
	case "search":
		topics := make([]string, 0, len(ro.topics))
		for _, t := range ro.topics {
			if t = strings.TrimSpace(t); t != "" {
				topics = append(topics, t)
			}
		}
		return dashboard.Search(ctx, domain.SearchFilters{
			Query:    ro.query,
			Language: ro.language,
			MinStars: ro.minStars,
			Topics:   topics,
			Limit:    ro.limit,
		})
	case "analytics":
		return dashboard.Analytics(ctx, ro.owner, ro.repo)
	}
	return nil, fmt.Errorf("未知的 action: %s", action)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderTable 按 payload 类型输出表格
func renderTable(w io.Writer, payload any) error {
	switch p := payload.(type) {
	case *domain.ProjectsFeed:
		if err := printProjects(w, p.Projects); err != nil {
			return err
		}
		return printFooter(w, p.Total, p.Source, p.DemoMode)
	case *domain.DiscoveriesFeed:
		if err := printDiscoveries(w, p.Discoveries); err != nil {
			return err
		}
		return printFooter(w, p.Total, p.Source, p.DemoMode)
	case *domain.TrendingFeed:
		if err := printTrending(w, p.Trending); err != nil {
			return err
		}
		return printFooter(w, p.Total, "", p.DemoMode)
	case *domain.AnalyticsReport:
		return printAnalytics(w, p)
	}
	return fmt.Errorf("无法渲染的结果类型 %T", payload)
}

func printFooter(w io.Writer, total int, source string, demoMode bool) error {
	line := fmt.Sprintf("共 %d 个", total)
	if source != "" {
		line += " | 来源: " + source
	}
	if demoMode {
		line += " | 🎭 演示数据"
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func language(repo *domain.Repository) string {
	if l := repo.LanguageName(); l != "" {
		return l
	}
	return "-"
}

func printProjects(w io.Writer, projects []*domain.DerivedMetrics) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Repository", "Score", "Stars", "Forks", "Contributors", "Commits/30d", "Language"})

	var data [][]string
	for i, m := range projects {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			m.Project.FullName,
			strconv.Itoa(m.ValueScore),
			strconv.Itoa(m.Project.StargazersCount),
			strconv.Itoa(m.Project.ForksCount),
			strconv.Itoa(m.ContributorsCount),
			strconv.Itoa(m.CommitFrequency),
			language(m.Project),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func printDiscoveries(w io.Writer, discoveries []*domain.DiscoveryEntry) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Repository", "Score", "Reason", "Stars Added", "Topics"})

	var data [][]string
	for _, d := range discoveries {
		starsAdded, topics := "-", "-"
		if g := d.GrowthIndicators; g != nil {
			starsAdded = strconv.Itoa(g.StarsAdded7d)
			if len(g.TrendingTopics) > 0 {
				topics = strings.Join(g.TrendingTopics, ",")
			}
		}
		data = append(data, []string{
			d.Project.Project.FullName,
			strconv.Itoa(d.Project.ValueScore),
			d.Reason,
			starsAdded,
			topics,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func printTrending(w io.Writer, repos []*domain.Repository) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Repository", "Stars", "Language", "Description"})

	var data [][]string
	for i, r := range repos {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			r.FullName,
			strconv.Itoa(r.StargazersCount),
			language(r),
			truncate(r.Description, 60),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func printAnalytics(w io.Writer, report *domain.AnalyticsReport) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})

	data := [][]string{
		{"Repository", report.Repository.FullName},
		{"Contributors", strconv.Itoa(report.ContributorsCount)},
		{"Releases", strconv.Itoa(report.ReleasesCount)},
		{"Issues", strconv.Itoa(report.IssuesCount)},
		{"Contributor growth", strconv.FormatFloat(report.Analytics.ContributorGrowth, 'f', 1, 64)},
		{"Releases (last year)", strconv.Itoa(report.Analytics.ReleaseFrequency)},
		{"Issue resolution %", strconv.FormatFloat(report.Analytics.IssueResolutionRate, 'f', 1, 64)},
		{"Community health", strconv.Itoa(report.Analytics.CommunityHealthScore)},
	}
	if report.ValueMetrics != nil {
		data = append(data, []string{"Value score", strconv.Itoa(report.ValueMetrics.ValueScore)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
