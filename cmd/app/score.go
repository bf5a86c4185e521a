package main

import (
	"fmt"
	"io"
	"strconv"

	"github-value-tracker/internal/adapter/scorer"
	"github-value-tracker/internal/common"
	"github-value-tracker/internal/domain"
	"github-value-tracker/internal/service"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score <owner/name>",
		Short: "抓取单个仓库并计算完整的价值指标",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, ok := domain.SplitFullName(args[0])
			if !ok {
				return common.NewError(common.ErrCodeInvalidInput, fmt.Sprintf("仓库名应为 owner/name: %q", args[0]))
			}

			// 没有 token 时也允许匿名访问单个仓库
			cfg := opts.cfg
			logger := common.NewLogger(cfg.Log.Level, cfg.Log.Format)
			fetcher, err := newFetcher(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			repo, err := fetcher.GetRepository(ctx, owner, name)
			if err != nil {
				return common.WrapError(common.ErrCodeNotFound, "获取仓库失败", err)
			}

			valueScorer := scorer.NewValueScorer()
			metrics := service.NewMetricsService(fetcher, valueScorer, nil, logger).ComputeMetrics(ctx, repo)
			return printScore(cmd.OutOrStdout(), metrics, valueScorer.Breakdown(repo, metrics.Partial()))
		},
	}
}

func printScore(w io.Writer, m *domain.DerivedMetrics, b scorer.Breakdown) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	data := [][]string{
		{"Repository", m.Project.FullName},
		{"Stars", strconv.Itoa(m.Project.StargazersCount)},
		{"Forks", strconv.Itoa(m.Project.ForksCount)},
		{"Fork/star ratio", f(m.ForkStarRatio)},
		{"Commits (30d)", strconv.Itoa(m.CommitFrequency)},
		{"Contributors", strconv.Itoa(m.ContributorsCount)},
		{"Releases (365d)", strconv.Itoa(m.ReleaseFrequency)},
		{"Issue close rate", f(m.IssueCloseRate)},
		{"Growth", f(b.Growth)},
		{"Maturity", f(b.Maturity)},
		{"Commercial", f(b.Commercial)},
		{"Community", f(b.Community)},
		{"Value score", strconv.Itoa(m.ValueScore)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
