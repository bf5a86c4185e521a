package demo

import (
	"time"

	"github-value-tracker/internal/domain"
)

func at(year int, month time.Month, day, hour, minute, sec int) time.Time {
	return time.Date(year, month, day, hour, minute, sec, 0, time.UTC)
}

func lang(s string) *string { return &s }

// sample 演示数据的一条记录，附带分析页需要的固定社区指标
type sample struct {
	metrics     domain.DerivedMetrics
	healthScore int
}

// projectSamples 演示模式的追踪项目，按 value_score 降序
func projectSamples() []sample {
	return []sample{
		{
			metrics: domain.DerivedMetrics{
				Project: &domain.Repository{
					ID:              1,
					Name:            "next.js",
					FullName:        "vercel/next.js",
					Description:     "The React Framework – created and maintained by @vercel.",
					HTMLURL:         "https://github.com/vercel/next.js",
					StargazersCount: 125000,
					ForksCount:      26800,
					OpenIssuesCount: 2500,
					WatchersCount:   125000,
					Language:        lang("TypeScript"),
					CreatedAt:       at(2016, time.October, 5, 0, 12, 48),
					UpdatedAt:       at(2025, time.September, 3, 10, 0, 0),
					PushedAt:        at(2025, time.September, 3, 9, 30, 0),
					Homepage:        "https://nextjs.org",
					Topics:          []string{"react", "framework", "typescript", "vercel", "web"},
					License:         &domain.License{Key: "mit", Name: "MIT License"},
					OwnerLogin:      "vercel",
					HasWiki:         true,
				},
				StarsGrowth7d:     450,
				StarsGrowth30d:    2100,
				ForkStarRatio:     0.214,
				CommitFrequency:   45,
				ContributorsCount: 1250,
				ReleaseFrequency:  12,
				IssueCloseRate:    0.85,
				ValueScore:        92,
				LastUpdated:       at(2025, time.September, 3, 10, 0, 0),
			},
			healthScore: 100,
		},
		{
			metrics: domain.DerivedMetrics{
				Project: &domain.Repository{
					ID:              2,
					Name:            "supabase",
					FullName:        "supabase/supabase",
					Description:     "The open source Firebase alternative.",
					HTMLURL:         "https://github.com/supabase/supabase",
					StargazersCount: 72000,
					ForksCount:      6800,
					OpenIssuesCount: 450,
					WatchersCount:   72000,
					Language:        lang("TypeScript"),
					CreatedAt:       at(2020, time.January, 8, 13, 28, 56),
					UpdatedAt:       at(2025, time.September, 3, 9, 45, 0),
					PushedAt:        at(2025, time.September, 3, 8, 15, 0),
					Homepage:        "https://supabase.com",
					Topics:          []string{"firebase-alternative", "database", "realtime", "postgres", "saas"},
					License:         &domain.License{Key: "apache-2.0", Name: "Apache License 2.0"},
					OwnerLogin:      "supabase",
				},
				StarsGrowth7d:     320,
				StarsGrowth30d:    1800,
				ForkStarRatio:     0.094,
				CommitFrequency:   78,
				ContributorsCount: 380,
				ReleaseFrequency:  18,
				IssueCloseRate:    0.78,
				ValueScore:        89,
				LastUpdated:       at(2025, time.September, 3, 9, 45, 0),
			},
			healthScore: 85,
		},
		{
			metrics: domain.DerivedMetrics{
				Project: &domain.Repository{
					ID:              3,
					Name:            "posthog",
					FullName:        "PostHog/posthog",
					Description:     "🦔 PostHog provides open-source product analytics, session recording, feature flagging and A/B testing.",
					HTMLURL:         "https://github.com/PostHog/posthog",
					StargazersCount: 21000,
					ForksCount:      1200,
					OpenIssuesCount: 180,
					WatchersCount:   21000,
					Language:        lang("Python"),
					CreatedAt:       at(2020, time.January, 23, 15, 7, 47),
					UpdatedAt:       at(2025, time.September, 3, 11, 20, 0),
					PushedAt:        at(2025, time.September, 3, 11, 0, 0),
					Homepage:        "https://posthog.com",
					Topics:          []string{"analytics", "product-analytics", "business", "saas", "open-source"},
					License:         &domain.License{Key: "mit", Name: "MIT License"},
					OwnerLogin:      "PostHog",
				},
				StarsGrowth7d:     180,
				StarsGrowth30d:    900,
				ForkStarRatio:     0.057,
				CommitFrequency:   120,
				ContributorsCount: 89,
				ReleaseFrequency:  24,
				IssueCloseRate:    0.92,
				ValueScore:        86,
				LastUpdated:       at(2025, time.September, 3, 11, 20, 0),
			},
			healthScore: 90,
		},
		{
			metrics: domain.DerivedMetrics{
				Project: &domain.Repository{
					ID:              4,
					Name:            "strapi",
					FullName:        "strapi/strapi",
					Description:     "🚀 Strapi is the leading open-source headless CMS. Its 100% JavaScript/TypeScript.",
					HTMLURL:         "https://github.com/strapi/strapi",
					StargazersCount: 63000,
					ForksCount:      7900,
					OpenIssuesCount: 650,
					WatchersCount:   63000,
					Language:        lang("JavaScript"),
					CreatedAt:       at(2015, time.October, 13, 19, 50, 31),
					UpdatedAt:       at(2025, time.September, 3, 8, 30, 0),
					PushedAt:        at(2025, time.September, 2, 16, 45, 0),
					Homepage:        "https://strapi.io",
					Topics:          []string{"cms", "headless-cms", "api", "nodejs", "commercial"},
					License:         &domain.License{Key: "mit", Name: "MIT License"},
					OwnerLogin:      "strapi",
				},
				StarsGrowth7d:     220,
				StarsGrowth30d:    1200,
				ForkStarRatio:     0.125,
				CommitFrequency:   35,
				ContributorsCount: 425,
				ReleaseFrequency:  8,
				IssueCloseRate:    0.73,
				ValueScore:        82,
				LastUpdated:       at(2025, time.September, 3, 8, 30, 0),
			},
			healthScore: 80,
		},
		{
			metrics: domain.DerivedMetrics{
				Project: &domain.Repository{
					ID:              5,
					Name:            "nocodb",
					FullName:        "nocodb/nocodb",
					Description:     "🔥 🔥 🔥 Open Source Airtable Alternative",
					HTMLURL:         "https://github.com/nocodb/nocodb",
					StargazersCount: 48000,
					ForksCount:      3200,
					OpenIssuesCount: 420,
					WatchersCount:   48000,
					Language:        lang("TypeScript"),
					CreatedAt:       at(2021, time.March, 7, 18, 16, 48),
					UpdatedAt:       at(2025, time.September, 3, 7, 15, 0),
					PushedAt:        at(2025, time.September, 3, 6, 20, 0),
					Homepage:        "https://nocodb.com",
					Topics:          []string{"airtable-alternative", "database", "no-code", "saas", "enterprise"},
					License:         &domain.License{Key: "agpl-3.0", Name: "GNU Affero General Public License v3.0"},
					OwnerLogin:      "nocodb",
				},
				StarsGrowth7d:     290,
				StarsGrowth30d:    1500,
				ForkStarRatio:     0.067,
				CommitFrequency:   52,
				ContributorsCount: 156,
				ReleaseFrequency:  15,
				IssueCloseRate:    0.81,
				ValueScore:        79,
				LastUpdated:       at(2025, time.September, 3, 7, 15, 0),
			},
			healthScore: 85,
		},
	}
}

// discoverySamples 演示模式的新发现
func discoverySamples() []*domain.DiscoveryEntry {
	return []*domain.DiscoveryEntry{
		{
			Project: &domain.DerivedMetrics{
				Project: &domain.Repository{
					ID:              101,
					Name:            "coolify",
					FullName:        "coollabsio/coolify",
					Description:     "An open-source & self-hostable Heroku / Netlify / Vercel alternative.",
					HTMLURL:         "https://github.com/coollabsio/coolify",
					StargazersCount: 32000,
					ForksCount:      1700,
					OpenIssuesCount: 89,
					WatchersCount:   32000,
					Language:        lang("PHP"),
					CreatedAt:       at(2021, time.April, 12, 8, 36, 45),
					UpdatedAt:       at(2025, time.September, 3, 12, 30, 0),
					PushedAt:        at(2025, time.September, 3, 11, 45, 0),
					Homepage:        "https://coolify.io",
					Topics:          []string{"deployment", "self-hosted", "docker", "devops"},
					License:         &domain.License{Key: "apache-2.0", Name: "Apache License 2.0"},
					OwnerLogin:      "coollabsio",
				},
				StarsGrowth7d:     450,
				StarsGrowth30d:    2800,
				ForkStarRatio:     0.053,
				CommitFrequency:   68,
				ContributorsCount: 67,
				ReleaseFrequency:  22,
				IssueCloseRate:    0.87,
				ValueScore:        75,
				LastUpdated:       at(2025, time.September, 3, 12, 30, 0),
			},
			Reason:       domain.ReasonHighValueDiscovery,
			DiscoveredAt: at(2025, time.September, 3, 12, 30, 0),
		},
		{
			Project: &domain.DerivedMetrics{
				Project: &domain.Repository{
					ID:              102,
					Name:            "invoice-ninja",
					FullName:        "invoiceninja/invoiceninja",
					Description:     "Invoices, Expenses and Tasks built with Laravel, Flutter and React",
					HTMLURL:         "https://github.com/invoiceninja/invoiceninja",
					StargazersCount: 8100,
					ForksCount:      2300,
					OpenIssuesCount: 156,
					WatchersCount:   8100,
					Language:        lang("PHP"),
					CreatedAt:       at(2014, time.October, 24, 19, 33, 25),
					UpdatedAt:       at(2025, time.September, 3, 10, 20, 0),
					PushedAt:        at(2025, time.September, 2, 18, 30, 0),
					Homepage:        "https://www.invoiceninja.com",
					Topics:          []string{"invoice", "business", "accounting", "saas", "commercial"},
					License:         &domain.License{Key: "other", Name: "Elastic License 2.0"},
					OwnerLogin:      "invoiceninja",
				},
				StarsGrowth7d:     25,
				StarsGrowth30d:    180,
				ForkStarRatio:     0.284,
				CommitFrequency:   28,
				ContributorsCount: 89,
				ReleaseFrequency:  6,
				IssueCloseRate:    0.76,
				ValueScore:        68,
				LastUpdated:       at(2025, time.September, 3, 10, 20, 0),
			},
			Reason:       domain.ReasonHighValueDiscovery,
			DiscoveredAt: at(2025, time.September, 3, 10, 20, 0),
		},
	}
}
