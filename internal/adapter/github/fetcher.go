package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github-value-tracker/internal/domain"

	"github.com/google/go-github/v53/github"
	"golang.org/x/oauth2"
)

// DefaultTimeout 单次 GitHub 请求的默认超时
const DefaultTimeout = 30 * time.Second

// 各列表接口的分页大小
const (
	contributorsPerPage = 100
	commitsPerPage      = 100
	releasesPerPage     = 10
	issuesPerPage       = 100
	eventsPerPage       = 100
)

// Options 构造 Fetcher 的参数
type Options struct {
	Token   string        // 为空时匿名访问，限制 60次/小时
	BaseURL string        // 为空时使用 api.github.com，GitHub Enterprise 或测试时覆盖
	Timeout time.Duration // <=0 时使用 DefaultTimeout
}

// Fetcher 实现了 port.RepoFetcher 接口
type Fetcher struct {
	client *github.Client
}

// NewFetcher 初始化 GitHub 客户端
func NewFetcher(opts Options) (*Fetcher, error) {
	client := github.NewClient(newHTTPClient(opts.Token, opts.Timeout))

	if opts.BaseURL != "" {
		raw := opts.BaseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		baseURL, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("解析 GitHub base url 失败: %w", err)
		}
		client.BaseURL = baseURL
	}

	return &Fetcher{client: client}, nil
}

func newHTTPClient(token string, timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	base := &http.Client{Timeout: timeout}
	if token == "" {
		return base
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = timeout
	return tc
}

// GetRepository 获取单个仓库
func (f *Fetcher) GetRepository(ctx context.Context, owner, name string) (*domain.Repository, error) {
	item, _, err := f.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("GitHub API 调用失败: %w", err)
	}
	return toDomainRepository(item), nil
}

// SearchRepositories 仓库搜索，sort 为空时按 GitHub 的相关度排序
func (f *Fetcher) SearchRepositories(ctx context.Context, query, sort string, perPage int) ([]*domain.Repository, error) {
	opts := &github.SearchOptions{
		Sort: sort,
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}
	if sort != "" {
		opts.Order = "desc"
	}

	result, _, err := f.client.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("GitHub API 调用失败: %w", err)
	}

	repos := make([]*domain.Repository, 0, len(result.Repositories))
	for _, item := range result.Repositories {
		repos = append(repos, toDomainRepository(item))
	}
	return repos, nil
}

// GetContributors 贡献者列表 (第一页)
func (f *Fetcher) GetContributors(ctx context.Context, owner, name string) ([]*domain.Contributor, error) {
	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: contributorsPerPage},
	}
	items, _, err := f.client.Repositories.ListContributors(ctx, owner, name, opts)
	if err != nil {
		return nil, fmt.Errorf("GitHub API 调用失败: %w", err)
	}

	contributors := make([]*domain.Contributor, 0, len(items))
	for _, item := range items {
		contributors = append(contributors, &domain.Contributor{
			Login:         item.GetLogin(),
			Contributions: item.GetContributions(),
		})
	}
	return contributors, nil
}

// GetCommits since 之后的提交 (第一页)
func (f *Fetcher) GetCommits(ctx context.Context, owner, name string, since time.Time) ([]*domain.Commit, error) {
	opts := &github.CommitsListOptions{
		Since:       since,
		ListOptions: github.ListOptions{PerPage: commitsPerPage},
	}
	items, _, err := f.client.Repositories.ListCommits(ctx, owner, name, opts)
	if err != nil {
		return nil, fmt.Errorf("GitHub API 调用失败: %w", err)
	}

	commits := make([]*domain.Commit, 0, len(items))
	for _, item := range items {
		author := item.GetCommit().GetAuthor()
		// since 按提交日期过滤，rebase 或 cherry-pick 后作者日期可能早得多
		date := item.GetCommit().GetCommitter().GetDate().Time
		if date.IsZero() {
			date = author.GetDate().Time
		}
		commits = append(commits, &domain.Commit{
			SHA:        item.GetSHA(),
			AuthorName: author.GetName(),
			Date:       date,
		})
	}
	return commits, nil
}

// GetReleases 最近的发布
func (f *Fetcher) GetReleases(ctx context.Context, owner, name string) ([]*domain.Release, error) {
	items, _, err := f.client.Repositories.ListReleases(ctx, owner, name, &github.ListOptions{PerPage: releasesPerPage})
	if err != nil {
		return nil, fmt.Errorf("GitHub API 调用失败: %w", err)
	}

	releases := make([]*domain.Release, 0, len(items))
	for _, item := range items {
		releases = append(releases, &domain.Release{
			TagName:     item.GetTagName(),
			PublishedAt: item.GetPublishedAt().Time,
		})
	}
	return releases, nil
}

// GetIssues state 取 open / closed / all
func (f *Fetcher) GetIssues(ctx context.Context, owner, name, state string) ([]*domain.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: issuesPerPage},
	}
	items, _, err := f.client.Issues.ListByRepo(ctx, owner, name, opts)
	if err != nil {
		return nil, fmt.Errorf("GitHub API 调用失败: %w", err)
	}

	issues := make([]*domain.Issue, 0, len(items))
	for _, item := range items {
		issues = append(issues, &domain.Issue{
			Number: item.GetNumber(),
			State:  item.GetState(),
		})
	}
	return issues, nil
}

// GetRepositoryEvents 仓库最近的公开事件
func (f *Fetcher) GetRepositoryEvents(ctx context.Context, owner, name string) ([]*domain.RepoEvent, error) {
	items, _, err := f.client.Activity.ListRepositoryEvents(ctx, owner, name, &github.ListOptions{PerPage: eventsPerPage})
	if err != nil {
		return nil, fmt.Errorf("GitHub API 调用失败: %w", err)
	}

	events := make([]*domain.RepoEvent, 0, len(items))
	for _, item := range items {
		events = append(events, &domain.RepoEvent{
			Type:      item.GetType(),
			Actor:     item.GetActor().GetLogin(),
			RepoName:  item.GetRepo().GetName(),
			CreatedAt: item.GetCreatedAt().Time,
		})
	}
	return events, nil
}

// toDomainRepository 将 GitHub 的数据结构转换为我们的 Domain 实体 (DTO 转换)
func toDomainRepository(item *github.Repository) *domain.Repository {
	repo := &domain.Repository{
		ID:              item.GetID(),
		Name:            item.GetName(),
		FullName:        item.GetFullName(),
		Description:     item.GetDescription(),
		HTMLURL:         item.GetHTMLURL(),
		StargazersCount: item.GetStargazersCount(),
		ForksCount:      item.GetForksCount(),
		WatchersCount:   item.GetWatchersCount(),
		OpenIssuesCount: item.GetOpenIssuesCount(),
		Language:        item.Language,
		CreatedAt:       item.GetCreatedAt().Time,
		UpdatedAt:       item.GetUpdatedAt().Time,
		PushedAt:        item.GetPushedAt().Time,
		Homepage:        item.GetHomepage(),
		Topics:          domain.UniqueTopics(item.Topics),
		OwnerLogin:      item.GetOwner().GetLogin(),
		HasWiki:         item.GetHasWiki(),
	}
	if item.License != nil {
		repo.License = &domain.License{
			Key:  item.License.GetKey(),
			Name: item.License.GetName(),
		}
	}
	if repo.Name == "" {
		if _, name, ok := domain.SplitFullName(repo.FullName); ok {
			repo.Name = name
		}
	}
	return repo
}
