package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github-value-tracker/internal/domain"

	"github.com/google/go-github/v53/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockGitHubServer 创建一个模拟的 GitHub API 服务器
func setupMockGitHubServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Fetcher) {
	server := httptest.NewServer(handler)

	fetcher, err := NewFetcher(Options{BaseURL: server.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return server, fetcher
}

// writeJSON 返回模拟响应
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

// createMockRepo 创建模拟的 GitHub 仓库对象
func createMockRepo(id int64, fullName, description, language string, stars int, createdAt, pushedAt time.Time) *github.Repository {
	owner, name, _ := domain.SplitFullName(fullName)
	return &github.Repository{
		ID:              github.Int64(id),
		Name:            github.String(name),
		FullName:        github.String(fullName),
		HTMLURL:         github.String("https://github.com/" + fullName),
		Description:     github.String(description),
		StargazersCount: github.Int(stars),
		ForksCount:      github.Int(stars / 10),
		WatchersCount:   github.Int(stars),
		Language:        github.String(language),
		Owner:           &github.User{Login: github.String(owner)},
		CreatedAt:       &github.Timestamp{Time: createdAt},
		UpdatedAt:       &github.Timestamp{Time: pushedAt},
		PushedAt:        &github.Timestamp{Time: pushedAt},
	}
}

func TestFetcher_GetRepository(t *testing.T) {
	created := time.Date(2016, 10, 5, 0, 0, 0, 0, time.UTC)
	pushed := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	server, fetcher := setupMockGitHubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/vercel/next.js", r.URL.Path)

		repo := createMockRepo(70107786, "vercel/next.js", "The React Framework", "JavaScript", 125000, created, pushed)
		repo.Homepage = github.String("https://nextjs.org")
		repo.Topics = []string{"react", "nextjs", "react"}
		repo.License = &github.License{Key: github.String("mit"), Name: github.String("MIT License")}
		repo.HasWiki = github.Bool(true)
		writeJSON(t, w, repo)
	})
	defer server.Close()

	repo, err := fetcher.GetRepository(context.Background(), "vercel", "next.js")
	require.NoError(t, err)

	assert.Equal(t, int64(70107786), repo.ID)
	assert.Equal(t, "next.js", repo.Name)
	assert.Equal(t, "vercel/next.js", repo.FullName)
	assert.Equal(t, "vercel", repo.OwnerLogin)
	assert.Equal(t, 125000, repo.StargazersCount)
	assert.Equal(t, 12500, repo.ForksCount)
	assert.Equal(t, "JavaScript", repo.LanguageName())
	assert.Equal(t, "https://nextjs.org", repo.Homepage)
	assert.True(t, repo.HasWiki)
	assert.True(t, created.Equal(repo.CreatedAt))
	assert.True(t, pushed.Equal(repo.PushedAt))
	// topic 去重，保留首次出现的顺序
	assert.Equal(t, []string{"react", "nextjs"}, repo.Topics)
	require.NotNil(t, repo.License)
	assert.Equal(t, "mit", repo.License.Key)
}

func TestFetcher_SearchRepositories(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		sort      string
		perPage   int
		mockRepos []*github.Repository
		wantOrder string
		verify    func(*testing.T, []*domain.Repository)
	}{
		{
			name:    "按 star 排序",
			sort:    "stars",
			perPage: 20,
			mockRepos: []*github.Repository{
				createMockRepo(1, "test/repo1", "Test repo 1", "Go", 100, now.AddDate(0, 0, -1), now),
				createMockRepo(2, "test/repo2", "Test repo 2", "Go", 50, now.AddDate(0, 0, -1), now),
			},
			wantOrder: "desc",
			verify: func(t *testing.T, repos []*domain.Repository) {
				assert.Equal(t, 2, len(repos))
				assert.Equal(t, int64(1), repos[0].ID)
				assert.Equal(t, "test/repo1", repos[0].FullName)
				assert.Equal(t, "https://github.com/test/repo1", repos[0].HTMLURL)
				assert.Equal(t, "Test repo 1", repos[0].Description)
				assert.Equal(t, 100, repos[0].StargazersCount)
			},
		},
		{
			name:      "不指定排序",
			sort:      "",
			perPage:   30,
			mockRepos: []*github.Repository{createMockRepo(3, "test/weekly", "Weekly", "Python", 200, now, now)},
			wantOrder: "",
			verify: func(t *testing.T, repos []*domain.Repository) {
				assert.Equal(t, 1, len(repos))
				assert.Equal(t, "Python", repos[0].LanguageName())
			},
		},
		{
			name:      "空结果",
			sort:      "stars",
			perPage:   10,
			mockRepos: []*github.Repository{},
			wantOrder: "desc",
			verify: func(t *testing.T, repos []*domain.Repository) {
				assert.Empty(t, repos)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, fetcher := setupMockGitHubServer(t, func(w http.ResponseWriter, r *http.Request) {
				// 验证请求路径和查询参数
				assert.Equal(t, "/search/repositories", r.URL.Path)
				assert.Equal(t, "language:go stars:>10", r.URL.Query().Get("q"))
				assert.Equal(t, tt.sort, r.URL.Query().Get("sort"))
				assert.Equal(t, tt.wantOrder, r.URL.Query().Get("order"))

				writeJSON(t, w, &github.RepositoriesSearchResult{
					Total:        github.Int(len(tt.mockRepos)),
					Repositories: tt.mockRepos,
				})
			})
			defer server.Close()

			repos, err := fetcher.SearchRepositories(context.Background(), "language:go stars:>10", tt.sort, tt.perPage)
			require.NoError(t, err)
			tt.verify(t, repos)
		})
	}
}

func TestFetcher_ListEndpoints(t *testing.T) {
	since := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	published := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widget/contributors", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		writeJSON(t, w, []*github.Contributor{
			{Login: github.String("alice"), Contributions: github.Int(42)},
			{Login: github.String("bob"), Contributions: github.Int(7)},
		})
	})
	mux.HandleFunc("/repos/acme/widget/commits", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, since.Format(time.RFC3339), r.URL.Query().Get("since"))
		writeJSON(t, w, []*github.RepositoryCommit{
			{
				SHA: github.String("abc123"),
				Commit: &github.Commit{Author: &github.CommitAuthor{
					Name: github.String("alice"),
					Date: &github.Timestamp{Time: since.AddDate(0, 0, 3)},
				}},
			},
			{
				SHA: github.String("def456"),
				Commit: &github.Commit{
					Author: &github.CommitAuthor{
						Name: github.String("bob"),
						Date: &github.Timestamp{Time: since.AddDate(-1, 0, 0)},
					},
					Committer: &github.CommitAuthor{
						Name: github.String("alice"),
						Date: &github.Timestamp{Time: since.AddDate(0, 0, 5)},
					},
				},
			},
		})
	})
	mux.HandleFunc("/repos/acme/widget/releases", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		writeJSON(t, w, []*github.RepositoryRelease{
			{TagName: github.String("v1.0.0"), PublishedAt: &github.Timestamp{Time: published}},
		})
	})
	mux.HandleFunc("/repos/acme/widget/issues", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		writeJSON(t, w, []*github.Issue{
			{Number: github.Int(1), State: github.String("open")},
			{Number: github.Int(2), State: github.String("closed")},
		})
	})
	mux.HandleFunc("/repos/acme/widget/events", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []*github.Event{
			{
				Type:      github.String(domain.EventWatch),
				Actor:     &github.User{Login: github.String("carol")},
				Repo:      &github.Repository{Name: github.String("acme/widget")},
				CreatedAt: &github.Timestamp{Time: since},
			},
		})
	})

	server := httptest.NewServer(mux)
	defer server.Close()
	fetcher, err := NewFetcher(Options{BaseURL: server.URL + "/"})
	require.NoError(t, err)
	ctx := context.Background()

	contributors, err := fetcher.GetContributors(ctx, "acme", "widget")
	require.NoError(t, err)
	assert.Equal(t, []*domain.Contributor{{Login: "alice", Contributions: 42}, {Login: "bob", Contributions: 7}}, contributors)

	commits, err := fetcher.GetCommits(ctx, "acme", "widget", since)
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "abc123", commits[0].SHA)
	assert.Equal(t, "alice", commits[0].AuthorName)
	assert.True(t, commits[0].Date.Equal(since.AddDate(0, 0, 3)))
	// cherry-pick 过来的提交按提交日期计入窗口
	assert.Equal(t, "bob", commits[1].AuthorName)
	assert.True(t, commits[1].Date.Equal(since.AddDate(0, 0, 5)))

	releases, err := fetcher.GetReleases(ctx, "acme", "widget")
	require.NoError(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, "v1.0.0", releases[0].TagName)
	assert.True(t, published.Equal(releases[0].PublishedAt))

	issues, err := fetcher.GetIssues(ctx, "acme", "widget", "all")
	require.NoError(t, err)
	assert.Equal(t, []*domain.Issue{{Number: 1, State: "open"}, {Number: 2, State: "closed"}}, issues)

	events, err := fetcher.GetRepositoryEvents(ctx, "acme", "widget")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventWatch, events[0].Type)
	assert.Equal(t, "carol", events[0].Actor)
	assert.Equal(t, "acme/widget", events[0].RepoName)
}

func TestFetcher_APIError(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		responseBody string
	}{
		{
			name:         "GitHub API 返回 403 Forbidden",
			statusCode:   http.StatusForbidden,
			responseBody: `{"message": "API rate limit exceeded"}`,
		},
		{
			name:         "GitHub API 返回 500 内部错误",
			statusCode:   http.StatusInternalServerError,
			responseBody: `{"message": "Internal server error"}`,
		},
		{
			name:         "GitHub API 返回 404 Not Found",
			statusCode:   http.StatusNotFound,
			responseBody: `{"message": "Not Found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, fetcher := setupMockGitHubServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.responseBody))
			})
			defer server.Close()

			ctx := context.Background()

			repo, err := fetcher.GetRepository(ctx, "acme", "widget")
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "GitHub API 调用失败")
			assert.Nil(t, repo)

			repos, err := fetcher.SearchRepositories(ctx, "stars:>1", "stars", 10)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "GitHub API 调用失败")
			assert.Nil(t, repos)

			issues, err := fetcher.GetIssues(ctx, "acme", "widget", "all")
			assert.Error(t, err)
			assert.Nil(t, issues)
		})
	}
}

func TestNewFetcher(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "使用令牌创建", opts: Options{Token: "ghp_test_token_1234567890"}},
		{name: "无令牌创建", opts: Options{}},
		{name: "自定义 base url", opts: Options{BaseURL: "https://ghe.example.com/api/v3", Timeout: time.Second}},
		{name: "非法 base url", opts: Options{BaseURL: "://bad"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher, err := NewFetcher(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, fetcher.client)
		})
	}
}

func TestNewHTTPClient_ExplicitTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, newHTTPClient("", 0).Timeout)
	assert.Equal(t, 3*time.Second, newHTTPClient("", 3*time.Second).Timeout)
	assert.Equal(t, 3*time.Second, newHTTPClient("token", 3*time.Second).Timeout)
}

func TestFetcher_ContextCancellation(t *testing.T) {
	// 创建一个已取消的上下文
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	server, fetcher := setupMockGitHubServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("should not reach here due to context cancellation")
	})
	defer server.Close()

	repos, err := fetcher.SearchRepositories(ctx, "stars:>1", "stars", 10)
	assert.Error(t, err)
	assert.Nil(t, repos)
}
