package service

import (
	"context"
	"sync"
	"time"

	"github-value-tracker/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) GetRepository(ctx context.Context, owner, name string) (*domain.Repository, error) {
	args := m.Called(ctx, owner, name)
	return args.Get(0).(*domain.Repository), args.Error(1)
}

func (m *MockFetcher) SearchRepositories(ctx context.Context, query, sort string, perPage int) ([]*domain.Repository, error) {
	args := m.Called(ctx, query, sort, perPage)
	return args.Get(0).([]*domain.Repository), args.Error(1)
}

func (m *MockFetcher) GetContributors(ctx context.Context, owner, name string) ([]*domain.Contributor, error) {
	args := m.Called(ctx, owner, name)
	return args.Get(0).([]*domain.Contributor), args.Error(1)
}

func (m *MockFetcher) GetCommits(ctx context.Context, owner, name string, since time.Time) ([]*domain.Commit, error) {
	args := m.Called(ctx, owner, name, since)
	return args.Get(0).([]*domain.Commit), args.Error(1)
}

func (m *MockFetcher) GetReleases(ctx context.Context, owner, name string) ([]*domain.Release, error) {
	args := m.Called(ctx, owner, name)
	return args.Get(0).([]*domain.Release), args.Error(1)
}

func (m *MockFetcher) GetIssues(ctx context.Context, owner, name, state string) ([]*domain.Issue, error) {
	args := m.Called(ctx, owner, name, state)
	return args.Get(0).([]*domain.Issue), args.Error(1)
}

func (m *MockFetcher) GetRepositoryEvents(ctx context.Context, owner, name string) ([]*domain.RepoEvent, error) {
	args := m.Called(ctx, owner, name)
	return args.Get(0).([]*domain.RepoEvent), args.Error(1)
}

type MockTrender struct {
	mock.Mock
}

func (m *MockTrender) Trending(ctx context.Context, days, minStars, limit int) ([]*domain.TrendingRepo, error) {
	args := m.Called(ctx, days, minStars, limit)
	return args.Get(0).([]*domain.TrendingRepo), args.Error(1)
}

func (m *MockTrender) Simple(ctx context.Context) ([]*domain.Repository, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Repository), args.Error(1)
}

func (m *MockTrender) Search(ctx context.Context, filters domain.SearchFilters) ([]*domain.Repository, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*domain.Repository), args.Error(1)
}

type MockScorer struct {
	mock.Mock
}

func (m *MockScorer) Score(repo *domain.Repository, partial domain.PartialMetrics) int {
	args := m.Called(repo, partial)
	return args.Int(0)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) RecordStars(ctx context.Context, fullName string, stars int, at time.Time) error {
	args := m.Called(ctx, fullName, stars, at)
	return args.Error(0)
}

func (m *MockStore) StarsAsOf(ctx context.Context, fullName string, notBefore, at time.Time) (int, bool, error) {
	args := m.Called(ctx, fullName, notBefore, at)
	return args.Int(0), args.Bool(1), args.Error(2)
}

type starSample struct {
	stars int
	at    time.Time
}

// memStore 内存版快照存储，和 postgres 实现一样按 UTC 日期覆盖、按区间取最近一条
type memStore struct {
	mu    sync.Mutex
	items map[string][]starSample
}

func newMemStore(fullName string, samples ...starSample) *memStore {
	s := &memStore{items: map[string][]starSample{}}
	s.items[domain.CanonicalName(fullName)] = append([]starSample(nil), samples...)
	return s
}

func (s *memStore) RecordStars(_ context.Context, fullName string, stars int, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.CanonicalName(fullName)
	day := at.UTC().Truncate(24 * time.Hour)
	for i, sample := range s.items[key] {
		if sample.at.UTC().Truncate(24 * time.Hour).Equal(day) {
			s.items[key][i] = starSample{stars: stars, at: at}
			return nil
		}
	}
	s.items[key] = append(s.items[key], starSample{stars: stars, at: at})
	return nil
}

func (s *memStore) StarsAsOf(_ context.Context, fullName string, notBefore, at time.Time) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var (
		best  starSample
		found bool
	)
	for _, sample := range s.items[domain.CanonicalName(fullName)] {
		if sample.at.Before(notBefore) || sample.at.After(at) {
			continue
		}
		if !found || sample.at.After(best.at) {
			best, found = sample, true
		}
	}
	return best.stars, found, nil
}

func (s *memStore) latest(fullName string) (starSample, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var (
		best  starSample
		found bool
	)
	for _, sample := range s.items[domain.CanonicalName(fullName)] {
		if !found || sample.at.After(best.at) {
			best, found = sample, true
		}
	}
	return best, found
}

// stubAggregator 按 full_name 给出固定分数，记录调用顺序
type stubAggregator struct {
	mu     sync.Mutex
	scores map[string]int
	calls  []string
}

func (a *stubAggregator) ComputeMetrics(_ context.Context, repo *domain.Repository) *domain.DerivedMetrics {
	a.mu.Lock()
	a.calls = append(a.calls, repo.FullName)
	a.mu.Unlock()
	return &domain.DerivedMetrics{
		Project:    repo,
		ValueScore: a.scores[repo.FullName],
	}
}

func repoNamed(fullName string, topics ...string) *domain.Repository {
	owner, name, _ := domain.SplitFullName(fullName)
	return &domain.Repository{
		FullName:   fullName,
		Name:       name,
		OwnerLogin: owner,
		Topics:     topics,
	}
}

func trendOf(fullName string, starsAdded int, topics ...string) *domain.TrendingRepo {
	return &domain.TrendingRepo{
		Repo:               repoNamed(fullName, topics...),
		StarsAdded:         starsAdded,
		UniqueContributors: starsAdded / 2,
		Topics:             topics,
	}
}
