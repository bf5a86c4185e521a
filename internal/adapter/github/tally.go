package github

import (
	"maps"
	"slices"
	"time"

	"github-value-tracker/internal/domain"
)

// eventTally 累积阶段的单仓库统计，集合字段在 finalizeTallies 里才变成有序切片
type eventTally struct {
	repo        *domain.Repository
	starsAdded  int
	forksAdded  int
	totalEvents int
	actors      map[string]struct{}
	languages   map[string]struct{}
	topics      map[string]struct{}
}

func newEventTally(repo *domain.Repository) *eventTally {
	return &eventTally{
		repo:      repo,
		actors:    make(map[string]struct{}),
		languages: make(map[string]struct{}),
		topics:    make(map[string]struct{}),
	}
}

// accumulateSearchHit 一次搜索命中记为一次 watch 信号，归属到仓库 owner
func accumulateSearchHit(tally *eventTally, repo *domain.Repository) {
	tally.totalEvents++
	tally.starsAdded++
	if repo.OwnerLogin != "" {
		tally.actors[repo.OwnerLogin] = struct{}{}
	}
	if lang := repo.LanguageName(); lang != "" {
		tally.languages[lang] = struct{}{}
	}
	for _, topic := range repo.Topics {
		tally.topics[topic] = struct{}{}
	}
}

// accumulateEvents 把窗口内的 Watch / Fork / Push 事件计入统计，窗口外的事件忽略
func accumulateEvents(tally *eventTally, events []*domain.RepoEvent, since time.Time) {
	for _, ev := range events {
		if ev == nil || ev.CreatedAt.Before(since) {
			continue
		}
		switch ev.Type {
		case domain.EventWatch:
			tally.starsAdded++
		case domain.EventFork:
			tally.forksAdded++
		case domain.EventPush:
		default:
			continue
		}
		tally.totalEvents++
		if ev.Actor != "" {
			tally.actors[ev.Actor] = struct{}{}
		}
	}
}

// finalizeTallies 定型阶段：集合转为排序后的切片，保持输入顺序
func finalizeTallies(tallies []*eventTally) []*domain.TrendingRepo {
	out := make([]*domain.TrendingRepo, 0, len(tallies))
	for _, tally := range tallies {
		out = append(out, &domain.TrendingRepo{
			Repo:               tally.repo,
			StarsAdded:         tally.starsAdded,
			ForksAdded:         tally.forksAdded,
			TotalEvents:        tally.totalEvents,
			UniqueContributors: len(tally.actors),
			Languages:          sortedKeys(tally.languages),
			Topics:             sortedKeys(tally.topics),
		})
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	return slices.Sorted(maps.Keys(set))
}
