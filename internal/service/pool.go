package service

import (
	"context"
	"sync"
)

type job[T any] struct {
	index int
	item  T
}

type outcome[R any] struct {
	index int
	value R
	err   error
}

// processOrdered 逐个处理候选项，单项失败交给 onErr 后继续
// workers <= 1 时顺序处理 (一个仓库处理完再处理下一个)；否则启动有界的 worker 池
// 返回值只包含成功项，并保持输入顺序
func processOrdered[T, R any](
	ctx context.Context,
	workers int,
	items []T,
	fn func(context.Context, T) (R, error),
	onErr func(T, error),
) []R {
	if workers <= 1 || len(items) <= 1 {
		return processSequential(ctx, items, fn, onErr)
	}
	workers = min(workers, len(items))

	jobs := make(chan job[T], len(items))
	results := make(chan outcome[R], len(items))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if ctx.Err() != nil {
					results <- outcome[R]{index: j.index, err: ctx.Err()}
					continue
				}
				v, err := fn(ctx, j.item)
				results <- outcome[R]{index: j.index, value: v, err: err}
			}
		}()
	}

	for i, item := range items {
		jobs <- job[T]{index: i, item: item}
	}
	close(jobs)

	wg.Wait()
	close(results)

	// 按下标归位，保证输出顺序和输入一致
	slots := make([]*outcome[R], len(items))
	for res := range results {
		slots[res.index] = &res
	}

	out := make([]R, 0, len(items))
	for i, slot := range slots {
		if slot == nil {
			continue
		}
		if slot.err != nil {
			if onErr != nil {
				onErr(items[i], slot.err)
			}
			continue
		}
		out = append(out, slot.value)
	}
	return out
}

func processSequential[T, R any](
	ctx context.Context,
	items []T,
	fn func(context.Context, T) (R, error),
	onErr func(T, error),
) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		// 上下文取消后不再发起新的请求
		if ctx.Err() != nil {
			break
		}
		v, err := fn(ctx, item)
		if err != nil {
			if onErr != nil {
				onErr(item, err)
			}
			continue
		}
		out = append(out, v)
	}
	return out
}
