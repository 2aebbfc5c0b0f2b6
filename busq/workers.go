package busq

import (
	"context"
	"sync"

	"github.com/busq/busq/workspace"
)

// runWorkers fans file paths out to a pool of readers and collects
// whatever process returns for each file. Files that fail to read are
// skipped. Collection order is nondeterministic; callers sort.
func runWorkers[T any](ctx context.Context, ws workspace.Workspace, files []string, jobs int, process func(path string, data []byte) []T) []T {
	results := make(chan T, 128)
	jobQueue := make(chan string, 128)
	var wg sync.WaitGroup

	workerCount := jobs
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(files) {
		workerCount = len(files)
	}

	worker := func() {
		defer wg.Done()
		for path := range jobQueue {
			data, err := ws.ReadFile(ctx, path)
			if err != nil {
				continue
			}
			for _, r := range process(path, data) {
				results <- r
			}
		}
	}

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go worker()
	}

	go func() {
		for _, f := range files {
			jobQueue <- f
		}
		close(jobQueue)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []T
	for r := range results {
		all = append(all, r)
	}

	return all
}
