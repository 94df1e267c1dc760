// Package concurrent provides parallel synonym scanning.
// It implements a worker pool that partitions the dictionary across
// goroutines; the dictionary and translator are shared read-only, and
// each worker owns its own scan engine.
package concurrent

import (
	"context"
	"sync"

	"layoutsyn/internal/config"
	"layoutsyn/internal/dictionary"
	"layoutsyn/internal/synonym"
	"layoutsyn/internal/translator"
)

// ScanJob is a single word handed to a worker.
type ScanJob struct {
	Index int
	Word  string
}

// ScanResult pairs a job with the engine's verdict on it.
type ScanResult struct {
	Job    ScanJob
	Result synonym.Result
}

// Processor orchestrates concurrent dictionary scans.
type Processor struct {
	config      *config.Config
	dictionary  *dictionary.Dictionary
	translator  *translator.Translator
	workerCount int
}

// NewProcessor creates a Processor sized by cfg.Workers, falling back to a
// single worker when the count has not been normalized.
func NewProcessor(cfg *config.Config, dict *dictionary.Dictionary, tr *translator.Translator) *Processor {
	workerCount := cfg.Workers
	if workerCount < 1 {
		workerCount = 1
	}

	return &Processor{
		config:      cfg,
		dictionary:  dict,
		translator:  tr,
		workerCount: workerCount,
	}
}

// WorkerCount returns the number of goroutines a scan uses.
func (p *Processor) WorkerCount() int {
	return p.workerCount
}

// Scan runs every dictionary word through the scan pipeline and delivers
// results on the returned channel, which is closed once all workers exit.
// Result order is unspecified when more than one worker is used.
// Cancelling ctx stops the scan early.
func (p *Processor) Scan(ctx context.Context) (<-chan ScanResult, error) {
	words := p.dictionary.Words()
	jobs := make(chan ScanJob, p.workerCount)
	results := make(chan ScanResult, p.workerCount)

	var wg sync.WaitGroup

	for i := 0; i < p.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, jobs, results)
		}()
	}

	go func() {
		defer close(jobs)
		for i, word := range words {
			select {
			case jobs <- ScanJob{Index: i, Word: word}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results, nil
}

func (p *Processor) worker(ctx context.Context, jobs <-chan ScanJob, results chan<- ScanResult) {
	engine := synonym.NewEngine(p.config, p.dictionary, p.translator)

	for {
		select {
		case job, ok := <-jobs:
			if !ok {
				return
			}
			result := ScanResult{Job: job, Result: engine.Process(job.Word)}
			select {
			case results <- result:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
