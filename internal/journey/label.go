package journey

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/journeystats/internal/classify"
	"github.com/gyeh/journeystats/internal/db"
	"github.com/gyeh/journeystats/internal/model"
)

// LabelResult holds metrics from the classification phase.
type LabelResult struct {
	RowsClassified   int64
	RowsWritten      int64
	Batches          int
	DurationFetch    time.Duration
	DurationClassify time.Duration
}

// Label pages through the run's scope, aggregates payments, classifies each
// procedure, and COPY-loads the results. Classification within a batch fans
// out over a worker pool; each worker owns a disjoint index range, so no
// locking is needed and output is deterministic.
func Label(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, clf *classify.Classifier, pf *PreflightResult, batchSize, workers int) (*LabelResult, error) {
	res := &LabelResult{}
	after := int64(0)

	for {
		fetchStart := time.Now()
		procs, err := fetchProcedures(ctx, pool, pf.DateFrom, pf.DateTo, after, batchSize)
		if err != nil {
			return nil, fmt.Errorf("fetch batch after proc %d: %w", after, err)
		}
		if len(procs) == 0 {
			break
		}

		procNums := make([]int64, len(procs))
		for i := range procs {
			procNums[i] = procs[i].ProcNum
		}

		fin, err := fetchFinancials(ctx, pool, procNums)
		if err != nil {
			return nil, fmt.Errorf("fetch financials after proc %d: %w", after, err)
		}
		res.DurationFetch += time.Since(fetchStart)

		classifyStart := time.Now()
		results := classifyBatch(clf, pf, procs, fin, workers)
		res.DurationClassify += time.Since(classifyStart)

		written, err := writeResults(ctx, pool, results)
		if err != nil {
			return nil, fmt.Errorf("write results after proc %d: %w", after, err)
		}

		res.RowsClassified += int64(len(results))
		res.RowsWritten += written
		res.Batches++
		after = procs[len(procs)-1].ProcNum

		log.Info().
			Int("batch", res.Batches).
			Int("procedures", len(procs)).
			Int64("rows_written", written).
			Msg("batch classified")
	}

	log.Info().
		Int64("rows_classified", res.RowsClassified).
		Int64("rows_written", res.RowsWritten).
		Int("batches", res.Batches).
		Str("fetch_duration", res.DurationFetch.String()).
		Str("classify_duration", res.DurationClassify.String()).
		Msg("classification complete")

	return res, nil
}

// classifyBatch applies the classifier to one batch of procedures in
// parallel. Workers each take a contiguous slice of the batch; result order
// matches procedure order.
func classifyBatch(clf *classify.Classifier, pf *PreflightResult, procs []model.Procedure, fin *financials, workers int) []*model.ClassificationResult {
	results := make([]*model.ClassificationResult, len(procs))

	if workers > len(procs) {
		workers = len(procs)
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (len(procs) + workers - 1) / workers
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(procs) {
			hi = len(procs)
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				p := &procs[i]
				act := classify.AggregatePayments(fin.claims[p.ProcNum], fin.splits[p.ProcNum], fin.adjs[p.ProcNum])
				r := clf.Classify(pf.RunID, p, act, pf.StartedAt)
				results[i] = &r
			}
		}(lo, hi)
	}
	wg.Wait()

	return results
}

// writeResults COPY-loads one batch of classification results.
func writeResults(ctx context.Context, pool *pgxpool.Pool, results []*model.ClassificationResult) (int64, error) {
	ch := make(chan *model.ClassificationResult, len(results))
	for _, r := range results {
		ch <- r
	}
	close(ch)

	source := db.NewChannelSource(ch)
	return pool.CopyFrom(ctx,
		pgx.Identifier{"journey", "classification_results"},
		model.ResultColumns(),
		source,
	)
}
