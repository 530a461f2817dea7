// Package snapshot loads a practice-management snapshot, exported as Parquet
// files, into the raw mirror tables via the COPY protocol. Loading replaces
// the previous snapshot; money is normalized to int64 cents on the way in.
package snapshot

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/journeystats/internal/db"
	"github.com/gyeh/journeystats/internal/model"
	"github.com/gyeh/journeystats/internal/normalize"
	"github.com/gyeh/journeystats/internal/parquetread"
)

const readBatchSize = 1024

// TableResult holds metrics from loading one snapshot file.
type TableResult struct {
	Name         string
	FileSHA256   string
	RowsRead     int64
	RowsLoaded   int64
	RowsRejected int64
	Duration     time.Duration
}

// Result holds metrics from loading a full snapshot directory.
type Result struct {
	Tables        []TableResult
	DurationTotal time.Duration
}

// LoadAll loads the five snapshot files from dir, replacing any previously
// loaded snapshot. Expected filenames match the OpenDental table names.
func LoadAll(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, dir string) (*Result, error) {
	start := time.Now()

	if err := truncateRaw(ctx, pool); err != nil {
		return nil, fmt.Errorf("truncate raw tables: %w", err)
	}

	res := &Result{}
	appendResult := func(tr *TableResult, err error) error {
		if err != nil {
			return err
		}
		res.Tables = append(res.Tables, *tr)
		return nil
	}

	if err := appendResult(loadTable(ctx, pool, log, filepath.Join(dir, "procedurecode.parquet"),
		pgx.Identifier{"raw", "procedure_codes"}, model.ProcedureCodeColumns(),
		[]string{"code_num", "proc_code"}, toProcedureCode)); err != nil {
		return nil, err
	}
	if err := appendResult(loadTable(ctx, pool, log, filepath.Join(dir, "procedurelog.parquet"),
		pgx.Identifier{"raw", "procedures"}, model.ProcedureColumns(),
		[]string{"proc_num", "proc_status", "proc_fee", "proc_date"}, toProcedure)); err != nil {
		return nil, err
	}
	if err := appendResult(loadTable(ctx, pool, log, filepath.Join(dir, "claimproc.parquet"),
		pgx.Identifier{"raw", "claim_procs"}, model.ClaimPaymentColumns(),
		[]string{"claim_proc_num", "proc_num", "ins_pay_amt"}, toClaimPayment)); err != nil {
		return nil, err
	}
	if err := appendResult(loadTable(ctx, pool, log, filepath.Join(dir, "paysplit.parquet"),
		pgx.Identifier{"raw", "pay_splits"}, model.PaySplitColumns(),
		[]string{"split_num", "proc_num", "split_amt"}, toPaySplit)); err != nil {
		return nil, err
	}
	if err := appendResult(loadTable(ctx, pool, log, filepath.Join(dir, "adjustment.parquet"),
		pgx.Identifier{"raw", "adjustments"}, model.AdjustmentColumns(),
		[]string{"adj_num", "proc_num", "adj_amt"}, toAdjustment)); err != nil {
		return nil, err
	}

	res.DurationTotal = time.Since(start)
	return res, nil
}

func truncateRaw(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx,
		"TRUNCATE raw.procedure_codes, raw.procedures, raw.claim_procs, raw.pay_splits, raw.adjustments")
	return err
}

// loadTable streams one Parquet file, converts each row, and COPY-loads the
// result into table via a channel-backed CopyFromSource.
func loadTable[P any, R db.CopyRow](
	ctx context.Context,
	pool *pgxpool.Pool,
	log zerolog.Logger,
	path string,
	table pgx.Identifier,
	columns []string,
	requiredCols []string,
	convert func(*P) (R, error),
) (*TableResult, error) {
	start := time.Now()
	name := filepath.Base(path)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("snapshot file %s: %w", name, err)
	}

	sha, err := normalize.FileHash(path)
	if err != nil {
		return nil, fmt.Errorf("hash %s: %w", name, err)
	}

	reader, err := parquetread.Open[P](path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer reader.Close()

	if err := parquetread.RequireColumns(reader.Schema(), requiredCols...); err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}

	ch := make(chan R, readBatchSize)
	errCh := make(chan error, 1)

	var rowsRead, rowsRejected int64

	// Producer goroutine: read Parquet → convert → push to channel
	go func() {
		defer close(ch)
		buf := make([]P, readBatchSize)

		for {
			n, readErr := reader.Read(buf)
			for i := 0; i < n; i++ {
				rowsRead++

				row, convErr := convert(&buf[i])
				if convErr != nil {
					rowsRejected++
					log.Warn().Err(convErr).Str("file", name).Msg("row rejected")
					continue
				}

				select {
				case ch <- row:
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			}
			if readErr == io.EOF {
				break
			}
			if readErr != nil {
				errCh <- fmt.Errorf("read %s at row %d: %w", name, rowsRead, readErr)
				return
			}
		}
		errCh <- nil
	}()

	source := db.NewChannelSource(ch)
	rowsLoaded, err := pool.CopyFrom(ctx, table, columns, source)

	prodErr := <-errCh
	if prodErr != nil {
		return nil, fmt.Errorf("load %s producer: %w", name, prodErr)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s copy: %w", name, err)
	}

	dur := time.Since(start)
	log.Info().
		Str("file", name).
		Str("sha256", sha).
		Int64("rows_read", rowsRead).
		Int64("rows_loaded", rowsLoaded).
		Int64("rows_rejected", rowsRejected).
		Str("duration", dur.String()).
		Msg("snapshot table loaded")

	return &TableResult{
		Name:         name,
		FileSHA256:   sha,
		RowsRead:     rowsRead,
		RowsLoaded:   rowsLoaded,
		RowsRejected: rowsRejected,
		Duration:     dur,
	}, nil
}
