package journey_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/journeystats/internal/catalog"
	"github.com/gyeh/journeystats/internal/classify"
	"github.com/gyeh/journeystats/internal/config"
	"github.com/gyeh/journeystats/internal/db"
	"github.com/gyeh/journeystats/internal/journey"
	"github.com/gyeh/journeystats/internal/logging"
)

const (
	testPort     = 15433
	testDB       = "journeytest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var (
	testDSN string
	pg      *embeddedpostgres.EmbeddedPostgres
)

func TestMain(m *testing.M) {
	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg = embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// setupDB creates a connection pool and applies migrations onto clean schemas.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	for _, schema := range []string{"raw", "journey"} {
		if _, err := pool.Exec(ctx, fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
			t.Fatalf("drop schema %s: %v", schema, err)
		}
	}

	log := logging.Setup("text")
	if err := db.ApplyMigrations(ctx, pool, log); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}

	t.Cleanup(func() { pool.Close() })
	return pool
}

// ---------- seed helpers ----------

func seedCode(t *testing.T, pool *pgxpool.Pool, codeNum int64, procCode string) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO raw.procedure_codes (code_num, proc_code) VALUES ($1, $2)",
		codeNum, procCode)
	if err != nil {
		t.Fatalf("seed code %s: %v", procCode, err)
	}
}

func seedProc(t *testing.T, pool *pgxpool.Pool, procNum, codeNum int64, status int16, feeCents int64, date string) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO raw.procedures (proc_num, patient_num, code_num, proc_status, proc_fee_cents, proc_date) VALUES ($1, 1, $2, $3, $4, $5)",
		procNum, codeNum, status, feeCents, date)
	if err != nil {
		t.Fatalf("seed proc %d: %v", procNum, err)
	}
}

func seedClaim(t *testing.T, pool *pgxpool.Pool, claimProcNum, procNum, insCents int64) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO raw.claim_procs (claim_proc_num, proc_num, status, ins_pay_cents) VALUES ($1, $2, 1, $3)",
		claimProcNum, procNum, insCents)
	if err != nil {
		t.Fatalf("seed claim %d: %v", claimProcNum, err)
	}
}

func seedSplit(t *testing.T, pool *pgxpool.Pool, splitNum, procNum, splitCents int64) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO raw.pay_splits (split_num, proc_num, payment_num, split_cents) VALUES ($1, $2, $1, $3)",
		splitNum, procNum, splitCents)
	if err != nil {
		t.Fatalf("seed split %d: %v", splitNum, err)
	}
}

func seedAdjustment(t *testing.T, pool *pgxpool.Pool, adjNum, procNum, adjCents int64) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO raw.adjustments (adj_num, proc_num, adj_type, adj_cents) VALUES ($1, $2, 1, $3)",
		adjNum, procNum, adjCents)
	if err != nil {
		t.Fatalf("seed adjustment %d: %v", adjNum, err)
	}
}

// seedScenarios inserts the six canonical classification scenarios.
func seedScenarios(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	seedCode(t, pool, 1, "D2740") // crown
	seedCode(t, pool, 2, "D0120") // periodic evaluation (administrative)
	seedCode(t, pool, 3, "D7140") // extraction
	seedCode(t, pool, 4, "D9986") // missed appointment
	seedCode(t, pool, 5, "D2950") // core buildup

	// 101: insurance pays exactly 95% of a $200 crown
	seedProc(t, pool, 101, 1, 2, 20000, "2025-03-10")
	seedClaim(t, pool, 1, 101, 19000)

	// 102: zero-fee administrative evaluation
	seedProc(t, pool, 102, 2, 2, 0, "2025-03-11")

	// 103: $500 extraction, patient pays exactly 95% across two splits
	seedProc(t, pool, 103, 3, 2, 50000, "2025-03-12")
	seedSplit(t, pool, 1, 103, 40000)
	seedSplit(t, pool, 2, 103, 7500)

	// 104: missed appointment marker, paid in full but never a success
	seedProc(t, pool, 104, 4, 2, 10000, "2025-03-13")
	seedClaim(t, pool, 2, 104, 10000)

	// 105: $1000 crown still in treatment planning
	seedProc(t, pool, 105, 1, 1, 100000, "2025-03-14")

	// 106: $300 buildup, mixed funding well below threshold, 18 splits,
	// write-off adjustment that must not rescue it
	seedProc(t, pool, 106, 5, 2, 30000, "2025-03-15")
	seedClaim(t, pool, 3, 106, 15000)
	for i := int64(0); i < 17; i++ {
		seedSplit(t, pool, 10+i, 106, 500)
	}
	seedSplit(t, pool, 27, 106, 1500)
	seedAdjustment(t, pool, 1, 106, -5000)
}

func runPipeline(t *testing.T, pool *pgxpool.Pool) (*journey.PipelineError, string, int64) {
	t.Helper()
	ctx := context.Background()
	log := logging.Setup("text")

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	cfg := &config.Config{
		DateFrom:  "2025-01-01",
		DateTo:    "2026-01-01",
		Workers:   2,
		BatchSize: 4, // force multiple batches
	}

	summary, err := journey.Run(ctx, pool, log, cfg, classify.New(cat))
	if err != nil {
		if pe, ok := err.(*journey.PipelineError); ok {
			return pe, "", 0
		}
		t.Fatalf("pipeline: %v", err)
	}
	return nil, summary.RunID, summary.RowsWritten
}

// ---------- tests ----------

func TestMigrations_Idempotent(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text")

	if err := db.ApplyMigrations(ctx, pool, log); err != nil {
		t.Fatalf("second migration run should be idempotent: %v", err)
	}

	for _, tbl := range []string{
		"raw.procedure_codes", "raw.procedures", "raw.claim_procs",
		"raw.pay_splits", "raw.adjustments",
		"journey.runs", "journey.classification_results",
	} {
		var exists bool
		err := pool.QueryRow(ctx, fmt.Sprintf(
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema || '.' || table_name = '%s')", tbl)).
			Scan(&exists)
		if err != nil {
			t.Fatalf("check table %s: %v", tbl, err)
		}
		if !exists {
			t.Errorf("table %s should exist after migrations", tbl)
		}
	}
}

func TestPipeline_EndToEnd(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	seedScenarios(t, pool)

	pe, runID, rowsWritten := runPipeline(t, pool)
	if pe != nil {
		t.Fatalf("pipeline failed in %s: %v", pe.Phase, pe.Err)
	}
	if rowsWritten != 6 {
		t.Fatalf("rows written = %d, want 6", rowsWritten)
	}

	type want struct {
		success      int16
		category     string
		tier         string
		payType      string
		splitPattern string
	}
	wants := map[int64]want{
		101: {1, "current_95", "current_95", "insurance_only", "no_splits"},
		102: {1, "administrative_zero_fee", "no_fee", "no_payment", "no_splits"},
		103: {1, "current_95", "current_95", "direct_only", "normal_split"},
		104: {0, "cancelled_or_missed", "strict_98", "insurance_only", "normal_split"},
		105: {0, "in_planning", "below_90", "no_payment", "no_splits"},
		106: {0, "below_90", "below_90", "both_payment_types", "review_needed"},
	}

	for procNum, w := range wants {
		var g want
		err := pool.QueryRow(ctx,
			`SELECT success, category, threshold_tier, payment_type, split_pattern
			 FROM journey.classification_results
			 WHERE run_id = $1 AND proc_num = $2`, runID, procNum).
			Scan(&g.success, &g.category, &g.tier, &g.payType, &g.splitPattern)
		if err != nil {
			t.Fatalf("fetch result for proc %d: %v", procNum, err)
		}
		if g != w {
			t.Errorf("proc %d = %+v, want %+v", procNum, g, w)
		}
	}

	// Run bookkeeping
	var status string
	var scope, written int64
	err := pool.QueryRow(ctx,
		"SELECT status, procedures_in_scope, rows_written FROM journey.runs WHERE run_id = $1", runID).
		Scan(&status, &scope, &written)
	if err != nil {
		t.Fatalf("fetch run: %v", err)
	}
	if status != "complete" {
		t.Errorf("run status = %s, want complete", status)
	}
	if scope != 6 || written != 6 {
		t.Errorf("run scope/written = %d/%d, want 6/6", scope, written)
	}
}

func TestPipeline_Rerun_Deterministic(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	seedScenarios(t, pool)

	pe, run1, _ := runPipeline(t, pool)
	if pe != nil {
		t.Fatalf("first run failed in %s: %v", pe.Phase, pe.Err)
	}
	pe, run2, _ := runPipeline(t, pool)
	if pe != nil {
		t.Fatalf("second run failed in %s: %v", pe.Phase, pe.Err)
	}

	fetch := func(runID string) map[int64]string {
		rows, err := pool.Query(ctx,
			`SELECT proc_num,
			        success::text || '|' || category || '|' || threshold_tier || '|' ||
			        payment_type || '|' || split_pattern || '|' || total_paid_cents::text
			 FROM journey.classification_results WHERE run_id = $1`, runID)
		if err != nil {
			t.Fatalf("fetch results: %v", err)
		}
		defer rows.Close()
		out := make(map[int64]string)
		for rows.Next() {
			var procNum int64
			var line string
			if err := rows.Scan(&procNum, &line); err != nil {
				t.Fatalf("scan: %v", err)
			}
			out[procNum] = line
		}
		return out
	}

	first, second := fetch(run1), fetch(run2)
	if len(first) != len(second) {
		t.Fatalf("run sizes differ: %d vs %d", len(first), len(second))
	}
	for procNum, line := range first {
		if second[procNum] != line {
			t.Errorf("proc %d differs between runs:\n  %s\n  %s", procNum, line, second[procNum])
		}
	}
}

func TestPipeline_EmptyScope(t *testing.T) {
	pool := setupDB(t)

	pe, runID, rowsWritten := runPipeline(t, pool)
	if pe != nil {
		t.Fatalf("pipeline failed in %s: %v", pe.Phase, pe.Err)
	}
	if rowsWritten != 0 {
		t.Errorf("rows written = %d, want 0", rowsWritten)
	}

	var status string
	err := pool.QueryRow(context.Background(),
		"SELECT status FROM journey.runs WHERE run_id = $1", runID).Scan(&status)
	if err != nil {
		t.Fatalf("fetch run: %v", err)
	}
	if status != "complete" {
		t.Errorf("empty-scope run status = %s, want complete", status)
	}
}

func TestScopeHelpers(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	seedScenarios(t, pool)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	n, err := journey.CountScope(ctx, pool, from, to)
	if err != nil {
		t.Fatalf("CountScope: %v", err)
	}
	if n != 6 {
		t.Errorf("scope = %d, want 6", n)
	}

	dist, err := journey.StatusDistribution(ctx, pool, from, to)
	if err != nil {
		t.Fatalf("StatusDistribution: %v", err)
	}
	if dist[2] != 5 {
		t.Errorf("completed count = %d, want 5", dist[2])
	}
	if dist[1] != 1 {
		t.Errorf("planned count = %d, want 1", dist[1])
	}
}

func TestCleanupFailedRun_RemovesPartialResults(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	seedScenarios(t, pool)

	pe, goodRun, _ := runPipeline(t, pool)
	if pe != nil {
		t.Fatalf("pipeline failed in %s: %v", pe.Phase, pe.Err)
	}

	// Register a second run and give it partially written result rows, as a
	// run that died mid-classification would have.
	log := logging.Setup("text")
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	pf, err := journey.Preflight(ctx, pool, log, "test", from, to)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO journey.classification_results
		   (run_id, proc_num, success, category, threshold_tier, payment_type,
		    split_pattern, fee_cents, insurance_paid_cents, direct_paid_cents,
		    adjustment_cents, total_paid_cents, split_count, proc_date, classified_at)
		 SELECT $1, proc_num, success, category, threshold_tier, payment_type,
		        split_pattern, fee_cents, insurance_paid_cents, direct_paid_cents,
		        adjustment_cents, total_paid_cents, split_count, proc_date, classified_at
		 FROM journey.classification_results
		 WHERE run_id = $2`, pf.RunID, goodRun)
	if err != nil {
		t.Fatalf("copy partial results: %v", err)
	}

	countFor := func(run any) int64 {
		var n int64
		if err := pool.QueryRow(ctx,
			"SELECT count(*) FROM journey.classification_results WHERE run_id = $1", run).
			Scan(&n); err != nil {
			t.Fatalf("count results: %v", err)
		}
		return n
	}
	if n := countFor(pf.RunID); n != 6 {
		t.Fatalf("partial rows = %d, want 6", n)
	}

	journey.CleanupFailedRun(ctx, pool, log, pf.RunID)

	if n := countFor(pf.RunID); n != 0 {
		t.Errorf("failed run kept %d result rows, want 0", n)
	}
	var status string
	if err := pool.QueryRow(ctx,
		"SELECT status FROM journey.runs WHERE run_id = $1", pf.RunID).Scan(&status); err != nil {
		t.Fatalf("fetch run: %v", err)
	}
	if status != "failed" {
		t.Errorf("run status = %s, want failed", status)
	}

	// The completed run is untouched.
	if n := countFor(goodRun); n != 6 {
		t.Errorf("complete run rows = %d, want 6", n)
	}
}
