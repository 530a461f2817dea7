package journey

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/journeystats/internal/model"
	sqlq "github.com/gyeh/journeystats/internal/sql"
)

// financials holds the payment, split, and adjustment rows for one batch of
// procedures, keyed by proc_num.
type financials struct {
	claims map[int64][]model.ClaimPayment
	splits map[int64][]model.PaySplit
	adjs   map[int64][]model.Adjustment
}

// fetchProcedures returns the next keyset page of procedures in the scope,
// ordered by proc_num, starting after afterProcNum.
func fetchProcedures(ctx context.Context, pool *pgxpool.Pool, from, to time.Time, afterProcNum int64, limit int) ([]model.Procedure, error) {
	rows, err := pool.Query(ctx, sqlq.SelectProcedures, from, to, afterProcNum, limit)
	if err != nil {
		return nil, fmt.Errorf("select procedures: %w", err)
	}
	defer rows.Close()

	procs := make([]model.Procedure, 0, limit)
	for rows.Next() {
		var p model.Procedure
		var status int16
		if err := rows.Scan(&p.ProcNum, &p.PatientNum, &p.CodeNum, &p.ProcCode, &status, &p.FeeCents, &p.ProcDate); err != nil {
			return nil, fmt.Errorf("scan procedure: %w", err)
		}
		p.Status = model.ProcStatus(status)
		procs = append(procs, p)
	}
	return procs, rows.Err()
}

// fetchFinancials loads all claim payments, pay splits, and adjustments
// linked to the given procedures. Procedures with no linked rows simply have
// no map entry, which aggregates to zero.
func fetchFinancials(ctx context.Context, pool *pgxpool.Pool, procNums []int64) (*financials, error) {
	fin := &financials{
		claims: make(map[int64][]model.ClaimPayment),
		splits: make(map[int64][]model.PaySplit),
		adjs:   make(map[int64][]model.Adjustment),
	}

	rows, err := pool.Query(ctx, sqlq.SelectClaimPayments, procNums)
	if err != nil {
		return nil, fmt.Errorf("select claim payments: %w", err)
	}
	for rows.Next() {
		var c model.ClaimPayment
		if err := rows.Scan(&c.ClaimProcNum, &c.ProcNum, &c.Status, &c.InsPaidCents); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan claim payment: %w", err)
		}
		fin.claims[c.ProcNum] = append(fin.claims[c.ProcNum], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("claim payments: %w", err)
	}
	rows.Close()

	rows, err = pool.Query(ctx, sqlq.SelectPaySplits, procNums)
	if err != nil {
		return nil, fmt.Errorf("select pay splits: %w", err)
	}
	for rows.Next() {
		var s model.PaySplit
		if err := rows.Scan(&s.SplitNum, &s.ProcNum, &s.PaymentNum, &s.SplitCents); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan pay split: %w", err)
		}
		fin.splits[s.ProcNum] = append(fin.splits[s.ProcNum], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pay splits: %w", err)
	}
	rows.Close()

	rows, err = pool.Query(ctx, sqlq.SelectAdjustments, procNums)
	if err != nil {
		return nil, fmt.Errorf("select adjustments: %w", err)
	}
	for rows.Next() {
		var a model.Adjustment
		if err := rows.Scan(&a.AdjNum, &a.ProcNum, &a.AdjType, &a.AdjCents); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		fin.adjs[a.ProcNum] = append(fin.adjs[a.ProcNum], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("adjustments: %w", err)
	}
	rows.Close()

	return fin, nil
}
