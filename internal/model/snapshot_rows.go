package model

// Parquet row structs mirroring an OpenDental practice snapshot export.
// Money fields are float64 dollars as written by the exporter; they get
// converted to int64 cents during normalization.

// ProcedureRow mirrors one procedurelog row.
type ProcedureRow struct {
	ProcNum    int64   `parquet:"proc_num"`
	PatNum     int64   `parquet:"pat_num"`
	CodeNum    int64   `parquet:"code_num"`
	ProcStatus int32   `parquet:"proc_status"`
	ProcFee    float64 `parquet:"proc_fee"`
	ProcDate   string  `parquet:"proc_date"`
}

// ProcedureCodeRow mirrors one procedurecode row.
type ProcedureCodeRow struct {
	CodeNum  int64  `parquet:"code_num"`
	ProcCode string `parquet:"proc_code"`
	Descript string `parquet:"descript,optional"`
}

// ClaimProcRow mirrors one claimproc row (insurance payment attribution).
type ClaimProcRow struct {
	ClaimProcNum int64   `parquet:"claim_proc_num"`
	ProcNum      int64   `parquet:"proc_num"`
	Status       int32   `parquet:"status"`
	InsPayAmt    float64 `parquet:"ins_pay_amt"`
}

// PaySplitRow mirrors one paysplit row (patient payment attribution).
type PaySplitRow struct {
	SplitNum int64   `parquet:"split_num"`
	ProcNum  int64   `parquet:"proc_num"`
	PayNum   int64   `parquet:"pay_num"`
	SplitAmt float64 `parquet:"split_amt"`
}

// AdjustmentRow mirrors one adjustment row.
type AdjustmentRow struct {
	AdjNum  int64   `parquet:"adj_num"`
	ProcNum int64   `parquet:"proc_num"`
	AdjType int64   `parquet:"adj_type"`
	AdjAmt  float64 `parquet:"adj_amt"`
}
