package model

// COPY column orders and values for the raw snapshot-mirror tables.

// ProcedureCode is a reference row describing the type of a procedure.
type ProcedureCode struct {
	CodeNum  int64
	ProcCode string
	Descript string
}

// ProcedureColumns returns the COPY column order for raw.procedures.
func ProcedureColumns() []string {
	return []string{"proc_num", "patient_num", "code_num", "proc_status", "proc_fee_cents", "proc_date"}
}

// CopyValues returns the values for COPY into raw.procedures.
func (p *Procedure) CopyValues() []any {
	return []any{p.ProcNum, p.PatientNum, p.CodeNum, int16(p.Status), p.FeeCents, p.ProcDate}
}

// ProcedureCodeColumns returns the COPY column order for raw.procedure_codes.
func ProcedureCodeColumns() []string {
	return []string{"code_num", "proc_code", "descript"}
}

// CopyValues returns the values for COPY into raw.procedure_codes.
func (c *ProcedureCode) CopyValues() []any {
	return []any{c.CodeNum, c.ProcCode, c.Descript}
}

// ClaimPaymentColumns returns the COPY column order for raw.claim_procs.
func ClaimPaymentColumns() []string {
	return []string{"claim_proc_num", "proc_num", "status", "ins_pay_cents"}
}

// CopyValues returns the values for COPY into raw.claim_procs.
func (c *ClaimPayment) CopyValues() []any {
	return []any{c.ClaimProcNum, c.ProcNum, c.Status, c.InsPaidCents}
}

// PaySplitColumns returns the COPY column order for raw.pay_splits.
func PaySplitColumns() []string {
	return []string{"split_num", "proc_num", "payment_num", "split_cents"}
}

// CopyValues returns the values for COPY into raw.pay_splits.
func (s *PaySplit) CopyValues() []any {
	return []any{s.SplitNum, s.ProcNum, s.PaymentNum, s.SplitCents}
}

// AdjustmentColumns returns the COPY column order for raw.adjustments.
func AdjustmentColumns() []string {
	return []string{"adj_num", "proc_num", "adj_type", "adj_cents"}
}

// CopyValues returns the values for COPY into raw.adjustments.
func (a *Adjustment) CopyValues() []any {
	return []any{a.AdjNum, a.ProcNum, a.AdjType, a.AdjCents}
}
