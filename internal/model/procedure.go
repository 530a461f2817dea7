package model

import "time"

// Procedure is one clinical act pulled from raw.procedures, joined with its
// procedure code. Fee is int64 cents.
type Procedure struct {
	ProcNum    int64
	PatientNum int64
	CodeNum    int64
	ProcCode   string
	Status     ProcStatus
	FeeCents   int64
	ProcDate   time.Time
}

// ClaimPayment is one insurance claim payment line attributed to a procedure.
type ClaimPayment struct {
	ClaimProcNum int64
	ProcNum      int64
	Status       int16
	InsPaidCents int64
}

// PaySplit attributes part of a patient payment to one procedure.
type PaySplit struct {
	SplitNum   int64
	ProcNum    int64
	PaymentNum int64
	SplitCents int64
}

// Adjustment is a signed monetary correction tied to a procedure.
type Adjustment struct {
	AdjNum   int64
	ProcNum  int64
	AdjType  int64
	AdjCents int64
}

// PaymentActivity is the per-procedure financial aggregate. All values are
// int64 cents. TotalPaidCents is insurance + direct; adjustments are
// carried separately and never folded into the total.
type PaymentActivity struct {
	InsurancePaidCents int64
	DirectPaidCents    int64
	AdjustmentCents    int64
	TotalPaidCents     int64
	SplitCount         int
}
