package snapshot

import (
	"fmt"

	"github.com/gyeh/journeystats/internal/model"
	"github.com/gyeh/journeystats/internal/normalize"
)

// Converters from Parquet snapshot rows to cents-normalized DB rows.

func toProcedure(r *model.ProcedureRow) (*model.Procedure, error) {
	d := normalize.ParseDate(r.ProcDate)
	if d == nil {
		return nil, fmt.Errorf("proc %d: unparseable proc_date %q", r.ProcNum, r.ProcDate)
	}
	return &model.Procedure{
		ProcNum:    r.ProcNum,
		PatientNum: r.PatNum,
		CodeNum:    r.CodeNum,
		Status:     model.ProcStatus(r.ProcStatus),
		FeeCents:   normalize.Cents(r.ProcFee),
		ProcDate:   *d,
	}, nil
}

func toProcedureCode(r *model.ProcedureCodeRow) (*model.ProcedureCode, error) {
	code := normalize.Code(r.ProcCode)
	if code == "" {
		return nil, fmt.Errorf("code_num %d: blank proc_code", r.CodeNum)
	}
	return &model.ProcedureCode{
		CodeNum:  r.CodeNum,
		ProcCode: code,
		Descript: r.Descript,
	}, nil
}

func toClaimPayment(r *model.ClaimProcRow) (*model.ClaimPayment, error) {
	return &model.ClaimPayment{
		ClaimProcNum: r.ClaimProcNum,
		ProcNum:      r.ProcNum,
		Status:       int16(r.Status),
		InsPaidCents: normalize.Cents(r.InsPayAmt),
	}, nil
}

func toPaySplit(r *model.PaySplitRow) (*model.PaySplit, error) {
	return &model.PaySplit{
		SplitNum:   r.SplitNum,
		ProcNum:    r.ProcNum,
		PaymentNum: r.PayNum,
		SplitCents: normalize.Cents(r.SplitAmt),
	}, nil
}

func toAdjustment(r *model.AdjustmentRow) (*model.Adjustment, error) {
	return &model.Adjustment{
		AdjNum:   r.AdjNum,
		ProcNum:  r.ProcNum,
		AdjType:  r.AdjType,
		AdjCents: normalize.Cents(r.AdjAmt),
	}, nil
}
