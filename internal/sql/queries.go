package sql

import "embed"

//go:embed migrations
var Migrations embed.FS

//go:embed queries/select_procedures.sql
var SelectProcedures string

//go:embed queries/select_claim_payments.sql
var SelectClaimPayments string

//go:embed queries/select_pay_splits.sql
var SelectPaySplits string

//go:embed queries/select_adjustments.sql
var SelectAdjustments string

//go:embed queries/count_scope.sql
var CountScope string

//go:embed queries/status_distribution.sql
var StatusDistribution string

//go:embed queries/register_run.sql
var RegisterRun string

//go:embed queries/update_run_status.sql
var UpdateRunStatus string

//go:embed queries/finish_run.sql
var FinishRun string

//go:embed queries/delete_run_results.sql
var DeleteRunResults string

//go:embed queries/latest_run.sql
var LatestRun string

//go:embed queries/select_results.sql
var SelectResults string

//go:embed queries/report_by_category.sql
var ReportByCategory string

//go:embed queries/report_by_tier.sql
var ReportByTier string

//go:embed queries/report_by_payment_type.sql
var ReportByPaymentType string

//go:embed queries/report_by_split_pattern.sql
var ReportBySplitPattern string

//go:embed queries/report_by_month.sql
var ReportByMonth string

//go:embed queries/analyze_results.sql
var AnalyzeResults string
