package model

// ProcStatus mirrors the OpenDental procedurelog status column.
type ProcStatus int16

// OpenDental procedure status values.
const (
	StatusTreatmentPlanned ProcStatus = 1 // TP
	StatusComplete         ProcStatus = 2 // C
	StatusExistingCurrent  ProcStatus = 3 // EC
	StatusExistingOther    ProcStatus = 4 // EO
	StatusReferred         ProcStatus = 5 // R
	StatusDeleted          ProcStatus = 6 // D
	StatusCondition        ProcStatus = 7 // Cn
)

// String returns the OpenDental short code for the status.
func (s ProcStatus) String() string {
	switch s {
	case StatusTreatmentPlanned:
		return "TP"
	case StatusComplete:
		return "C"
	case StatusExistingCurrent:
		return "EC"
	case StatusExistingOther:
		return "EO"
	case StatusReferred:
		return "R"
	case StatusDeleted:
		return "D"
	case StatusCondition:
		return "Cn"
	}
	return "unknown"
}
