package models

// RequisitionStatus is the overall approval status of a hiring requisition.
// Transitions are forward only; a requisition never returns to draft.
type RequisitionStatus string

const (
	RequisitionStatusDraft           RequisitionStatus = "draft"
	RequisitionStatusPendingApproval RequisitionStatus = "pending_dept_head"
	RequisitionStatusApproved        RequisitionStatus = "approved"
	RequisitionStatusRejected        RequisitionStatus = "rejected"
)

var requisitionStatusHumanName = map[RequisitionStatus]string{
	RequisitionStatusDraft:           "Draft",
	RequisitionStatusPendingApproval: "Pending approval",
	RequisitionStatusApproved:        "Approved",
	RequisitionStatusRejected:        "Rejected",
}

var requisitionStatusTransitions = map[RequisitionStatus][]RequisitionStatus{
	RequisitionStatusDraft:           {RequisitionStatusPendingApproval},
	RequisitionStatusPendingApproval: {RequisitionStatusApproved, RequisitionStatusRejected},
	RequisitionStatusApproved:        {},
	RequisitionStatusRejected:        {},
}

func (s RequisitionStatus) ToHuman() string {
	if human, exist := requisitionStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s RequisitionStatus) Validate() bool {
	_, exist := requisitionStatusHumanName[s]
	return exist
}

func (s RequisitionStatus) IsAllowChange(newStatus RequisitionStatus) bool {
	for _, allowed := range requisitionStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// ApprovalState is the per-approver decision flag (department head and MD)
// gating the requisition's final status.
type ApprovalState string

const (
	ApprovalStatePending  ApprovalState = "pending"
	ApprovalStateApproved ApprovalState = "approved"
	ApprovalStateRejected ApprovalState = "rejected"
)

func (s ApprovalState) Validate() bool {
	return s == ApprovalStatePending || s == ApprovalStateApproved || s == ApprovalStateRejected
}

func (s ApprovalState) IsDecided() bool {
	return s == ApprovalStateApproved || s == ApprovalStateRejected
}

type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
	JobStatusHold   JobStatus = "Hold"
)

// Job status moves independently of the requisition state.
var jobStatusTransitions = map[JobStatus][]JobStatus{
	JobStatusOpen:   {JobStatusHold, JobStatusClosed},
	JobStatusHold:   {JobStatusOpen, JobStatusClosed},
	JobStatusClosed: {JobStatusOpen},
}

func (s JobStatus) Validate() bool {
	_, exist := jobStatusTransitions[s]
	return exist
}

func (s JobStatus) IsAllowChange(newStatus JobStatus) bool {
	for _, allowed := range jobStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

type CandidateStatus string

const (
	CandidateStatusApplied     CandidateStatus = "Applied"
	CandidateStatusShortlisted CandidateStatus = "Shortlisted"
	CandidateStatusInterviewed CandidateStatus = "Interviewed"
	CandidateStatusOffered     CandidateStatus = "Offered"
	CandidateStatusHired       CandidateStatus = "Hired"
	CandidateStatusRejected    CandidateStatus = "Rejected"
	CandidateStatusHold        CandidateStatus = "Hold"
)

// Hired and Rejected are terminal. Hold keeps the candidate parked and can
// resume anywhere in the pipeline except Applied and Hired.
var candidateStatusTransitions = map[CandidateStatus][]CandidateStatus{
	CandidateStatusApplied:     {CandidateStatusShortlisted, CandidateStatusRejected, CandidateStatusHold},
	CandidateStatusShortlisted: {CandidateStatusInterviewed, CandidateStatusRejected, CandidateStatusHold},
	CandidateStatusInterviewed: {CandidateStatusOffered, CandidateStatusRejected, CandidateStatusHold},
	CandidateStatusOffered:     {CandidateStatusHired, CandidateStatusRejected, CandidateStatusHold},
	CandidateStatusHold:        {CandidateStatusShortlisted, CandidateStatusInterviewed, CandidateStatusOffered, CandidateStatusRejected},
	CandidateStatusHired:       {},
	CandidateStatusRejected:    {},
}

func (s CandidateStatus) Validate() bool {
	_, exist := candidateStatusTransitions[s]
	return exist
}

func (s CandidateStatus) IsAllowChange(newStatus CandidateStatus) bool {
	for _, allowed := range candidateStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s CandidateStatus) IsTerminal() bool {
	return len(candidateStatusTransitions[s]) == 0
}

// CandidateStatusList returns the pipeline stages in display order.
func CandidateStatusList() []CandidateStatus {
	return []CandidateStatus{
		CandidateStatusApplied,
		CandidateStatusShortlisted,
		CandidateStatusInterviewed,
		CandidateStatusOffered,
		CandidateStatusHired,
		CandidateStatusRejected,
		CandidateStatusHold,
	}
}

type EmployeeStatus string

const (
	EmployeeStatusActive        EmployeeStatus = "Active"
	EmployeeStatusServingNotice EmployeeStatus = "Serving Notice"
	EmployeeStatusInactive      EmployeeStatus = "Inactive"
)

// Serving Notice may return to Active when a resignation is withdrawn.
var employeeStatusTransitions = map[EmployeeStatus][]EmployeeStatus{
	EmployeeStatusActive:        {EmployeeStatusServingNotice, EmployeeStatusInactive},
	EmployeeStatusServingNotice: {EmployeeStatusInactive, EmployeeStatusActive},
	EmployeeStatusInactive:      {},
}

func (s EmployeeStatus) Validate() bool {
	_, exist := employeeStatusTransitions[s]
	return exist
}

func (s EmployeeStatus) IsAllowChange(newStatus EmployeeStatus) bool {
	for _, allowed := range employeeStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// IsSeparating reports whether the status requires separation metadata
// (last working date and mode of separation).
func (s EmployeeStatus) IsSeparating() bool {
	return s == EmployeeStatusServingNotice || s == EmployeeStatusInactive
}

func EmployeeStatusList() []EmployeeStatus {
	return []EmployeeStatus{
		EmployeeStatusActive,
		EmployeeStatusServingNotice,
		EmployeeStatusInactive,
	}
}

type RequisitionType string

const (
	RequisitionTypeCompany     RequisitionType = "company"
	RequisitionTypeConsultancy RequisitionType = "consultancy"
)

func (t RequisitionType) Validate() bool {
	return t == RequisitionTypeCompany || t == RequisitionTypeConsultancy
}

type RequisitionPriority string

const (
	RequisitionPriorityLow    RequisitionPriority = "low"
	RequisitionPriorityMedium RequisitionPriority = "medium"
	RequisitionPriorityHigh   RequisitionPriority = "high"
	RequisitionPriorityUrgent RequisitionPriority = "urgent"
)

func (p RequisitionPriority) Validate() bool {
	switch p {
	case RequisitionPriorityLow, RequisitionPriorityMedium, RequisitionPriorityHigh, RequisitionPriorityUrgent:
		return true
	}
	return false
}
