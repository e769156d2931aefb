package requisitionapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"talentdesk-backend/models"
	apimodels "talentdesk-backend/models/api"
	dbmodels "talentdesk-backend/models/db"
)

type RequisitionData struct {
	Type             models.RequisitionType     `json:"type"`              // company|consultancy
	Title            string                     `json:"title"`             // position title
	Department       string                     `json:"department"`        // hiring department
	Location         string                     `json:"location"`          // work location
	EmploymentType   string                     `json:"employment_type"`   // full-time/part-time/contract
	Openings         int                        `json:"openings"`          // number of positions
	Priority         models.RequisitionPriority `json:"priority"`          // low|medium|high|urgent
	NeededBy         string                     `json:"needed_by"`         // target date, YYYY-MM-DD
	Description      string                     `json:"description"`       // job description
	Responsibilities string                     `json:"responsibilities"`  // key responsibilities
	Skills           []string                   `json:"skills"`            // required skills
	Experience       string                     `json:"experience"`        // required experience
	Education        string                     `json:"education"`         // required education
	Currency         string                     `json:"currency"`          // salary currency
	SalaryType       string                     `json:"salary_type"`       // annual/monthly
	SalaryMin        int                        `json:"salary_min"`        // salary range lower bound
	SalaryMax        int                        `json:"salary_max"`        // salary range upper bound
	BudgetNotes      string                     `json:"budget_notes"`      // budget remarks
	ClientName       string                     `json:"client_name"`       // end client, consultancy only
	DeptHeadEmail    string                     `json:"dept_head_email"`   // manual dept head contact
	MdEmail          string                     `json:"md_email"`          // manual MD contact
	ApproverMessage  string                     `json:"approver_message"`  // note to the approvers
}

func (r RequisitionData) Validate() error {
	if !r.Type.Validate() {
		return errors.New("unknown requisition type")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(r.Department) == "" {
		return errors.New("department is required")
	}
	if r.Openings < 1 {
		return errors.New("openings must be at least 1")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required")
	}
	if r.Priority != "" && !r.Priority.Validate() {
		return errors.New("unknown priority")
	}
	if r.SalaryMin > 0 && r.SalaryMax > 0 && r.SalaryMax < r.SalaryMin {
		return errors.New("salary_max must not be less than salary_min")
	}
	if r.Type == models.RequisitionTypeConsultancy && strings.TrimSpace(r.ClientName) == "" {
		return errors.New("client name is required for consultancy requisitions")
	}
	if r.NeededBy != "" {
		if _, err := time.Parse("2006-01-02", r.NeededBy); err != nil {
			return errors.New("needed_by must be a date in YYYY-MM-DD format")
		}
	}
	return nil
}

type RequisitionCreateData struct {
	RequisitionData
	// SendForApproval switches the initial status from draft to
	// pending_dept_head ("Save Draft" vs "Send for Approval").
	SendForApproval bool `json:"send_for_approval"`
}

type RequisitionDecisionData struct {
	Approve bool   `json:"approve"`
	Remarks string `json:"remarks"`
}

type RequisitionFilter struct {
	apimodels.Pagination
	Status models.RequisitionStatus `json:"status"`
	Type   models.RequisitionType   `json:"type"`
	Search string                   `json:"search"` // title substring
}

func (f RequisitionFilter) Validate() error {
	if f.Status != "" && !f.Status.Validate() {
		return errors.New("unknown status filter")
	}
	if f.Type != "" && !f.Type.Validate() {
		return errors.New("unknown type filter")
	}
	return nil
}

type RequisitionView struct {
	RequisitionData
	ID              string                   `json:"id"`
	RequisitionCode string                   `json:"requisition_code"`
	FinalStatus     models.RequisitionStatus `json:"final_status"`
	StatusName      string                   `json:"status_name"`
	DeptHeadID      string                   `json:"dept_head_id,omitempty"`
	DeptHeadName    string                   `json:"dept_head_name,omitempty"`
	DeptHeadStatus  models.ApprovalState     `json:"dept_head_status"`
	DeptHeadRemarks string                   `json:"dept_head_remarks,omitempty"`
	MdID            string                   `json:"md_id,omitempty"`
	MdName          string                   `json:"md_name,omitempty"`
	MdStatus        models.ApprovalState     `json:"md_status"`
	MdRemarks       string                   `json:"md_remarks,omitempty"`
	RaisedBy        string                   `json:"raised_by"`
	IsEdited        bool                     `json:"is_edited"`
	CreationDate    time.Time                `json:"creation_date"`
}

func RequisitionConvert(rec dbmodels.Requisition) RequisitionView {
	result := RequisitionView{
		RequisitionData: RequisitionData{
			Type:             rec.Type,
			Title:            rec.Title,
			Department:       rec.Department,
			Location:         rec.Location,
			EmploymentType:   rec.EmploymentType,
			Openings:         rec.Openings,
			Priority:         rec.Priority,
			Description:      rec.Description,
			Responsibilities: rec.Responsibilities,
			Skills:           rec.Skills,
			Experience:       rec.Experience,
			Education:        rec.Education,
			Currency:         rec.Currency,
			SalaryType:       rec.SalaryType,
			SalaryMin:        rec.SalaryMin,
			SalaryMax:        rec.SalaryMax,
			BudgetNotes:      rec.BudgetNotes,
			ClientName:       rec.ClientName,
			DeptHeadEmail:    rec.DeptHeadEmail,
			MdEmail:          rec.MdEmail,
		},
		ID:              rec.ID,
		RequisitionCode: rec.RequisitionCode,
		FinalStatus:     rec.FinalStatus,
		StatusName:      rec.FinalStatus.ToHuman(),
		DeptHeadStatus:  rec.DeptHeadStatus,
		DeptHeadRemarks: rec.DeptHeadRemarks,
		MdStatus:        rec.MdStatus,
		MdRemarks:       rec.MdRemarks,
		IsEdited:        rec.IsEdited,
		CreationDate:    rec.CreatedAt,
	}
	if rec.NeededBy != nil {
		result.NeededBy = rec.NeededBy.Format("2006-01-02")
	}
	if rec.DeptHeadID != nil {
		result.DeptHeadID = *rec.DeptHeadID
	}
	if rec.DeptHead != nil {
		result.DeptHeadName = rec.DeptHead.GetFullName()
	}
	if rec.MdID != nil {
		result.MdID = *rec.MdID
	}
	if rec.Md != nil {
		result.MdName = rec.Md.GetFullName()
	}
	if rec.RaisedBy != nil {
		result.RaisedBy = rec.RaisedBy.GetFullName()
	}
	return result
}
