package requisitionhandler

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"talentdesk-backend/db"
	companyusersstore "talentdesk-backend/lib/company/users/store"
	jobhandler "talentdesk-backend/lib/job"
	jobstore "talentdesk-backend/lib/job/store"
	requisitionstore "talentdesk-backend/lib/requisition/store"
	"talentdesk-backend/lib/smtp"
	"talentdesk-backend/lib/utils/helpers"
	initchecker "talentdesk-backend/lib/utils/init-checker"
	"talentdesk-backend/models"
	requisitionapimodels "talentdesk-backend/models/api/requisition"
	dbmodels "talentdesk-backend/models/db"
)

type Provider interface {
	Create(companyID, userID string, data requisitionapimodels.RequisitionCreateData) (id string, err error)
	GetByID(companyID, id string) (item requisitionapimodels.RequisitionView, err error)
	Update(companyID, id string, data requisitionapimodels.RequisitionData) error
	Delete(companyID, id string) error
	List(companyID string, filter requisitionapimodels.RequisitionFilter) (list []requisitionapimodels.RequisitionView, rowCount int64, err error)
	SendForApproval(companyID, id string) error
	DeptHeadDecision(companyID, id, userID string, role models.UserRole, data requisitionapimodels.RequisitionDecisionData) error
	MdDecision(companyID, id, userID string, role models.UserRole, data requisitionapimodels.RequisitionDecisionData) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:      requisitionstore.NewInstance(db.DB),
		usersStore: companyusersstore.NewInstance(db.DB),
		mailer:     smtp.Instance,
	}
	initchecker.CheckInit(
		"mailer", instance.mailer,
	)
	Instance = instance
}

type impl struct {
	store      requisitionstore.Provider
	usersStore companyusersstore.Provider
	mailer     smtp.Provider
}

func generateRequisitionCode() string {
	return fmt.Sprintf("REQ-%d", time.Now().UnixMilli())
}

func (i impl) Create(companyID, userID string, data requisitionapimodels.RequisitionCreateData) (id string, err error) {
	logger := log.WithField("company_id", companyID)
	rec := dbmodels.Requisition{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		RequisitionCode:  generateRequisitionCode(),
		Type:             data.Type,
		Title:            data.Title,
		Department:       data.Department,
		Location:         data.Location,
		EmploymentType:   data.EmploymentType,
		Openings:         data.Openings,
		Priority:         data.Priority,
		Description:      data.Description,
		Responsibilities: data.Responsibilities,
		Skills:           data.Skills,
		Experience:       data.Experience,
		Education:        data.Education,
		Currency:         data.Currency,
		SalaryType:       data.SalaryType,
		SalaryMin:        data.SalaryMin,
		SalaryMax:        data.SalaryMax,
		BudgetNotes:      data.BudgetNotes,
		ClientName:       data.ClientName,
		RaisedByID:       userID,
		FinalStatus:      models.RequisitionStatusDraft,
		DeptHeadEmail:    data.DeptHeadEmail,
		DeptHeadStatus:   models.ApprovalStatePending,
		MdEmail:          data.MdEmail,
		MdStatus:         models.ApprovalStatePending,
	}
	if data.NeededBy != "" {
		neededBy, err := helpers.ParseDateOnly(data.NeededBy)
		if err != nil {
			return "", helpers.ValidationErrf("needed_by must be a date in YYYY-MM-DD format")
		}
		rec.NeededBy = &neededBy
	}
	if data.SendForApproval {
		if err = i.resolveApprovers(&rec); err != nil {
			return "", err
		}
		rec.FinalStatus = models.RequisitionStatusPendingApproval
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("requisition create error")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("requisition created")
	if data.SendForApproval {
		i.notifyApprovers(rec, data.ApproverMessage)
	}
	return id, nil
}

// resolveApprovers fills the dept-head and MD references: resolved company
// users by role (dept head preferring a department match) or the manually
// entered contact emails. Sending for approval with neither is rejected.
func (i impl) resolveApprovers(rec *dbmodels.Requisition) error {
	deptHead, err := i.usersStore.FindApprover(rec.CompanyID, models.UserRoleDeptHead, rec.Department)
	if err != nil {
		return err
	}
	if deptHead != nil {
		rec.DeptHeadID = &deptHead.ID
		if rec.DeptHeadEmail == "" {
			rec.DeptHeadEmail = deptHead.Email
		}
	}
	if rec.DeptHeadID == nil && rec.DeptHeadEmail == "" {
		return helpers.ValidationErrf("department head contact could not be resolved, enter dept_head_email")
	}
	md, err := i.usersStore.FindApprover(rec.CompanyID, models.UserRoleMD, "")
	if err != nil {
		return err
	}
	if md != nil {
		rec.MdID = &md.ID
		if rec.MdEmail == "" {
			rec.MdEmail = md.Email
		}
	}
	if rec.MdID == nil && rec.MdEmail == "" {
		return helpers.ValidationErrf("managing director contact could not be resolved, enter md_email")
	}
	return nil
}

func (i impl) notifyApprovers(rec dbmodels.Requisition, message string) {
	subject := fmt.Sprintf("Requisition %s awaits your approval", rec.RequisitionCode)
	body := fmt.Sprintf("Requisition %s (%s, %s, %d openings) was sent for approval.\n%s",
		rec.RequisitionCode, rec.Title, rec.Department, rec.Openings, message)
	for _, to := range []string{rec.DeptHeadEmail, rec.MdEmail} {
		if to == "" {
			continue
		}
		if err := i.mailer.SendEMail(models.SystemUser, to, body, subject); err != nil {
			log.WithError(err).
				WithField("rec_id", rec.ID).
				Warn("approver notification not sent")
		}
	}
}

func (i impl) GetByID(companyID, id string) (item requisitionapimodels.RequisitionView, err error) {
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return requisitionapimodels.RequisitionView{}, err
	}
	return requisitionapimodels.RequisitionConvert(*rec), nil
}

func (i impl) Update(companyID, id string, data requisitionapimodels.RequisitionData) error {
	logger := log.WithField("company_id", companyID).
		WithField("rec_id", id)
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	if rec.FinalStatus != models.RequisitionStatusDraft && rec.FinalStatus != models.RequisitionStatusPendingApproval {
		return helpers.ValidationErrf("requisition in status %v can no longer be edited", rec.FinalStatus)
	}
	var neededBy *time.Time
	if data.NeededBy != "" {
		parsed, err := helpers.ParseDateOnly(data.NeededBy)
		if err != nil {
			return helpers.ValidationErrf("needed_by must be a date in YYYY-MM-DD format")
		}
		neededBy = &parsed
	}
	updMap := map[string]interface{}{
		"type":             data.Type,
		"title":            data.Title,
		"department":       data.Department,
		"location":         data.Location,
		"employment_type":  data.EmploymentType,
		"openings":         data.Openings,
		"priority":         data.Priority,
		"needed_by":        neededBy,
		"description":      data.Description,
		"responsibilities": data.Responsibilities,
		"skills":           pq.StringArray(data.Skills),
		"experience":       data.Experience,
		"education":        data.Education,
		"currency":         data.Currency,
		"salary_type":      data.SalaryType,
		"salary_min":       data.SalaryMin,
		"salary_max":       data.SalaryMax,
		"budget_notes":     data.BudgetNotes,
		"client_name":      data.ClientName,
		"is_edited":        true,
	}
	err = i.store.Update(companyID, id, updMap)
	if err != nil {
		logger.WithError(err).Error("requisition update error")
		return err
	}
	logger.Info("requisition updated")
	return nil
}

func (i impl) Delete(companyID, id string) error {
	logger := log.WithField("company_id", companyID).
		WithField("rec_id", id)
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	if rec.FinalStatus != models.RequisitionStatusDraft {
		return helpers.ValidationErrf("only draft requisitions can be deleted")
	}
	err = i.store.Delete(companyID, id)
	if err != nil {
		logger.WithError(err).Error("requisition delete error")
		return err
	}
	logger.Info("requisition deleted")
	return nil
}

func (i impl) List(companyID string, filter requisitionapimodels.RequisitionFilter) (list []requisitionapimodels.RequisitionView, rowCount int64, err error) {
	logger := log.WithField("company_id", companyID)
	rowCount, err = i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []requisitionapimodels.RequisitionView{}, rowCount, nil
	}
	recList, err := i.store.List(companyID, filter)
	if err != nil {
		logger.WithError(err).Error("requisition list error")
		return nil, 0, err
	}
	result := make([]requisitionapimodels.RequisitionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, requisitionapimodels.RequisitionConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) SendForApproval(companyID, id string) error {
	logger := log.WithField("company_id", companyID).
		WithField("rec_id", id)
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	if !rec.FinalStatus.IsAllowChange(models.RequisitionStatusPendingApproval) {
		return helpers.ValidationErrf("status change from %v to %v is not allowed", rec.FinalStatus, models.RequisitionStatusPendingApproval)
	}
	if err = i.resolveApprovers(rec); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"final_status":    models.RequisitionStatusPendingApproval,
		"dept_head_id":    rec.DeptHeadID,
		"dept_head_email": rec.DeptHeadEmail,
		"md_id":           rec.MdID,
		"md_email":        rec.MdEmail,
	}
	err = i.store.Update(companyID, id, updMap)
	if err != nil {
		logger.WithError(err).Error("requisition send for approval error")
		return err
	}
	logger.Info("requisition sent for approval")
	i.notifyApprovers(*rec, "")
	return nil
}

func (i impl) DeptHeadDecision(companyID, id, userID string, role models.UserRole, data requisitionapimodels.RequisitionDecisionData) error {
	return i.decide(companyID, id, userID, role, data, false)
}

func (i impl) MdDecision(companyID, id, userID string, role models.UserRole, data requisitionapimodels.RequisitionDecisionData) error {
	return i.decide(companyID, id, userID, role, data, true)
}

func (i impl) decide(companyID, id, userID string, role models.UserRole, data requisitionapimodels.RequisitionDecisionData, asMd bool) error {
	logger := log.WithField("company_id", companyID).
		WithField("rec_id", id).
		WithField("user_id", userID)
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	if rec.FinalStatus != models.RequisitionStatusPendingApproval {
		return helpers.ValidationErrf("requisition is not pending approval")
	}
	if err = checkDecider(rec, userID, role, asMd); err != nil {
		return err
	}
	state := models.ApprovalStateApproved
	if !data.Approve {
		state = models.ApprovalStateRejected
	}
	updMap := map[string]interface{}{}
	if asMd {
		if rec.MdStatus.IsDecided() {
			return helpers.ValidationErrf("MD decision has already been made")
		}
		rec.MdStatus = state
		updMap["md_status"] = state
		updMap["md_remarks"] = data.Remarks
	} else {
		if rec.DeptHeadStatus.IsDecided() {
			return helpers.ValidationErrf("department head decision has already been made")
		}
		rec.DeptHeadStatus = state
		updMap["dept_head_status"] = state
		updMap["dept_head_remarks"] = data.Remarks
	}

	approved := rec.BothApproved()
	if rec.AnyRejected() {
		updMap["final_status"] = models.RequisitionStatusRejected
	} else if approved {
		updMap["final_status"] = models.RequisitionStatusApproved
	}

	// The final approval and the job synthesis must land together: a failed
	// job insert rolls the whole decision back.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := requisitionstore.NewInstance(tx)
		if err := store.Update(companyID, id, updMap); err != nil {
			return err
		}
		if approved {
			return i.synthesizeJob(tx, *rec)
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("requisition decision error")
		return err
	}
	logger.WithField("state", state).Info("requisition decision recorded")
	if _, ok := updMap["final_status"]; ok {
		i.notifyRaiser(*rec, updMap["final_status"].(models.RequisitionStatus))
	}
	return nil
}

func checkDecider(rec *dbmodels.Requisition, userID string, role models.UserRole, asMd bool) error {
	if role.IsAdmin() {
		return nil
	}
	if asMd {
		if role != models.UserRoleMD {
			return helpers.ValidationErrf("only the managing director can make this decision")
		}
		if rec.MdID != nil && *rec.MdID != userID {
			return helpers.ValidationErrf("decision is assigned to another managing director")
		}
		return nil
	}
	if role != models.UserRoleDeptHead {
		return helpers.ValidationErrf("only the department head can make this decision")
	}
	if rec.DeptHeadID != nil && *rec.DeptHeadID != userID {
		return helpers.ValidationErrf("decision is assigned to another department head")
	}
	return nil
}

func (i impl) synthesizeJob(tx *gorm.DB, rec dbmodels.Requisition) error {
	store := jobstore.NewInstance(tx)
	raisedBy := models.SystemUser
	if rec.RaisedBy != nil {
		raisedBy = rec.RaisedBy.GetFullName()
	}
	_, err := store.Create(dbmodels.Job{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: rec.CompanyID,
		},
		JobCode:         jobhandler.GenerateJobCode(),
		RequisitionCode: rec.RequisitionCode,
		Title:           rec.Title,
		Department:      rec.Department,
		Location:        rec.Location,
		Vacancy:         rec.Openings,
		Description:     rec.Description,
		SalaryMin:       rec.SalaryMin,
		SalaryMax:       rec.SalaryMax,
		Status:          models.JobStatusOpen,
		InitiatedBy:     raisedBy,
	})
	return err
}

func (i impl) notifyRaiser(rec dbmodels.Requisition, finalStatus models.RequisitionStatus) {
	if rec.RaisedBy == nil || rec.RaisedBy.Email == "" {
		return
	}
	subject := fmt.Sprintf("Requisition %s %s", rec.RequisitionCode, finalStatus.ToHuman())
	body := fmt.Sprintf("Requisition %s (%s) is now %s.", rec.RequisitionCode, rec.Title, finalStatus.ToHuman())
	if err := i.mailer.SendEMail(models.SystemUser, rec.RaisedBy.Email, body, subject); err != nil {
		log.WithError(err).
			WithField("rec_id", rec.ID).
			Warn("raiser notification not sent")
	}
}

func (i impl) getRec(companyID, id string) (*dbmodels.Requisition, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, helpers.NotFoundErrf("requisition not found")
	}
	return rec, nil
}
