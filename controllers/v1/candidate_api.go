package apiv1

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"talentdesk-backend/controllers"
	candidatehandler "talentdesk-backend/lib/candidate"
	filestorage "talentdesk-backend/lib/file-storage"
	"talentdesk-backend/lib/utils/helpers"
	"talentdesk-backend/middleware"
	apimodels "talentdesk-backend/models/api"
	candidateapimodels "talentdesk-backend/models/api/candidate"
	dbmodels "talentdesk-backend/models/db"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Get("export", controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("status", controller.changeStatus)
			idRoute.Post("resume", controller.uploadResume)
			idRoute.Get("resume", controller.resumeURL)
		})
	})
}

// @Summary Create candidate
// @Tags Candidate
// @Description Adds a candidate to an existing job's pipeline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	userName := middleware.GetUserName(ctx)
	id, err := candidatehandler.Instance.Create(companyID, userName, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Candidate create error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get candidate
// @Tags Candidate
// @Description Get candidate by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	companyID := middleware.GetUserCompany(ctx)
	resp, err := candidatehandler.Instance.GetByID(companyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Candidate get error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update candidate
// @Tags Candidate
// @Description Update candidate contact and profile fields
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/candidate/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload candidateapimodels.CandidateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	companyID := middleware.GetUserCompany(ctx)
	err = candidatehandler.Instance.Update(companyID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Candidate update error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change candidate status
// @Tags Candidate
// @Description Moves the candidate along the hiring pipeline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateStatusData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/candidate/{id}/status [put]
func (c *candidateApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload candidateapimodels.CandidateStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	companyID := middleware.GetUserCompany(ctx)
	err = candidatehandler.Instance.ChangeStatus(companyID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Candidate status change error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete candidate
// @Tags Candidate
// @Description Delete candidate by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/candidate/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	companyID := middleware.GetUserCompany(ctx)
	err = candidatehandler.Instance.Delete(companyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Candidate delete error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List candidates
// @Tags Candidate
// @Description List candidates with filtering and pagination
// @Param	body body	 candidateapimodels.CandidateFilter	true	"request filter body"
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/candidate/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := candidatehandler.Instance.List(companyID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Candidate list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Upload resume
// @Tags Candidate
// @Description Uploads the candidate's resume file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   resume		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/candidate/{id}/resume [post]
func (c *candidateApiController) uploadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := ctx.FormFile("resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Resume read error")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Resume read error")
	}

	companyID := middleware.GetUserCompany(ctx)
	contentType := helpers.GetFileContentType(file)
	fileID, err := filestorage.Instance.Upload(ctx.UserContext(), companyID, dbmodels.AttachmentResume, id, file.Filename, contentType, fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Resume upload error")
	}
	err = candidatehandler.Instance.SetResume(companyID, id, fileID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Resume link error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Resume download link
// @Tags Candidate
// @Description Returns a short-lived signed URL for the candidate's resume
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   expires_in			query 	int								false		 "expiry in seconds, 60..600"
// @Success 200 {object} apimodels.Response{data=filesapimodels.SignedURLResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/candidate/{id}/resume [get]
func (c *candidateApiController) resumeURL(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	companyID := middleware.GetUserCompany(ctx)
	fileID, err := candidatehandler.Instance.GetResumeFileID(companyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Resume lookup error")
	}
	expiresIn := ctx.QueryInt("expires_in", 0)
	resp, err := filestorage.Instance.GetSignedURL(ctx.UserContext(), companyID, fileID, expiresIn)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Resume signed url error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export candidates
// @Tags Candidate
// @Description Exports the full candidate list to xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/candidate/export [get]
func (c *candidateApiController) export(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	data, err := candidatehandler.Instance.ExportToXls(companyID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Candidate export error")
	}
	fileName := fmt.Sprintf("candidates-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
