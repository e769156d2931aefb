package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"talentdesk-backend/controllers"
	filestorage "talentdesk-backend/lib/file-storage"
	"talentdesk-backend/middleware"
	apimodels "talentdesk-backend/models/api"
)

type fileApiController struct {
	controllers.BaseAPIController
}

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Route("file", func(router fiber.Router) {
		router.Get(":id/signed-url", controller.signedURL)
		router.Get("owner/:id", controller.listByOwner)
	})
}

// @Summary File download link
// @Tags File
// @Description Returns a short-lived signed URL for a stored file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "file ID"
// @Param   expires_in			query 	int								false		 "expiry in seconds, 60..600"
// @Success 200 {object} apimodels.Response{data=filesapimodels.SignedURLResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/file/{id}/signed-url [get]
func (c *fileApiController) signedURL(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	companyID := middleware.GetUserCompany(ctx)
	expiresIn := ctx.QueryInt("expires_in", 0)
	resp, err := filestorage.Instance.GetSignedURL(ctx.UserContext(), companyID, id, expiresIn)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Signed url error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List files by owner
// @Tags File
// @Description Lists stored files attached to a candidate or job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "owner ID"
// @Success 200 {object} apimodels.Response{data=[]filesapimodels.FileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/file/owner/{id} [get]
func (c *fileApiController) listByOwner(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	companyID := middleware.GetUserCompany(ctx)
	resp, err := filestorage.Instance.ListByOwner(companyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "File list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
