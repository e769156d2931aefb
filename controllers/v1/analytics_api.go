package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"talentdesk-backend/controllers"
	analyticshandler "talentdesk-backend/lib/analytics"
	"talentdesk-backend/middleware"
	apimodels "talentdesk-backend/models/api"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Get("summary", controller.summary)
		router.Get("export", controller.export)
	})
}

// @Summary Analytics summary
// @Tags Analytics
// @Description Pipeline counts, headcount and hiring metrics for the company
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.Summary}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/analytics/summary [get]
func (c *analyticsApiController) summary(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	resp, err := analyticshandler.Instance.Summary(companyID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Analytics summary error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export analytics
// @Tags Analytics
// @Description Exports the analytics summary to xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/analytics/export [get]
func (c *analyticsApiController) export(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	data, err := analyticshandler.Instance.ExportToXls(companyID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Analytics export error")
	}
	fileName := fmt.Sprintf("analytics-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
