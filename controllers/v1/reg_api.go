package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"talentdesk-backend/controllers"
	authhandler "talentdesk-backend/lib/auth"
	apimodels "talentdesk-backend/models/api"
	authapimodels "talentdesk-backend/models/api/auth"
)

type regApiController struct {
	controllers.BaseAPIController
}

func InitRegRouters(app *fiber.App) {
	controller := regApiController{}
	app.Route("registration", func(router fiber.Router) {
		router.Post("", controller.register)
	})
}

// @Summary Company registration
// @Tags Registration
// @Description Registers a company and its first admin user
// @Param	body				body		authapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/registration [post]
func (c *regApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID, err := authhandler.Instance.Register(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Company registration error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(companyID))
}
