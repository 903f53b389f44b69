package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

type InfoController struct {
	router      *echo.Echo
	version     string
	contextPath string
}

func NewInfoController(router *echo.Echo, version string, contextPath string) *InfoController {
	return &InfoController{router: router, version: version, contextPath: contextPath}
}

// InitInfoRoutes initializes the root route
func (controller *InfoController) InitInfoRoutes() {
	controller.router.GET("/", controller.Info)
}

// Info godoc
// @Summary API information
// @Tags info
// @Produce json
// @Success 200 {object} model.InfoResponse
// @Router / [get]
func (controller *InfoController) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, model.InfoResponse{
		Message: msg.GetMessage("app.welcome"),
		Version: controller.version,
		Endpoints: model.InfoEndpoints{
			Todos: controller.contextPath + "/todos",
		},
	})
}
