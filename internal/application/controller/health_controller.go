package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/health"
)

type HealthController struct {
	router  *echo.Echo
	useCase health.UseCase
}

func NewHealthController(router *echo.Echo, useCase health.UseCase) *HealthController {
	return &HealthController{router: router, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.router.GET("/health", controller.CheckHealth())
	controller.router.GET("/health/components", controller.CheckComponents())
}

// CheckHealth godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /health [get]
func (controller *HealthController) CheckHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, controller.useCase.CheckHealth())
	}
}

// CheckComponents godoc
// @Summary Component health
// @Description Storage and events health; 503 when any component is down
// @Tags health
// @Produce json
// @Success 200 {object} model.ComponentsHealthResponse
// @Failure 503 {object} model.ComponentsHealthResponse
// @Router /health/components [get]
func (controller *HealthController) CheckComponents() echo.HandlerFunc {
	return func(c echo.Context) error {
		healthResponse := controller.useCase.CheckComponents(c.Request().Context())

		status := http.StatusOK
		if healthResponse.Status == model.StatusDown {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, healthResponse)
	}
}
