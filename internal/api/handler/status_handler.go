package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expotrade/client-portal/internal/core/domain"
	"github.com/expotrade/client-portal/internal/core/ports"
)

// StatusHandler serves the root greeting and the status-check log.
type StatusHandler struct {
	service ports.StatusService
}

func NewStatusHandler(service ports.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

// Root handles GET /.
//
// @Summary      Greeting
// @Tags         status
// @Produce      json
// @Success      200  {object}  ackResponse
// @Router       / [get]
func (h *StatusHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, ackResponse{Message: "Hello World"})
}

// Create handles POST /status.
//
// @Summary      Record a status check
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        body  body      statusCheckRequest  true  "Client name"
// @Success      200   {object}  domain.StatusCheck
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /status [post]
func (h *StatusHandler) Create(c echo.Context) error {
	var req statusCheckRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	check, err := h.service.Record(c.Request().Context(), req.ClientName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, check)
}

// List handles GET /status.
//
// @Summary      List recorded status checks
// @Tags         status
// @Produce      json
// @Success      200  {array}  domain.StatusCheck
// @Router       /status [get]
func (h *StatusHandler) List(c echo.Context) error {
	checks, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if checks == nil {
		checks = []*domain.StatusCheck{}
	}
	return c.JSON(http.StatusOK, checks)
}
