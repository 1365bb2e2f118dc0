package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expotrade/client-portal/internal/api/metrics"
	"github.com/expotrade/client-portal/internal/core/ports"
)

// LeadHandler serves the public contact and quote forms. No authentication.
type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// Contact handles POST /contact.
//
// @Summary      Submit the contact form
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact form"
// @Success      200   {object}  ackResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /contact [post]
func (h *LeadHandler) Contact(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.service.SubmitContact(c.Request().Context(), toContactInput(req)); err != nil {
		return err
	}
	metrics.LeadsSubmittedTotal.WithLabelValues("contact").Inc()

	return c.JSON(http.StatusOK, ackResponse{Message: "Contact form submitted successfully"})
}

// Quote handles POST /quote.
//
// @Summary      Request a quote
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      quoteRequest  true  "Quote request"
// @Success      200   {object}  ackResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /quote [post]
func (h *LeadHandler) Quote(c echo.Context) error {
	var req quoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.service.SubmitQuote(c.Request().Context(), toQuoteInput(req)); err != nil {
		return err
	}
	metrics.LeadsSubmittedTotal.WithLabelValues("quote").Inc()

	return c.JSON(http.StatusOK, ackResponse{Message: "Quote request submitted successfully"})
}
