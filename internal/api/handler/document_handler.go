package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expotrade/client-portal/internal/api/metrics"
	"github.com/expotrade/client-portal/internal/core/ports"
)

// DocumentHandler handles attachments on the caller's orders.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Upload handles POST /documents. The target order must belong to the caller.
//
// @Summary      Attach a document to an order
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      uploadDocumentRequest  true  "Document with base64 payload"
// @Success      200   {object}  documentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /documents [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req uploadDocumentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := toUploadInput(req)
	if err != nil {
		return err
	}

	doc, err := h.service.Upload(c.Request().Context(), user.ID, in)
	if err != nil {
		return err
	}
	metrics.DocumentsUploadedTotal.WithLabelValues(string(doc.DocumentType)).Inc()
	metrics.DocumentUploadBytes.Observe(float64(doc.FileSize))

	return c.JSON(http.StatusOK, toDocumentResponse(doc))
}

// ListForOrder handles GET /orders/:id/documents. Payloads are not included.
//
// @Summary      List documents of an order
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {array}   documentResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id}/documents [get]
func (h *DocumentHandler) ListForOrder(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	docs, err := h.service.ListForOrder(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDocumentResponses(docs))
}

// Download handles GET /documents/:id.
//
// @Summary      Download a document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Document id"
// @Success      200  {object}  documentDownloadResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /documents/{id} [get]
func (h *DocumentHandler) Download(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	doc, err := h.service.Download(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, documentDownloadResponse{
		Filename: doc.Filename,
		FileData: doc.FileData,
		MimeType: doc.MimeType,
	})
}
