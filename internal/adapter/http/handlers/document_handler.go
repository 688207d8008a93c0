package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"opticai/internal/domain/document"
	"opticai/internal/usecase"
	"opticai/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves the lab and sale slips as PDF downloads.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// OrderDocument godoc
// @Summary      Download the lab or sale slip of an order
// @Tags         documents
// @Produce      application/pdf
// @Security     UserID
// @Param        id path string true "order id"
// @Param        kind path string true "lab | sale"
// @Success      200 {file} binary
// @Router       /orders/{id}/documents/{kind} [get]
func (h *DocumentHandler) OrderDocument(c *gin.Context) {
	kind, err := document.ParseKind(c.Param("kind"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	doc, err := h.usecase.RenderOrder(c.Request.Context(), tenantID(c), c.Param("id"), kind)
	if err != nil {
		log.Printf("[document][handler] order render failed order_id=%s kind=%s err=%v", c.Param("id"), kind, err)
		h.writeError(c, err)
		return
	}
	writeDocument(c, doc)
}

// DraftDocument prints a form that was never saved.
//
// @Summary      Download the lab or sale slip of a draft
// @Tags         documents
// @Produce      application/pdf
// @Security     UserID
// @Param        id path string true "draft id"
// @Param        kind path string true "lab | sale"
// @Success      200 {file} binary
// @Router       /drafts/{id}/documents/{kind} [get]
func (h *DocumentHandler) DraftDocument(c *gin.Context) {
	kind, err := document.ParseKind(c.Param("kind"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	doc, err := h.usecase.RenderDraft(c.Request.Context(), tenantID(c), c.Param("id"), kind)
	if err != nil {
		log.Printf("[document][handler] draft render failed draft_id=%s kind=%s err=%v", c.Param("id"), kind, err)
		h.writeError(c, err)
		return
	}
	writeDocument(c, doc)
}

func writeDocument(c *gin.Context, doc document.Document) {
	contentType := doc.ContentType
	if contentType == "" {
		contentType = document.ContentTypePDF
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, contentType, doc.Data)
}

func (h *DocumentHandler) writeError(c *gin.Context, err error) {
	appErr := mapDocumentError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, document.ErrUnknownKind):
		return pkg.NewDomainErrorSimple("UNKNOWN_DOCUMENT_KIND", "Document kind must be lab or sale", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, document.ErrRenderFailed):
		return pkg.NewDomainError("DOCUMENT_GENERATION_FAILED", "Could not generate the document", err, http.StatusInternalServerError)
	default:
		return mapDraftError(err)
	}
}
