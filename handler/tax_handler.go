package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BrannonKLuong/ai-tax-agent-prototype/dto"
	"github.com/BrannonKLuong/ai-tax-agent-prototype/service"
)

type TaxHandler struct {
	taxService *service.TaxService
}

func NewTaxHandler(taxService *service.TaxService) *TaxHandler {
	return &TaxHandler{
		taxService: taxService,
	}
}

// UploadTaxDocuments handles the POST /upload-tax-documents endpoint
func (h *TaxHandler) UploadTaxDocuments(c *gin.Context) {
	log.Println("Received tax document upload request")

	if err := h.taxService.Ready(c.Request.Context()); err != nil {
		h.sendError(c, http.StatusServiceUnavailable, "Document QA model is not available, please check server logs", err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return
	}

	files := form.File["files"]
	filingStatus := c.PostForm("filing_status")
	numDependents, _ := strconv.Atoi(c.PostForm("num_dependents"))

	request := &dto.TaxFilingRequest{
		Files:         files,
		FilingStatus:  filingStatus,
		NumDependents: numDependents,
	}

	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	log.Printf("Processing %d files, filing status: %s, dependents: %d", len(files), filingStatus, numDependents)

	response, err := h.taxService.ProcessTaxDocuments(c.Request.Context(), request)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to process tax documents", err)
		return
	}

	log.Println("Tax documents processed successfully")
	c.JSON(http.StatusOK, response)
}

// DownloadSummary handles the GET /download-summary/:reference endpoint
func (h *TaxHandler) DownloadSummary(c *gin.Context) {
	reference := c.Param("reference")

	path, err := h.taxService.SummaryPath(reference)
	if err != nil {
		h.sendError(c, http.StatusNotFound, "Generated Form 1040 not found", err)
		return
	}

	c.FileAttachment(path, reference)
}

// Root handles the GET / liveness endpoint
func (h *TaxHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI Tax Agent Backend with Document AI is running!",
	})
}

// sendError sends a structured error response
func (h *TaxHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "TAX_PROCESSING_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
