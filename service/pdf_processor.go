package service

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/BrannonKLuong/ai-tax-agent-prototype/client"
	"github.com/BrannonKLuong/ai-tax-agent-prototype/dto"
)

// Pages with less embedded text than this are treated as scanned and
// sent through OCR.
const minEmbeddedTextLen = 20

type PageRenderer interface {
	RenderPages(pdfPath string) ([]dto.Page, error)
}

type pageRenderer struct {
	ocrClient *client.TesseractClient
}

func NewPageRenderer(ocrClient *client.TesseractClient) PageRenderer {
	return &pageRenderer{
		ocrClient: ocrClient,
	}
}

// RenderPages produces one dto.Page per PDF page: its plain text and a
// raster image for the QA model. Text comes from the embedded text
// layer; scanned pages fall back to OCR on the page image.
func (p *pageRenderer) RenderPages(pdfPath string) ([]dto.Page, error) {
	pdfData, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var pages []dto.Page
	totalPages := reader.NumPage()

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		text := extractPageText(reader, pageNum)

		image, imagePath, cleanup, err := extractPageImage(pdfPath, pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", pageNum, err)
		}

		// Scanned page: no usable text layer, OCR the raster instead.
		if len(strings.TrimSpace(text)) < minEmbeddedTextLen && imagePath != "" {
			ocrText, ocrErr := p.ocrClient.ExtractText(imagePath)
			if ocrErr != nil {
				log.Printf("OCR fallback failed for page %d: %v", pageNum, ocrErr)
			} else {
				text = ocrText
			}
		}
		cleanup()

		pages = append(pages, dto.Page{
			Number: pageNum,
			Text:   text,
			Image:  image,
		})
	}

	return pages, nil
}

// extractPageText pulls the embedded text layer of one page.
func extractPageText(reader *pdf.Reader, pageNum int) string {
	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return ""
	}

	var textBuilder bytes.Buffer
	rows, _ := page.GetTextByRow()
	for _, row := range rows {
		for _, word := range row.Content {
			textBuilder.WriteString(word.S)
			textBuilder.WriteString(" ")
		}
		textBuilder.WriteString("\n")
	}
	return textBuilder.String()
}

// extractPageImage extracts the raster image embedded in one page to a
// temp dir and returns its bytes, its path (for OCR) and a cleanup
// func. A vector page with no embedded scan yields nil bytes, not an
// error; callers decide whether that matters.
func extractPageImage(pdfPath string, pageNum int) ([]byte, string, func(), error) {
	tempDir, err := os.MkdirTemp("", "tax-page-images")
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(tempDir) }

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractImagesFile(pdfPath, tempDir, []string{strconv.Itoa(pageNum)}, conf); err != nil {
		cleanup()
		return nil, "", nil, fmt.Errorf("failed to extract page image: %w", err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		cleanup()
		return nil, "", nil, fmt.Errorf("failed to read temp dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		imagePath := filepath.Join(tempDir, entry.Name())
		imageData, err := os.ReadFile(imagePath)
		if err != nil {
			continue
		}
		return imageData, imagePath, cleanup, nil
	}

	// No embedded image on this page.
	return nil, "", cleanup, nil
}
