package services

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFInspector reports metadata about an uploaded PDF resume. It never sees
// .doc/.docx uploads and its failures never fail a submission; a resume that
// cannot be parsed is simply stored without a page count.
type PDFInspector interface {
	PageCount(data []byte) (int, error)
}

type pdfInspector struct{}

func NewPDFInspector() PDFInspector {
	return &pdfInspector{}
}

// PageCount implements PDFInspector.
func (p *pdfInspector) PageCount(data []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to read PDF: %w", err)
	}

	pages := reader.NumPage()
	if pages <= 0 {
		return 0, fmt.Errorf("PDF has no pages")
	}

	return pages, nil
}
