package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// NativeStatus classifies the outcome of the text-layer pass so the OCR
// fallback is an explicit branch rather than a swallowed exception.
type NativeStatus int

const (
	NativeOK NativeStatus = iota
	NativeEmpty
	NativeFailed
)

// NativeResult is the outcome of reading the PDF's embedded text layer.
type NativeResult struct {
	Status NativeStatus
	Text   string
	Pages  int
	Reason string // populated when Status == NativeFailed
}

// nativeText reads the PDF's text layer in-memory, joining page texts with a
// newline. Parser errors and panics are demoted to NativeFailed: a scanned or
// malformed document is a reason to fall back, not to abort.
func nativeText(data []byte) (res NativeResult) {
	defer func() {
		if r := recover(); r != nil {
			res = NativeResult{Status: NativeFailed, Reason: fmt.Sprintf("pdf parser panic: %v", r)}
		}
	}()

	rdr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return NativeResult{Status: NativeFailed, Reason: err.Error()}
	}

	n := rdr.NumPage()
	var b strings.Builder
	for i := 1; i <= n; i++ {
		pg := rdr.Page(i)
		if pg.V.IsNull() {
			continue
		}
		txt, err := pg.GetPlainText(nil)
		if err != nil {
			// image-only or problematic page; keep going
			continue
		}
		if strings.TrimSpace(txt) == "" {
			continue
		}
		b.WriteString(txt)
		b.WriteString("\n")
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return NativeResult{Status: NativeEmpty, Pages: n}
	}
	return NativeResult{Status: NativeOK, Text: text, Pages: n}
}
