package infra

// pdf.go — account statement generation using go-pdf/fpdf. A4 portrait with a
// header block (counterparty, CUIT, balance columns) followed by the movement
// table.

import (
	"bytes"
	"fmt"

	"sistemagestion/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerarResumenPDF renders an account statement and returns the PDF bytes so
// handlers can stream it without touching disk.
func GenerarResumenPDF(resumen *dto.ResumenCuenta) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Resumen de Cuenta", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, resumen.Contraparte, "", 1, "L", false, 0, "")
	if resumen.CUIT != nil {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, "CUIT: "+*resumen.CUIT, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// ── Balance block ─────────────────────────────────────────────────────────
	colSaldo := contentW / 3
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colSaldo, 6, "Debe", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colSaldo, 6, "Haber", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colSaldo, 6, "Saldo", "B", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(colSaldo, 7, "$"+resumen.Debe.StringFixed(2), "", 0, "C", false, 0, "")
	pdf.CellFormat(colSaldo, 7, "$"+resumen.Haber.StringFixed(2), "", 0, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colSaldo, 7, "$"+resumen.Saldo.StringFixed(2), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// ── Movement table ────────────────────────────────────────────────────────
	col1 := contentW * 0.15 // fecha
	col2 := contentW * 0.13 // tipo
	col3 := contentW * 0.37 // descripcion
	col4 := contentW * 0.17 // monto
	col5 := contentW * 0.18 // estado

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 6, "Fecha", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Tipo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Descripción", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 6, "Monto", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 6, "Estado", "B", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, m := range resumen.Movimientos {
		descripcion := m.Descripcion
		if len(descripcion) > 40 {
			descripcion = descripcion[:39] + "…"
		}
		pdf.CellFormat(col1, 5, m.Fecha, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, m.Tipo, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, descripcion, "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 5, "$"+m.Monto.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 5, m.Estado, "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render resumen: %w", err)
	}
	return buf.Bytes(), nil
}
