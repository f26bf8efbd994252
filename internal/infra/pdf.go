package infra

// pdf.go — thermal receipt-style ticket rendered with go-pdf/fpdf after a sale
// commits. Shows the business name, sale id and timestamp, one row per line
// (receta or producto) with quantity and subtotal, bold total and tipo de pago.
// The output file is saved to storagePath/ticket_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateTicketPDF renders the receipt for a registered Venta and returns the
// absolute path of the generated file. The venta must come with its Detalles
// (and their Receta/Producto) preloaded.
func GenerateTicketPDF(venta *model.Venta, nombreNegocio, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("ticket_%s.pdf", venta.ID)
	filePath := filepath.Join(storagePath, fileName)

	// 74mm × 105mm — close to thermal receipt paper.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, nombreNegocio, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Ticket de Venta", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Sale info ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Venta %s", venta.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	if venta.Mesa != nil {
		pdf.CellFormat(contentW, 4, fmt.Sprintf("Mesa %d", venta.Mesa.NumeroMesa), "", 1, "L", false, 0, "")
	}
	if venta.Cliente != nil {
		pdf.CellFormat(contentW, 4, venta.Cliente.NombreFiscal, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items ────────────────────────────────────────────────────────────────
	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Detalle", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, d := range venta.Detalles {
		nombre := ""
		switch {
		case d.Receta != nil:
			nombre = d.Receta.NombreReceta
		case d.Producto != nil:
			nombre = d.Producto.Nombre
		}
		if len(nombre) > 22 {
			nombre = nombre[:21] + "…"
		}
		subtotal := d.Cantidad.Mul(d.PrecioUnitario)
		pdf.CellFormat(col1, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, "x"+d.Cantidad.String(), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "Bs "+subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total y pago ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Bs "+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, "Pago: "+venta.TipoPago, "", 1, "L", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "¡Gracias por su visita!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
