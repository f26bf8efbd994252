package worker

// ticket_worker.go
// Renders the PDF ticket of a committed sale and, when the request carried a
// customer email, enqueues an email job with the attachment. Runs entirely
// outside the sale transaction: a failed ticket never rolls back a sale.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/infra"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TicketJobPayload is the job envelope sent to QueueTickets.
type TicketJobPayload struct {
	VentaID      string  `json:"venta_id"`
	ClienteEmail *string `json:"cliente_email,omitempty"`
}

type TicketWorker struct {
	ventaRepo      repository.VentaRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
	nombreNegocio  string
}

func NewTicketWorker(
	ventaRepo repository.VentaRepository,
	dispatcher *Dispatcher,
	pdfStoragePath string,
	nombreNegocio string,
) *TicketWorker {
	return &TicketWorker{
		ventaRepo:      ventaRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
		nombreNegocio:  nombreNegocio,
	}
}

func (w *TicketWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload TicketJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("ticket_worker: invalid payload")
		return
	}

	ventaID, err := uuid.Parse(payload.VentaID)
	if err != nil {
		log.Error().Str("venta_id", payload.VentaID).Msg("ticket_worker: invalid venta_id")
		return
	}

	venta, err := w.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		log.Error().Err(err).Str("venta_id", payload.VentaID).Msg("ticket_worker: venta not found")
		return
	}

	pdfPath, err := infra.GenerateTicketPDF(venta, w.nombreNegocio, w.pdfStoragePath)
	if err != nil {
		log.Warn().Err(err).Str("venta_id", payload.VentaID).Msg("ticket_worker: PDF generation failed")
		return
	}
	log.Info().Str("pdf", pdfPath).Str("venta_id", payload.VentaID).Msg("ticket_worker: PDF generated")

	if payload.ClienteEmail != nil && *payload.ClienteEmail != "" {
		emailJob := EmailJobPayload{
			ToEmail: *payload.ClienteEmail,
			Subject: fmt.Sprintf("%s — Ticket de venta", w.nombreNegocio),
			Body:    fmt.Sprintf("Adjunto encontrarás tu ticket de venta.\nTotal: Bs %s", venta.Total.StringFixed(2)),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *payload.ClienteEmail).Msg("ticket_worker: failed to enqueue email")
		}
	}
}
