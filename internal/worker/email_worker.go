package worker

import (
	"context"
	"encoding/json"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends the email with up to 3 attempts; SMTP hiccups are common
// enough that a single failure should not drop the ticket.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}

	err := withRetry(ctx, 3, func(attempt int) error {
		if attempt > 0 {
			log.Warn().Int("attempt", attempt+1).Str("to", payload.ToEmail).Msg("email_worker: retrying send")
		}
		return w.mailer.SendTicket(payload.ToEmail, payload.Subject, payload.Body, payload.PDFPath)
	})
	if err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: send failed after retries")
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: ticket sent")
}
