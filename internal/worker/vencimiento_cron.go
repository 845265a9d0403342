package worker

// vencimiento_cron.go
// Background goroutine that periodically scans for unused cheques whose
// fecha_vencimiento falls inside the alert window and enqueues a notification
// email for each. A redis SETNX key per cheque and day keeps the cron from
// mailing the same alert twice.

import (
	"context"
	"fmt"
	"time"

	"sistemagestion/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	vencimientoTickInterval = 1 * time.Hour
	avisoDedupeTTL          = 48 * time.Hour
)

// VencimientoCronConfig holds all dependencies for the expiry goroutine.
type VencimientoCronConfig struct {
	ChequeRepo   repository.ChequeRepository
	Dispatcher   *Dispatcher
	RDB          *redis.Client
	AlertaDias   int
	AlertasEmail string
}

// StartVencimientoCron launches a background goroutine that ticks hourly,
// queries cheques about to expire, and dispatches alert emails. It respects
// the context for graceful shutdown.
func StartVencimientoCron(ctx context.Context, cfg VencimientoCronConfig) {
	go func() {
		ticker := time.NewTicker(vencimientoTickInterval)
		defer ticker.Stop()

		log.Info().Int("alerta_dias", cfg.AlertaDias).Msg("vencimiento_cron: started")

		// First pass right away so a restart never delays alerts a full tick
		processVencimientos(ctx, cfg)

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("vencimiento_cron: shutting down")
				return
			case <-ticker.C:
				processVencimientos(ctx, cfg)
			}
		}
	}()
}

func processVencimientos(ctx context.Context, cfg VencimientoCronConfig) {
	if cfg.AlertasEmail == "" {
		return
	}

	hasta := time.Now().AddDate(0, 0, cfg.AlertaDias)
	cheques, err := cfg.ChequeRepo.ListPorVencer(ctx, hasta)
	if err != nil {
		log.Error().Err(err).Msg("vencimiento_cron: failed to query cheques")
		return
	}
	if len(cheques) == 0 {
		return
	}

	log.Info().Int("count", len(cheques)).Msg("vencimiento_cron: cheques inside alert window")

	hoy := time.Now().Format("2006-01-02")
	for i := range cheques {
		ch := &cheques[i]

		// One alert per cheque per day
		dedupeKey := fmt.Sprintf("aviso:cheque:%s:%s", ch.ID, hoy)
		ok, err := cfg.RDB.SetNX(ctx, dedupeKey, "1", avisoDedupeTTL).Result()
		if err != nil {
			log.Error().Err(err).Msg("vencimiento_cron: dedupe check failed")
			continue
		}
		if !ok {
			continue
		}

		numero := "s/n"
		if ch.Numero != nil {
			numero = *ch.Numero
		}
		banco := ""
		if ch.Banco != nil {
			banco = " (" + *ch.Banco + ")"
		}

		payload := EmailJobPayload{
			ToEmail: cfg.AlertasEmail,
			Subject: fmt.Sprintf("Cheque %s vence el %s", numero, ch.FechaVencimiento.Format("02/01/2006")),
			Body: fmt.Sprintf(
				"El cheque %s%s por $%s vence el %s y todavía no fue utilizado.",
				numero, banco, ch.Monto.StringFixed(2), ch.FechaVencimiento.Format("02/01/2006"),
			),
		}
		if err := cfg.Dispatcher.EnqueueEmail(ctx, payload); err != nil {
			log.Error().Err(err).Str("cheque_id", ch.ID.String()).Msg("vencimiento_cron: enqueue failed")
			// Drop the dedupe key so the next tick retries
			cfg.RDB.Del(ctx, dedupeKey)
		}
	}
}
