package jobs

import (
	"context"
	"errors"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PaymentReconciliationJob periodically sweeps Confirmed orders against the
// payment service and acknowledges payment for the ones with a confirmed
// record. Manual acknowledgment through the API stays available; this job
// just catches the ones nobody clicked.
type PaymentReconciliationJob struct {
	awaitingHandler queries.GetAwaitingPaymentOrdersQueryHandler
	ackHandler      commands.AcknowledgePaymentCommandHandler
	paymentChecker  ports.PaymentChecker
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewPaymentReconciliationJob creates a job that reconciles payments every
// thirty seconds.
func NewPaymentReconciliationJob(
	awaitingHandler queries.GetAwaitingPaymentOrdersQueryHandler,
	ackHandler commands.AcknowledgePaymentCommandHandler,
	paymentChecker ports.PaymentChecker,
	logger *slog.Logger,
) *PaymentReconciliationJob {
	return &PaymentReconciliationJob{
		awaitingHandler: awaitingHandler,
		ackHandler:      ackHandler,
		paymentChecker:  paymentChecker,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "payment_reconciliation_job"),
	}
}

// Start begins the reconciliation job on a thirty second schedule.
func (j *PaymentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.reconcile(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job started (running every 30s)")
	return nil
}

// Stop stops the reconciliation job.
func (j *PaymentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job stopped")
}

func (j *PaymentReconciliationJob) reconcile(ctx context.Context) {
	awaiting, err := j.awaitingHandler.Handle(ctx, queries.NewGetAwaitingPaymentOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment reconciliation sweep failed", "error", err)
		return
	}

	for _, row := range awaiting {
		confirmed, checkErr := j.paymentChecker.IsConfirmed(ctx, row.ID)
		if checkErr != nil {
			j.logger.WarnContext(ctx, "Payment lookup failed",
				"order_id", row.ID.String(), "error", checkErr)
			continue
		}
		if !confirmed {
			continue
		}

		cmd, cmdErr := commands.NewAcknowledgePaymentCommand(row.ID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build acknowledge command",
				"order_id", row.ID.String(), "error", cmdErr)
			continue
		}

		if _, err = j.ackHandler.Handle(ctx, cmd); err != nil {
			// A transition rejection means another actor got there first.
			if errors.Is(err, order.ErrInvalidStateTransition) {
				continue
			}
			j.logger.ErrorContext(ctx, "Payment acknowledgment failed",
				"order_id", row.ID.String(), "error", err)
		}
	}
}
