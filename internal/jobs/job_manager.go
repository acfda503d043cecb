// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3. The single job today is payment
// reconciliation; JobManager keeps the start/stop surface stable as more
// are added.
package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	paymentReconciliationJob *PaymentReconciliationJob
}

// NewJobManager creates a job manager over the given jobs.
func NewJobManager(paymentReconciliationJob *PaymentReconciliationJob) *JobManager {
	return &JobManager{
		paymentReconciliationJob: paymentReconciliationJob,
	}
}

// StartAll starts every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops every scheduled job.
func (jm *JobManager) StopAll() {
	jm.paymentReconciliationJob.Stop()
}
