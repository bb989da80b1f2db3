package service

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type MailJob struct {
	ID    string
	To    string
	Token string
}

// MailQueue dispatches verification mails from a fixed worker pool so
// registration never blocks on SMTP. Failures are logged and dropped,
// the user can always request the mail again
type MailQueue struct {
	jobs    chan *MailJob
	workers int
}

func NewMailQueue() *MailQueue {
	maxQueued := viper.GetInt("mail.max_queued")
	workers := viper.GetInt("mail.workers")

	zap.L().Debug("Initializing mail queue",
		zap.Int("max_queued", maxQueued),
		zap.Int("workers", workers))

	return &MailQueue{
		jobs:    make(chan *MailJob, maxQueued),
		workers: workers,
	}
}

func (q *MailQueue) StartWorkerPool() {
	for range q.workers {
		go q.worker()
	}
}

func (q *MailQueue) worker() {
	for job := range q.jobs {
		if viper.GetString("mail.host") == "" {
			zap.L().Info("No mail host configured, skipping verification mail",
				zap.String("job_id", job.ID),
				zap.String("to", job.To))
			continue
		}

		if err := SendVerificationMail(job.To, job.Token); err != nil {
			zap.L().Error("Failed to send verification mail",
				zap.String("job_id", job.ID),
				zap.String("to", job.To),
				zap.Error(err))
			continue
		}

		zap.L().Debug("Verification mail sent",
			zap.String("job_id", job.ID),
			zap.String("to", job.To))
	}
}

// Enqueue hands a verification mail to the worker pool without ever
// blocking the caller. A full queue drops the job with a log line
func (q *MailQueue) Enqueue(to, token string) {
	id, err := gonanoid.New()
	if err != nil {
		zap.L().Error("Failed to generate mail job ID", zap.Error(err))
		return
	}

	select {
	case q.jobs <- &MailJob{ID: id, To: to, Token: token}:
	default:
		zap.L().Warn("Mail queue is full, dropping verification mail",
			zap.String("to", to))
	}
}
