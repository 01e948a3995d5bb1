package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"meeting-sync/core/reconcile"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Conn is the subset of *nats.Conn used by the publisher.
type Conn interface {
	Publish(subject string, data []byte) error
	IsClosed() bool
	Drain() error
}

// Message is the payload published for every finished sync pass.
type Message struct {
	RunID      string           `json:"run_id"`
	Trigger    string           `json:"trigger"`
	Success    bool             `json:"success"`
	Result     reconcile.Result `json:"result"`
	Error      string           `json:"error,omitempty"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
}

// NewMessage converts a report into its wire form.
func NewMessage(report reconcile.Report) Message {
	return Message{
		RunID:      report.RunID,
		Trigger:    string(report.Trigger),
		Success:    report.Succeeded(),
		Result:     report.Result,
		Error:      report.Error,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
	}
}

// Publisher announces finished sync passes on a NATS subject.
type Publisher struct {
	conn    Conn
	subject string
	logger  *zap.Logger
}

// Connect dials NATS and returns a publisher.
func Connect(cfg Config, logger *zap.Logger) (*Publisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	options := []nats.Option{
		nats.Name("meeting-sync"),
		nats.Timeout(cfg.connectTimeout()),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	conn, err := nats.Connect(cfg.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.URL, err)
	}

	logger.Info("NATS publisher initialized",
		zap.String("url", cfg.URL),
		zap.String("subject", cfg.Subject))

	return NewPublisher(conn, cfg.Subject, logger), nil
}

// NewPublisher wraps an existing connection.
func NewPublisher(conn Conn, subject string, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{conn: conn, subject: subject, logger: logger}
}

// Publish sends one report.
func (p *Publisher) Publish(ctx context.Context, report reconcile.Report) error {
	if p.conn == nil || p.conn.IsClosed() {
		return fmt.Errorf("NATS connection is not available")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(NewMessage(report))
	if err != nil {
		return fmt.Errorf("failed to marshal sync report: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish sync report: %w", err)
	}
	return nil
}

// Hook adapts Publish to reconcile.Hook, logging failures.
func (p *Publisher) Hook(ctx context.Context, report reconcile.Report) {
	if err := p.Publish(ctx, report); err != nil {
		p.logger.Warn("Failed to publish sync report", zap.Error(err), zap.String("run_id", report.RunID))
	}
}

// Close drains the connection.
func (p *Publisher) Close() error {
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Drain()
}
