package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/obrasync/cashbox/internal/domain"
)

// LogrusAuditLogger пишет записи аудита в лог. Хранилищем журнала считается сборщик логов.
type LogrusAuditLogger struct {
	l *logrus.Entry
}

func NewLogrusAuditLogger(l *logrus.Logger) *LogrusAuditLogger {
	return &LogrusAuditLogger{
		l: l.WithField("component", "audit"),
	}
}

func (a *LogrusAuditLogger) Record(_ context.Context, entry domain.AuditEntry) {
	fields := logrus.Fields{
		"action":     entry.Action,
		"cashbox_id": entry.CashboxID,
		"actor_id":   entry.ActorID,
		"at":         entry.At,
	}
	if entry.Before != nil {
		fields["before"] = snapshot(entry.Before)
	}
	if entry.After != nil {
		fields["after"] = snapshot(entry.After)
	}
	if m := entry.Movement; m != nil {
		fields["movement"] = logrus.Fields{
			"id":        m.ID,
			"kind":      m.Kind,
			"direction": m.Direction,
			"amount":    m.Amount.String(),
			"currency":  m.Currency,
		}
	}
	a.l.WithFields(fields).Info("cashbox audit")
}

func snapshot(cb *domain.Cashbox) logrus.Fields {
	f := logrus.Fields{
		"status":      cb.Status,
		"approval":    cb.ApprovalState(),
		"version":     cb.Version,
		"opening_ars": cb.Opening.ARS.String(),
		"opening_usd": cb.Opening.USD.String(),
	}
	if cb.Closing != nil {
		f["closing_ars"] = cb.Closing.ARS.String()
		f["closing_usd"] = cb.Closing.USD.String()
	}
	if cb.Difference != nil {
		f["difference_ars"] = cb.Difference.ARS.String()
		f["difference_usd"] = cb.Difference.USD.String()
	}
	if cb.DifferenceApprovedByID != nil {
		f["approved_by"] = *cb.DifferenceApprovedByID
	}
	return f
}
