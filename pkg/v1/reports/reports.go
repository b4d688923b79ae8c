package reports

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// ReportNotifier publishes report events.
type ReportNotifier struct {
	sender Sender
}

// NewReportNotifier returns new ReportNotifier using provided sender for sending messages.
func NewReportNotifier(sender Sender) ReportNotifier {
	return ReportNotifier{
		sender: sender,
	}
}

// NotifyReport sends provided report event. Event without ID gets new random ID.
func (n ReportNotifier) NotifyReport(ctx context.Context, event ReportEvent) error {
	if event.ID == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("can't create event ID: %w", err)
		}
		event.ID = id.String()
	}

	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("can't marshal report event: %w", err)
	}

	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("can't send report event: %w", err)
	}

	return nil
}
