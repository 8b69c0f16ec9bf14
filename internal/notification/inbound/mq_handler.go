package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/danishfaisall/gokart/internal/notification/usecase"
	"github.com/danishfaisall/gokart/internal/pkg/instrument"
	"github.com/danishfaisall/gokart/internal/pkg/messaging"
	"github.com/danishfaisall/gokart/internal/pkg/uid"
	"github.com/danishfaisall/gokart/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) OTPIssuedNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "OTPIssuedNotification")
	defer span.End()

	// Body carries the code itself, so it stays out of the logs.
	body := msg.Body()
	slog.InfoContext(ctx, "consume: verification code issued")

	var payload event.OTPIssuedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of verification code issued", "error", err)
		return nil
	}

	if err := h.uc.ConsumeOTPIssued(ctx, usecase.ConsumeOTPIssuedInput{
		UserID:    payload.UserID,
		Recipient: payload.Recipient,
		FullName:  payload.FullName,
		Code:      payload.Code,
		Purpose:   payload.Purpose,
		ExpiresIn: payload.ExpiresIn,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume verification code issued", "user_id", payload.UserID, "error", err)
		return err
	}

	return nil
}
