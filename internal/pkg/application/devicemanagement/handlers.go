package devicemanagement

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"

	"github.com/shelfware/shelf-mgmt/pkg/types"
)

var tracer = otel.Tracer("shelf-mgmt/device-status")

func NewSensorStatusHandler(svc DeviceManagement) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "shelf-sensor-status")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := types.StatusMessage{}
		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		ctx = logging.NewContextWithLogger(ctx, log, slog.String("serial_number", msg.SerialNumber))

		err = svc.HandleStatusMessage(ctx, msg)
		if err != nil {
			log.Error("could not handle sensor status", "err", err.Error())
			return
		}
	}
}
