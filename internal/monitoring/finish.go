package monitoring

import (
	"time"

	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
)

var layerPrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerCommand:    "[COMMAND]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err    error
	fields []xlog.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.fields = append(o.fields, fields...)
	}
}

// Finish ends the segment and logs the outcome. Successful repository calls
// are not logged, the service line above them already covers it.
func (m *Monitor) Finish(opts ...FinishOption) {
	o := &finishOptions{}
	for _, opt := range opts {
		opt(o)
	}

	fields := append(o.fields,
		xlog.String("operation", m.name),
		xlog.Duration("processDuration", time.Since(m.start)),
	)

	switch {
	case o.err != nil:
		fields = append(fields, xlog.String("status", "error"), xlog.Err(o.err))
		xlog.Warn(m.ctx, layerPrefix[m.layer], fields...)
	case m.layer != LayerRepository:
		fields = append(fields, xlog.String("status", "success"))
		xlog.Info(m.ctx, layerPrefix[m.layer], fields...)
	}

	if m.segment != nil {
		m.segment.End()
	}
}
