// Package monitoring wraps a unit of work with a New Relic segment and a
// single structured log line once the work finishes.
package monitoring

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerCommand    = "cmd"
	LayerUnknown    = "unknown"
)

type Monitor struct {
	ctx   context.Context
	name  string
	layer string
	start time.Time

	segment *newrelic.Segment
}

type initOptions struct {
	layer       string
	segmentName string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

// New starts a monitor for the calling function. The segment name and layer
// are derived from the caller unless given explicitly.
func New(ctx context.Context, opts ...InitOption) *Monitor {
	o := &initOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.segmentName == "" || o.layer == "" {
		// must stay a direct call from New so the caller frame is the user of the monitor
		pc, file, _, ok := runtime.Caller(1)
		if o.segmentName == "" {
			o.segmentName = "unknown"
			if fn := runtime.FuncForPC(pc); ok && fn != nil {
				o.segmentName = segmentName(fn.Name())
			}
		}
		if o.layer == "" {
			o.layer = layerFromFile(file)
		}
	}

	segment := newrelic.FromContext(ctx).StartSegment(o.segmentName)
	if segment != nil {
		segment.AddAttribute("layer", o.layer)
	}

	return &Monitor{
		ctx:     ctx,
		name:    o.segmentName,
		layer:   o.layer,
		start:   time.Now(),
		segment: segment,
	}
}

func layerFromFile(file string) string {
	for _, layer := range []string{LayerRepository, LayerService, LayerDelivery} {
		if strings.Contains(file, "/"+layer+"/") {
			return layer
		}
	}
	if strings.Contains(file, "/"+LayerCommand+"/") {
		return LayerCommand
	}
	return LayerUnknown
}

// segmentName turns "github.com/org/repo/internal/pkg.(*recv).Method" into
// "pkg.recv.Method".
func segmentName(fullName string) string {
	name := fullName
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}

	parts := strings.Split(name, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(p, "("), "*"), ")")
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return fullName
	}
	return strings.Join(out, ".")
}
