// Package idgenerator builds sortable, URL-safe identifiers used for
// correlation ids: <PREFIX>-<unix millis><base64url uuid>.
package idgenerator

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type Option func(*IDGenerator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *IDGenerator) { g.now = now }
}

// WithUUID replaces the random uuid source.
func WithUUID(next func() uuid.UUID) Option {
	return func(g *IDGenerator) { g.nextUUID = next }
}

type IDGenerator struct {
	now      func() time.Time
	nextUUID func() uuid.UUID
}

func New(opts ...Option) Generator {
	g := &IDGenerator{
		now:      time.Now,
		nextUUID: uuid.New,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate joins non-empty prefixes with "-". Without any prefix the id is
// just the timestamp and the encoded uuid.
func (g *IDGenerator) Generate(prefixes ...string) string {
	parts := make([]string, 0, len(prefixes)+1)
	for _, p := range prefixes {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	id := g.nextUUID()
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(g.now().UnixMilli(), 10))
	sb.WriteString(base64.RawURLEncoding.EncodeToString(id[:]))

	return strings.Join(append(parts, sb.String()), "-")
}
