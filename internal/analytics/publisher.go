package analytics

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Publisher serializes events onto a sink. Publishing is best effort: a
// sink failure is logged, never surfaced to the search path.
type Publisher struct {
	sink Sink
	log  *zap.Logger
}

func NewPublisher(sink Sink, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{sink: sink, log: log}
}

func (p *Publisher) Publish(event SearchEvent) {
	if p == nil || p.sink == nil {
		return
	}
	msg, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("failed to marshal search event", zap.Error(err))
		return
	}
	if err := p.sink.WriteMessage(TopicSearchEvents, msg); err != nil {
		p.log.Warn("failed to publish search event", zap.Error(err))
	}
}

func (p *Publisher) Close() error {
	if p == nil || p.sink == nil {
		return nil
	}
	return p.sink.Close()
}
