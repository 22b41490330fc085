package chat

import (
	"context"

	"github.com/skyfleet/starhunt/internal/model"
)

// StaticResolver is a ChannelResolver over a fixed channel list, for
// deployments where the adapter hands the core its eligible channels at
// startup.
type StaticResolver struct {
	channels []model.ChannelID
	known    map[model.ChannelID]bool
}

// NewStaticResolver creates a resolver over the given channels
func NewStaticResolver(channels []model.ChannelID) *StaticResolver {
	known := make(map[model.ChannelID]bool, len(channels))
	for _, ch := range channels {
		known[ch] = true
	}
	return &StaticResolver{channels: channels, known: known}
}

var _ ChannelResolver = (*StaticResolver)(nil)

func (r *StaticResolver) Eligible(ctx context.Context) ([]model.ChannelID, error) {
	out := make([]model.ChannelID, len(r.channels))
	copy(out, r.channels)
	return out, nil
}

func (r *StaticResolver) Resolve(ctx context.Context, channel model.ChannelID) error {
	if !r.known[channel] {
		return model.ErrChannelUnresolvable
	}
	return nil
}
