package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/omarshaarawi/sleeperbot/internal/metrics"
	"github.com/slack-go/slack"
)

// slackClient is the part of *slack.Client we use.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type Slack struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

var _ Notifier = (*Slack)(nil)

func NewSlack(token, channelID string, m metrics.Metrics) *Slack {
	return NewSlackWithAPI(slack.New(token), channelID, m)
}

// NewSlackWithAPI creates a Slack notifier with a specific client, for tests.
func NewSlackWithAPI(api slackClient, channelID string, m metrics.Metrics) *Slack {
	return &Slack{api: api, channelID: channelID, metrics: m}
}

func (s *Slack) Name() string { return "slack" }

func (s *Slack) Send(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncNotifFailed(s.Name())
		slog.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent(s.Name())
	slog.Info("Sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}
