package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ErrMissingUsername is returned when SLEEPER_USER is not set.
var ErrMissingUsername = errors.New("SLEEPER_USER not set")

type Config struct {
	Sleeper     Sleeper
	Lineups     Lineups
	TrashTalk   TrashTalk
	TelegramBot TelegramBot
	Slack       Slack
	Server      Server
}

type Sleeper struct {
	Username string        `envconfig:"SLEEPER_USER"`
	Sport    string        `envconfig:"SPORT" default:"nfl"`
	Season   string        `envconfig:"SEASON" default:"2025"`
	BaseURL  string        `envconfig:"SLEEPER_BASE_URL" default:"https://api.sleeper.app/v1"`
	Timeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type Lineups struct {
	LeagueName string `envconfig:"LINEUP_LEAGUE" default:"Jerry Jones' Holdout Club"`
	Week       int    `envconfig:"LINEUP_WEEK" default:"7"`
}

type TrashTalk struct {
	LeagueIndex int `envconfig:"TRASH_TALK_LEAGUE_INDEX" default:"0"`
	Week        int `envconfig:"TRASH_TALK_WEEK" default:"6"`
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type Slack struct {
	Token     string `envconfig:"SLACK_BOT_TOKEN"`
	ChannelID string `envconfig:"SLACK_CHANNEL_ID"`
}

type Server struct {
	Addr     string `envconfig:"HTTP_ADDR" default:":8080"`
	Timezone string `envconfig:"TIMEZONE" default:"America/Chicago"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// New reads the configuration from the environment. The returned config is
// usable even when err is ErrMissingUsername so callers can still log.
func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if c.Sleeper.Username == "" {
		return &c, ErrMissingUsername
	}
	return &c, nil
}

func (t TelegramBot) Enabled() bool {
	return t.Token != ""
}

func (s Slack) Enabled() bool {
	return s.Token != "" && s.ChannelID != ""
}
