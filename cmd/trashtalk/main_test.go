package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sleeperServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/jerry":
			fmt.Fprintln(w, `{"user_id":"u1","username":"jerry"}`)
		case "/user/u1/leagues/nfl/2025":
			fmt.Fprintln(w, `[{"league_id":"L1","name":"Holdouts","season":"2025"}]`)
		case "/players/nfl":
			fmt.Fprintln(w, `{"p1":{"first_name":"Dak","last_name":"Prescott"},"p2":{"first_name":"CeeDee","last_name":"Lamb"}}`)
		case "/league/L1/rosters":
			fmt.Fprintln(w, `[{"roster_id":1,"owner_id":"u1","players":["p1"]},{"roster_id":2,"owner_id":"u2","players":["p2"]}]`)
		case "/league/L1/users":
			fmt.Fprintln(w, `[{"user_id":"u1","display_name":"Jerry"},{"user_id":"u2","display_name":"Stephen"}]`)
		case "/league/L1/matchups/6":
			fmt.Fprintln(w, `[
				{"roster_id":1,"matchup_id":1,"points":150,"starters":["p1"],"starters_points":[150],"players_points":{"p1":150}},
				{"roster_id":2,"matchup_id":1,"points":50,"starters":["p2"],"starters_points":[50],"players_points":{"p2":50}}
			]`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRunOnce(t *testing.T) {
	server := sleeperServer(t)
	t.Setenv("SLEEPER_USER", "jerry")
	t.Setenv("SLEEPER_BASE_URL", server.URL)
	t.Setenv("LOG_LEVEL", "error")
	seed = 42

	var out bytes.Buffer
	require.NoError(t, runOnce(context.Background(), rootCmd, &out))

	got := out.String()
	assert.Contains(t, got, "🗑️  WELCOME TO TRASH TALK TIME! 🗑️")
	assert.Contains(t, got, "🗑️  TRASH TALK TIME - Holdouts  🗑️")
	assert.Contains(t, got, "📢 ")
	assert.Contains(t, got, "Week over. See you next Sunday! 🏈")
}

func TestRunOnce_MissingUsername(t *testing.T) {
	t.Setenv("SLEEPER_USER", "")

	var out bytes.Buffer
	require.NoError(t, runOnce(context.Background(), rootCmd, &out))
	assert.Equal(t, "Error: SLEEPER_USER not found in .env file\nrun: echo 'SLEEPER_USER=your_sleeper_username' > .env\n", out.String())
}
