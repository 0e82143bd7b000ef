// Package sleeper wraps the read-only endpoints of the public Sleeper API.
// No auth, no retries: a single bounded attempt per call, errors surfaced
// to the caller.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dynastytrade/pkg/utils"
)

const DefaultBaseURL = "https://api.sleeper.app/v1"

type League struct {
	LeagueID     string                 `json:"league_id"`
	Name         string                 `json:"name"`
	TotalRosters int                    `json:"total_rosters"`
	Season       string                 `json:"season"`
	Settings     map[string]interface{} `json:"settings"`
}

type LeagueUser struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

type Roster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

type Player struct {
	FullName string `json:"full_name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Age      int    `json:"age"`
}

type ClientInterface interface {
	GetLeague(ctx context.Context, leagueID string) (*League, error)
	GetUsers(ctx context.Context, leagueID string) ([]LeagueUser, error)
	GetRosters(ctx context.Context, leagueID string) ([]Roster, error)
	GetPlayers(ctx context.Context) (map[string]Player, error)
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) GetLeague(ctx context.Context, leagueID string) (*League, error) {
	var league League
	if err := c.getJSON(ctx, fmt.Sprintf("%s/league/%s", c.baseURL, leagueID), &league); err != nil {
		return nil, err
	}
	if league.LeagueID == "" {
		league.LeagueID = leagueID
	}
	return &league, nil
}

func (c *Client) GetUsers(ctx context.Context, leagueID string) ([]LeagueUser, error) {
	var users []LeagueUser
	if err := c.getJSON(ctx, fmt.Sprintf("%s/league/%s/users", c.baseURL, leagueID), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetRosters(ctx context.Context, leagueID string) ([]Roster, error) {
	var rosters []Roster
	if err := c.getJSON(ctx, fmt.Sprintf("%s/league/%s/rosters", c.baseURL, leagueID), &rosters); err != nil {
		return nil, err
	}
	return rosters, nil
}

// GetPlayers fetches the full NFL player map keyed by player id. The payload
// is large; callers decide what to keep.
func (c *Client) GetPlayers(ctx context.Context) (map[string]Player, error) {
	var players map[string]Player
	if err := c.getJSON(ctx, fmt.Sprintf("%s/players/nfl", c.baseURL), &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", utils.ErrSleeperUnavailable, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSleeperUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return utils.ErrLeagueNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: unexpected status %d from %s", utils.ErrSleeperUnavailable, resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", utils.ErrSleeperUnavailable, err)
	}
	return nil
}
