package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// RemoteAgent plays one side by asking an agent server for every move.
type RemoteAgent struct {
	url    string
	side   game.Side
	board  game.Board
	mode   searcher.Mode
	depth  int
	client *http.Client
}

func NewRemoteAgent(url string, side game.Side, mode searcher.Mode, depth int) *RemoteAgent {
	return &RemoteAgent{
		url:    strings.TrimSuffix(url, "/"),
		side:   side,
		board:  game.NewBoard(),
		mode:   mode,
		depth:  depth,
		client: http.DefaultClient,
	}
}

func (a *RemoteAgent) Side() game.Side {
	return a.side
}

func (a *RemoteAgent) DoMove(opponentsMove game.Move, msLeft int) (game.Move, metrics.SearchMetric, error) {
	a.board.Apply(a.side.Opponent(), opponentsMove)

	ctx := context.Background()
	if msLeft >= 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(msLeft)*time.Millisecond)
		defer cancel()
	}

	resp, err := a.requestMove(ctx)
	if err != nil {
		return game.Pass, metrics.SearchMetric{}, err
	}
	if !a.board.IsLegal(a.side, resp.Move) {
		return game.Pass, metrics.SearchMetric{}, fmt.Errorf("agent at %s returned illegal move %s", a.url, resp.Move)
	}
	a.board.Apply(a.side, resp.Move)

	log.Debug().Str("url", a.url).Stringer("move", resp.Move).Msg("remote agent moved")
	return resp.Move, metrics.SearchMetric{
		Mode:  a.mode.String(),
		Depth: a.depth,
		Value: resp.Value,
	}, nil
}

// requestMove posts the current board to /findmove on the agent side.
func (a *RemoteAgent) requestMove(ctx context.Context) (FindMoveResponse, error) {
	body, err := json.Marshal(FindMoveRequest{
		Board: a.board,
		Side:  a.side,
		Mode:  a.mode,
		Depth: a.depth,
	})
	if err != nil {
		return FindMoveResponse{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url+"/findmove", bytes.NewReader(body))
	if err != nil {
		return FindMoveResponse{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := a.client.Do(req)
	if err != nil {
		return FindMoveResponse{}, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(httpResp.Body)
		return FindMoveResponse{}, fmt.Errorf("agent returned status %d: %s", httpResp.StatusCode, bytes.TrimSpace(out))
	}

	var resp FindMoveResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return FindMoveResponse{}, fmt.Errorf("failed to decode move: %w", err)
	}
	return resp, nil
}
