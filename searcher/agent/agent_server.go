package agent

import (
	"encoding/json"
	"errors"
	"net/http"

	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// FindMoveRequest asks for a single move. Board is the 64-cell grid text
// (b, w and -, row by row). Mode and Depth default to minimax at
// meta.DefaultDepth when omitted.
type FindMoveRequest struct {
	Board game.Board    `json:"board"`
	Side  game.Side     `json:"side"`
	Mode  searcher.Mode `json:"mode"`
	Depth int           `json:"depth"`
	Seed  *uint64       `json:"seed,omitempty"`
}

type FindMoveResponse struct {
	game.Move
	Value int `json:"value"`
}

var errNegativeDepth = errors.New("depth must not be negative")

// NewHandler serves POST /findmove. Every request builds its own searcher, so
// the handler is safe for concurrent requests.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/findmove", handleFindMove)
	return mux
}

// StartAgentServer serves the agent endpoint on addr until the listener fails.
func StartAgentServer(addr string) error {
	log.Info().Str("addr", addr).Msg("starting agent server")
	return http.ListenAndServe(addr, NewHandler())
}

func handleFindMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := FindMoveRequest{Mode: searcher.MinimaxMode, Depth: meta.DefaultDepth}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Depth < 0 {
		http.Error(w, "bad request: "+errNegativeDepth.Error(), http.StatusBadRequest)
		return
	}

	options := []searcher.Option{searcher.WithDepth(req.Depth)}
	if req.Seed != nil {
		options = append(options, searcher.WithSeed(*req.Seed))
	}
	result := searcher.NewSearcher(req.Mode, options...).Search(req.Board, req.Side)

	log.Debug().
		Str("side", req.Side.String()).
		Str("mode", req.Mode.String()).
		Int("depth", req.Depth).
		Stringer("move", result.Move).
		Msg("served findmove")

	w.Header().Set("Content-Type", "application/json")
	resp := FindMoveResponse{Move: result.Move, Value: result.Value}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}
