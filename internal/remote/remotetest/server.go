package remotetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/mquinn/rpsduel-go/internal/model"
)

// Server is an in-process stand-in for the remote opponent service,
// implementing its three-endpoint HTTP contract for tests. It keeps
// records and per-player counters in memory and resolves each move
// against a scriptable AI choice.
type Server struct {
	mu      sync.Mutex
	records []model.GameRecord
	stats   map[model.PlayerID]*model.PlayerStats
	nextID  int

	// NextAIChoice determines the AI's next move. Defaults to
	// scissors so a rock play is a deterministic win.
	NextAIChoice model.Choice

	// FailNext makes the next request answer HTTP 500
	FailNext bool
}

// NewServer creates a fake opponent service
func NewServer() *Server {
	return &Server{
		stats:        make(map[model.PlayerID]*model.PlayerStats),
		NextAIChoice: model.ChoiceScissors,
	}
}

// Handler returns the HTTP handler implementing the service contract
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/rps/play", s.handlePlay).Methods(http.MethodPost)
	r.HandleFunc("/api/rps/history", s.handleHistory).Methods(http.MethodGet)
	r.HandleFunc("/api/rps/stats/{playerId}", s.handleStats).Methods(http.MethodGet)
	return r
}

// PlayCount returns how many play requests the server has resolved
func (s *Server) PlayCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *Server) failRequested(w http.ResponseWriter) bool {
	if !s.FailNext {
		return false
	}
	s.FailNext = false
	w.WriteHeader(http.StatusInternalServerError)
	return true
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failRequested(w) {
		return
	}

	var req struct {
		PlayerID   model.PlayerID `json:"playerId"`
		PlayerName string         `json:"playerName"`
		Choice     model.Choice   `json:"choice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	aiChoice := s.NextAIChoice
	result := decide(req.Choice, aiChoice)

	s.nextID++
	record := model.GameRecord{
		ID:           fmt.Sprintf("g_%06d", s.nextID),
		PlayerID:     req.PlayerID,
		PlayerName:   req.PlayerName,
		PlayerChoice: req.Choice,
		AIChoice:     aiChoice,
		Result:       result,
		Timestamp:    time.Now().UTC(),
		PlayerEmoji:  req.Choice.Emoji(),
		AIEmoji:      aiChoice.Emoji(),
	}

	// Most recent first, like the real service
	s.records = append([]model.GameRecord{record}, s.records...)

	stats, ok := s.stats[req.PlayerID]
	if !ok {
		stats = &model.PlayerStats{}
		s.stats[req.PlayerID] = stats
	}
	stats.Total++
	switch result {
	case model.ResultWin:
		stats.Wins++
	case model.ResultLose:
		stats.Losses++
	case model.ResultDraw:
		stats.Draws++
	}

	writeJSON(w, map[string]any{
		"success":      true,
		"playerChoice": record.PlayerChoice,
		"aiChoice":     record.AIChoice,
		"result":       record.Result,
		"record":       record,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failRequested(w) {
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	playerID := model.PlayerID(r.URL.Query().Get("playerId"))

	games := []model.GameRecord{}
	for _, record := range s.records {
		if playerID != "" && record.PlayerID != playerID {
			continue
		}
		games = append(games, record)
		if len(games) == limit {
			break
		}
	}

	writeJSON(w, map[string]any{"games": games})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failRequested(w) {
		return
	}

	playerID := model.PlayerID(mux.Vars(r)["playerId"])

	stats := model.PlayerStats{}
	if existing, ok := s.stats[playerID]; ok {
		stats = *existing
	}

	writeJSON(w, map[string]any{"stats": stats})
}

// decide resolves playerChoice against aiChoice from the player's
// perspective
func decide(playerChoice, aiChoice model.Choice) model.Result {
	if playerChoice == aiChoice {
		return model.ResultDraw
	}

	switch playerChoice {
	case model.ChoiceRock:
		if aiChoice == model.ChoiceScissors {
			return model.ResultWin
		}
	case model.ChoicePaper:
		if aiChoice == model.ChoiceRock {
			return model.ResultWin
		}
	case model.ChoiceScissors:
		if aiChoice == model.ChoicePaper {
			return model.ResultWin
		}
	}

	return model.ResultLose
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(data)
}
