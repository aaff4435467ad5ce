package memory

import (
	"sync"
	"time"

	"github.com/omarshaarawi/sleeperbot/internal/models"
)

// Repository holds data that is expensive to fetch and changes at most daily.
type Repository struct {
	players        models.PlayerDirectory
	playersUpdated time.Time
	state          *models.SportState
	mu             sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SavePlayers(players models.PlayerDirectory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = players
	r.playersUpdated = time.Now()
}

// GetPlayers returns the cached directory and when it was stored. The
// directory is nil when nothing has been saved.
func (r *Repository) GetPlayers() (models.PlayerDirectory, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.players, r.playersUpdated
}

func (r *Repository) SaveState(state *models.SportState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
}

func (r *Repository) GetState() *models.SportState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}
