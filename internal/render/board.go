package render

import (
	"fmt"
	"html"
	"sync"
	"time"
)

// State 看板状态
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// LastUpdateLayout mirrors a browser's en-US toLocaleTimeString.
const LastUpdateLayout = "3:04:05 PM"

// Board holds what the dashboard page shows: slot contents, the last-update
// text, the warning banner and the loading/ready state. The scheduler is its
// only writer; readers take consistent views.
type Board struct {
	mu         sync.RWMutex
	slots      map[string]string
	lastUpdate string
	banner     string
	state      State
}

func NewBoard() *Board {
	return &Board{
		slots: make(map[string]string, len(MetricSlots)),
		state: StateLoading,
	}
}

// Apply replaces slot contents and stamps the last-update time. The first call
// moves the board to Ready; it never returns to Loading.
func (b *Board) Apply(slots map[string]string, now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, content := range slots {
		b.slots[id] = content
	}
	b.lastUpdate = now.Format(LastUpdateLayout)
	b.state = StateReady
}

// Warn replaces the warning banner. Nothing clears it; a later successful
// pass leaves the last warning in place.
func (b *Board) Warn(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.banner = fmt.Sprintf(`<div class="error"><strong>⚠️  Note:</strong> %s</div>`, html.EscapeString(message))
}

// View is a point-in-time copy of the board.
type View struct {
	State      State             `json:"state"`
	Slots      map[string]string `json:"slots"`
	LastUpdate string            `json:"last_update"`
	Banner     string            `json:"banner"`
}

func (b *Board) View() View {
	b.mu.RLock()
	defer b.mu.RUnlock()

	slots := make(map[string]string, len(b.slots))
	for id, content := range b.slots {
		slots[id] = content
	}

	return View{
		State:      b.state,
		Slots:      slots,
		LastUpdate: b.lastUpdate,
		Banner:     b.banner,
	}
}

// Slot returns the content of one slot, including last-update and the banner.
func (b *Board) Slot(id string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	switch id {
	case SlotLastUpdate:
		return b.lastUpdate
	case SlotError:
		return b.banner
	}
	return b.slots[id]
}

func (b *Board) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}
