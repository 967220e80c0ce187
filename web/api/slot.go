package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"pageforge/game"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// machines keeps one slot machine per widget so play counts survive
// across spins. State is in-memory only; a restart resets the counters.
var (
	machinesMu sync.Mutex
	machines   = map[string]*game.Machine{}
)

// slotPlayRequest configures the machine on first play.
type slotPlayRequest struct {
	WinEvery int `json:"win_every"`
}

// slotPlayResponse is the outcome of one spin.
type slotPlayResponse struct {
	Prize game.Prize `json:"prize"`
	Win   bool       `json:"win"`
	Plays int        `json:"plays"`
}

// SlotPlay handles POST /api/slot/:machine_id/play
// The machine id is page and component scoped, assigned by the client.
func SlotPlay(ctx rweb.Context) error {
	machineID := ctx.Request().Param("machine_id")
	if machineID == "" {
		return writeError(ctx, http.StatusBadRequest, "machine id is required")
	}

	var req slotPlayRequest
	if body := ctx.Request().Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
		}
	}

	machinesMu.Lock()
	m, ok := machines[machineID]
	if !ok {
		winEvery := req.WinEvery
		if winEvery <= 0 {
			winEvery = 5
		}
		m = game.NewMachine(winEvery)
		machines[machineID] = m
	}
	prize := m.Play()
	plays := m.Plays()
	machinesMu.Unlock()

	logger.Info("Slot machine played", "machine_id", machineID, "prize", prize.ID, "plays", plays)
	return writeSuccess(ctx, http.StatusOK, slotPlayResponse{
		Prize: prize,
		Win:   prize.ID != game.TryAgainID,
		Plays: plays,
	})
}
