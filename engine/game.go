package engine

import (
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/neon-drive/components"
	"github.com/lixenwraith/neon-drive/constants"
)

// Game owns one driving session and everything the tick mutates
// Tick is the only mutator and must be called from a single goroutine
type Game struct {
	State     SessionState
	Paused    bool
	SessionID uuid.UUID
	Frame     int64

	Player components.PlayerComponent

	Obstacles   *EntityStore
	Scenery     *EntityStore
	LaneMarkers *EntityStore

	Score      float64
	GridScroll float64

	// LastObstacleSpawn is the game time of the last obstacle spawn, the cooldown baseline
	LastObstacleSpawn time.Time

	// Input is the command snapshot of the tick in progress
	Input Input

	clock   *PausableClock
	rng     *rand.Rand
	ids     components.EntityID
	systems []System
}

// NewGame creates a game in NotStarted with lane markers laid out
// A zero seed draws one from the clock
func NewGame(source TimeProvider, seed int64) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		State:  StateNotStarted,
		Player: components.PlayerComponent{Speed: constants.MinSpeed},
		clock:  NewPausableClock(source),
		rng:    rand.New(rand.NewSource(seed)),
	}
	g.Obstacles = NewEntityStore(&g.ids, 32)
	g.Scenery = NewEntityStore(&g.ids, 128)
	g.LaneMarkers = NewEntityStore(&g.ids, constants.LaneMarkerRows*2)
	g.layLaneMarkers()

	return g
}

// AddSystem registers a system in priority order
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})
}

// Now returns game time, frozen while paused
func (g *Game) Now() time.Time {
	return g.clock.Now()
}

// Rand returns the session random source
func (g *Game) Rand() *rand.Rand {
	return g.rng
}

// Tick applies one input snapshot and advances the simulation by one frame
func (g *Game) Tick(in Input) Snapshot {
	g.Frame++

	if g.applySessionCommands(in) {
		// The key that starts a session is consumed; the start tick simulates with no input
		in = Input{}
	}

	if g.State != StatePlaying || g.Paused {
		g.Input = Input{}
		return g.Snapshot()
	}

	// A collision ends the session but the frame still finishes, so the
	// collision tick scores like any other
	g.Input = in
	for _, s := range g.systems {
		s.Update(g)
	}
	g.Input = Input{}

	return g.Snapshot()
}

// applySessionCommands handles start, restart and pause; returns true if a session began
func (g *Game) applySessionCommands(in Input) bool {
	switch {
	case in.Restart:
		g.Restart()
		return true
	case (in.Start || in.Wake) && g.State == StateNotStarted:
		return g.Start()
	case in.Start && g.State == StateGameOver:
		g.Restart()
		return true
	}

	if in.TogglePause && g.State == StatePlaying {
		g.SetPaused(!g.Paused)
	}
	return false
}

// Start begins a session from NotStarted or GameOver; returns false if already playing
func (g *Game) Start() bool {
	if g.State == StatePlaying {
		return false
	}
	g.reset()
	return true
}

// Restart recenters the player and starts a fresh session from any state
func (g *Game) Restart() {
	g.Player.Lane = 0
	g.Player.PositionX = 0
	g.Player.RotationZ = 0
	g.reset()
}

// OnCollision ends the session; repeated signals and signals outside Playing are ignored
func (g *Game) OnCollision() bool {
	if g.State != StatePlaying {
		return false
	}
	g.State = StateGameOver
	log.Printf("session %s over: score %d, speed %d km/h", g.SessionID, DisplayScore(g.Score), DisplaySpeedKmh(g.Player.Speed))
	return true
}

// SetPaused freezes or resumes the simulation and its clock
func (g *Game) SetPaused(paused bool) {
	if paused == g.Paused {
		return
	}
	g.Paused = paused
	if paused {
		g.clock.Pause()
	} else {
		g.clock.Resume()
	}
}

func (g *Game) reset() {
	g.SetPaused(false)

	g.Player.Speed = constants.MinSpeed
	g.Score = 0
	g.GridScroll = 0
	g.Obstacles.Clear()
	g.Scenery.Clear()
	g.layLaneMarkers()
	g.LastObstacleSpawn = g.clock.Now()
	g.SessionID = uuid.New()
	g.State = StatePlaying

	log.Printf("session %s started", g.SessionID)
}

// layLaneMarkers places the dashed dividers at their initial depths
func (g *Game) layLaneMarkers() {
	g.LaneMarkers.Clear()
	for i := 0; i < constants.LaneMarkerRows; i++ {
		depth := constants.LaneMarkerFirstDepth + float64(i)*constants.LaneMarkerSpacing
		for _, x := range [2]float64{-constants.LaneMarkerOffsetX, constants.LaneMarkerOffsetX} {
			g.LaneMarkers.Spawn(components.Entity{
				Kind: components.KindLaneMarker,
				RoadAnchor: components.RoadAnchor{
					LateralOffset: x,
					Depth:         depth,
					Baseline:      constants.LaneMarkerBaseline,
					Height:        Curvature(depth, constants.LaneMarkerBaseline),
				},
			})
		}
	}
}

// Snapshot copies the presenter-facing state
func (g *Game) Snapshot() Snapshot {
	var sessionID string
	if g.SessionID != uuid.Nil {
		sessionID = g.SessionID.String()
	}

	return Snapshot{
		SessionID:       sessionID,
		Frame:           g.Frame,
		State:           g.State,
		Paused:          g.Paused,
		PlayerX:         g.Player.PositionX,
		PlayerRotationZ: g.Player.RotationZ,
		Lane:            g.Player.Lane,
		Speed:           g.Player.Speed,
		Score:           g.Score,
		DisplayScore:    DisplayScore(g.Score),
		DisplaySpeedKmh: DisplaySpeedKmh(g.Player.Speed),
		GridScroll:      g.GridScroll,
		Obstacles:       viewsOf(g.Obstacles),
		Scenery:         viewsOf(g.Scenery),
		LaneMarkers:     viewsOf(g.LaneMarkers),
	}
}
