package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/neon-drive/components"
	"github.com/lixenwraith/neon-drive/constants"
)

// recordSystem appends its name to a shared log on every update
type recordSystem struct {
	name     string
	priority int
	log      *[]string
	onUpdate func(g *Game)
}

func (s *recordSystem) Priority() int { return s.priority }

func (s *recordSystem) Update(g *Game) {
	*s.log = append(*s.log, s.name)
	if s.onUpdate != nil {
		s.onUpdate(g)
	}
}

func newTestGame() (*Game, *MockTimeProvider) {
	source := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewGame(source, 1), source
}

func TestNewGameInitialState(t *testing.T) {
	g, _ := newTestGame()

	if g.State != StateNotStarted {
		t.Errorf("Expected NotStarted, got %v", g.State)
	}
	if g.Player.Speed != constants.MinSpeed {
		t.Errorf("Expected speed %.2f, got %.2f", constants.MinSpeed, g.Player.Speed)
	}
	if got := g.LaneMarkers.Len(); got != constants.LaneMarkerRows*2 {
		t.Errorf("Expected %d lane markers, got %d", constants.LaneMarkerRows*2, got)
	}
	if snap := g.Snapshot(); snap.SessionID != "" {
		t.Errorf("Expected no session id before start, got %q", snap.SessionID)
	}
}

func TestTickIsNoOpUntilStarted(t *testing.T) {
	g, _ := newTestGame()
	var calls []string
	g.AddSystem(&recordSystem{name: "sim", log: &calls})

	for i := 0; i < 5; i++ {
		g.Tick(Input{Accelerate: true, LaneChanges: []int{1}})
	}

	if len(calls) != 0 {
		t.Errorf("Expected no system updates before start, got %d", len(calls))
	}
	if g.Frame != 5 {
		t.Errorf("Expected frame counter to advance to 5, got %d", g.Frame)
	}
}

func TestStartConsumesTriggeringInput(t *testing.T) {
	g, _ := newTestGame()
	var calls []string
	g.AddSystem(&recordSystem{name: "sim", log: &calls, onUpdate: func(g *Game) {
		if len(g.Input.LaneChanges) != 0 {
			t.Error("Expected starting key to be consumed")
		}
	}})

	snap := g.Tick(Input{Start: true, LaneChanges: []int{-1}})
	if snap.State != StatePlaying {
		t.Fatalf("Expected Playing after start, got %v", snap.State)
	}
	if snap.SessionID == "" {
		t.Error("Expected a session id after start")
	}
	if len(calls) != 1 {
		t.Errorf("Expected the start tick to simulate once with empty input, got %d updates", len(calls))
	}

	g.Tick(Input{})
	if len(calls) != 2 {
		t.Errorf("Expected simulation on the following tick, got %d updates", len(calls))
	}
}

func TestSessionTransitions(t *testing.T) {
	g, _ := newTestGame()

	if g.OnCollision() {
		t.Error("Expected collision before start to be ignored")
	}
	if !g.Start() {
		t.Fatal("Expected Start from NotStarted to succeed")
	}
	if g.Start() {
		t.Error("Expected Start while Playing to be rejected")
	}
	if !g.OnCollision() {
		t.Fatal("Expected collision while Playing to end the session")
	}
	if g.OnCollision() {
		t.Error("Expected repeated collision to be ignored")
	}
	if g.State != StateGameOver {
		t.Errorf("Expected GameOver, got %v", g.State)
	}

	first := g.SessionID
	g.Tick(Input{Start: true})
	if g.State != StatePlaying {
		t.Errorf("Expected Start from GameOver to restart, got %v", g.State)
	}
	if g.SessionID == first {
		t.Error("Expected a new session id after restart")
	}
}

// TestRestartIdempotent verifies restart yields the same reset state from any prior state
func TestRestartIdempotent(t *testing.T) {
	setups := map[string]func(g *Game){
		"NotStarted": func(g *Game) {},
		"Playing":    func(g *Game) { g.Start() },
		"GameOver":   func(g *Game) { g.Start(); g.OnCollision() },
		"Paused":     func(g *Game) { g.Start(); g.SetPaused(true) },
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			g, _ := newTestGame()
			setup(g)

			g.Player.Lane = 1
			g.Player.PositionX = 2.7
			g.Player.Speed = 1.2
			g.Score = 512
			g.GridScroll = 40
			g.Obstacles.Spawn(components.Entity{Kind: components.KindObstacle})
			g.Scenery.Spawn(components.Entity{Kind: components.KindTree})
			g.LaneMarkers.At(0).Depth = 5

			g.Restart()

			if g.State != StatePlaying || g.Paused {
				t.Errorf("Expected unpaused Playing, got %v paused=%v", g.State, g.Paused)
			}
			if g.Score != 0 || g.GridScroll != 0 {
				t.Errorf("Expected zero score and scroll, got %.1f and %.1f", g.Score, g.GridScroll)
			}
			if g.Player.Speed != constants.MinSpeed || g.Player.Lane != 0 || g.Player.PositionX != 0 {
				t.Errorf("Expected centered player at min speed, got %+v", g.Player)
			}
			if g.Obstacles.Len() != 0 || g.Scenery.Len() != 0 {
				t.Errorf("Expected empty world, got %d obstacles and %d scenery", g.Obstacles.Len(), g.Scenery.Len())
			}
			if got := g.LaneMarkers.At(0).Depth; got != constants.LaneMarkerFirstDepth {
				t.Errorf("Expected lane markers re-laid, first depth %.1f", got)
			}
		})
	}
}

func TestStartRecordsCooldownBaseline(t *testing.T) {
	g, source := newTestGame()
	source.Advance(3 * time.Second)
	g.Start()

	if !g.LastObstacleSpawn.Equal(g.Now()) {
		t.Errorf("Expected cooldown baseline %v, got %v", g.Now(), g.LastObstacleSpawn)
	}
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	g, _ := newTestGame()
	var calls []string
	g.AddSystem(&recordSystem{name: "score", priority: 50, log: &calls})
	g.AddSystem(&recordSystem{name: "kinematics", priority: 10, log: &calls})
	g.AddSystem(&recordSystem{name: "movement", priority: 30, log: &calls})
	g.Start()

	g.Tick(Input{})

	want := []string{"kinematics", "movement", "score"}
	if len(calls) != len(want) {
		t.Fatalf("Expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, calls)
			break
		}
	}
}

func TestCollisionTickFinishesPipeline(t *testing.T) {
	g, _ := newTestGame()
	var calls []string
	g.AddSystem(&recordSystem{name: "collision", priority: 40, log: &calls, onUpdate: func(g *Game) { g.OnCollision() }})
	g.AddSystem(&recordSystem{name: "score", priority: 50, log: &calls})
	g.Start()

	snap := g.Tick(Input{})
	if snap.State != StateGameOver {
		t.Fatalf("Expected GameOver, got %v", snap.State)
	}
	if want := []string{"collision", "score"}; len(calls) != 2 || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("Expected %v on the collision tick, got %v", want, calls)
	}

	g.Tick(Input{})
	if len(calls) != 2 {
		t.Errorf("Expected ticks after game over to be no-ops, got %v", calls)
	}
}

func TestPauseFreezesSimulationAndClock(t *testing.T) {
	g, source := newTestGame()
	var calls []string
	g.AddSystem(&recordSystem{name: "sim", log: &calls})
	g.Start()

	g.Tick(Input{TogglePause: true})
	if !g.Paused {
		t.Fatal("Expected game to be paused")
	}
	frozen := g.Now()
	source.Advance(10 * time.Second)
	g.Tick(Input{Accelerate: true})

	if len(calls) != 0 {
		t.Errorf("Expected no simulation while paused, got %d updates", len(calls))
	}
	if !g.Now().Equal(frozen) {
		t.Errorf("Expected game clock frozen at %v, got %v", frozen, g.Now())
	}

	g.Tick(Input{TogglePause: true})
	if g.Paused {
		t.Error("Expected game to resume")
	}
	if len(calls) != 1 {
		t.Errorf("Expected simulation to resume on the toggle tick, got %d updates", len(calls))
	}
}

func TestPauseIgnoredOutsidePlaying(t *testing.T) {
	g, _ := newTestGame()
	g.Tick(Input{TogglePause: true})
	if g.Paused {
		t.Error("Expected pause to be ignored before start")
	}
}

func TestSnapshotDisplayValues(t *testing.T) {
	g, _ := newTestGame()
	g.Start()
	g.Score = 1234.5
	g.Player.Speed = 0.75

	snap := g.Snapshot()
	if snap.DisplayScore != 123 {
		t.Errorf("Expected display score 123, got %d", snap.DisplayScore)
	}
	if snap.DisplaySpeedKmh != 150 {
		t.Errorf("Expected 150 km/h, got %d", snap.DisplaySpeedKmh)
	}
}

func TestWakeStartsOnlyFromNotStarted(t *testing.T) {
	g, _ := newTestGame()

	g.Tick(Input{Wake: true})
	if g.State != StatePlaying {
		t.Fatalf("Expected any key to start from NotStarted, got %v", g.State)
	}

	g.OnCollision()
	for i := 0; i < 5; i++ {
		g.Tick(Input{Wake: true, Accelerate: true})
	}
	if g.State != StateGameOver {
		t.Errorf("Expected held driving keys not to restart after game over, got %v", g.State)
	}
}

func TestSnapshotDoesNotAliasStores(t *testing.T) {
	g, _ := newTestGame()
	g.Start()
	id := g.Obstacles.Spawn(components.Entity{
		Kind:       components.KindObstacle,
		RoadAnchor: components.RoadAnchor{Depth: -100},
	})

	snap := g.Snapshot()
	if len(snap.Obstacles) != 1 || snap.Obstacles[0].ID != id {
		t.Fatalf("Expected one obstacle %d in snapshot, got %+v", id, snap.Obstacles)
	}

	e, _ := g.Obstacles.Get(id)
	e.Depth = 5
	if snap.Obstacles[0].Depth != -100 {
		t.Errorf("Snapshot changed with the store: depth %.1f", snap.Obstacles[0].Depth)
	}

	snap.LaneMarkers[0].Depth = 999
	if g.LaneMarkers.At(0).Depth == 999 {
		t.Error("Store changed through the snapshot")
	}
}
