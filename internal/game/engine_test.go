package game

import (
	"context"
	"fmt"
	"testing"
	"time"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/errors"
	"airline_tycoon/internal/models"
)

type memStore struct {
	snapshots []models.GameState
	sessions  []string
	notes     []string
}

func (m *memStore) SaveSnapshot(_ context.Context, sessionID string, st models.GameState) error {
	m.snapshots = append(m.snapshots, st)
	m.sessions = append(m.sessions, sessionID)
	return nil
}

func (m *memStore) LatestSnapshot(context.Context) (string, models.GameState, bool, error) {
	if len(m.snapshots) == 0 {
		return "", models.GameState{}, false, nil
	}
	n := len(m.snapshots) - 1
	return m.sessions[n], m.snapshots[n], true, nil
}

func (m *memStore) AppendNotifications(_ context.Context, _ string, _ time.Time, msgs []string) error {
	m.notes = append(m.notes, msgs...)
	return nil
}

func (m *memStore) RecentNotifications(_ context.Context, limit int) ([]string, error) {
	if len(m.notes) <= limit {
		return m.notes, nil
	}
	return m.notes[len(m.notes)-limit:], nil
}

func newTestEngine(store Store, autosave int) *Engine {
	return NewEngine(catalog.Default(), &stubRandom{}, store, autosave)
}

func TestEngineSetupAndAdvance(t *testing.T) {
	e := newTestEngine(nil, 0)
	note, err := e.Setup(SetupRequest{Name: "Test Air", Code: "T9", Hub: "ICN", Concept: models.ConceptLCC, Capital: models.CapitalStandard})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if got := e.Notifications(); len(got) != 1 || got[0] != note {
		t.Fatalf("notifications %v", got)
	}

	before := e.State()
	after := e.AdvanceDay()
	if !after.Date.Equal(before.Date.AddDate(0, 0, 1)) {
		t.Fatalf("date %s after one day from %s", after.Date, before.Date)
	}
	if !e.State().Date.Equal(after.Date) {
		t.Fatalf("engine state not replaced")
	}

	if _, err := e.OpenRoute("ICN-XXX", models.PriceStandard); errors.GetType(err) != errors.ErrorTypeNotFound {
		t.Fatalf("missing route: %v", err)
	}
	if len(e.Notifications()) != 1 {
		t.Fatalf("refused action was recorded")
	}
}

func TestEngineStateIsACopy(t *testing.T) {
	e := newTestEngine(nil, 0)
	st := e.State()
	st.Cash = 42
	st.RecentEvents = append(st.RecentEvents, "tampered")
	if got := e.State(); got.Cash == 42 || len(got.RecentEvents) != 0 {
		t.Fatalf("caller modified engine state")
	}
}

func TestEngineReputationChangeNotification(t *testing.T) {
	e := newTestEngine(nil, 0)
	st := e.State()
	st.Reputation = models.ReputationCrashed
	st.Concept = models.ConceptFSC
	end := st.Date.AddDate(0, 0, 1)
	st.CrashedReputationEndDate = &end
	e.SetState(st)

	e.AdvanceDay()
	got := e.Notifications()
	if len(got) != 2 || got[0] != noteCrashRecovered || got[1] != "Brand reputation is now 'FSC'." {
		t.Fatalf("notifications %v", got)
	}
}

func TestEngineNotificationsAreCapped(t *testing.T) {
	e := newTestEngine(nil, 0)
	e.mu.Lock()
	for i := 0; i < maxNotifications+10; i++ {
		e.addEventLocked(fmt.Sprintf("note %d", i))
	}
	e.mu.Unlock()
	got := e.Notifications()
	if len(got) != maxNotifications || got[len(got)-1] != fmt.Sprintf("note %d", maxNotifications+9) {
		t.Fatalf("unexpected ring contents: %d entries", len(got))
	}
}

func TestEngineAutosave(t *testing.T) {
	store := &memStore{}
	e := newTestEngine(store, 3)
	if _, err := e.Setup(SetupRequest{Name: "Test Air", Code: "T9", Hub: "ICN", Concept: models.ConceptFSC, Capital: models.CapitalStandard}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	for i := 0; i < 7; i++ {
		e.AdvanceDay()
	}
	if len(store.snapshots) != 2 {
		t.Fatalf("expected 2 autosaves, got %d", len(store.snapshots))
	}
	if len(store.notes) != 1 {
		t.Fatalf("stored notifications %v", store.notes)
	}
	if store.sessions[0] != e.SessionID() {
		t.Fatalf("snapshot stored under %q, engine session %q", store.sessions[0], e.SessionID())
	}
}

func TestEngineSaveAndLoad(t *testing.T) {
	store := &memStore{}
	e := newTestEngine(store, 0)
	if _, err := e.Setup(SetupRequest{Name: "Test Air", Code: "T9", Hub: "ICN", Concept: models.ConceptFSC, Capital: models.CapitalStandard}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	e.AdvanceDay()
	if err := e.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	saved := e.State()

	other := newTestEngine(store, 0)
	found, err := other.Load(context.Background())
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	got := other.State()
	if !got.Date.Equal(saved.Date) || got.Cash != saved.Cash || got.AirlineProfile.Code != "T9" {
		t.Fatalf("loaded state differs from saved")
	}
	if other.SessionID() != e.SessionID() {
		t.Fatalf("session id not restored")
	}

	if err := newTestEngine(nil, 0).Save(context.Background()); err == nil {
		t.Fatalf("expected an error saving without a store")
	}
}

func TestEngineSpeedControl(t *testing.T) {
	e := newTestEngine(nil, 0)
	if err := e.SetSpeed(3); errors.GetType(err) != errors.ErrorTypeValidation {
		t.Fatalf("unsupported speed: %v", err)
	}
	if err := e.StartSim(models.SpeedSuperFast); err != nil {
		t.Fatalf("start: %v", err)
	}
	if st := e.State(); !st.IsRunning || st.Speed != models.SpeedSuperFast {
		t.Fatalf("not running at super fast: %+v", st.Speed)
	}
	if err := e.SetSpeed(models.SpeedFast); err != nil {
		t.Fatalf("set speed: %v", err)
	}
	if err := e.SetSpeed(models.SpeedPaused); err != nil {
		t.Fatalf("pause: %v", err)
	}
	st := e.State()
	if st.IsRunning || st.Speed != models.SpeedFast {
		t.Fatalf("after pause running=%v speed=%d", st.IsRunning, st.Speed)
	}
	// resume at the last speed
	if err := e.StartSim(models.SpeedPaused); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if st := e.State(); st.Speed != models.SpeedFast {
		t.Fatalf("resumed at %d", st.Speed)
	}
	e.Stop()
}

func TestReplacedLoopCannotTick(t *testing.T) {
	e := newTestEngine(nil, 0)
	if err := e.StartSim(models.SpeedNormal); err != nil {
		t.Fatalf("start: %v", err)
	}
	e.mu.Lock()
	oldCtx, oldTicker := e.ctx, e.ticker
	e.mu.Unlock()

	if err := e.SetSpeed(models.SpeedFast); err != nil {
		t.Fatalf("set speed: %v", err)
	}
	e.mu.Lock()
	newTicker := e.ticker
	e.mu.Unlock()
	if newTicker == oldTicker {
		t.Fatalf("speed change reused the old ticker")
	}
	e.PauseSim()

	before := e.State().Date
	if _, ok := e.advance(oldCtx); ok {
		t.Fatalf("a cancelled loop advanced the day")
	}
	if !e.State().Date.Equal(before) {
		t.Fatalf("date moved from %s to %s", before, e.State().Date)
	}
	if _, ok := e.advance(context.Background()); !ok {
		t.Fatalf("a live context should advance")
	}
}

func TestIntervalForSpeed(t *testing.T) {
	cases := map[int]time.Duration{
		models.SpeedNormal:    time.Second,
		models.SpeedFast:      200 * time.Millisecond,
		models.SpeedSuperFast: time.Second / 15,
	}
	for speed, want := range cases {
		if got := intervalForSpeed(speed); got != want {
			t.Errorf("intervalForSpeed(%d) = %s, want %s", speed, got, want)
		}
	}
}
