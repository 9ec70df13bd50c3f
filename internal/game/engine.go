package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/brunoga/deep"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/errors"
	"airline_tycoon/internal/models"
)

const maxNotifications = 50

// Store persists snapshots and notifications of a session.
type Store interface {
	SaveSnapshot(ctx context.Context, sessionID string, st models.GameState) error
	LatestSnapshot(ctx context.Context) (string, models.GameState, bool, error)
	AppendNotifications(ctx context.Context, sessionID string, date time.Time, msgs []string) error
	RecentNotifications(ctx context.Context, limit int) ([]string, error)
}

// Engine owns the running session: its state, the ticker loop and the
// player actions applied in between ticks.
type Engine struct {
	mu           sync.Mutex
	cat          *catalog.Catalog
	sim          *Simulator
	actions      *Actions
	store        Store
	sessionID    string
	state        models.GameState
	pending      []string
	autosaveDays int
	sinceSave    int
	log          *slog.Logger
	ctx          context.Context
	cancel       context.CancelFunc
	ticker       *time.Ticker
}

// NewEngine starts a fresh session. store may be nil, in which case
// nothing is persisted.
func NewEngine(cat *catalog.Catalog, rng Random, store Store, autosaveDays int) *Engine {
	return &Engine{
		cat:          cat,
		sim:          NewSimulator(cat, rng),
		actions:      NewActions(cat, rng),
		store:        store,
		sessionID:    uuid.NewString(),
		state:        NewGameState(cat),
		autosaveDays: autosaveDays,
		log:          slog.Default().With("component", "engine"),
	}
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

func (e *Engine) SessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessionID
}

// State returns a copy of the current game state.
func (e *Engine) State() models.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return deep.MustCopy(e.state)
}

// SetState replaces the current game state.
func (e *Engine) SetState(st models.GameState) {
	e.mu.Lock()
	e.state = st
	e.mu.Unlock()
}

// Notifications returns the most recent notifications, oldest first.
func (e *Engine) Notifications() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.state.RecentEvents))
	copy(out, e.state.RecentEvents)
	return out
}

func (e *Engine) addEventLocked(msg string) {
	if msg == "" {
		return
	}
	e.state.RecentEvents = append(e.state.RecentEvents, msg)
	if len(e.state.RecentEvents) > maxNotifications {
		e.state.RecentEvents = e.state.RecentEvents[len(e.state.RecentEvents)-maxNotifications:]
	}
	e.pending = append(e.pending, msg)
}

// AdvanceDay runs one daily update and returns the new state.
func (e *Engine) AdvanceDay() models.GameState {
	st, _ := e.advance(context.Background())
	return st
}

// advance runs a tick unless ctx was cancelled. Loops are cancelled under
// the same lock, so a replaced loop never gets a tick in.
func (e *Engine) advance(ctx context.Context) (models.GameState, bool) {
	e.mu.Lock()
	if ctx.Err() != nil {
		e.mu.Unlock()
		return models.GameState{}, false
	}
	prevRep := e.state.Reputation
	next, notes := e.sim.ProcessDailyUpdate(e.state)
	e.state = next

	for _, n := range notes {
		if strings.HasPrefix(n, "[EMERGENCY]") {
			e.log.Warn(n, "date", next.Date.Format(time.DateOnly))
		} else {
			e.log.Info(n, "date", next.Date.Format(time.DateOnly))
		}
		e.addEventLocked(n)
	}
	if rep := next.Reputation; rep != prevRep && rep != models.ReputationStartup && rep != models.ReputationTransitioning {
		name := string(rep)
		if r, ok := e.cat.Reputation(rep); ok {
			name = r.Name
		}
		msg := fmt.Sprintf("Brand reputation is now '%s'.", name)
		e.log.Info(msg, "date", next.Date.Format(time.DateOnly))
		e.addEventLocked(msg)
	}

	e.log.Debug("day advanced",
		"date", next.Date.Format(time.DateOnly),
		"cash", humanize.Comma(int64(next.Cash)),
		"otp", next.OnTimePerformance,
		"satisfaction", next.PassengerSatisfaction)

	e.sinceSave++
	autosave := e.store != nil && e.autosaveDays > 0 && e.sinceSave >= e.autosaveDays
	out := deep.MustCopy(e.state)
	e.mu.Unlock()

	if autosave {
		if err := e.Save(context.Background()); err != nil {
			e.log.Error("autosave failed", "error", err)
		}
	}
	return out, true
}

// Save writes a snapshot and any notifications not yet stored.
func (e *Engine) Save(ctx context.Context) error {
	if e.store == nil {
		return errors.Validationf("no store configured")
	}
	e.mu.Lock()
	st := deep.MustCopy(e.state)
	pending := e.pending
	e.pending = nil
	e.sinceSave = 0
	sessionID := e.sessionID
	e.mu.Unlock()

	if err := e.store.SaveSnapshot(ctx, sessionID, st); err != nil {
		e.requeue(pending)
		return errors.WrapInternal("save snapshot", err)
	}
	if len(pending) > 0 {
		if err := e.store.AppendNotifications(ctx, sessionID, st.Date, pending); err != nil {
			e.requeue(pending)
			return errors.WrapInternal("save notifications", err)
		}
	}
	e.log.Info("game saved", "date", st.Date.Format(time.DateOnly), "cash", humanize.Comma(int64(st.Cash)))
	return nil
}

func (e *Engine) requeue(msgs []string) {
	e.mu.Lock()
	e.pending = append(msgs, e.pending...)
	e.mu.Unlock()
}

// Load restores the latest snapshot. It reports false when there is none.
func (e *Engine) Load(ctx context.Context) (bool, error) {
	if e.store == nil {
		return false, nil
	}
	sessionID, st, found, err := e.store.LatestSnapshot(ctx)
	if err != nil {
		return false, errors.WrapInternal("load snapshot", err)
	}
	if !found {
		return false, nil
	}
	if st.RecentEvents == nil {
		st.RecentEvents = []string{}
	}
	if st.AirportFacilities == nil {
		st.AirportFacilities = map[string][]models.FacilityType{}
	}
	// the ticker is not running after a restart
	st.IsRunning = false

	e.mu.Lock()
	e.state = st
	e.sessionID = sessionID
	e.pending = nil
	e.sinceSave = 0
	e.mu.Unlock()
	e.log.Info("game loaded", "session", sessionID, "date", st.Date.Format(time.DateOnly))
	return true, nil
}

// StoredNotifications reads notifications back from the store.
func (e *Engine) StoredNotifications(ctx context.Context, limit int) ([]string, error) {
	if e.store == nil {
		return e.Notifications(), nil
	}
	msgs, err := e.store.RecentNotifications(ctx, limit)
	if err != nil {
		return nil, errors.WrapInternal("load notifications", err)
	}
	return msgs, nil
}

func intervalForSpeed(speed int) time.Duration {
	if speed <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(speed)
}

// SetSpeed changes the simulation speed. Speed 0 pauses; otherwise a
// running loop picks up the new interval.
func (e *Engine) SetSpeed(speed int) error {
	if !models.ValidSpeed(speed) {
		return errors.Validationf("unsupported speed %d", speed)
	}
	if speed == models.SpeedPaused {
		e.PauseSim()
		return nil
	}
	e.mu.Lock()
	e.state.Speed = speed
	running := e.state.IsRunning
	e.mu.Unlock()
	if running {
		e.startSim(speed)
	}
	return nil
}

// StartSim starts the ticker loop. Speed 0 resumes at the last speed.
func (e *Engine) StartSim(speed int) error {
	if !models.ValidSpeed(speed) {
		return errors.Validationf("unsupported speed %d", speed)
	}
	if speed == models.SpeedPaused {
		e.mu.Lock()
		speed = e.state.Speed
		e.mu.Unlock()
		if speed == models.SpeedPaused {
			speed = models.SpeedNormal
		}
	}
	e.startSim(speed)
	return nil
}

func (e *Engine) startSim(speed int) {
	interval := intervalForSpeed(speed)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Speed = speed
	e.state.IsRunning = true

	if e.cancel != nil {
		e.cancel()
	}
	if e.ticker != nil {
		e.ticker.Stop()
	}
	e.ticker = time.NewTicker(interval)
	e.ctx, e.cancel = context.WithCancel(context.Background())
	e.log.Info("simulation started", "speed", speed, "interval", interval)

	go func(ctx context.Context, ticker *time.Ticker) {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, ok := e.advance(ctx); !ok {
					return
				}
			}
		}
	}(e.ctx, e.ticker)
}

// PauseSim stops the ticker loop.
func (e *Engine) PauseSim() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.IsRunning = false
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

// Stop halts the loop on shutdown, keeping the running flag for the next start.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

func (e *Engine) apply(action string, fn func(st *models.GameState) (string, error)) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	note, err := fn(&e.state)
	if err != nil {
		e.log.Debug("action refused", "action", action, "error", err)
		return "", err
	}
	e.log.Info(note, "action", action, "cash", humanize.Comma(int64(e.state.Cash)))
	e.addEventLocked(note)
	return note, nil
}

func (e *Engine) Setup(req SetupRequest) (string, error) {
	return e.apply("setup", func(st *models.GameState) (string, error) {
		return e.actions.Setup(st, req)
	})
}

func (e *Engine) PurchaseAircraft(req AcquireRequest) (string, error) {
	return e.apply("purchase_aircraft", func(st *models.GameState) (string, error) {
		return e.actions.PurchaseAircraft(st, req)
	})
}

func (e *Engine) LeaseAircraft(req AcquireRequest) (string, error) {
	return e.apply("lease_aircraft", func(st *models.GameState) (string, error) {
		return e.actions.LeaseAircraft(st, req)
	})
}

func (e *Engine) OpenRoute(routeID string, strategy models.PriceStrategy) (string, error) {
	return e.apply("open_route", func(st *models.GameState) (string, error) {
		return e.actions.OpenRoute(st, routeID, strategy)
	})
}

func (e *Engine) UpdateSchedule(aircraftID string, routeIDs []string) (string, error) {
	return e.apply("update_schedule", func(st *models.GameState) (string, error) {
		return e.actions.UpdateSchedule(st, aircraftID, routeIDs)
	})
}

func (e *Engine) ReturnLease(aircraftID string) (string, error) {
	return e.apply("return_lease", func(st *models.GameState) (string, error) {
		return e.actions.ReturnLease(st, aircraftID)
	})
}

func (e *Engine) ExtendLease(aircraftID string) (string, error) {
	return e.apply("extend_lease", func(st *models.GameState) (string, error) {
		return e.actions.ExtendLease(st, aircraftID)
	})
}

func (e *Engine) BuyoutAircraft(aircraftID string) (string, error) {
	return e.apply("buyout_aircraft", func(st *models.GameState) (string, error) {
		return e.actions.BuyoutAircraft(st, aircraftID)
	})
}

func (e *Engine) SellAircraft(aircraftID string) (string, error) {
	return e.apply("sell_aircraft", func(st *models.GameState) (string, error) {
		return e.actions.SellAircraft(st, aircraftID)
	})
}

func (e *Engine) ChangeConcept(concept models.AirlineConcept) (string, error) {
	return e.apply("change_concept", func(st *models.GameState) (string, error) {
		return e.actions.ChangeConcept(st, concept)
	})
}

func (e *Engine) SetMaintenanceLevel(level models.MaintenanceLevel) (string, error) {
	return e.apply("set_maintenance", func(st *models.GameState) (string, error) {
		return e.actions.SetMaintenanceLevel(st, level)
	})
}

func (e *Engine) SetRoutePriceStrategy(routeID string, strategy models.PriceStrategy) (string, error) {
	return e.apply("set_price_strategy", func(st *models.GameState) (string, error) {
		return e.actions.SetRoutePriceStrategy(st, routeID, strategy)
	})
}

func (e *Engine) EstablishHub(code string) (string, error) {
	return e.apply("establish_hub", func(st *models.GameState) (string, error) {
		return e.actions.EstablishHub(st, code)
	})
}

func (e *Engine) PurchaseFacility(code string, facility models.FacilityType) (string, error) {
	return e.apply("purchase_facility", func(st *models.GameState) (string, error) {
		return e.actions.PurchaseFacility(st, code, facility)
	})
}

func (e *Engine) TransferAircraftHub(aircraftID, hub string) (string, error) {
	return e.apply("transfer_aircraft", func(st *models.GameState) (string, error) {
		return e.actions.TransferAircraftHub(st, aircraftID, hub)
	})
}

func (e *Engine) SetServiceLevel(category, level string) (string, error) {
	return e.apply("set_service_level", func(st *models.GameState) (string, error) {
		return e.actions.SetServiceLevel(st, category, level)
	})
}

func (e *Engine) ChangeAircraftConfiguration(aircraftID string, config models.ConfigurationType) (string, error) {
	return e.apply("change_configuration", func(st *models.GameState) (string, error) {
		return e.actions.ChangeAircraftConfiguration(st, aircraftID, config)
	})
}

func (e *Engine) RetrofitAircraft(aircraftID string) (string, error) {
	return e.apply("retrofit_aircraft", func(st *models.GameState) (string, error) {
		return e.actions.RetrofitAircraft(st, aircraftID)
	})
}
