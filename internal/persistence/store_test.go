package persistence

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/game"
	"airline_tycoon/internal/models"
)

var _ game.Store = (*Store)(nil)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(sqlx.NewDb(db, "sqlite")), mock
}

func sampleState(t *testing.T) models.GameState {
	t.Helper()
	cat := catalog.Default()
	a := game.NewActions(cat, game.NewRandom(3))
	st := game.NewGameState(cat)
	if _, err := a.Setup(&st, game.SetupRequest{Name: "Test Air", Code: "T9", Hub: "ICN", Concept: models.ConceptFSC, Capital: models.CapitalWealthy}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := a.LeaseAircraft(&st, game.AcquireRequest{ModelID: "A350", ConfigurationID: models.ConfigFSCLongHaul}); err != nil {
		t.Fatalf("lease: %v", err)
	}
	if _, err := a.ChangeConcept(&st, models.ConceptLCC); err != nil {
		t.Fatalf("change concept: %v", err)
	}
	return st
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := sampleState(t)
	payload, err := EncodeSnapshot(st)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeSnapshot(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Date.Equal(st.Date) || got.Date.Location() != time.UTC {
		t.Fatalf("date %v, want %v in UTC", got.Date, st.Date)
	}
	if got.Cash != st.Cash || got.AirlineProfile.Code != "T9" || len(got.Routes) != len(st.Routes) {
		t.Fatalf("state not restored")
	}
	if got.ConceptTransition == nil || !got.ConceptTransition.EndDate.Equal(st.ConceptTransition.EndDate) {
		t.Fatalf("transition not restored: %+v", got.ConceptTransition)
	}
	ac := got.Fleet[0]
	if ac.LeaseEndDate == nil || !ac.LeaseEndDate.Equal(*st.Fleet[0].LeaseEndDate) || ac.Capacity != st.Fleet[0].Capacity {
		t.Fatalf("aircraft not restored: %+v", ac)
	}
	if !got.HasFacility("ICN", models.FacilityOffice) {
		t.Fatalf("facilities not restored")
	}

	if _, err := DecodeSnapshot([]byte("not a snapshot")); err == nil {
		t.Fatalf("expected an error for a corrupt payload")
	}
}

func TestSaveSnapshotWithRetention(t *testing.T) {
	s, mock := newMockStore(t)
	s.SetRetention(5)
	st := sampleState(t)

	mock.ExpectExec("INSERT INTO snapshots").
		WithArgs("session-1", "2024-01-01", st.Cash, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM snapshots").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.SaveSnapshot(context.Background(), "session-1", st); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestLatestSnapshot(t *testing.T) {
	s, mock := newMockStore(t)
	st := sampleState(t)
	payload, err := EncodeSnapshot(st)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	mock.ExpectQuery("SELECT session_id, payload FROM snapshots").
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "payload"}).AddRow("session-1", payload))
	mock.ExpectQuery("SELECT session_id, payload FROM snapshots").
		WillReturnError(sql.ErrNoRows)

	id, got, found, err := s.LatestSnapshot(context.Background())
	if err != nil || !found || id != "session-1" || got.Cash != st.Cash {
		t.Fatalf("latest: id=%q found=%v err=%v", id, found, err)
	}
	_, _, found, err = s.LatestSnapshot(context.Background())
	if err != nil || found {
		t.Fatalf("empty store: found=%v err=%v", found, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestAppendNotificationsIsTransactional(t *testing.T) {
	s, mock := newMockStore(t)
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO notifications").
		WithArgs("session-1", "2024-03-01", "first").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO notifications").
		WithArgs("session-1", "2024-03-01", "second").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	if err := s.AppendNotifications(context.Background(), "session-1", day, []string{"first", "second"}); err == nil {
		t.Fatalf("expected the failed insert to surface")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}

	// nothing to write, nothing touched
	if err := s.AppendNotifications(context.Background(), "session-1", day, nil); err != nil {
		t.Fatalf("empty append: %v", err)
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "airline.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	ctx := context.Background()

	if _, _, found, err := s.LatestSnapshot(ctx); err != nil || found {
		t.Fatalf("fresh store: found=%v err=%v", found, err)
	}

	st := sampleState(t)
	for i := 0; i < 3; i++ {
		st.Cash += 1
		if err := s.SaveSnapshot(ctx, "session-1", st); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	id, got, found, err := s.LatestSnapshot(ctx)
	if err != nil || !found || id != "session-1" || got.Cash != st.Cash {
		t.Fatalf("latest: id=%q found=%v err=%v cash=%f", id, found, err, got.Cash)
	}
	n, err := s.PruneSnapshots(ctx, 1)
	if err != nil || n != 2 {
		t.Fatalf("prune removed %d: %v", n, err)
	}

	if err := s.AppendNotifications(ctx, "session-1", st.Date, []string{"a", "b", "c"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	msgs, err := s.RecentNotifications(ctx, 2)
	if err != nil || len(msgs) != 2 || msgs[0] != "b" || msgs[1] != "c" {
		t.Fatalf("recent notifications %v: %v", msgs, err)
	}

	if _, ok, err := s.GetMeta(ctx, "last_started_at"); err != nil || ok {
		t.Fatalf("unset meta: ok=%v err=%v", ok, err)
	}
	if err := s.SetMeta(ctx, "last_started_at", "2024-01-01"); err != nil {
		t.Fatalf("set meta: %v", err)
	}
	if err := s.SetMeta(ctx, "last_started_at", "2024-02-01"); err != nil {
		t.Fatalf("overwrite meta: %v", err)
	}
	if v, ok, err := s.GetMeta(ctx, "last_started_at"); err != nil || !ok || v != "2024-02-01" {
		t.Fatalf("meta %q ok=%v err=%v", v, ok, err)
	}
}

func TestOpenAppliesPragmas(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "airline.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.db.Get(&mode, "PRAGMA journal_mode"); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Fatalf("journal_mode = %q, want wal", mode)
	}
	var timeout int
	if err := s.db.Get(&timeout, "PRAGMA busy_timeout"); err != nil {
		t.Fatalf("busy_timeout: %v", err)
	}
	if timeout != 5000 {
		t.Fatalf("busy_timeout = %d, want 5000", timeout)
	}
}
