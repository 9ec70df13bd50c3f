package persistence

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"airline_tycoon/internal/models"
)

// EncodeSnapshot msgpack-encodes a game state and compresses it with zstd.
func EncodeSnapshot(st models.GameState) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(&st); err != nil {
		return nil, fmt.Errorf("msgpack encode: %w", err)
	}

	var compressed bytes.Buffer
	zw, err := zstd.NewWriter(&compressed)
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	if _, err := zw.Write(buf.Bytes()); err != nil {
		zw.Close()
		return nil, fmt.Errorf("zstd write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zstd close: %w", err)
	}
	return compressed.Bytes(), nil
}

// DecodeSnapshot reverses EncodeSnapshot.
func DecodeSnapshot(payload []byte) (models.GameState, error) {
	zr, err := zstd.NewReader(bytes.NewReader(payload), zstd.WithDecoderConcurrency(0))
	if err != nil {
		return models.GameState{}, fmt.Errorf("zstd reader: %w", err)
	}
	defer zr.Close()

	var st models.GameState
	dec := msgpack.NewDecoder(zr)
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&st); err != nil {
		return models.GameState{}, fmt.Errorf("msgpack decode: %w", err)
	}
	toUTC(&st)
	return st, nil
}

// toUTC pins every date of a decoded state to UTC so calendar checks
// behave the same as before the round trip.
func toUTC(st *models.GameState) {
	st.Date = st.Date.UTC()
	st.FoundingDate = st.FoundingDate.UTC()
	if st.CrashedReputationEndDate != nil {
		t := st.CrashedReputationEndDate.UTC()
		st.CrashedReputationEndDate = &t
	}
	if ct := st.ConceptTransition; ct != nil {
		ct.StartDate = ct.StartDate.UTC()
		ct.EndDate = ct.EndDate.UTC()
	}
	if st.LastReport != nil {
		st.LastReport.Date = st.LastReport.Date.UTC()
	}
	for i := range st.Fleet {
		ac := &st.Fleet[i]
		ac.PurchaseDate = ac.PurchaseDate.UTC()
		if ac.LeaseEndDate != nil {
			t := ac.LeaseEndDate.UTC()
			ac.LeaseEndDate = &t
		}
	}
}
