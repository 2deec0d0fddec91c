// client/airlines.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package client

import (
	"context"
	"database/sql"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	_ "modernc.org/sqlite"

	"github.com/skytrail/skytrail/aviation"
)

// AirlineProfile is the reference data for one carrier.
type AirlineProfile struct {
	ICAO     string
	IATA     string
	Name     string
	Callsign string
	Country  string
}

// AirlineStore looks up airline profiles by carrier code; the production
// implementation is the local sqlite database, but tests supply their
// own.
type AirlineStore interface {
	AirlineByCode(ctx context.Context, code string) (AirlineProfile, error)
}

// AirlineDB is the sqlite-backed AirlineStore.
type AirlineDB struct {
	db *sql.DB
}

func OpenAirlineDB(path string) (*AirlineDB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?cache=shared&mode=ro")
	if err != nil {
		return nil, err
	}
	return &AirlineDB{db: db}, nil
}

func (a *AirlineDB) Close() error {
	return a.db.Close()
}

// AirlineByCode accepts either a 2-letter IATA or 3-letter ICAO carrier
// code.
func (a *AirlineDB) AirlineByCode(ctx context.Context, code string) (AirlineProfile, error) {
	column := "icao"
	if len(code) == 2 {
		column = "iata"
	}

	var p AirlineProfile
	err := a.db.QueryRowContext(ctx,
		"SELECT icao, iata, name, indicatif, country FROM airlines WHERE "+column+" = ?", code).
		Scan(&p.ICAO, &p.IATA, &p.Name, &p.Callsign, &p.Country)
	if err == sql.ErrNoRows {
		return AirlineProfile{}, ErrNotFound
	}
	return p, err
}

// AirlineDirectory fronts an AirlineStore with an expiring LRU cache so
// that repeated lookups for the same carrier (every flight row shows its
// airline) don't requery the store. The cache is owned here and injected
// along with the directory, never reached through a global.
type AirlineDirectory struct {
	store AirlineStore
	cache *expirable.LRU[string, AirlineProfile]
}

func NewAirlineDirectory(store AirlineStore) *AirlineDirectory {
	return &AirlineDirectory{
		store: store,
		cache: expirable.NewLRU[string, AirlineProfile](256, nil, 4*time.Hour),
	}
}

func (d *AirlineDirectory) Lookup(ctx context.Context, code string) (AirlineProfile, error) {
	if p, ok := d.cache.Get(code); ok {
		return p, nil
	}

	p, err := d.store.AirlineByCode(ctx, code)
	if err != nil {
		return AirlineProfile{}, err
	}
	d.cache.Add(code, p)
	return p, nil
}

// OperatorProfile resolves the airline operating the given flight,
// trying its ICAO code first and then IATA.
func (d *AirlineDirectory) OperatorProfile(ctx context.Context, f aviation.Flight) (AirlineProfile, error) {
	for _, code := range []string{f.OperatorICAO, f.OperatorIATA, f.Operator} {
		if code == "" {
			continue
		}
		if p, err := d.Lookup(ctx, code); err == nil {
			return p, nil
		}
	}
	return AirlineProfile{}, ErrNotFound
}
