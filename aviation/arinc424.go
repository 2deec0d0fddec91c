// aviation/arinc424.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"bufio"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/skytrail/skytrail/log"
	"github.com/skytrail/skytrail/math"
	"github.com/skytrail/skytrail/util"

	"github.com/klauspost/compress/zstd"
)

// The waypoint database file is ARINC-424-style fixed-width text, one
// waypoint per line. The columns we care about:
//
//	[6,10)   region code
//	[13,18)  waypoint identifier
//	[26,29)  waypoint type
//	[29,31)  waypoint usage
//	[32,41)  latitude: N/S then DDMMSSSS (seconds scaled by 100)
//	[41,51)  longitude: E/W then DDDMMSSSS
const minWaypointLineLength = 51

// WaypointDB maps uppercased waypoint identifiers to their records. It is
// populated from the static seed rows and/or a bulk file load; on
// duplicate identifiers the last write wins.
type WaypointDB struct {
	Fixes map[string]Waypoint
}

func NewWaypointDB() *WaypointDB {
	return &WaypointDB{Fixes: make(map[string]Waypoint)}
}

func (db *WaypointDB) Insert(wp Waypoint) {
	db.Fixes[normalizeIdent(wp.Ident)] = wp
}

func (db *WaypointDB) Lookup(ident string) (Waypoint, bool) {
	if db == nil {
		return Waypoint{}, false
	}
	wp, ok := db.Fixes[normalizeIdent(ident)]
	return wp, ok
}

func parseLLDigits(d, m, s string) (float32, bool) {
	deg, err := strconv.Atoi(d)
	if err != nil {
		return 0, false
	}
	min, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	sec, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return float32(deg) + float32(min)/60 + float32(sec)/100/3600, true
}

func parseLatLong(lat, long string) (math.Point2LL, bool) {
	if len(lat) != 9 || len(long) != 10 {
		return math.Point2LL{}, false
	}

	var p math.Point2LL
	var ok bool
	if p[1], ok = parseLLDigits(lat[1:3], lat[3:5], lat[5:]); !ok {
		return math.Point2LL{}, false
	}
	if p[0], ok = parseLLDigits(long[1:4], long[4:6], long[6:]); !ok {
		return math.Point2LL{}, false
	}

	switch lat[0] {
	case 'N':
	case 'S':
		p[1] = -p[1]
	default:
		return math.Point2LL{}, false
	}
	switch long[0] {
	case 'E':
	case 'W':
		p[0] = -p[0]
	default:
		return math.Point2LL{}, false
	}
	return p, true
}

// ParseWaypointLine decodes a single fixed-width waypoint record. Lines
// that are too short or whose coordinate blocks fail strict checks are
// reported as not-ok rather than as errors; the bulk loader skips them.
func ParseWaypointLine(line string) (Waypoint, bool) {
	if len(line) < minWaypointLineLength {
		return Waypoint{}, false
	}

	ident := strings.TrimSpace(line[13:18])
	if ident == "" {
		return Waypoint{}, false
	}

	location, ok := parseLatLong(line[32:41], line[41:51])
	if !ok {
		return Waypoint{}, false
	}

	return Waypoint{
		Ident:    strings.ToUpper(ident),
		Location: location,
		Type:     strings.TrimSpace(line[26:29]),
		Usage:    strings.TrimSpace(line[29:31]),
		Region:   strings.TrimSpace(line[6:10]),
	}, true
}

// LoadWaypoints bulk-loads waypoint records from r, one per line,
// inserting each into the database. Lines that fail to parse are counted
// for a log message but otherwise ignored. Returns the number of
// waypoints inserted.
func (db *WaypointDB) LoadWaypoints(r io.Reader, lg *log.Logger) int {
	sc := bufio.NewScanner(r)
	added, skipped := 0, 0
	for sc.Scan() {
		if wp, ok := ParseWaypointLine(strings.TrimRight(sc.Text(), "\r")); ok {
			db.Insert(wp)
			added++
		} else {
			skipped++
		}
	}
	if err := sc.Err(); err != nil {
		lg.Warnf("waypoint database read: %v", err)
	}
	lg.Infof("loaded %d waypoints (%d lines skipped)", added, skipped)
	return added
}

// LoadWaypointFile loads the waypoint database file at the given path,
// transparently decompressing ".zst" files. Parsed results are stored in
// the disk object cache and reused on later runs when the cache is newer
// than the source file.
func (db *WaypointDB) LoadWaypointFile(path string, lg *log.Logger) error {
	cacheName := filepath.Base(path) + ".msgpack"

	fi, err := os.Stat(path)
	if err != nil {
		return err
	}

	var cached map[string]Waypoint
	if mod, err := util.CacheRetrieveObject(cacheName, &cached); err == nil && mod.After(fi.ModTime()) {
		maps.Copy(db.Fixes, cached)
		lg.Debugf("%s: reused %d cached waypoints", path, len(cached))
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return err
		}
		defer zr.Close()
		r = zr
	}

	before := util.DuplicateMap(db.Fixes)
	db.LoadWaypoints(r, lg)

	// Cache only what this file contributed.
	loaded := make(map[string]Waypoint)
	for ident, wp := range db.Fixes {
		if _, ok := before[ident]; !ok || before[ident] != wp {
			loaded[ident] = wp
		}
	}
	if err := util.CacheStoreObject(cacheName, loaded); err != nil {
		lg.Warnf("%s: unable to cache waypoints: %v", cacheName, err)
	}
	return nil
}
