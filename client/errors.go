// client/errors.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Upstream API failures are surfaced as typed error values so that the
// caller can present rate limiting, auth failure, and missing data
// differently.
var (
	ErrRateLimited  = errors.New("API rate limit exceeded")
	ErrNotFound     = errors.New("No matching flight found")
	ErrUnauthorized = errors.New("API key rejected")
	ErrNoResults    = errors.New("No results for query")
	ErrServer       = errors.New("Upstream server error")
)

// flightAPIStatusError maps a flight data provider response status to an
// error; nil for 2xx.
func flightAPIStatusError(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	}
}

// awardAPIStatusError maps an award availability provider response status
// to an error; nil for 2xx.
func awardAPIStatusError(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode == http.StatusBadRequest:
		return ErrNoResults
	default:
		return fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	}
}
