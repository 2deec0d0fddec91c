// aviation/award.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

// Cabin identifies a fare cabin tier on an award search.
type Cabin int

const (
	CabinNone Cabin = iota
	CabinEconomy
	CabinPremiumEconomy
	CabinBusiness
	CabinFirst
)

func (c Cabin) String() string {
	switch c {
	case CabinEconomy:
		return "Economy"
	case CabinPremiumEconomy:
		return "Premium Economy"
	case CabinBusiness:
		return "Business"
	case CabinFirst:
		return "First"
	default:
		return ""
	}
}

// Code returns the single-letter booking class the award provider uses
// for the cabin.
func (c Cabin) Code() string {
	switch c {
	case CabinEconomy:
		return "Y"
	case CabinPremiumEconomy:
		return "W"
	case CabinBusiness:
		return "J"
	case CabinFirst:
		return "F"
	default:
		return ""
	}
}

// CabinAward is one cabin tier of an award availability row. MileageCost
// is kept as the provider's decimal string; empty means not reported.
type CabinAward struct {
	Available      bool
	MileageCost    string
	RemainingSeats int
}

// present reports whether the tier has enough data to offer: available
// with both a cost and a seat count reported.
func (ca CabinAward) present() bool {
	return ca.Available && ca.MileageCost != "" && ca.RemainingSeats > 0
}

// AwardAvailability is a per-date, per-program award search result row
// with its four cabin tiers.
type AwardAvailability struct {
	ID          string
	Origin      string
	Destination string
	Date        string
	Program     string

	Economy        CabinAward
	PremiumEconomy CabinAward
	Business       CabinAward
	First          CabinAward
}

// BestCabin returns the highest-priority cabin with usable availability:
// first, then business, then premium economy, then economy. The second
// return value is false when no tier qualifies.
func (a AwardAvailability) BestCabin() (Cabin, bool) {
	for _, c := range []struct {
		cabin Cabin
		award CabinAward
	}{
		{CabinFirst, a.First},
		{CabinBusiness, a.Business},
		{CabinPremiumEconomy, a.PremiumEconomy},
		{CabinEconomy, a.Economy},
	} {
		if c.award.present() {
			return c.cabin, true
		}
	}
	return CabinNone, false
}

// Tier returns the CabinAward for the named cabin.
func (a AwardAvailability) Tier(c Cabin) CabinAward {
	switch c {
	case CabinEconomy:
		return a.Economy
	case CabinPremiumEconomy:
		return a.PremiumEconomy
	case CabinBusiness:
		return a.Business
	case CabinFirst:
		return a.First
	default:
		return CabinAward{}
	}
}
