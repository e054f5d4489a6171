// Package score turns raw reports into the weighted numbers the
// restriction policy and the out-count ledger act on. The math here is
// pure; fetching and caching live in service.go.
package score

import (
	"github.com/kurobbs/core/board/reports"
	"github.com/kurobbs/core/core/config"
	"gopkg.in/mgo.v2/bson"
)

// Credibility of a reporter given their own filed reports inside the
// lookback window. Reporters with few reports sit at the floor, data
// is too sparse to mean anything; everyone else gets their approval
// ratio clamped into [floor, ceil].
func Credibility(list reports.Reports, rules config.Credibility) float64 {
	total := len(list)
	if total <= rules.MinReports {
		return rules.Floor
	}
	approved := 0
	for _, r := range list {
		if r.Approved() {
			approved++
		}
	}
	return clamp(float64(approved)/float64(total), rules.Floor, rules.Ceil)
}

// EntityScore is the plain 0..1 approval ratio of reports against an
// entity, with the same sparse-data floor but no lower clamp above it.
func EntityScore(list reports.Reports, rules config.Credibility) float64 {
	total := len(list)
	if total <= rules.MinReports {
		return rules.Floor
	}
	approved := 0
	for _, r := range list {
		if r.Approved() {
			approved++
		}
	}
	return clamp(float64(approved)/float64(total), 0, 1)
}

// Resolver looks up a reporter's credibility. A nil reporter resolves
// to the floor: anonymous reporters have no history.
type Resolver func(userID *bson.ObjectId) float64

// SumCredibility adds each non-rejected report's reporter credibility
// across a reason group. With adultShortcut set, anonymous reporters
// contribute the flat floor and the resolver is never consulted for
// them; the adult-content group keeps that carve-out.
func SumCredibility(list reports.Reports, group []string, adultShortcut bool, floor float64, resolve Resolver) float64 {
	total := 0.0
	for _, r := range list {
		if r.Rejected() {
			continue
		}
		if !config.InGroup(group, r.Reason) {
			continue
		}
		if r.Anonymous() && adultShortcut {
			total += floor
			continue
		}
		total += resolve(r.UserID)
	}
	return total
}

// ReasonSet returns the de-duplicated reasons of non-rejected reports
// matching a group, in first-seen order. Display data, not
// enforcement.
func ReasonSet(list reports.Reports, group []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, r := range list {
		if r.Rejected() || !config.InGroup(group, r.Reason) {
			continue
		}
		if _, dup := seen[r.Reason]; dup {
			continue
		}
		seen[r.Reason] = struct{}{}
		out = append(out, r.Reason)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
