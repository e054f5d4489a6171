// Package outcount keeps the per-user ledger of approved report
// severity and drives the warn/freeze/ban ladder. The ledger is never
// stored; it is recomputed from reports approved within the trailing
// year, and decays only through the annual severity sweep.
package outcount

import (
	"github.com/kurobbs/core/board/reports"
	"github.com/kurobbs/core/board/responses"
	"github.com/kurobbs/core/board/threads"
	"github.com/kurobbs/core/core/config"
	"gopkg.in/mgo.v2/bson"
)

// Calculate sums approved report severity against everything the user
// owns: their threads, their responses and their profile. Null sums
// count as zero.
func Calculate(d deps, userID bson.ObjectId) (float64, error) {
	since := d.Now().AddDate(-1, 0, 0)

	tids, err := threads.IDsByUser(d, userID)
	if err != nil {
		return 0, err
	}
	fromThreads, err := reports.SumOutCounts(d, reports.THREAD, tids, since)
	if err != nil {
		return 0, err
	}

	rids, err := responses.IDsByUser(d, userID)
	if err != nil {
		return 0, err
	}
	fromResponses, err := reports.SumOutCounts(d, reports.RESPONSE, rids, since)
	if err != nil {
		return 0, err
	}

	fromProfile, err := reports.SumOutCounts(d, reports.PROFILE, []bson.ObjectId{userID}, since)
	if err != nil {
		return 0, err
	}

	return fromThreads + fromResponses + fromProfile, nil
}

// Warned once the ledger reaches the warning threshold.
func Warned(out float64, th config.Thresholds) bool {
	return out >= th.Warn
}

// ShouldFreeze inside [freeze, ban); the upper bound is exclusive,
// at the ban threshold the freeze predicate turns false.
func ShouldFreeze(out float64, th config.Thresholds) bool {
	return out >= th.Freeze && out < th.Ban
}

// ShouldBan at or past the ban threshold. The resulting ban is a
// one-way transition applied by the events layer, never reversed here.
func ShouldBan(out float64, th config.Thresholds) bool {
	return out >= th.Ban
}
