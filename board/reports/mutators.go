package reports

import (
	"errors"
	"html"
	"time"

	"github.com/kurobbs/core/core/config"
	"gopkg.in/mgo.v2/bson"
)

// ErrDuplicateReport when a reporter already flagged the same target.
var ErrDuplicateReport = errors.New("duplicated report for target")

// ErrReportLimit when a reporter hit the daily filing limit.
var ErrReportLimit = errors.New("daily report limit reached")

// UpsertReport performs validations before upserting data struct.
// New reports get the severity weight configured for their reason
// (1.0 when the reason carries no explicit weight).
func UpsertReport(d deps, r Report) (report Report, err error) {
	rules := config.C.Rules()
	if r.ID.Valid() == false {
		if r.UserID != nil {
			if _, ferr := FindOne(d, r.Target, *r.UserID); ferr == nil {
				return r, ErrDuplicateReport
			}
			if limit := rules.Spam.DailyReportLimit; limit > 0 && TodaysCountByReporter(d, *r.UserID) >= limit {
				return r, ErrReportLimit
			}
		}
		r.ID = bson.NewObjectId()
		r.Created = d.Now()
		r.Status = PENDING
		r.OutCount = 1.0
		if w, exists := rules.Reasons[r.Reason]; exists {
			r.OutCount = w
		}
	}

	r.Content = html.EscapeString(r.Content)
	r.Updated = d.Now()
	_, err = d.Mgo().C("reports").UpsertId(r.ID, bson.M{"$set": r})
	if err != nil {
		return
	}

	report = r
	return
}

// Approve marks a report as reviewed and legit. ApprovedAt starts the
// one year out-count window for the target's owner.
func Approve(d deps, id bson.ObjectId) (Report, error) {
	now := d.Now()
	err := d.Mgo().C("reports").UpdateId(id, bson.M{
		"$set": bson.M{
			"status":      APPROVED,
			"approved_at": now,
			"updated_at":  now,
		},
	})
	if err != nil {
		return Report{}, err
	}
	return FindID(d, id)
}

// Reject marks a report as reviewed and dismissed. Rejected reports
// never contribute to any score again.
func Reject(d deps, id bson.ObjectId) (Report, error) {
	err := d.Mgo().C("reports").UpdateId(id, bson.M{
		"$set": bson.M{
			"status":     REJECTED,
			"updated_at": d.Now(),
		},
	})
	if err != nil {
		return Report{}, err
	}
	return FindID(d, id)
}

// ResetExpiredOutCounts zeroes the severity of approved reports older
// than one year, decaying every ledger recomputation that follows.
// The predicate excludes already-zeroed rows, so a second run in a row
// touches nothing.
func ResetExpiredOutCounts(d deps) (int, error) {
	deadline := d.Now().AddDate(-1, 0, 0)
	info, err := d.Mgo().C("reports").UpdateAll(expiredOutCounts(deadline), bson.M{
		"$set": bson.M{"out_count": 0.0},
	})
	if err != nil {
		return 0, err
	}
	return info.Updated, nil
}

// expiredOutCounts matches approved reports whose severity is due to
// expire. Excluding already-zeroed rows keeps the sweep idempotent;
// the rows it writes stop matching it.
func expiredOutCounts(deadline time.Time) bson.M {
	return bson.M{
		"status":      APPROVED,
		"approved_at": bson.M{"$lte": deadline},
		"out_count":   bson.M{"$ne": 0},
	}
}
