package reports

import (
	"errors"
	"time"

	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

var ReportNotFound = errors.New("Report has not been found by given criteria.")

func FindID(d deps, id bson.ObjectId) (r Report, err error) {
	err = d.Mgo().C("reports").FindId(id).One(&r)
	if err != nil {
		err = ReportNotFound
	}
	return
}

func FindOne(d deps, target Target, userID bson.ObjectId) (r Report, err error) {
	err = d.Mgo().C("reports").Find(bson.M{
		"related_to": target.Related,
		"related_id": target.RelatedID,
		"user_id":    userID,
	}).One(&r)
	if err != nil {
		return r, ReportNotFound
	}

	return
}

func Count(d deps, q bson.M) int {
	n, err := d.Mgo().C("reports").Find(q).Count()
	if err != nil {
		panic(err)
	}
	return n
}

// OnTarget returns every report filed against an entity since the
// given time, newest last.
func OnTarget(d deps, target Target, since time.Time) (list Reports, err error) {
	err = d.Mgo().C("reports").Find(bson.M{
		"related_to": target.Related,
		"related_id": target.RelatedID,
		"created_at": bson.M{"$gte": since},
	}).Sort("created_at").All(&list)
	return
}

// ByReporter returns the reports a user filed since the given time,
// the input of the credibility score.
func ByReporter(d deps, userID bson.ObjectId, since time.Time) (list Reports, err error) {
	err = d.Mgo().C("reports").Find(bson.M{
		"user_id":    userID,
		"created_at": bson.M{"$gte": since},
	}).All(&list)
	return
}

// TodaysCountByReporter reports.
func TodaysCountByReporter(d deps, id bson.ObjectId) int {
	today := d.Now()
	startOfDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	endOfDay := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, today.Location())
	return Count(d, bson.M{
		"user_id":    id,
		"created_at": bson.M{"$gte": startOfDay, "$lte": endOfDay},
	})
}

// SumOutCounts adds up the severity of approved reports against the
// given entities, counting only approvals within the window.
func SumOutCounts(d deps, related Kind, ids []bson.ObjectId, since time.Time) (float64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	pipe := d.Mgo().C("reports").Pipe([]bson.M{
		{
			"$match": bson.M{
				"related_to":  related,
				"related_id":  bson.M{"$in": ids},
				"status":      APPROVED,
				"approved_at": bson.M{"$gte": since},
			},
		},
		{
			"$group": bson.M{
				"_id":   nil,
				"total": bson.M{"$sum": "$out_count"},
			},
		},
	})
	var result struct {
		Total float64 `bson:"total"`
	}
	err := pipe.One(&result)
	if err == mgo.ErrNotFound {
		// A null sum is zero.
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

// HasApproved reports whether at least one approved report exists
// against the entity, optionally narrowed to a reason set.
func HasApproved(d deps, target Target, reasons []string) bool {
	q := bson.M{
		"related_to": target.Related,
		"related_id": target.RelatedID,
		"status":     APPROVED,
	}
	if len(reasons) > 0 {
		q["reason"] = bson.M{"$in": reasons}
	}
	return Count(d, q) > 0
}
