package threads

import (
	"errors"
	"time"

	"gopkg.in/mgo.v2/bson"
)

var ThreadNotFound = errors.New("Thread has not been found by given criteria.")

func FindID(d deps, id bson.ObjectId) (t Thread, err error) {
	err = d.Mgo().C("threads").FindId(id).One(&t)
	if err != nil {
		err = ThreadNotFound
	}
	return
}

// IDsByUser returns the ids of every thread a user started.
func IDsByUser(d deps, userID bson.ObjectId) ([]bson.ObjectId, error) {
	var list Threads
	err := d.Mgo().C("threads").Find(bson.M{"user_id": userID}).Select(bson.M{"_id": 1}).All(&list)
	if err != nil {
		return nil, err
	}
	return list.IDs(), nil
}

// RecentByUser returns a user's non-empty threads created since the
// given time, the history window of the spam pipeline.
func RecentByUser(d deps, userID bson.ObjectId, since time.Time) (list Threads, err error) {
	err = d.Mgo().C("threads").Find(bson.M{
		"user_id":    userID,
		"content":    bson.M{"$ne": ""},
		"created_at": bson.M{"$gte": since},
	}).All(&list)
	return
}

// URLPostCount counts a user's link-bearing threads inside a range.
func URLPostCount(d deps, userID bson.ObjectId, from, to time.Time) (int, error) {
	return d.Mgo().C("threads").Find(bson.M{
		"user_id":    userID,
		"urls.0":     bson.M{"$exists": true},
		"created_at": bson.M{"$gte": from, "$lte": to},
	}).Count()
}
