package responses

import (
	"errors"
	"time"

	"gopkg.in/mgo.v2/bson"
)

var ResponseNotFound = errors.New("Response has not been found by given criteria.")

func FindID(d deps, id bson.ObjectId) (r Response, err error) {
	err = d.Mgo().C("responses").FindId(id).One(&r)
	if err != nil {
		err = ResponseNotFound
	}
	return
}

// IDsByUser returns the ids of every response a user posted.
func IDsByUser(d deps, userID bson.ObjectId) ([]bson.ObjectId, error) {
	var list Responses
	err := d.Mgo().C("responses").Find(bson.M{"user_id": userID}).Select(bson.M{"_id": 1}).All(&list)
	if err != nil {
		return nil, err
	}
	return list.IDs(), nil
}

// RecentByUser returns a user's non-empty responses created since the
// given time.
func RecentByUser(d deps, userID bson.ObjectId, since time.Time) (list Responses, err error) {
	err = d.Mgo().C("responses").Find(bson.M{
		"user_id":    userID,
		"content":    bson.M{"$ne": ""},
		"created_at": bson.M{"$gte": since},
	}).All(&list)
	return
}

// URLPostCount counts a user's link-bearing responses inside a range.
func URLPostCount(d deps, userID bson.ObjectId, from, to time.Time) (int, error) {
	return d.Mgo().C("responses").Find(bson.M{
		"user_id":    userID,
		"urls.0":     bson.M{"$exists": true},
		"created_at": bson.M{"$gte": from, "$lte": to},
	}).Count()
}
