package users

import (
	"errors"

	"gopkg.in/mgo.v2/bson"
)

var UserNotFound = errors.New("User has not been found by given criteria.")

func FindID(d deps, id bson.ObjectId) (user User, err error) {
	err = d.Mgo().C("users").FindId(id).One(&user)
	if err != nil {
		return user, UserNotFound
	}

	return
}

// IsFrozen checks the ledis fast path, avoiding a mongo round trip
// on every submission.
func IsFrozen(d deps, id bson.ObjectId) bool {
	k := []byte("frozen:")
	k = append(k, []byte(id)...)
	n, err := d.LedisDB().Exists(k)
	if err != nil {
		panic(err)
	}
	return n == 1
}
