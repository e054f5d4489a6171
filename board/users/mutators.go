package users

import (
	"html"
	"time"

	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// SetDescription replaces the user's profile text.
func SetDescription(d deps, id bson.ObjectId, description string) error {
	return d.Mgo().C("users").UpdateId(id, bson.M{
		"$set": bson.M{
			"description": html.EscapeString(description),
			"updated_at":  d.Now(),
		},
	})
}

// PersistFreeze applies a temporary freeze in one update, setting the
// deadline and bumping freeze_count together so two racing evaluations
// cannot double-increment. Failures surface hard, this is authoritative
// state.
func PersistFreeze(d deps, id bson.ObjectId, until time.Time, minutes int64) error {
	err := d.Mgo().C("users").UpdateId(id, bson.M{
		"$set": bson.M{
			"frozen_until": until,
			"updated_at":   d.Now(),
		},
		"$inc": bson.M{
			"freeze_count": 1,
		},
	})
	if err != nil {
		return err
	}
	k := []byte("frozen:")
	k = append(k, []byte(id)...)
	if err := d.LedisDB().Set(k, []byte{}); err != nil {
		return err
	}
	_, err = d.LedisDB().Expire(k, minutes*60)
	return err
}

// ResetFreezeCount zeroes the escalation counter once a user's out
// count drops below the warning threshold.
func ResetFreezeCount(d deps, id bson.ObjectId) error {
	return d.Mgo().C("users").UpdateId(id, bson.M{
		"$set": bson.M{
			"freeze_count": 0,
			"updated_at":   d.Now(),
		},
	})
}

// PermanentBan is a one-way transition; re-banning a banned user is
// a no-op.
func PermanentBan(d deps, id bson.ObjectId) error {
	err := d.Mgo().C("users").Update(bson.M{
		"_id":    id,
		"banned": bson.M{"$ne": true},
	}, bson.M{
		"$set": bson.M{
			"banned":     true,
			"banned_at":  d.Now(),
			"updated_at": d.Now(),
		},
	})
	if err == mgo.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	k := []byte("frozen:")
	k = append(k, []byte(id)...)
	return d.LedisDB().Set(k, []byte{})
}
