package users

import (
	"time"

	"gopkg.in/mgo.v2/bson"
)

type User struct {
	ID           bson.ObjectId `bson:"_id,omitempty" json:"id"`
	UserName     string        `bson:"username" json:"username"`
	Email        string        `bson:"email" json:"email,omitempty"`
	Description  string        `bson:"description" json:"description,omitempty"`
	Image        string        `bson:"image,omitempty" json:"image,omitempty"`
	Validated    bool          `bson:"validated" json:"validated"`

	// Freeze state, mutated only through the moderation engine.
	FrozenUntil *time.Time `bson:"frozen_until,omitempty" json:"frozen_until,omitempty"`
	FreezeCount int        `bson:"freeze_count" json:"-"`
	Banned      bool       `bson:"banned" json:"-"`
	BannedAt    *time.Time `bson:"banned_at,omitempty" json:"-"`

	Created time.Time `bson:"created_at" json:"created_at"`
	Updated time.Time `bson:"updated_at" json:"updated_at"`
}

// Frozen at the given instant.
func (u User) Frozen(now time.Time) bool {
	return u.FrozenUntil != nil && u.FrozenUntil.After(now)
}
