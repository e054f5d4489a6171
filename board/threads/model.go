package threads

import (
	"time"

	"gopkg.in/mgo.v2/bson"
)

// Thread of the board.
type Thread struct {
	ID       bson.ObjectId `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   bson.ObjectId `bson:"user_id" json:"user_id"`
	Title    string        `bson:"title" json:"title"`
	Content  string        `bson:"content" json:"content"`
	Image    string        `bson:"image,omitempty" json:"image,omitempty"`
	URLs     []string      `bson:"urls,omitempty" json:"urls,omitempty"`
	Created  time.Time     `bson:"created_at" json:"created_at"`
	Updated  time.Time     `bson:"updated_at" json:"updated_at"`
	Deleted  *time.Time    `bson:"deleted_at,omitempty" json:"-"`
}

// Threads list.
type Threads []Thread

func (list Threads) IDs() []bson.ObjectId {
	m := make([]bson.ObjectId, len(list))
	for k, item := range list {
		m[k] = item.ID
	}
	return m
}
