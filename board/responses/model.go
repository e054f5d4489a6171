package responses

import (
	"time"

	"gopkg.in/mgo.v2/bson"
)

// Response to a thread.
type Response struct {
	ID       bson.ObjectId `bson:"_id,omitempty" json:"id,omitempty"`
	ThreadID bson.ObjectId `bson:"thread_id" json:"thread_id"`
	UserID   bson.ObjectId `bson:"user_id" json:"user_id"`
	Content  string        `bson:"content" json:"content"`
	URLs     []string      `bson:"urls,omitempty" json:"urls,omitempty"`
	Created  time.Time     `bson:"created_at" json:"created_at"`
	Updated  time.Time     `bson:"updated_at" json:"updated_at"`
	Deleted  *time.Time    `bson:"deleted_at,omitempty" json:"-"`
}

// Responses list.
type Responses []Response

func (list Responses) IDs() []bson.ObjectId {
	m := make([]bson.ObjectId, len(list))
	for k, item := range list {
		m[k] = item.ID
	}
	return m
}
