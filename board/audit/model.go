package audit

import (
	"time"

	"github.com/kurobbs/core/board/reports"
	"gopkg.in/mgo.v2/bson"
)

// Action taken on an entity.
type Action string

const (
	HIDE     Action = "hide"
	UNHIDE   Action = "unhide"
	FREEZE   Action = "freeze"
	UNFREEZE Action = "unfreeze"
	BAN      Action = "ban"
	DELETE   Action = "delete"
	WARN     Action = "warn"
)

// Actor context passed explicitly into every log write; no ambient
// request state.
type Actor struct {
	UserID    *bson.ObjectId `bson:"user_id,omitempty" json:"user_id,omitempty"`
	IP        string         `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent string         `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
}

// Scores snapshot at decision time.
type Scores struct {
	Restricted float64 `bson:"restricted" json:"restricted"`
	Ideology   float64 `bson:"ideology" json:"ideology"`
	Adult      float64 `bson:"adult" json:"adult"`
}

// Entry is one immutable changelog row. Entries are append-only;
// nothing reads them back on a decision path.
type Entry struct {
	ID      bson.ObjectId  `bson:"_id,omitempty" json:"id,omitempty"`
	Target  reports.Target `bson:",inline"`
	Act     Action         `bson:"action" json:"action"`
	Actor   Actor          `bson:"actor" json:"actor"`
	Reason  string         `bson:"reason,omitempty" json:"reason,omitempty"`
	Scores  Scores         `bson:"scores" json:"scores"`
	Created time.Time      `bson:"created_at" json:"created_at"`
}
