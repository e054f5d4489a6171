package score

import (
	"time"

	"gopkg.in/mgo.v2"
)

type deps interface {
	Mgo() *mgo.Database
	ScoreCache() Cache
	Now() time.Time
}
