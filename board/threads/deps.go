package threads

import (
	"time"

	"gopkg.in/mgo.v2"
)

type deps interface {
	Mgo() *mgo.Database
	Now() time.Time
}
