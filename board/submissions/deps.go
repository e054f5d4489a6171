package submissions

import (
	"time"

	"github.com/siddontang/ledisdb/ledis"
	"gopkg.in/mgo.v2"
)

type deps interface {
	Mgo() *mgo.Database
	LedisDB() *ledis.DB
	Now() time.Time
}
