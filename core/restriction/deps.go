package restriction

import (
	"time"

	"github.com/kurobbs/core/core/score"
	"gopkg.in/mgo.v2"
)

type deps interface {
	Mgo() *mgo.Database
	ScoreCache() score.Cache
	Now() time.Time
}
