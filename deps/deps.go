package deps

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/kurobbs/core/core/clock"
	"github.com/kurobbs/core/core/score"
	"github.com/op/go-logging"
	"github.com/siddontang/ledisdb/ledis"
	"gopkg.in/mgo.v2"
)

type Deps struct {
	DatabaseSessionProvider *mgo.Session
	DatabaseProvider        *mgo.Database
	LoggerProvider          *logging.Logger
	CacheProvider           *redis.Client
	ScoreCacheProvider      score.Cache
	LedisProvider           *ledis.DB
	ClockProvider           clock.Clock
}

func (d Deps) Log() *logging.Logger {
	return d.LoggerProvider
}

func (d Deps) Mgo() *mgo.Database {
	return d.DatabaseProvider
}

func (d Deps) Cache() *redis.Client {
	return d.CacheProvider
}

func (d Deps) ScoreCache() score.Cache {
	return d.ScoreCacheProvider
}

func (d Deps) LedisDB() *ledis.DB {
	return d.LedisProvider
}

func (d Deps) Clock() clock.Clock {
	return d.ClockProvider
}

func (d Deps) Now() time.Time {
	return d.ClockProvider.Now()
}
