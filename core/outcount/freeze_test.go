package outcount

import (
	"errors"
	"testing"
	"time"

	"github.com/kurobbs/core/board/users"
	"github.com/kurobbs/core/core/config"
	"github.com/siddontang/ledisdb/ledis"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

type fakeDeps struct {
	now time.Time
}

func (f fakeDeps) Mgo() *mgo.Database { return nil }
func (f fakeDeps) LedisDB() *ledis.DB { return nil }
func (f fakeDeps) Now() time.Time     { return f.now }

func TestFreezeTransitions(t *testing.T) {
	if config.C == nil {
		config.Bootstrap()
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d := fakeDeps{now: now}
	uid := bson.NewObjectId()

	origPersist, origReset := persistFreeze, resetFreezeCount
	defer func() {
		persistFreeze, resetFreezeCount = origPersist, origReset
	}()

	Convey("Below the warning threshold the escalation counter resets", t, func() {
		resets, persists := 0, 0
		resetFreezeCount = func(d deps, id bson.ObjectId) error { resets++; return nil }
		persistFreeze = func(d deps, id bson.ObjectId, until time.Time, minutes int64) error {
			persists++
			return nil
		}

		f, err := applyFreeze(d, users.User{ID: uid, FreezeCount: 2}, 0.5)
		So(err, ShouldBeNil)
		So(f.Applied, ShouldBeFalse)
		So(f.WarnOnly, ShouldBeFalse)
		So(resets, ShouldEqual, 1)
		So(persists, ShouldEqual, 0)
	})

	Convey("An already-zeroed counter below warn writes nothing", t, func() {
		resets := 0
		resetFreezeCount = func(d deps, id bson.ObjectId) error { resets++; return nil }

		_, err := applyFreeze(d, users.User{ID: uid}, 0.5)
		So(err, ShouldBeNil)
		So(resets, ShouldEqual, 0)
	})

	Convey("The warning band reports without persisting anything", t, func() {
		writes := 0
		resetFreezeCount = func(d deps, id bson.ObjectId) error { writes++; return nil }
		persistFreeze = func(d deps, id bson.ObjectId, until time.Time, minutes int64) error {
			writes++
			return nil
		}

		f, err := applyFreeze(d, users.User{ID: uid, FreezeCount: 1}, 1.5)
		So(err, ShouldBeNil)
		So(f.WarnOnly, ShouldBeTrue)
		So(f.Applied, ShouldBeFalse)
		So(writes, ShouldEqual, 0)
	})

	Convey("At the freeze threshold the ladder escalates with the counter", t, func() {
		var gotUntil time.Time
		var gotMinutes int64
		persistFreeze = func(d deps, id bson.ObjectId, until time.Time, minutes int64) error {
			gotUntil, gotMinutes = until, minutes
			return nil
		}

		// 24h, 72h, one week, then one month for every freeze after.
		for count, minutes := range []int64{1440, 4320, 10080, 43200, 43200} {
			f, err := applyFreeze(d, users.User{ID: uid, FreezeCount: count}, 2.0)
			So(err, ShouldBeNil)
			So(f.Applied, ShouldBeTrue)
			So(f.Minutes, ShouldEqual, minutes)
			So(gotMinutes, ShouldEqual, minutes)
			So(f.Until.Equal(now.Add(time.Duration(minutes)*time.Minute)), ShouldBeTrue)
			So(gotUntil.Equal(f.Until), ShouldBeTrue)
		}
	})

	Convey("A failed persist surfaces and applies nothing", t, func() {
		persistFreeze = func(d deps, id bson.ObjectId, until time.Time, minutes int64) error {
			return errors.New("users collection unavailable")
		}

		f, err := applyFreeze(d, users.User{ID: uid}, 3.0)
		So(err, ShouldNotBeNil)
		So(f.Applied, ShouldBeFalse)
	})
}
