package submissions

import (
	"errors"
	"testing"
	"time"

	"github.com/kurobbs/core/core/config"
	"github.com/kurobbs/core/core/spam"
	"github.com/siddontang/ledisdb/ledis"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/mgo.v2"
)

type fakeDeps struct {
	now time.Time
}

func (f fakeDeps) Mgo() *mgo.Database { return nil }
func (f fakeDeps) LedisDB() *ledis.DB { return nil }
func (f fakeDeps) Now() time.Time { return f.now }

func TestSubmissionGate(t *testing.T) {
	if config.C == nil {
		config.Bootstrap()
	}
	d := fakeDeps{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	Convey("NG-word bodies never reach storage", t, func() {
		err := gate(d, nil, "限定！無料プレゼント実施中")
		So(err, ShouldNotBeNil)

		var rej SpamRejection
		So(errors.As(err, &rej), ShouldBeTrue)
		So(rej.Verdict.Spam, ShouldBeTrue)
		So(rej.Verdict.Reason, ShouldEqual, spam.NGWord)
	})

	Convey("Full-width evasions are caught at the gate too", t, func() {
		err := gate(d, nil, "ＦＲＥＥ　ＣＲＹＰＴＯ")

		var rej SpamRejection
		So(errors.As(err, &rej), ShouldBeTrue)
		So(rej.Verdict.Method, ShouldEqual, "exact")
	})

	Convey("Clean anonymous bodies pass", t, func() {
		So(gate(d, nil, "今日のラーメンは美味しかった"), ShouldBeNil)
	})
}
