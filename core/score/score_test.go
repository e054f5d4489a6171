package score

import (
	"testing"

	"github.com/kurobbs/core/board/reports"
	"github.com/kurobbs/core/core/config"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/mgo.v2/bson"
)

func reporter() *bson.ObjectId {
	id := bson.NewObjectId()
	return &id
}

func filed(n, approved int) reports.Reports {
	list := make(reports.Reports, 0, n)
	for i := 0; i < n; i++ {
		r := reports.Report{ID: bson.NewObjectId(), UserID: reporter(), Reason: "スパム・迷惑行為"}
		list = append(list, r)
	}
	for i := 0; i < approved && i < n; i++ {
		list[i] = approveRow(list[i])
	}
	return list
}

func approveRow(r reports.Report) reports.Report {
	r.Status = reports.APPROVED
	return r
}

func reject(r reports.Report) reports.Report {
	r.Status = reports.REJECTED
	return r
}

func TestCredibility(t *testing.T) {
	rules := config.DefaultRules().Credibility

	Convey("Reporters with sparse history sit at the floor", t, func() {
		So(Credibility(nil, rules), ShouldEqual, 0.3)
		So(Credibility(filed(5, 5), rules), ShouldEqual, 0.3)
		So(Credibility(filed(5, 0), rules), ShouldEqual, 0.3)
	})

	Convey("Past the floor the approval ratio rules, clamped", t, func() {
		// 3 of 6 approved.
		So(Credibility(filed(6, 3), rules), ShouldEqual, 0.5)
		// 0 of 10 approved clamps up to the floor.
		So(Credibility(filed(10, 0), rules), ShouldEqual, 0.3)
		// 10 of 10 approved clamps down to the ceiling.
		So(Credibility(filed(10, 10), rules), ShouldEqual, 0.8)
	})

	Convey("Output never leaves [0.3, 0.8]", t, func() {
		for n := 0; n <= 12; n++ {
			for a := 0; a <= n; a++ {
				v := Credibility(filed(n, a), rules)
				So(v, ShouldBeGreaterThanOrEqualTo, 0.3)
				So(v, ShouldBeLessThanOrEqualTo, 0.8)
			}
		}
	})
}

func TestEntityScore(t *testing.T) {
	rules := config.DefaultRules().Credibility

	Convey("Up to five reports the gate stays at exactly 0.30", t, func() {
		So(EntityScore(filed(5, 5), rules), ShouldEqual, 0.3)
		So(EntityScore(filed(3, 0), rules), ShouldEqual, 0.3)
	})

	Convey("Past five reports the plain ratio applies with no floor", t, func() {
		So(EntityScore(filed(10, 0), rules), ShouldEqual, 0.0)
		So(EntityScore(filed(10, 10), rules), ShouldEqual, 1.0)
		So(EntityScore(filed(8, 2), rules), ShouldEqual, 0.25)
	})
}

func TestSumCredibility(t *testing.T) {
	rules := config.DefaultRules()
	group := rules.Groups.Restricted
	flat := func(*bson.ObjectId) float64 { return 0.4 }

	Convey("Rejected reports never count; pending and approved do", t, func() {
		list := filed(6, 1)
		for i := 1; i < 6; i++ {
			if i >= 3 {
				list[i] = reject(list[i])
			}
		}
		// 1 approved + 2 pending at 0.4 each.
		So(SumCredibility(list, group, false, 0.3, flat), ShouldAlmostEqual, 1.2)
	})

	Convey("Reasons outside the group contribute nothing", t, func() {
		list := filed(4, 4)
		list[0].Reason = "アダルトコンテンツを含む"
		list[1].Reason = "unknown reason"
		So(SumCredibility(list, group, false, 0.3, flat), ShouldAlmostEqual, 0.8)
	})

	Convey("Anonymous reporters in the adult group take the flat floor", t, func() {
		list := reports.Reports{
			{ID: bson.NewObjectId(), Reason: "アダルトコンテンツを含む"},
			{ID: bson.NewObjectId(), UserID: reporter(), Reason: "アダルトコンテンツを含む"},
		}
		called := 0
		resolve := func(id *bson.ObjectId) float64 {
			called++
			return 0.8
		}
		sum := SumCredibility(list, rules.Groups.Adult, true, 0.3, resolve)
		So(sum, ShouldAlmostEqual, 1.1)
		// The shortcut never touches the resolver for the anonymous row.
		So(called, ShouldEqual, 1)
	})
}

func TestReasonSet(t *testing.T) {
	rules := config.DefaultRules()
	list := reports.Reports{
		{ID: bson.NewObjectId(), UserID: reporter(), Reason: "スパム・迷惑行為"},
		{ID: bson.NewObjectId(), UserID: reporter(), Reason: "スパム・迷惑行為"},
		{ID: bson.NewObjectId(), UserID: reporter(), Reason: "誹謗中傷"},
		reject(reports.Report{ID: bson.NewObjectId(), UserID: reporter(), Reason: "荒らし行為"}),
		{ID: bson.NewObjectId(), UserID: reporter(), Reason: "異なる思想の強要"},
	}

	Convey("Reason sets deduplicate and skip rejected and out-of-group rows", t, func() {
		out := ReasonSet(list, rules.Groups.Restricted)
		So(out, ShouldResemble, []string{"スパム・迷惑行為", "誹謗中傷"})
	})
}
