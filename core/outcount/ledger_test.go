package outcount

import (
	"testing"

	"github.com/kurobbs/core/core/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLadderPredicates(t *testing.T) {
	th := config.DefaultRules().Thresholds

	Convey("Below the warning threshold nothing triggers", t, func() {
		So(Warned(0, th), ShouldBeFalse)
		So(Warned(0.99, th), ShouldBeFalse)
		So(ShouldFreeze(0.99, th), ShouldBeFalse)
		So(ShouldBan(0.99, th), ShouldBeFalse)
	})

	Convey("Warning engages at exactly 1.0", t, func() {
		So(Warned(1.0, th), ShouldBeTrue)
		So(ShouldFreeze(1.0, th), ShouldBeFalse)
	})

	Convey("Freezing covers [2.0, 4.0), exclusive upper bound", t, func() {
		So(ShouldFreeze(2.0, th), ShouldBeTrue)
		So(ShouldBan(2.0, th), ShouldBeFalse)
		So(ShouldFreeze(3.99, th), ShouldBeTrue)
		So(ShouldFreeze(4.0, th), ShouldBeFalse)
	})

	Convey("The ban threshold flips freeze off and ban on", t, func() {
		So(ShouldBan(4.0, th), ShouldBeTrue)
		So(ShouldFreeze(4.0, th), ShouldBeFalse)
		So(ShouldBan(7.5, th), ShouldBeTrue)
	})
}
