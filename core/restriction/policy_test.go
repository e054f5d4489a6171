package restriction

import (
	"testing"

	"github.com/kurobbs/core/core/config"
	"github.com/kurobbs/core/core/score"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRestricted(t *testing.T) {
	th := config.DefaultRules().Thresholds

	Convey("No reports means no restriction", t, func() {
		So(Restricted(score.Snapshot{}, th), ShouldBeFalse)
	})

	Convey("Each group restricts at its own threshold", t, func() {
		So(Restricted(score.Snapshot{Restricted: 0.99}, th), ShouldBeFalse)
		So(Restricted(score.Snapshot{Restricted: 1.0}, th), ShouldBeTrue)

		So(Restricted(score.Snapshot{Ideology: 2.99}, th), ShouldBeFalse)
		So(Restricted(score.Snapshot{Ideology: 3.0}, th), ShouldBeTrue)

		So(Restricted(score.Snapshot{Adult: 1.99}, th), ShouldBeFalse)
		So(Restricted(score.Snapshot{Adult: 2.0}, th), ShouldBeTrue)
	})

	Convey("Groups are independent; any one suffices", t, func() {
		snap := score.Snapshot{Restricted: 0.5, Ideology: 0.5, Adult: 2.5}
		So(Restricted(snap, th), ShouldBeTrue)
	})
}

func TestDisplayReasons(t *testing.T) {
	th := config.DefaultRules().Thresholds

	Convey("Synthetic reasons appear only past their thresholds", t, func() {
		literal := []string{"スパム・迷惑行為"}

		out := DisplayReasons(literal, score.Snapshot{Restricted: 1.2}, th)
		So(out, ShouldResemble, []string{"スパム・迷惑行為"})

		out = DisplayReasons(literal, score.Snapshot{Ideology: 3.4, Adult: 2.0}, th)
		So(out, ShouldResemble, []string{"スパム・迷惑行為", ReasonIdeology, ReasonAdult})
	})
}
