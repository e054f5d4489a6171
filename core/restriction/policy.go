// Package restriction is the stateless policy layer: given current
// scores it decides whether an entity is restricted, hidden or gone.
// Nothing here stores state; every answer is a function of the reports
// at query time.
package restriction

import (
	"github.com/kurobbs/core/board/reports"
	"github.com/kurobbs/core/core/config"
	"github.com/kurobbs/core/core/score"
	"gopkg.in/mgo.v2/bson"
)

// Synthetic display reasons appended when a themed score crosses its
// threshold.
const (
	ReasonIdeology = "ideology"
	ReasonAdult    = "adult-content"
)

// Status of an entity as far as moderation goes. Restricted blocks new
// content (or blurs the image); Deleted hard-hides from public view.
type Status struct {
	Restricted   bool     `json:"restricted"`
	Deleted      bool     `json:"deleted"`
	ImageDeleted bool     `json:"image_deleted,omitempty"`
	Reasons      []string `json:"reasons,omitempty"`
}

// Restricted decides from a score snapshot alone. Any one group
// crossing its threshold restricts.
func Restricted(snap score.Snapshot, th config.Thresholds) bool {
	return snap.Restricted >= th.Restricted ||
		snap.Ideology >= th.Ideology ||
		snap.Adult >= th.Adult
}

// DisplayReasons merges the literal reason set with the synthetic
// themed entries whose thresholds are met.
func DisplayReasons(literal []string, snap score.Snapshot, th config.Thresholds) []string {
	out := literal
	if snap.Ideology >= th.Ideology {
		out = append(out, ReasonIdeology)
	}
	if snap.Adult >= th.Adult {
		out = append(out, ReasonAdult)
	}
	return out
}

// ThreadStatus evaluates a thread against the current reports.
func ThreadStatus(d deps, id bson.ObjectId) (Status, error) {
	target := reports.ThreadTarget(id)
	s, err := entityStatus(d, target)
	if err != nil {
		return s, err
	}
	rules := config.C.Rules()
	s.ImageDeleted = reports.HasApproved(d, target, rules.Groups.ThreadImage)
	return s, nil
}

// ResponseStatus evaluates a response against the current reports.
func ResponseStatus(d deps, id bson.ObjectId) (Status, error) {
	return entityStatus(d, reports.ResponseTarget(id))
}

// ProfileHidden reports whether a user profile is hidden from public
// view. Profiles only carry the restricted group.
func ProfileHidden(d deps, userID bson.ObjectId) (bool, error) {
	rules := config.C.Rules()
	sum, err := score.CategorySumOn(d, reports.ProfileTarget(userID), rules.Groups.Restricted, false)
	if err != nil {
		return false, err
	}
	return sum >= rules.Thresholds.Restricted, nil
}

func entityStatus(d deps, target reports.Target) (Status, error) {
	rules := config.C.Rules()
	snap, err := score.SnapshotOn(d, target)
	if err != nil {
		return Status{}, err
	}
	literal, err := score.RestrictionReasonsOn(d, target)
	if err != nil {
		return Status{}, err
	}
	return Status{
		Restricted: Restricted(snap, rules.Thresholds),
		// Any single approved report hard-hides, independent of score.
		Deleted: reports.HasApproved(d, target, nil),
		Reasons: DisplayReasons(literal, snap, rules.Thresholds),
	}, nil
}
