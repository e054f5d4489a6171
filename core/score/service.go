package score

import (
	"time"

	"github.com/kurobbs/core/board/reports"
	"github.com/kurobbs/core/core/config"
	"gopkg.in/mgo.v2/bson"
)

// Cache key consumed by the surrounding app as well; keep stable.
const cacheKeyPrefix = "user_report_score_"

// ReporterCredibility computes a reporter's credibility over the
// configured window, memoized for a few minutes since it is read once
// per report on potentially many entities.
func ReporterCredibility(d deps, userID bson.ObjectId) (float64, error) {
	rules := config.C.Rules().Credibility
	key := cacheKeyPrefix + userID.Hex()
	if v, ok := d.ScoreCache().GetFloat(key); ok {
		return v, nil
	}
	list, err := reports.ByReporter(d, userID, windowStart(d.Now(), rules))
	if err != nil {
		return 0, err
	}
	v := Credibility(list, rules)
	d.ScoreCache().SetFloat(key, v, time.Duration(rules.CacheSeconds)*time.Second)
	return v, nil
}

// EntityReportScore is the uncached 0..1 gating score of an entity.
func EntityReportScore(d deps, target reports.Target) (float64, error) {
	rules := config.C.Rules().Credibility
	list, err := reports.OnTarget(d, target, windowStart(d.Now(), rules))
	if err != nil {
		return 0, err
	}
	return EntityScore(list, rules), nil
}

// CategorySumOn sums reporter credibility over an entity's reports
// matching the group within the window. adultShortcut carries the
// anonymous-reporter carve-out of the adult-content group.
func CategorySumOn(d deps, target reports.Target, group []string, adultShortcut bool) (float64, error) {
	rules := config.C.Rules().Credibility
	list, err := reports.OnTarget(d, target, windowStart(d.Now(), rules))
	if err != nil {
		return 0, err
	}
	return SumCredibility(list, group, adultShortcut, rules.Floor, resolver(d, rules)), nil
}

// Snapshot returns the three category sums of an entity at once, the
// shape audit entries persist.
type Snapshot struct {
	Restricted float64
	Ideology   float64
	Adult      float64
}

func SnapshotOn(d deps, target reports.Target) (Snapshot, error) {
	rules := config.C.Rules()
	list, err := reports.OnTarget(d, target, windowStart(d.Now(), rules.Credibility))
	if err != nil {
		return Snapshot{}, err
	}
	res := resolver(d, rules.Credibility)
	return Snapshot{
		Restricted: SumCredibility(list, rules.Groups.Restricted, false, rules.Credibility.Floor, res),
		Ideology:   SumCredibility(list, rules.Groups.Ideology, false, rules.Credibility.Floor, res),
		Adult:      SumCredibility(list, rules.Groups.Adult, true, rules.Credibility.Floor, res),
	}, nil
}

// RestrictionReasonsOn is the display set for an entity: literal
// matching reasons inside the window.
func RestrictionReasonsOn(d deps, target reports.Target) ([]string, error) {
	rules := config.C.Rules()
	list, err := reports.OnTarget(d, target, windowStart(d.Now(), rules.Credibility))
	if err != nil {
		return nil, err
	}
	return ReasonSet(list, rules.Groups.Restricted), nil
}

func resolver(d deps, rules config.Credibility) Resolver {
	return func(userID *bson.ObjectId) float64 {
		if userID == nil {
			// No history to look up.
			return rules.Floor
		}
		v, err := ReporterCredibility(d, *userID)
		if err != nil {
			log.Error(err)
			return rules.Floor
		}
		return v
	}
}

func windowStart(now time.Time, rules config.Credibility) time.Time {
	return now.AddDate(0, -rules.WindowMonths, 0)
}
