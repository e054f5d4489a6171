package outcount

import (
	"time"

	"github.com/kurobbs/core/board/users"
	"github.com/kurobbs/core/core/config"
	"gopkg.in/mgo.v2/bson"
)

// Authoritative user writes, behind vars so transitions can be
// exercised without a live database.
var (
	persistFreeze = func(d deps, id bson.ObjectId, until time.Time, minutes int64) error {
		return users.PersistFreeze(d, id, until, minutes)
	}
	resetFreezeCount = func(d deps, id bson.ObjectId) error {
		return users.ResetFreezeCount(d, id)
	}
)

// Freeze outcome of one ledger evaluation.
type Freeze struct {
	Applied  bool
	WarnOnly bool
	Until    time.Time
	Minutes  int64
	OutCount float64
}

// EvaluateFreeze recomputes the user's ledger and applies the
// matching state transition:
//
//	below warn    -> freeze counter reset (persisted)
//	[warn,freeze) -> warning only, no freeze
//	otherwise     -> escalating freeze from the configured ladder
//
// The freeze write sets the deadline and bumps freeze_count in a single
// update, so concurrent evaluations cannot double-increment. A failed
// persist is a hard error; this mutates authoritative state.
func EvaluateFreeze(d deps, usr users.User) (Freeze, error) {
	out, err := Calculate(d, usr.ID)
	if err != nil {
		return Freeze{}, err
	}
	return applyFreeze(d, usr, out)
}

func applyFreeze(d deps, usr users.User, out float64) (Freeze, error) {
	rules := config.C.Rules()

	if !Warned(out, rules.Thresholds) {
		if usr.FreezeCount > 0 {
			if err := resetFreezeCount(d, usr.ID); err != nil {
				return Freeze{}, err
			}
		}
		return Freeze{OutCount: out}, nil
	}
	if out < rules.Thresholds.Freeze {
		return Freeze{WarnOnly: true, OutCount: out}, nil
	}

	effects, err := rules.Freezing.Effects(usr.FreezeCount)
	if err != nil {
		return Freeze{}, err
	}
	until := d.Now().Add(time.Duration(effects.Duration) * time.Minute)
	if err := persistFreeze(d, usr.ID, until, effects.Duration); err != nil {
		return Freeze{}, err
	}
	return Freeze{
		Applied:  true,
		Until:    until,
		Minutes:  effects.Duration,
		OutCount: out,
	}, nil
}
