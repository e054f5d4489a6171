package events

import (
	"errors"

	"github.com/kurobbs/core/board/audit"
	"github.com/kurobbs/core/board/reports"
	"github.com/kurobbs/core/board/responses"
	"github.com/kurobbs/core/board/threads"
	"github.com/kurobbs/core/board/users"
	"github.com/kurobbs/core/core/config"
	ev "github.com/kurobbs/core/core/events"
	"github.com/kurobbs/core/core/outcount"
	"github.com/kurobbs/core/core/score"
	"github.com/kurobbs/core/deps"
	"gopkg.in/mgo.v2/bson"
)

// ErrInvalidIDRef for events with an id.
var ErrInvalidIDRef = errors.New("invalid id reference. could not find related object")

// Bind event handlers for report related actions...
func reportHandlers() {
	register([]ev.EventHandler{
		{
			On: ev.REPORT_NEW,
			Handler: func(e ev.Event) error {
				rid := e.Params["id"].(bson.ObjectId)
				r, err := reports.FindID(deps.Container, rid)
				if err != nil {
					return ErrInvalidIDRef
				}
				log.Debugf("report %s filed against %s %s", rid.Hex(), r.Target.Related, r.Target.RelatedID.Hex())
				return nil
			},
		},
		{
			On: ev.REPORT_APPROVED,
			Handler: func(e ev.Event) error {
				rid := e.Params["id"].(bson.ObjectId)
				r, err := reports.FindID(deps.Container, rid)
				if err != nil {
					return ErrInvalidIDRef
				}

				// An approved report hard-hides its target; log the
				// decision with the scores that backed it.
				snap, err := score.SnapshotOn(deps.Container, r.Target)
				if err != nil {
					return err
				}
				if _, err := audit.Record(deps.Container, audit.Entry{
					Target: r.Target,
					Act:    audit.DELETE,
					Actor:  actorOf(e),
					Reason: r.Reason,
					Scores: audit.Scores{
						Restricted: snap.Restricted,
						Ideology:   snap.Ideology,
						Adult:      snap.Adult,
					},
				}); err != nil {
					return err
				}

				owner, err := ownerOf(r.Target)
				if err != nil {
					return err
				}
				return applyLedger(e, r, owner, snap)
			},
		},
	})
}

// applyLedger reevaluates the target owner's out count and applies
// the matching transition: permanent ban, escalating freeze or
// warning.
func applyLedger(e ev.Event, r reports.Report, ownerID bson.ObjectId, snap score.Snapshot) error {
	rules := config.C.Rules()
	usr, err := users.FindID(deps.Container, ownerID)
	if err != nil {
		return err
	}
	out, err := outcount.Calculate(deps.Container, ownerID)
	if err != nil {
		return err
	}

	scores := audit.Scores{
		Restricted: snap.Restricted,
		Ideology:   snap.Ideology,
		Adult:      snap.Adult,
	}

	if outcount.ShouldBan(out, rules.Thresholds) {
		if usr.Banned {
			return nil
		}
		if err := users.PermanentBan(deps.Container, ownerID); err != nil {
			return err
		}
		log.Noticef("user %s permanently banned, out count %.2f", ownerID.Hex(), out)
		_, err = audit.Record(deps.Container, audit.Entry{
			Target: reports.ProfileTarget(ownerID),
			Act:    audit.BAN,
			Actor:  actorOf(e),
			Reason: r.Reason,
			Scores: scores,
		})
		return err
	}

	freeze, err := outcount.EvaluateFreeze(deps.Container, usr)
	if err != nil {
		return err
	}
	switch {
	case freeze.Applied:
		log.Noticef("user %s frozen until %s (%d minutes)", ownerID.Hex(), freeze.Until, freeze.Minutes)
		_, err = audit.Record(deps.Container, audit.Entry{
			Target: reports.ProfileTarget(ownerID),
			Act:    audit.FREEZE,
			Actor:  actorOf(e),
			Reason: r.Reason,
			Scores: scores,
		})
		return err
	case freeze.WarnOnly:
		_, err = audit.Record(deps.Container, audit.Entry{
			Target: reports.ProfileTarget(ownerID),
			Act:    audit.WARN,
			Actor:  actorOf(e),
			Reason: r.Reason,
			Scores: scores,
		})
		return err
	}
	return nil
}

func ownerOf(target reports.Target) (bson.ObjectId, error) {
	switch target.Related {
	case reports.THREAD:
		t, err := threads.FindID(deps.Container, target.RelatedID)
		if err != nil {
			return "", err
		}
		return t.UserID, nil
	case reports.RESPONSE:
		r, err := responses.FindID(deps.Container, target.RelatedID)
		if err != nil {
			return "", err
		}
		return r.UserID, nil
	case reports.PROFILE:
		return target.RelatedID, nil
	}
	return "", ErrInvalidIDRef
}

func actorOf(e ev.Event) audit.Actor {
	if e.Sign == nil {
		return audit.Actor{}
	}
	uid := e.Sign.UserID
	return audit.Actor{
		UserID:    &uid,
		IP:        e.Sign.IP,
		UserAgent: e.Sign.UserAgent,
	}
}
