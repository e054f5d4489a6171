package reports

import (
	"time"

	"gopkg.in/mgo.v2/bson"
)

type status string

const (
	PENDING  status = "pending"
	APPROVED status = "approved"
	REJECTED status = "rejected"
)

// Kind of entity a report points to.
type Kind string

const (
	THREAD   Kind = "thread"
	RESPONSE Kind = "response"
	PROFILE  Kind = "profile"
)

// Target is the polymorphic reference a report points at: exactly one
// entity of a known kind.
type Target struct {
	Related   Kind          `bson:"related_to" json:"related_to"`
	RelatedID bson.ObjectId `bson:"related_id" json:"related_id"`
}

func ThreadTarget(id bson.ObjectId) Target   { return Target{THREAD, id} }
func ResponseTarget(id bson.ObjectId) Target { return Target{RESPONSE, id} }
func ProfileTarget(id bson.ObjectId) Target  { return Target{PROFILE, id} }

// Report represents a complaint sent by a user flagging a thread,
// response or profile. UserID is nil for anonymous reporters.
type Report struct {
	ID         bson.ObjectId  `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     *bson.ObjectId `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Target     Target         `bson:",inline"`
	Content    string         `bson:"content" json:"content"`
	Reason     string         `bson:"reason" json:"reason"`
	Status     status         `bson:"status" json:"status"`
	OutCount   float64        `bson:"out_count" json:"out_count"`
	ApprovedAt *time.Time     `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
	Created    time.Time      `bson:"created_at" json:"created_at"`
	Updated    time.Time      `bson:"updated_at" json:"updated_at"`
}

func (r Report) Approved() bool {
	return r.Status == APPROVED
}

func (r Report) Rejected() bool {
	return r.Status == REJECTED
}

// Anonymous reports lack a resolvable reporter.
func (r Report) Anonymous() bool {
	return r.UserID == nil
}

// Reports list.
type Reports []Report

func (list Reports) ReporterIDs() []bson.ObjectId {
	m := make([]bson.ObjectId, 0, len(list))
	for _, item := range list {
		if item.UserID == nil {
			continue
		}
		m = append(m, *item.UserID)
	}
	return m
}
