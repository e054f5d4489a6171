package audit

import (
	"time"

	"gopkg.in/mgo.v2"
)

type deps interface {
	Mgo() *mgo.Database
	Now() time.Time
}

// Record appends one changelog entry. Entries are never updated.
func Record(d deps, e Entry) (Entry, error) {
	e.ID = ""
	e.Created = d.Now()
	err := d.Mgo().C("changelog").Insert(e)
	return e, err
}
