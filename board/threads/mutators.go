package threads

import (
	"html"

	"github.com/kurobbs/core/core/content"
	"gopkg.in/mgo.v2/bson"
)

// UpsertThread performs validations before upserting data struct.
// Links are extracted up front so the spam pipeline can count and
// compare them without re-parsing bodies.
func UpsertThread(d deps, t Thread) (thread Thread, err error) {
	if t.ID.Valid() == false {
		t.ID = bson.NewObjectId()
		t.Created = d.Now()
	}

	t.URLs = content.ExtractURLs(t.Content)
	t.Content = html.EscapeString(t.Content)
	t.Updated = d.Now()
	_, err = d.Mgo().C("threads").UpsertId(t.ID, bson.M{"$set": t})
	if err != nil {
		return
	}

	thread = t
	return
}
