package responses

import (
	"html"

	"github.com/kurobbs/core/core/content"
	"gopkg.in/mgo.v2/bson"
)

// UpsertResponse performs validations before upserting data struct.
func UpsertResponse(d deps, r Response) (response Response, err error) {
	if r.ID.Valid() == false {
		r.ID = bson.NewObjectId()
		r.Created = d.Now()
	}

	r.URLs = content.ExtractURLs(r.Content)
	r.Content = html.EscapeString(r.Content)
	r.Updated = d.Now()
	_, err = d.Mgo().C("responses").UpsertId(r.ID, bson.M{"$set": r})
	if err != nil {
		return
	}

	response = r
	return
}
