package deps

import (
	"gopkg.in/mgo.v2"
)

var (
	// MongoURL config uri
	MongoURL string
	// MongoName db name
	MongoName string
)

func IgniteMongoDB(container Deps) (Deps, error) {
	session, err := mgo.Dial(MongoURL)
	if err != nil {
		log.Error(err)
		log.Info(MongoURL)
		return container, err
	}
	db := session.DB(MongoName)

	for _, idx := range reportIndexes() {
		db.C("reports").EnsureIndex(idx)
	}
	// Recent-history scans for the spam pipeline.
	db.C("threads").EnsureIndex(
		mgo.Index{
			Key:        []string{"user_id", "created_at"},
			Background: true,
		},
	)
	db.C("responses").EnsureIndex(
		mgo.Index{
			Key:        []string{"user_id", "created_at"},
			Background: true,
		},
	)
	db.C("changelog").EnsureIndex(
		mgo.Index{
			Key:        []string{"related_to", "related_id", "created_at"},
			Background: true,
		},
	)

	container.DatabaseSessionProvider = session
	container.DatabaseProvider = db

	return container, nil
}

// reportIndexes for the reports collection. The reporter lookup index
// must not be unique: anonymous reports omit user_id, which indexes as
// null and would make a second anonymous report on the same target a
// duplicate key. Per-reporter dedupe lives in reports.UpsertReport.
func reportIndexes() []mgo.Index {
	return []mgo.Index{
		{
			Key:        []string{"user_id", "related_to", "related_id"},
			Background: true,
		},
		// Windowed scans by target and by approval age.
		{
			Key:        []string{"related_to", "related_id", "created_at"},
			Background: true,
		},
		{
			Key:        []string{"status", "approved_at"},
			Background: true,
		},
	}
}
