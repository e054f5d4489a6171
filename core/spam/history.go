package spam

import (
	"time"

	"github.com/kurobbs/core/board/responses"
	"github.com/kurobbs/core/board/threads"
	"github.com/kurobbs/core/core/config"
	"gopkg.in/mgo.v2/bson"
)

type history struct {
	bodies []string
	urls   []string
}

// fetchHistory pulls the author's posts from the configured trailing
// window, threads and responses both.
func fetchHistory(d deps, userID bson.ObjectId) (history, error) {
	hours := config.C.Rules().Spam.HistoryHours
	since := d.Now().Add(-time.Duration(hours) * time.Hour)

	var h history
	ts, err := threads.RecentByUser(d, userID, since)
	if err != nil {
		return h, err
	}
	for _, t := range ts {
		h.bodies = append(h.bodies, t.Content)
		h.urls = append(h.urls, t.URLs...)
	}
	rs, err := responses.RecentByUser(d, userID, since)
	if err != nil {
		return h, err
	}
	for _, r := range rs {
		h.bodies = append(h.bodies, r.Content)
		h.urls = append(h.urls, r.URLs...)
	}
	return h, nil
}

// urlPostsToday counts link-bearing posts inside the local calendar
// day, not a rolling 24 hours.
func urlPostsToday(d deps, userID bson.ObjectId) (int, error) {
	today := d.Now()
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	to := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, today.Location())

	t, err := threads.URLPostCount(d, userID, from, to)
	if err != nil {
		return 0, err
	}
	r, err := responses.URLPostCount(d, userID, from, to)
	if err != nil {
		return 0, err
	}
	return t + r, nil
}
