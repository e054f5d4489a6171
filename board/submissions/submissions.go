// Package submissions is the write path for user generated content.
// Every body passes the frozen-author fast path and the spam pipeline
// before anything reaches storage.
package submissions

import (
	"errors"
	"fmt"

	"github.com/kurobbs/core/board/responses"
	"github.com/kurobbs/core/board/threads"
	"github.com/kurobbs/core/board/users"
	"github.com/kurobbs/core/core/spam"
	"gopkg.in/mgo.v2/bson"
)

// ErrFrozenAuthor when the author is under an active freeze.
var ErrFrozenAuthor = errors.New("author is frozen and cannot post")

// SpamRejection carries the pipeline verdict of a rejected body.
type SpamRejection struct {
	Verdict spam.Verdict
}

func (e SpamRejection) Error() string {
	return fmt.Sprintf("submission rejected as spam: %s (%s)", e.Verdict.Reason, e.Verdict.Method)
}

// PostThread gates a new thread body and persists it once clean.
func PostThread(d deps, t threads.Thread) (threads.Thread, error) {
	if err := gate(d, author(t.UserID), t.Content); err != nil {
		return threads.Thread{}, err
	}
	return threads.UpsertThread(d, t)
}

// PostResponse gates a new response body and persists it once clean.
func PostResponse(d deps, r responses.Response) (responses.Response, error) {
	if err := gate(d, author(r.UserID), r.Content); err != nil {
		return responses.Response{}, err
	}
	return responses.UpsertResponse(d, r)
}

// UpdateProfile runs a profile description through the NG-word steps
// only; bios carry no posting history to compare against.
func UpdateProfile(d deps, id bson.ObjectId, description string) error {
	if users.IsFrozen(d, id) {
		return ErrFrozenAuthor
	}
	if v := spam.CheckBio(description); v.Spam {
		return SpamRejection{Verdict: v}
	}
	return users.SetDescription(d, id, description)
}

// gate rejects frozen authors, then runs the body through the spam
// pipeline. A nil author means an anonymous submission.
func gate(d deps, userID *bson.ObjectId, body string) error {
	if userID != nil && users.IsFrozen(d, *userID) {
		return ErrFrozenAuthor
	}
	v, err := spam.Check(d, userID, body)
	if err != nil {
		return err
	}
	if v.Spam {
		return SpamRejection{Verdict: v}
	}
	return nil
}

func author(id bson.ObjectId) *bson.ObjectId {
	if id.Valid() {
		return &id
	}
	return nil
}
