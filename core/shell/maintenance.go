package shell

import (
	"strings"

	"github.com/abiosoft/ishell"
	"github.com/kurobbs/core/board/reports"
	"github.com/kurobbs/core/board/responses"
	"github.com/kurobbs/core/board/submissions"
	"github.com/kurobbs/core/board/threads"
	"github.com/kurobbs/core/core/config"
	ev "github.com/kurobbs/core/core/events"
	"github.com/kurobbs/core/core/outcount"
	"github.com/kurobbs/core/deps"
	"gopkg.in/mgo.v2/bson"
)

func PostThread(c *ishell.Context) {
	if len(c.Args) < 3 {
		c.Println("usage: post-thread <user-id|anon> <title> <content...>")
		return
	}
	t := threads.Thread{
		Title:   c.Args[1],
		Content: strings.Join(c.Args[2:], " "),
	}
	if c.Args[0] != "anon" {
		if !bson.IsObjectIdHex(c.Args[0]) {
			c.Println("usage: post-thread <user-id|anon> <title> <content...>")
			return
		}
		t.UserID = bson.ObjectIdHex(c.Args[0])
	}
	t, err := submissions.PostThread(deps.Container, t)
	if err != nil {
		c.Println("rejected:", err)
		return
	}
	c.Printf("thread %s created\n", t.ID.Hex())
}

func PostResponse(c *ishell.Context) {
	if len(c.Args) < 3 || !bson.IsObjectIdHex(c.Args[1]) {
		c.Println("usage: post-response <user-id|anon> <thread-id> <content...>")
		return
	}
	r := responses.Response{
		ThreadID: bson.ObjectIdHex(c.Args[1]),
		Content:  strings.Join(c.Args[2:], " "),
	}
	if c.Args[0] != "anon" {
		if !bson.IsObjectIdHex(c.Args[0]) {
			c.Println("usage: post-response <user-id|anon> <thread-id> <content...>")
			return
		}
		r.UserID = bson.ObjectIdHex(c.Args[0])
	}
	r, err := submissions.PostResponse(deps.Container, r)
	if err != nil {
		c.Println("rejected:", err)
		return
	}
	c.Printf("response %s created\n", r.ID.Hex())
}

func UpdateProfile(c *ishell.Context) {
	if len(c.Args) < 2 || !bson.IsObjectIdHex(c.Args[0]) {
		c.Println("usage: update-profile <user-id> <description...>")
		return
	}
	id := bson.ObjectIdHex(c.Args[0])
	err := submissions.UpdateProfile(deps.Container, id, strings.Join(c.Args[1:], " "))
	if err != nil {
		c.Println("rejected:", err)
		return
	}
	c.Printf("profile %s updated\n", id.Hex())
}

func ApproveReport(c *ishell.Context) {
	if len(c.Args) != 1 || !bson.IsObjectIdHex(c.Args[0]) {
		c.Println("usage: approve-report <report-id>")
		return
	}
	id := bson.ObjectIdHex(c.Args[0])
	r, err := reports.Approve(deps.Container, id)
	if err != nil {
		c.Println("error:", err)
		return
	}
	ev.In <- ev.ReportApproved(r.ID, nil)
	c.Printf("report %s approved (reason %q, weight %.1f)\n", r.ID.Hex(), r.Reason, r.OutCount)
}

func RejectReport(c *ishell.Context) {
	if len(c.Args) != 1 || !bson.IsObjectIdHex(c.Args[0]) {
		c.Println("usage: reject-report <report-id>")
		return
	}
	id := bson.ObjectIdHex(c.Args[0])
	r, err := reports.Reject(deps.Container, id)
	if err != nil {
		c.Println("error:", err)
		return
	}
	ev.In <- ev.ReportRejected(r.ID, nil)
	c.Printf("report %s rejected\n", r.ID.Hex())
}

func ShowOutCount(c *ishell.Context) {
	if len(c.Args) != 1 || !bson.IsObjectIdHex(c.Args[0]) {
		c.Println("usage: out-count <user-id>")
		return
	}
	id := bson.ObjectIdHex(c.Args[0])
	out, err := outcount.Calculate(deps.Container, id)
	if err != nil {
		c.Println("error:", err)
		return
	}
	th := config.C.Rules().Thresholds
	c.Printf("out count: %.2f\n", out)
	c.Printf("warned: %v, freezable: %v, bannable: %v\n",
		outcount.Warned(out, th),
		outcount.ShouldFreeze(out, th),
		outcount.ShouldBan(out, th))
}

func SweepOutCounts(c *ishell.Context) {
	n, err := reports.ResetExpiredOutCounts(deps.Container)
	if err != nil {
		c.Println("error:", err)
		return
	}
	c.Printf("%d reports expired\n", n)
}
