package shell

import (
	"github.com/abiosoft/ishell"
)

func RunShell() {
	shell := ishell.New()
	shell.Println("Kurobbs Moderation Shell 0.1")

	shell.AddCmd(&ishell.Cmd{
		Name: "post-thread",
		Help: "Gate a thread through the spam pipeline and persist it: post-thread <user-id|anon> <title> <content...>",
		Func: PostThread,
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "post-response",
		Help: "Gate a response through the spam pipeline and persist it: post-response <user-id|anon> <thread-id> <content...>",
		Func: PostResponse,
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "update-profile",
		Help: "Gate a profile description through the NG-word checks: update-profile <user-id> <description...>",
		Func: UpdateProfile,
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "approve-report",
		Help: "Approve a pending report by id.",
		Func: ApproveReport,
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "reject-report",
		Help: "Reject a pending report by id.",
		Func: RejectReport,
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "out-count",
		Help: "Show a user's current out count and ladder state.",
		Func: ShowOutCount,
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "sweep-out-counts",
		Help: "Zero out counts on approved reports older than a year.",
		Func: SweepOutCounts,
	})

	// start shell
	shell.Start()
}
