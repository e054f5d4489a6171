package events

const (
	REPORT_NEW      = "reports:new"
	REPORT_APPROVED = "reports:approved"
	REPORT_REJECTED = "reports:rejected"
)
