package events

import (
	"gopkg.in/mgo.v2/bson"
)

func ReportNew(id bson.ObjectId, sign *UserSign) Event {
	return Event{
		Name: REPORT_NEW,
		Sign: sign,
		Params: map[string]interface{}{
			"id": id,
		},
	}
}

func ReportApproved(id bson.ObjectId, sign *UserSign) Event {
	return Event{
		Name: REPORT_APPROVED,
		Sign: sign,
		Params: map[string]interface{}{
			"id": id,
		},
	}
}

func ReportRejected(id bson.ObjectId, sign *UserSign) Event {
	return Event{
		Name: REPORT_REJECTED,
		Sign: sign,
		Params: map[string]interface{}{
			"id": id,
		},
	}
}
