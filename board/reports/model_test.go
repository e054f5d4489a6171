package reports

import (
	"testing"

	"gopkg.in/mgo.v2/bson"
)

func TestTargets(t *testing.T) {
	id := bson.NewObjectId()
	var tests = []struct {
		target Target
		kind   Kind
	}{
		{ThreadTarget(id), THREAD},
		{ResponseTarget(id), RESPONSE},
		{ProfileTarget(id), PROFILE},
	}

	for _, test := range tests {
		if test.target.Related != test.kind {
			t.Errorf("target kind = %q, want %q", test.target.Related, test.kind)
		}
		if test.target.RelatedID != id {
			t.Errorf("target id drifted")
		}
	}
}

func TestReporterIDs(t *testing.T) {
	a, b := bson.NewObjectId(), bson.NewObjectId()
	list := Reports{
		{ID: bson.NewObjectId(), UserID: &a},
		{ID: bson.NewObjectId()}, // anonymous
		{ID: bson.NewObjectId(), UserID: &b},
	}

	ids := list.ReporterIDs()
	if len(ids) != 2 || ids[0] != a || ids[1] != b {
		t.Errorf("ReporterIDs = %v, want [%v %v]", ids, a, b)
	}
	if !list[1].Anonymous() {
		t.Error("report without reporter must read as anonymous")
	}
}
