package score

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("score")
