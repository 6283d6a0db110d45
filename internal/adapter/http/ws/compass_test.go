package wshandler

import (
	"testing"

	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
)

func TestCloseSessionIgnoresReplacedSession(t *testing.T) {
	g := &CompassGateway{
		sessions: make(map[string]*session),
		l:        logger.InitLogger("compass-test", logger.LevelError),
	}

	replaced := &session{}
	current := &session{}
	g.sessions["dev-1"] = current

	// the handler whose session was replaced must not remove the live one
	g.closeSession("dev-1", replaced)
	if g.sessions["dev-1"] != current {
		t.Fatal("live session was removed by a replaced handler")
	}

	g.closeSession("dev-1", current)
	if _, ok := g.sessions["dev-1"]; ok {
		t.Fatal("session still registered after its own close")
	}
}
