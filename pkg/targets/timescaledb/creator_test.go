package timescaledb

import (
	"testing"

	"github.com/discretewater/idem/pkg/targets"
	"github.com/discretewater/idem/pkg/targets/postgres"
)

func TestCreatorCapabilities(t *testing.T) {
	var c interface{} = newCreator(&postgres.ConnectionOptions{})
	if _, ok := c.(targets.DBCreator); !ok {
		t.Error("creator should expose the base database administration operations")
	}
	if _, ok := c.(targets.DBCreatorPost); !ok {
		t.Error("creator should install the extension after a database is created")
	}
	if _, ok := c.(targets.DBCreatorCloser); !ok {
		t.Error("creator should close its maintenance connection")
	}
}
