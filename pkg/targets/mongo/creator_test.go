package mongo

import (
	"testing"

	"github.com/blagojts/viper"

	"github.com/discretewater/idem/pkg/targets"
)

func TestBootstrapReadsOptions(t *testing.T) {
	v := viper.New()
	v.Set("bootstrap.db-specific.url", "mongodb://db.example.com:27017")

	c, err := NewTarget().Bootstrap("bootstrap.db-specific.", v)
	if err != nil {
		t.Fatalf("unexpected error building creator: %v", err)
	}
	creator, ok := c.(*dbCreator)
	if !ok {
		t.Fatalf("unexpected creator type %T", c)
	}
	if creator.opts.URL != "mongodb://db.example.com:27017" {
		t.Errorf("incorrect url: got %q", creator.opts.URL)
	}
	if _, ok := c.(targets.DBCreatorCloser); !ok {
		t.Error("creator should close its session")
	}
}
