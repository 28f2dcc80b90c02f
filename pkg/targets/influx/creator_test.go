package influx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/influxdata/influxdb1-client/models"
	client "github.com/influxdata/influxdb1-client/v2"
)

func TestDatabasesFromResponse(t *testing.T) {
	resp := &client.Response{
		Results: []client.Result{
			{
				Series: []models.Row{
					{
						Name:    "databases",
						Columns: []string{"name"},
						Values:  [][]interface{}{{"_internal"}, {"idem_test"}},
					},
				},
			},
		},
	}
	want := []string{"_internal", "idem_test"}
	if diff := cmp.Diff(want, databasesFromResponse(resp)); diff != "" {
		t.Errorf("unexpected database names (-want +got):\n%s", diff)
	}
}

func TestDatabasesFromResponseEmpty(t *testing.T) {
	if got := databasesFromResponse(&client.Response{}); got != nil {
		t.Errorf("expected no names from an empty response, got %v", got)
	}
}
