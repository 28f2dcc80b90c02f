package mysql

import "testing"

func TestAdminDSN(t *testing.T) {
	opts := &ConnectionOptions{Host: "localhost", Port: "3306", User: "root", Pass: "secret"}
	want := "root:secret@tcp(localhost:3306)/"
	if got := opts.adminDSN(); got != want {
		t.Errorf("incorrect admin DSN: got %q want %q", got, want)
	}
}

func TestQuoteIdent(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"idem_test", "`idem_test`"},
		{"with space", "`with space`"},
		{"with`tick", "`with``tick`"},
	}
	for _, c := range cases {
		if got := quoteIdent(c.in); got != c.want {
			t.Errorf("quoteIdent(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
