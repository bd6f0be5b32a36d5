package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/persistorai/landroute/client"
)

func TestFormatTable(t *testing.T) {
	var b strings.Builder
	formatTable(&b, []string{"HOP", "COUNTRY"}, [][]string{{"0", "CZE"}, {"1", "AUT"}})

	want := "HOP  COUNTRY\n---  -------\n0    CZE\n1    AUT\n"
	if b.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestOutput_Route(t *testing.T) {
	resetFlags(t)

	v := routeView([]string{"CZE", "AUT", "ITA"})

	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{"quiet", func(t *testing.T, out string) {
			if out != "CZE AUT ITA\n" {
				t.Errorf("quiet: got %q", out)
			}
		}},
		{"table", func(t *testing.T, out string) {
			if !strings.Contains(out, "2    ITA") {
				t.Errorf("table: got %q", out)
			}
		}},
		{"json", func(t *testing.T, out string) {
			var resp client.RouteResponse
			if err := json.Unmarshal([]byte(out), &resp); err != nil {
				t.Fatalf("json: %v\n%s", err, out)
			}
			if len(resp.Route) != 3 {
				t.Errorf("json: got %v", resp.Route)
			}
		}},
	}

	for _, tt := range tests {
		flagFmt = tt.format
		var b strings.Builder
		if err := output(&b, v); err != nil {
			t.Fatalf("%s: %v", tt.format, err)
		}
		tt.check(t, b.String())
	}
}

func TestOutput_TableFallsBackToJSON(t *testing.T) {
	resetFlags(t)
	flagFmt = "table"

	var b strings.Builder
	if err := output(&b, view{data: map[string]int{"n": 1}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `"n": 1`) {
		t.Errorf("got %q", b.String())
	}
}
