package boxscore

import "testing"

func TestOvertimes(t *testing.T) {
	cases := []struct {
		name    string
		periods int
		want    int
	}{
		{"not started", 0, 0},
		{"regulation", 4, 0},
		{"single overtime", 5, 1},
		{"triple overtime", 7, 3},
	}

	for _, tc := range cases {
		b := Boxscore{
			Home: TeamLine{Linescore: make([]int, tc.periods)},
			Away: TeamLine{Linescore: make([]int, tc.periods)},
		}
		if got := b.Overtimes(); got != tc.want {
			t.Fatalf("%s: expected %d overtimes, got %d", tc.name, tc.want, got)
		}
	}
}

func TestTeamLineRecord(t *testing.T) {
	line := TeamLine{Wins: 41, Losses: 12}
	if got := line.Record(); got != "41-12" {
		t.Fatalf("expected 41-12, got %s", got)
	}
}

func TestLeaderName(t *testing.T) {
	if got := (Leader{}).Name(); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
	l := Leader{Value: 30, Players: []string{"Jalen Brunson", "Julius Randle"}}
	if got := l.Name(); got != "Jalen Brunson" {
		t.Fatalf("expected first leader, got %q", got)
	}
}

func TestPlayerLineStarter(t *testing.T) {
	if (PlayerLine{Name: "Bench Guy"}).Starter() {
		t.Fatal("expected bench player")
	}
	if !(PlayerLine{Name: "Starter", Position: "PG"}).Starter() {
		t.Fatal("expected starter")
	}
}
