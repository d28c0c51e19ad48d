package teams

import "testing"

func TestDirectoryLookup(t *testing.T) {
	dir := NewDirectory([]Team{
		{ID: "1610612752", Nickname: "Knicks", FullName: "New York Knicks", Tricode: "NYK"},
		{ID: "1610612738", Nickname: "Celtics", FullName: "Boston Celtics", Tricode: "BOS"},
	})

	if dir.Len() != 2 {
		t.Fatalf("expected 2 teams, got %d", dir.Len())
	}
	team, ok := dir.Lookup("1610612752")
	if !ok || team.Tricode != "NYK" {
		t.Fatalf("expected knicks, got %+v ok=%v", team, ok)
	}
	if _, ok := dir.Lookup("missing"); ok {
		t.Fatal("expected missing team to be absent")
	}
}

func TestDirectoryMustLookupFallsBackToID(t *testing.T) {
	dir := NewDirectory(nil)
	team := dir.MustLookup("123")
	if team.ID != "123" || team.FullName != "123" || team.Nickname != "123" {
		t.Fatalf("expected placeholder team, got %+v", team)
	}
}
