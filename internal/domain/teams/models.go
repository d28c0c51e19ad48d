package teams

// Team represents the normalized team shape.
type Team struct {
	ID         string `json:"id"`
	Nickname   string `json:"nickname"`
	FullName   string `json:"fullName"`
	Tricode    string `json:"tricode"`
	City       string `json:"city"`
	URLName    string `json:"urlName"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
}

// Directory indexes teams by id.
type Directory struct {
	byID map[string]Team
}

// NewDirectory builds a Directory; later duplicates win.
func NewDirectory(list []Team) Directory {
	byID := make(map[string]Team, len(list))
	for _, t := range list {
		byID[t.ID] = t
	}
	return Directory{byID: byID}
}

// Lookup returns the team with the given id.
func (d Directory) Lookup(id string) (Team, bool) {
	t, ok := d.byID[id]
	return t, ok
}

// MustLookup returns the team with the given id, or a placeholder that
// carries the id as its names when unknown.
func (d Directory) MustLookup(id string) Team {
	if t, ok := d.byID[id]; ok {
		return t
	}
	return Team{ID: id, Nickname: id, FullName: id}
}

// Len reports how many teams are indexed.
func (d Directory) Len() int {
	return len(d.byID)
}
