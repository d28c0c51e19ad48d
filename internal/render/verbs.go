package render

import "hash/fnv"

var (
	plainVerbs    = []string{"defeated", "beat", "took down"}
	closeVerbs    = []string{"edged", "squeaked past"}
	tightVerbs    = []string{"held off", "outlasted", "survived"}
	blowoutVerbs  = []string{"blew out", "crushed", "demolished", "routed", "trounced", "steamrolled"}
	historicVerbs = []string{"annihilated", "obliterated", "destroyed", "embarrassed", "buried"}
)

// defeatVerb picks how to say "defeated". Only wins by the tracked team get
// the colourful versions. The choice is keyed on the game id so repeated
// renders of the same game agree.
func defeatVerb(gameID string, trackedWon bool, margin int) string {
	options := plainVerbs
	if trackedWon {
		switch {
		case margin < 3:
			options = closeVerbs
		case margin < 6:
			options = tightVerbs
		case margin > 40:
			options = historicVerbs
		case margin > 20:
			options = blowoutVerbs
		}
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(gameID))
	return options[h.Sum32()%uint32(len(options))]
}
