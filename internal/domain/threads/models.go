package threads

import "time"

// Kind is the type of thread an action publishes.
type Kind string

const (
	KindGameThread     Kind = "game_thread"
	KindPostGameThread Kind = "post_game_thread"
)

// Marker is the title prefix that identifies threads of this kind. It doubles
// as the search query for locating today's thread.
func (k Kind) Marker() string {
	switch k {
	case KindGameThread:
		return "[Game Thread]"
	case KindPostGameThread:
		return "[Post Game Thread]"
	default:
		return ""
	}
}

func (k Kind) String() string {
	return string(k)
}

// Thread is a published submission on the content platform.
type Thread struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Fullname returns the platform-qualified identifier used by write calls.
func (t Thread) Fullname() string {
	if t.Name != "" {
		return t.Name
	}
	return "t3_" + t.ID
}
