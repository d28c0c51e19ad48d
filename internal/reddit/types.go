package reddit

import (
	"encoding/json"
	"fmt"
	"strings"
)

type listing struct {
	Data struct {
		Children []struct {
			Kind string   `json:"kind"`
			Data linkData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type linkData struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	Selftext   string  `json:"selftext"`
	Permalink  string  `json:"permalink"`
	URL        string  `json:"url"`
	CreatedUTC float64 `json:"created_utc"`
}

type apiResponse struct {
	JSON struct {
		Errors [][]json.RawMessage `json:"errors"`
		Data   struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"data"`
	} `json:"json"`
}

// APIError is a rejected write reported in the response's error list.
type APIError struct {
	Endpoint string
	Errors   []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("reddit %s: %s", e.Endpoint, strings.Join(e.Errors, "; "))
}

func (r apiResponse) err(endpoint string) error {
	if len(r.JSON.Errors) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(r.JSON.Errors))
	for _, entry := range r.JSON.Errors {
		parts := make([]string, 0, len(entry))
		for _, raw := range entry {
			var s string
			if json.Unmarshal(raw, &s) == nil && s != "" {
				parts = append(parts, s)
			}
		}
		msgs = append(msgs, strings.Join(parts, ": "))
	}
	return &APIError{Endpoint: endpoint, Errors: msgs}
}
