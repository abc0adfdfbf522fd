package model

type Friend struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	City   string `json:"city,omitempty"`
	Online bool   `json:"online"`
}

// Message is one entry of the single-user inbox. Outgoing messages are the
// ones the page owner wrote.
type Message struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Avatar    string `json:"avatar,omitempty"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
	Outgoing  bool   `json:"outgoing"`
	Read      bool   `json:"read"`
}

type Community struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar,omitempty"`
	Members int    `json:"members"`
}

type NewsItem struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Avatar    string `json:"avatar,omitempty"`
	Text      string `json:"text"`
	Image     string `json:"image,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	Likes     int    `json:"likes"`
}
