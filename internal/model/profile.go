package model

// Profile is the header card of the page.
type Profile struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Avatar    string `json:"avatar"`
	BirthDate string `json:"birthDate"`
	City      string `json:"city"`
	Education string `json:"education"`
	Work      string `json:"work"`
	Phone     string `json:"phone"`
	About     string `json:"about"`
}

// Post is a wall entry. CreatedAt is milliseconds since the Unix epoch.
type Post struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	Image        string    `json:"image,omitempty"`
	Likes        int       `json:"likes"`
	Liked        bool      `json:"liked"`
	CreatedAt    int64     `json:"createdAt"`
	Comments     []Comment `json:"comments"`
	ShowComments bool      `json:"showComments"`
}

type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Avatar    string `json:"avatar"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

type Photo struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}
