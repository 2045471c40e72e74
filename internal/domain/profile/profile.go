package profile

import "context"

// Profile is the singleton identity record behind the site. The table may
// hold more than one row; reads always take the first by id.
type Profile struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	About    string `json:"about"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	LeetCode string `json:"leetcode"`
}

type Repository interface {
	First(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
}
