package certification

import "context"

type Certification struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link"`
}

type Repository interface {
	List(ctx context.Context) ([]*Certification, error)
	Save(ctx context.Context, c *Certification) error
}
