package experience

import "context"

// Responsibility rows belong to exactly one Experience and are never read
// outside of it, so the parent owns them as an ordered value slice.
type Responsibility struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

type Experience struct {
	ID               int64            `json:"id"`
	Title            string           `json:"title"`
	Company          string           `json:"company"`
	Location         string           `json:"location"`
	StartDate        string           `json:"start_date"`
	EndDate          string           `json:"end_date"`
	Description      string           `json:"description"`
	Technologies     string           `json:"technologies"`
	Responsibilities []Responsibility `json:"responsibilities"`
}

type Repository interface {
	List(ctx context.Context) ([]*Experience, error)
	Save(ctx context.Context, e *Experience) error
}
