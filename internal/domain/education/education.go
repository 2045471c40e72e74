package education

import "context"

type Education struct {
	ID          int64  `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	CGPA        string `json:"cgpa"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
	Location    string `json:"location"`
}

type Repository interface {
	List(ctx context.Context) ([]*Education, error)
	Save(ctx context.Context, e *Education) error
}
