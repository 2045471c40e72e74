package project

import "context"

type Project struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies string   `json:"technologies"`
	Highlights   []string `json:"highlights"`
	Link         string   `json:"link"`
	GitHub       string   `json:"github"`
	IsFeatured   bool     `json:"is_featured"`
}

type Repository interface {
	List(ctx context.Context) ([]*Project, error)
	Save(ctx context.Context, p *Project) error
}
