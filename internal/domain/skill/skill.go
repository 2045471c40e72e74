package skill

import (
	"context"
	"errors"
	"fmt"
)

var ErrProficiencyRange = errors.New("proficiency must be between 0 and 100")

type Skill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

func (s Skill) Validate() error {
	if s.Proficiency < 0 || s.Proficiency > 100 {
		return fmt.Errorf("skill %q: %w", s.Name, ErrProficiencyRange)
	}
	return nil
}

// SkillCategory owns its skills as an ordered value slice; a skill has no
// identity outside its category.
type SkillCategory struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Icon   string  `json:"icon"`
	Skills []Skill `json:"skills"`
}

// Validate is the write boundary for the proficiency invariant. Storage
// does not enforce it.
func (c *SkillCategory) Validate() error {
	for _, s := range c.Skills {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type Repository interface {
	List(ctx context.Context) ([]*SkillCategory, error)
	Save(ctx context.Context, c *SkillCategory) error
}
