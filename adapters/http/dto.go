package http

import (
	"time"

	"github.com/naveensdev/portfolio-api/internal/application/usecase/portfolio"
	"github.com/naveensdev/portfolio-api/internal/domain/certification"
	"github.com/naveensdev/portfolio-api/internal/domain/contact"
	"github.com/naveensdev/portfolio-api/internal/domain/education"
	"github.com/naveensdev/portfolio-api/internal/domain/experience"
	"github.com/naveensdev/portfolio-api/internal/domain/profile"
	"github.com/naveensdev/portfolio-api/internal/domain/project"
	"github.com/naveensdev/portfolio-api/internal/domain/skill"
)

type ProfileDTO struct {
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

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:       p.ID,
		Name:     p.Name,
		Title:    p.Title,
		Tagline:  p.Tagline,
		About:    p.About,
		Email:    p.Email,
		Phone:    p.Phone,
		LinkedIn: p.LinkedIn,
		GitHub:   p.GitHub,
		LeetCode: p.LeetCode,
	}
}

type EducationDTO struct {
	ID          int64  `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	CGPA        string `json:"cgpa"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
	Location    string `json:"location"`
}

func ToEducationDTOs(entries []*education.Education) []EducationDTO {
	dtos := make([]EducationDTO, len(entries))
	for i, e := range entries {
		dtos[i] = EducationDTO{
			ID:          e.ID,
			Institution: e.Institution,
			Degree:      e.Degree,
			CGPA:        e.CGPA,
			StartYear:   e.StartYear,
			EndYear:     e.EndYear,
			Location:    e.Location,
		}
	}
	return dtos
}

type ResponsibilityDTO struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

type ExperienceDTO struct {
	ID               int64               `json:"id"`
	Title            string              `json:"title"`
	Company          string              `json:"company"`
	Location         string              `json:"location"`
	StartDate        string              `json:"start_date"`
	EndDate          string              `json:"end_date"`
	Description      string              `json:"description"`
	Technologies     string              `json:"technologies"`
	Responsibilities []ResponsibilityDTO `json:"responsibilities"`
}

func ToExperienceDTOs(entries []*experience.Experience) []ExperienceDTO {
	dtos := make([]ExperienceDTO, len(entries))
	for i, e := range entries {
		resps := make([]ResponsibilityDTO, len(e.Responsibilities))
		for j, resp := range e.Responsibilities {
			resps[j] = ResponsibilityDTO{ID: resp.ID, Description: resp.Description}
		}
		dtos[i] = ExperienceDTO{
			ID:               e.ID,
			Title:            e.Title,
			Company:          e.Company,
			Location:         e.Location,
			StartDate:        e.StartDate,
			EndDate:          e.EndDate,
			Description:      e.Description,
			Technologies:     e.Technologies,
			Responsibilities: resps,
		}
	}
	return dtos
}

type ProjectDTO struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies string   `json:"technologies"`
	Highlights   []string `json:"highlights"`
	Link         string   `json:"link"`
	GitHub       string   `json:"github"`
	IsFeatured   bool     `json:"is_featured"`
}

func ToProjectDTOs(projects []*project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		highlights := p.Highlights
		if highlights == nil {
			highlights = []string{}
		}
		dtos[i] = ProjectDTO{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Technologies: p.Technologies,
			Highlights:   highlights,
			Link:         p.Link,
			GitHub:       p.GitHub,
			IsFeatured:   p.IsFeatured,
		}
	}
	return dtos
}

type SkillDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

type SkillCategoryDTO struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Icon   string     `json:"icon"`
	Skills []SkillDTO `json:"skills"`
}

func ToSkillCategoryDTOs(categories []*skill.SkillCategory) []SkillCategoryDTO {
	dtos := make([]SkillCategoryDTO, len(categories))
	for i, c := range categories {
		skills := make([]SkillDTO, len(c.Skills))
		for j, s := range c.Skills {
			skills[j] = SkillDTO{ID: s.ID, Name: s.Name, Proficiency: s.Proficiency}
		}
		dtos[i] = SkillCategoryDTO{ID: c.ID, Name: c.Name, Icon: c.Icon, Skills: skills}
	}
	return dtos
}

type CertificationDTO struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link"`
}

func ToCertificationDTOs(certs []*certification.Certification) []CertificationDTO {
	dtos := make([]CertificationDTO, len(certs))
	for i, c := range certs {
		dtos[i] = CertificationDTO{ID: c.ID, Title: c.Title, Issuer: c.Issuer, Date: c.Date, Link: c.Link}
	}
	return dtos
}

type PortfolioDTO struct {
	Profile         *ProfileDTO        `json:"profile"`
	Education       []EducationDTO     `json:"education"`
	Experiences     []ExperienceDTO    `json:"experiences"`
	Projects        []ProjectDTO       `json:"projects"`
	SkillCategories []SkillCategoryDTO `json:"skill_categories"`
	Certifications  []CertificationDTO `json:"certifications"`
}

func ToPortfolioDTO(out *portfolio.GetPortfolioOutput) PortfolioDTO {
	dto := PortfolioDTO{
		Education:       ToEducationDTOs(out.Education),
		Experiences:     ToExperienceDTOs(out.Experiences),
		Projects:        ToProjectDTOs(out.Projects),
		SkillCategories: ToSkillCategoryDTOs(out.SkillCategories),
		Certifications:  ToCertificationDTOs(out.Certifications),
	}
	if out.Profile != nil {
		p := ToProfileDTO(out.Profile)
		dto.Profile = &p
	}
	return dto
}

type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type ContactMessageDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func ToContactMessageDTO(m *contact.ContactMessage) ContactMessageDTO {
	return ContactMessageDTO{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}
