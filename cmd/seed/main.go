package main

import (
	"context"

	"github.com/naveensdev/portfolio-api/adapters/persistence"
	"github.com/naveensdev/portfolio-api/internal/config"
	"github.com/naveensdev/portfolio-api/internal/domain/certification"
	"github.com/naveensdev/portfolio-api/internal/domain/education"
	"github.com/naveensdev/portfolio-api/internal/domain/experience"
	"github.com/naveensdev/portfolio-api/internal/domain/profile"
	"github.com/naveensdev/portfolio-api/internal/domain/project"
	"github.com/naveensdev/portfolio-api/internal/domain/skill"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

// Loads the sample portfolio through the repositories so the skill
// proficiency invariant is checked on the way in.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}
	log := logger.NewZapLogger(cfg.App.Env)

	dbPool, err := persistence.NewPostgresPool(cfg, log)
	if err != nil {
		log.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// Start from a clean slate; child rows go with their parents.
	tables := []string{"contact_messages", "responsibilities", "skills", "skill_categories",
		"certifications", "projects", "experience", "education", "profile"}
	for _, table := range tables {
		if _, err := dbPool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatal("Failed to clear table "+table, err)
		}
	}

	profileRepo := persistence.NewPostgresProfileRepo(dbPool, log)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, log)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, log)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, log)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, log)
	certificationRepo := persistence.NewPostgresCertificationRepo(dbPool, log)

	err = profileRepo.Save(ctx, &profile.Profile{
		Name:     "Naveen S",
		Title:    "AI Engineer | Full-Stack Developer",
		Tagline:  "Building intelligent systems and scalable applications with AI/ML, FastAPI, React, and LLM technologies",
		About:    "AI Engineering Intern building intelligent systems and scalable backend architectures. Pursuing B.Tech in Artificial Intelligence and Data Science.",
		Email:    "naveenselvan0004@gmail.com",
		Phone:    "7010689737",
		LinkedIn: "https://linkedin.com/in/naveen0004",
		GitHub:   "https://github.com/naveencreation",
		LeetCode: "https://leetcode.com/u/naveenselvan",
	})
	if err != nil {
		log.Fatal("Failed to seed profile", err)
	}

	err = educationRepo.Save(ctx, &education.Education{
		Institution: "Karpagam College of Engineering",
		Degree:      "B.Tech in Artificial Intelligence and Data Science",
		CGPA:        "8.45",
		StartYear:   "2022",
		EndYear:     "2026",
		Location:    "Coimbatore, India",
	})
	if err != nil {
		log.Fatal("Failed to seed education", err)
	}

	err = experienceRepo.Save(ctx, &experience.Experience{
		Title:        "AI Engineering Intern",
		Company:      "Thapovan @ Prayag.ai",
		Location:     "India",
		StartDate:    "Apr 2024",
		EndDate:      "Present",
		Description:  "Building AI-powered products and scalable backend systems",
		Technologies: "FastAPI,Node.js,React,Redis,PostgreSQL,OpenAI,Gemini",
		Responsibilities: []experience.Responsibility{
			{Description: "Engineered backend services for AI Notetaker, a scalable meeting intelligence platform using FastAPI, Node.js, React, Redis, and PostgreSQL."},
			{Description: "Implemented secure authentication using JWT, HTTP-only cookies, session state, and token refresh for robust multi-session security."},
			{Description: "Integrated OpenAI GPT-4/4o/4.1, Gemini 1.5/2.0, and LLM Agents for summarization, topic extraction, and workflow automation."},
			{Description: "Built pipelines for sentiment analysis, semantic search, embeddings, vector similarity, and document processing."},
			{Description: "Optimized real-time transcription and inference using Redis caching, pub/sub, and async background workers."},
		},
	})
	if err != nil {
		log.Fatal("Failed to seed experience", err)
	}

	projects := []*project.Project{
		{
			Title:        "AI Notetaker (Prayag.ai)",
			Description:  "A scalable meeting intelligence platform that leverages AI to transform meetings into actionable insights.",
			Technologies: "React,Node.js,FastAPI,Redis,PostgreSQL,OpenAI,Gemini",
			Highlights: []string{
				"Integrated OpenAI Agents and Gemini models for meeting summaries, action items, and contextual insights",
				"Implemented RAG pipelines, sentiment analysis, and multi-format document ingestion",
				"Reduced inference latency by 30% using Redis caching and async processing",
			},
			Link:       "https://prayag.ai",
			IsFeatured: true,
		},
		{
			Title:        "Vehicle Routing Optimization",
			Description:  "A Genetic Algorithm-based solver for the Vehicle Routing Problem (VRP).",
			Technologies: "Python,DEAP,Genetic Algorithm",
			Highlights: []string{
				"Built GA-based solver reducing route cost by 30%",
				"Implemented custom crossover, mutation, and fitness strategies",
			},
			GitHub: "https://github.com/naveencreation",
		},
		{
			Title:        "AutoML Framework",
			Description:  "An automated machine learning pipeline for data cleaning, feature engineering, model selection, and training.",
			Technologies: "Python,Streamlit,Scikit-learn,TensorFlow",
			Highlights: []string{
				"Improved prediction accuracy by 20%",
				"Reduced preprocessing time by 30%",
			},
			GitHub: "https://github.com/naveencreation",
		},
	}
	for _, p := range projects {
		if err := projectRepo.Save(ctx, p); err != nil {
			log.Fatal("Failed to seed project", err)
		}
	}

	categories := []*skill.SkillCategory{
		{Name: "Languages", Icon: "code", Skills: []skill.Skill{
			{Name: "Python", Proficiency: 95}, {Name: "JavaScript", Proficiency: 85},
			{Name: "Java", Proficiency: 70}, {Name: "SQL", Proficiency: 85},
		}},
		{Name: "Frameworks", Icon: "framework", Skills: []skill.Skill{
			{Name: "FastAPI", Proficiency: 90}, {Name: "Node.js", Proficiency: 85},
			{Name: "React.js", Proficiency: 85}, {Name: "Scikit-learn", Proficiency: 85},
		}},
		{Name: "Databases", Icon: "database", Skills: []skill.Skill{
			{Name: "PostgreSQL", Proficiency: 90}, {Name: "Redis", Proficiency: 85},
			{Name: "MongoDB", Proficiency: 75}, {Name: "MySQL", Proficiency: 80},
		}},
		{Name: "AI & LLM", Icon: "ai", Skills: []skill.Skill{
			{Name: "OpenAI GPT-4", Proficiency: 90}, {Name: "Gemini", Proficiency: 85},
			{Name: "RAG", Proficiency: 90}, {Name: "Vector Search", Proficiency: 85},
		}},
		{Name: "Developer Tools", Icon: "tools", Skills: []skill.Skill{
			{Name: "Docker", Proficiency: 80}, {Name: "Git", Proficiency: 90},
			{Name: "Linux", Proficiency: 80}, {Name: "Postman", Proficiency: 85},
		}},
	}
	for _, c := range categories {
		if err := skillRepo.Save(ctx, c); err != nil {
			log.Fatal("Failed to seed skill category", err)
		}
	}

	certs := []*certification.Certification{
		{Title: "Business Analyst Qualification", Issuer: "Qlik"},
		{Title: "Python for Data Science", Issuer: "NPTEL"},
		{Title: "Data Analytics with Python", Issuer: "NPTEL"},
		{Title: "Big Data Computing", Issuer: "NPTEL"},
	}
	for _, c := range certs {
		if err := certificationRepo.Save(ctx, c); err != nil {
			log.Fatal("Failed to seed certification", err)
		}
	}

	log.Info("Database seeded successfully.")
}
