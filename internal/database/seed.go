package database

import (
	"fmt"
	"log"

	"github.com/mentorlink/mentorship-api/internal/models"
	"gorm.io/gorm"
)

var seedJobTitles = []string{
	"Software Engineer",
	"Frontend Developer",
	"Backend Developer",
	"Mobile Developer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Database Administrator",
	"Security Analyst",
	"Data Engineer",
	"Cloud Engineer",
	"IT Support",
	"Business Analyst",
	"UX Designer",
	"Machine Learning Engineer",
	"Cybersecurity Specialist",
	"AI Engineer",
	"Data Analyst",
	"Software Tester",
}

var seedSkills = []string{
	"Java", "Python", "C#", "JavaScript", "TypeScript", "SQL", "Go", "R",
	"Rust", "Kotlin", "Swift", "HTML", "CSS", "React", "Angular", "Vue",
	"Next.js", "Tailwind CSS", "Bootstrap", "Node.js", ".NET", "Spring Boot",
	"Django", "Flask", "Laravel", "GraphQL", "RESTful API", "PostgreSQL",
	"MySQL", "MongoDB", "SQL Server", "Oracle", "Firebase", "Cosmos DB",
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform",
	"CI/CD", "Jenkins", "GitHub Actions", "Machine Learning", "TensorFlow",
	"PyTorch", "Pandas", "NumPy", "Tableau", "Power BI", "Selenium",
	"Cypress", "JUnit", "NUnit", "Postman", "JMeter", "Agile", "Scrum",
	"Kanban", "Jira",
}

// Seed populates the skill and job-title catalogs if they are empty.
// Safe to run on every boot.
func Seed(db *gorm.DB) error {
	var jobTitleCount int64
	if err := db.Model(&models.JobTitle{}).Count(&jobTitleCount).Error; err != nil {
		return fmt.Errorf("failed to count job titles: %w", err)
	}
	if jobTitleCount == 0 {
		titles := make([]models.JobTitle, len(seedJobTitles))
		for i, name := range seedJobTitles {
			titles[i] = models.JobTitle{Name: name}
		}
		if err := db.Create(&titles).Error; err != nil {
			return fmt.Errorf("failed to seed job titles: %w", err)
		}
		log.Printf("Seeded %d job titles", len(titles))
	}

	var skillCount int64
	if err := db.Model(&models.Skill{}).Count(&skillCount).Error; err != nil {
		return fmt.Errorf("failed to count skills: %w", err)
	}
	if skillCount == 0 {
		skills := make([]models.Skill, len(seedSkills))
		for i, name := range seedSkills {
			skills[i] = models.Skill{Name: name}
		}
		if err := db.Create(&skills).Error; err != nil {
			return fmt.Errorf("failed to seed skills: %w", err)
		}
		log.Printf("Seeded %d skills", len(skills))
	}

	return nil
}
