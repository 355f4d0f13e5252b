package jobsrv

import (
	"time"

	"github.com/Abraxas-365/ascent/advisory/job"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/google/uuid"
)

// samplePostings is the development seed set.
func samplePostings() []job.Posting {
	now := time.Now()
	postings := []job.Posting{
		{
			Title:       "Frontend Developer",
			Description: "We are looking for a skilled Frontend Developer with experience in React, TypeScript, and modern web technologies. You will be responsible for building responsive user interfaces and working closely with our design team.",
			Skills:      []string{"React", "TypeScript", "JavaScript", "HTML", "CSS", "Tailwind"},
			Company:     "TechCorp Inc",
			Salary:      "$80,000 - $120,000",
			Location:    "Remote",
			Type:        kernel.EmploymentFullTime,
			Experience:  "2-4 years",
		},
		{
			Title:       "Full Stack Engineer",
			Description: "Join our team as a Full Stack Engineer! Work on exciting projects using Node.js, React, and MongoDB. Experience with AWS and Docker is a plus.",
			Skills:      []string{"Node.js", "React", "MongoDB", "Express", "AWS", "Docker"},
			Company:     "StartupXYZ",
			Salary:      "$90,000 - $140,000",
			Location:    "San Francisco, CA",
			Type:        kernel.EmploymentFullTime,
			Experience:  "3-5 years",
		},
		{
			Title:       "Machine Learning Intern",
			Description: "Exciting opportunity for ML enthusiasts! Work with our data science team on real-world ML projects using Python, TensorFlow, and PyTorch.",
			Skills:      []string{"Python", "Machine Learning", "TensorFlow", "PyTorch", "Data Science"},
			Company:     "AI Innovations",
			Salary:      "$25/hour",
			Location:    "New York, NY",
			Type:        kernel.EmploymentInternship,
			Experience:  "0-1 years",
		},
		{
			Title:       "Backend Developer",
			Description: "We need a Backend Developer proficient in Python/Django or Node.js/Express. Experience with PostgreSQL and RESTful APIs required.",
			Skills:      []string{"Python", "Django", "PostgreSQL", "REST API", "Docker"},
			Company:     "DataFlow Systems",
			Salary:      "$85,000 - $130,000",
			Location:    "Austin, TX",
			Type:        kernel.EmploymentFullTime,
			Experience:  "2-5 years",
		},
		{
			Title:       "DevOps Engineer",
			Description: "Looking for a DevOps Engineer with strong experience in AWS, Kubernetes, and CI/CD pipelines. Help us scale our infrastructure.",
			Skills:      []string{"AWS", "Kubernetes", "Docker", "Jenkins", "Terraform", "CI/CD"},
			Company:     "CloudTech Solutions",
			Salary:      "$100,000 - $150,000",
			Location:    "Seattle, WA",
			Type:        kernel.EmploymentFullTime,
			Experience:  "3-6 years",
		},
	}

	for i := range postings {
		postings[i].ID = kernel.NewJobID(uuid.NewString())
		postings[i].PostedAt = now
		postings[i].IsActive = true
	}
	return postings
}
