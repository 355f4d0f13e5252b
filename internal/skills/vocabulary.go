package skills

// DefaultVocabulary is the fixed skill list scanned against résumé text
// and job descriptions. Matches keep this canonical casing.
var DefaultVocabulary = []string{
	// Programming languages
	"JavaScript", "Python", "Java", "C++", "C#", "Ruby", "PHP", "Swift", "Kotlin",
	"TypeScript", "Go", "Rust", "Scala", "R", "MATLAB",

	// Web technologies
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "Spring",
	"HTML", "CSS", "Sass", "Less", "Tailwind", "Bootstrap",

	// Databases
	"MongoDB", "MySQL", "PostgreSQL", "Redis", "Cassandra", "Oracle",
	"SQL", "NoSQL", "Firebase", "DynamoDB",

	// DevOps & cloud
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "CI/CD",
	"Git", "GitHub", "GitLab", "Terraform", "Ansible",

	// AI/ML
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Scikit-learn",
	"NLP", "Computer Vision", "Data Science", "Pandas", "NumPy",

	// Practices & tooling
	"Agile", "Scrum", "REST API", "GraphQL", "Microservices", "Testing",
	"Unit Testing", "Integration Testing", "Jest", "Mocha", "Pytest",
}
