package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

// MockCandidates returns the demo collection with fresh ids.
func MockCandidates() []*domain.CandidateRecord {
	mk := func(name, file string, uploaded time.Time, category, summary string, skills []string, years int, education string) *domain.CandidateRecord {
		return &domain.CandidateRecord{
			ID:              uuid.NewString(),
			Filename:        file,
			OriginalName:    name,
			UploadDate:      uploaded,
			Category:        category,
			Summary:         summary,
			Skills:          skills,
			ExperienceYears: years,
			EducationLevel:  education,
		}
	}
	day := func(m time.Month, d int) time.Time {
		return time.Date(2023, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []*domain.CandidateRecord{
		mk("John Smith Resume.pdf", "john-smith-resume.pdf", day(time.February, 15),
			"Data Scientist",
			"Experienced Python developer with 3 years in data science projects. Proficient in SQL, pandas, and machine learning libraries. Bachelor's in Computer Science from MIT.",
			[]string{"Python", "SQL", "Machine Learning", "pandas", "scikit-learn"}, 3, "Bachelor's"),
		mk("Sarah Jones Resume.pdf", "sarah-jones-resume.pdf", day(time.March, 20),
			"Software Engineer",
			"Full-stack developer with 4 years experience. Expertise in React, Node.js, and Express. Built scalable web applications for fintech startups. Master's in Software Engineering.",
			[]string{"JavaScript", "React", "Node.js", "MongoDB", "Express"}, 4, "Master's"),
		mk("Michael Williams Resume.pdf", "michael-williams-resume.pdf", day(time.April, 10),
			"Web Developer",
			"Web developer with 2 years experience in frontend technologies. Skilled in HTML, CSS, JavaScript and React. Created responsive websites for multiple clients. Bachelor's in Web Development.",
			[]string{"HTML", "CSS", "JavaScript", "React", "Responsive Design"}, 2, "Bachelor's"),
		mk("Emily Brown Resume.pdf", "emily-brown-resume.pdf", day(time.May, 5),
			"AI Engineer",
			"AI engineer with 5 years experience. Developed computer vision and NLP models. Expert in Python, TensorFlow, and PyTorch. PhD in Machine Learning from Stanford.",
			[]string{"Python", "TensorFlow", "PyTorch", "NLP", "Computer Vision"}, 5, "PhD"),
		mk("David Lee Resume.pdf", "david-lee-resume.pdf", day(time.June, 12),
			"Data Analyst",
			"Data analyst with 1 year experience. Proficient in SQL, Excel, and Power BI. Created data visualizations for business metrics. Bachelor's in Statistics.",
			[]string{"SQL", "Excel", "Power BI", "Data Visualization", "Statistics"}, 1, "Bachelor's"),
		mk("Jessica Taylor Resume.pdf", "jessica-taylor-resume.pdf", day(time.July, 18),
			"Software Engineer",
			"Backend developer with 3 years experience in Python and Django. Designed RESTful APIs and database schemas. Master's in Computer Engineering.",
			[]string{"Python", "Django", "RESTful API", "PostgreSQL", "Docker"}, 3, "Master's"),
		mk("Alex Martinez Resume.pdf", "alex-martinez-resume.pdf", day(time.August, 25),
			"Web Developer",
			"Frontend developer with 2 years experience. Expertise in JavaScript, Vue.js, and CSS frameworks. Created interactive UIs for e-commerce websites. Bachelor's in Information Systems.",
			[]string{"JavaScript", "Vue.js", "CSS", "Tailwind CSS", "Webpack"}, 2, "Bachelor's"),
	}
}
