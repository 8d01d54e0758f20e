package database

import (
	"log"

	"exam-platform-backend/internal/models"

	"gorm.io/gorm"
)

type seedQuestion struct {
	text         string
	options      []string
	correctIndex int
	category     string
	difficulty   string
}

var sampleQuestions = []seedQuestion{
	{
		text: "What is JSX in React?",
		options: []string{
			"A JavaScript extension that allows XML-like syntax",
			"A CSS framework for React",
			"A database for React applications",
			"A state management library",
		},
		correctIndex: 0,
		category:     models.CategoryReact,
		difficulty:   models.DifficultyEasy,
	},
	{
		text:         "Which hook is used to manage state in functional components?",
		options:      []string{"useEffect", "useState", "useContext", "useReducer"},
		correctIndex: 1,
		category:     models.CategoryReact,
		difficulty:   models.DifficultyEasy,
	},
	{
		text: "What is the purpose of useEffect hook?",
		options: []string{
			"To manage component state",
			"To handle side effects in functional components",
			"To create context for components",
			"To optimize component performance",
		},
		correctIndex: 1,
		category:     models.CategoryReact,
		difficulty:   models.DifficultyMedium,
	},
	{
		text: "What does REST stand for?",
		options: []string{
			"Representational State Transfer",
			"Remote State Transfer",
			"Relational State Transfer",
			"Responsive State Transfer",
		},
		correctIndex: 0,
		category:     models.CategoryAPI,
		difficulty:   models.DifficultyEasy,
	},
	{
		text:         "Which HTTP method is used to retrieve data?",
		options:      []string{"POST", "PUT", "DELETE", "GET"},
		correctIndex: 3,
		category:     models.CategoryAPI,
		difficulty:   models.DifficultyEasy,
	},
	{
		text: "What is JWT?",
		options: []string{
			"Java Web Token",
			"JSON Web Token",
			"JavaScript Web Tool",
			"Java Web Tool",
		},
		correctIndex: 1,
		category:     models.CategoryAPI,
		difficulty:   models.DifficultyMedium,
	},
	{
		text:         "What type of database is MongoDB?",
		options:      []string{"Relational", "NoSQL Document", "Graph", "Key-Value"},
		correctIndex: 1,
		category:     models.CategoryDatabase,
		difficulty:   models.DifficultyEasy,
	},
	{
		text: "What is a collection in MongoDB?",
		options: []string{
			"A group of databases",
			"A group of documents",
			"A group of fields",
			"A group of indexes",
		},
		correctIndex: 1,
		category:     models.CategoryDatabase,
		difficulty:   models.DifficultyEasy,
	},
	{
		text:         "Which method is used to find documents in MongoDB?",
		options:      []string{"search()", "find()", "get()", "select()"},
		correctIndex: 1,
		category:     models.CategoryDatabase,
		difficulty:   models.DifficultyMedium,
	},
	{
		text: "What is indexing in databases?",
		options: []string{
			"A way to sort data",
			"A technique to improve query performance",
			"A method to backup data",
			"A way to encrypt data",
		},
		correctIndex: 1,
		category:     models.CategoryDatabase,
		difficulty:   models.DifficultyMedium,
	},
	{
		text: "Which statement about HTTP status code 401 is true?",
		options: []string{
			"The resource was not found",
			"The request was not authenticated",
			"The server failed unexpectedly",
			"The request succeeded",
		},
		correctIndex: 1,
		category:     models.CategoryGeneral,
		difficulty:   models.DifficultyEasy,
	},
	{
		text: "What does idempotent mean for an API operation?",
		options: []string{
			"It can only be called once",
			"Repeating it has the same effect as calling it once",
			"It never fails",
			"It requires no authentication",
		},
		correctIndex: 1,
		category:     models.CategoryGeneral,
		difficulty:   models.DifficultyHard,
	},
}

// SeedQuestions inserts the sample bank when the questions table is
// empty. Safe to run at every startup.
func SeedQuestions(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Question{}).Count(&count).Error; err != nil {
		log.Printf("seed: counting questions failed: %v", err)
		return
	}
	if count > 0 {
		log.Printf("seed: question bank already has %d questions, skipping", count)
		return
	}

	for _, sq := range sampleQuestions {
		q := models.Question{
			Text:         sq.text,
			CorrectIndex: sq.correctIndex,
			Category:     sq.category,
			Difficulty:   sq.difficulty,
		}
		for i, text := range sq.options {
			q.Options = append(q.Options, models.Option{OrderNum: i, Text: text})
		}
		if err := db.Create(&q).Error; err != nil {
			log.Printf("seed: inserting question failed: %v", err)
			return
		}
	}
	log.Printf("seed: inserted %d questions", len(sampleQuestions))
}
