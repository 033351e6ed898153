package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"student-guide-be/internal/model"
	"student-guide-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedIntent struct {
	Id       string
	Label    string
	Keywords []string
}

type seedSnippet struct {
	IntentId string
	Content  string
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedIntents(db)
	seedKnowledge(db)
}

func seedIntents(db *gorm.DB) {
	log.Println("Seeding PTC intents...")

	intents := []seedIntent{
		{
			Id:    "college_info",
			Label: "College Information",
			Keywords: []string{
				"what is ptc", "about ptc", "college info", "ptc information",
				"history of ptc", "vision", "mission", "where is ptc", "ptc location",
				"president", "college president", "school president",
				"head of the school", "who is the president", "ptc president",
			},
		},
		{
			Id:    "mis_staff",
			Label: "MIS Department",
			Keywords: []string{
				"mis staff", "mis department", "who handles computers", "it office",
				"technical support", "system admin", "mis office",
			},
		},
		{
			Id:    "enrollment",
			Label: "Enrollment",
			Keywords: []string{
				"enroll", "enrollment", "register", "registration",
				"how to enroll", "sign up", "when is enrollment",
			},
		},
		{
			Id:    "admission_requirements",
			Label: "Admission Requirements",
			Keywords: []string{
				"requirements", "admission requirements", "what to submit",
				"needed documents", "requirements for freshmen", "requirements for transferee",
			},
		},
		{
			Id:    "scholarship",
			Label: "Scholarships",
			Keywords: []string{
				"scholarship", "financial aid", "barangay scholar",
				"tulong dunong", "tes", "free tuition",
			},
		},
		{
			Id:    "grading",
			Label: "Grading System",
			Keywords: []string{
				"grading", "grading system", "passing grade",
				"grade equivalent", "failing grade", "how grades work",
			},
		},
		{
			Id:    "executive_class",
			Label: "Executive Class",
			Keywords: []string{
				"executive class", "working student", "working professional",
				"night class", "evening class", "weekend class",
				"bsit executive", "bsoa executive",
			},
		},
		{
			Id:    "student_rights",
			Label: "Student Rights",
			Keywords: []string{
				"student rights", "rights of students", "what are my rights", "student privileges",
			},
		},
		{
			Id:    "student_duties",
			Label: "Student Duties",
			Keywords: []string{
				"student duties", "student responsibilities", "what are my duties", "student obligations",
			},
		},
	}

	for _, in := range intents {
		keywords, err := keywordsJSON(in.Keywords)
		if err != nil {
			log.Fatalf("Error: Failed to encode keywords for '%s': %v", in.Id, err)
		}

		var existing model.Intent
		if err := db.Where("id = ?", in.Id).First(&existing).Error; err == nil {
			log.Printf("Intent '%s' already exists, skipping...", in.Id)
			continue
		}

		record := model.Intent{
			Id:        in.Id,
			Label:     in.Label,
			Keywords:  keywords,
			Enabled:   true,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&record).Error; err != nil {
			log.Fatalf("Error: Failed to seed intent '%s': %v", in.Id, err)
		}
	}

	log.Println("✅ PTC intents seeded successfully")
}

func seedKnowledge(db *gorm.DB) {
	log.Println("Seeding PTC knowledge...")

	snippets := []seedSnippet{
		{
			IntentId: "college_info",
			Content:  "Pateros Technological College (PTC) is an institution of higher learning committed to the holistic development of students through quality education in scientific, technological, industrial, and vocational fields.",
		},
		{
			IntentId: "college_info",
			Content:  "PTC is located at 205 College Street, Sto. Rosario-Kanluran, Pateros, Metro Manila.",
		},
		{
			IntentId: "college_info",
			Content:  "Pateros Technological College was established on January 29, 1993 and began operations on August 16, 1993.",
		},
		{
			IntentId: "mis_staff",
			Content:  "The MIS Department is headed by Julius Codilan. Staff members include Cristy Oropesa, Geraldine Mae Tamboong, Rey Abarracozo, and Joshua Mendoza.",
		},
		{
			IntentId: "enrollment",
			Content:  "First semester enrollment usually takes place during the first two weeks of June. Late enrollment is held on the third week with penalty fees.",
		},
		{
			IntentId: "admission_requirements",
			Content:  "New students must submit Form 138 or Form 137, PSA Birth Certificate, Certificate of Good Moral Character, a recent 2x2 photo, and a long white folder with plastic cover.",
		},
		{
			IntentId: "scholarship",
			Content:  "PTC offers scholarships such as the Barangay Scholar program, Tulong Dunong Program (TDP), and Tertiary Education Subsidy (TES) under RA 10931.",
		},
		{
			IntentId: "grading",
			Content:  "PTC uses a numerical grading system where 97–100 is equivalent to 1.00 (highest) and 74 and below is considered failing.",
		},
		{
			IntentId: "executive_class",
			Content:  "The Executive Class is a flexible program for working professionals offering BSIT and BSOA, with classes held on weekday evenings and Saturdays.",
		},
		{
			IntentId: "student_rights",
			Content:  "Students have the right to quality education, access guidance services, obtain official records, publish student materials, and participate in recognized organizations.",
		},
		{
			IntentId: "student_duties",
			Content:  "Students are expected to uphold academic integrity, maintain discipline, participate in civic affairs, and act responsibly within the college community.",
		},
	}

	for _, sn := range snippets {
		var count int64
		db.Model(&model.KnowledgeSnippet{}).
			Where("intent_id = ? AND content = ?", sn.IntentId, sn.Content).
			Count(&count)
		if count > 0 {
			log.Printf("Knowledge for '%s' already exists, skipping...", sn.IntentId)
			continue
		}

		record := model.KnowledgeSnippet{
			IntentId:  sn.IntentId,
			Content:   sn.Content,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&record).Error; err != nil {
			log.Fatalf("Error: Failed to seed knowledge for '%s': %v", sn.IntentId, err)
		}
	}

	log.Println("✅ PTC knowledge seeded successfully")
}

func keywordsJSON(keywords []string) (datatypes.JSON, error) {
	b, err := json.Marshal(keywords)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
