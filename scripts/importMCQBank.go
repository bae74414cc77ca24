package main

import (
	"caprep/config"
	"caprep/database"
	"caprep/models"
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("MCQBank.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	skipped := 0

	for rowNum, record := range records[1:] {
		get := func(column string) string {
			idx, ok := headerIndex[column]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		question := get("question")
		correctAnswer := get("correct_answer")
		if question == "" || correctAnswer == "" {
			log.Printf("Row %d skipped: missing question or correct answer", rowNum+2)
			skipped++
			continue
		}

		topicID, err := strconv.Atoi(get("topic_id"))
		if err != nil || topicID <= 0 {
			log.Printf("Row %d skipped: invalid topic_id", rowNum+2)
			skipped++
			continue
		}
		testPaperID, err := strconv.Atoi(get("test_paper_id"))
		if err != nil || testPaperID <= 0 {
			log.Printf("Row %d skipped: invalid test_paper_id", rowNum+2)
			skipped++
			continue
		}

		// Option columns are option_a..option_d; empty ones are dropped
		options := datatypes.JSONMap{}
		for _, key := range []string{"a", "b", "c", "d"} {
			if text := get("option_" + key); text != "" {
				options[key] = text
			}
		}
		if len(options) < 2 {
			log.Printf("Row %d skipped: fewer than two options", rowNum+2)
			skipped++
			continue
		}
		if _, ok := options[correctAnswer]; !ok {
			log.Printf("Row %d skipped: correct answer %q is not an option key", rowNum+2, correctAnswer)
			skipped++
			continue
		}

		mcq := models.MCQ{
			Question:      question,
			Options:       options,
			CorrectAnswer: correctAnswer,
			Explanation:   get("explanation"),
			TopicID:       uint(topicID),
			TestPaperID:   uint(testPaperID),
		}
		if marks, err := strconv.Atoi(get("marks")); err == nil && marks >= 0 {
			mcq.Marks = &marks
		}

		if err := database.Database.Db.Create(&mcq).Error; err != nil {
			log.Printf("Row %d failed to insert: %v", rowNum+2, err)
			skipped++
			continue
		}
		inserted++

		if inserted%500 == 0 {
			log.Printf("Inserted %d questions so far...", inserted)
		}
	}

	log.Printf("Import complete: %d inserted, %d skipped", inserted, skipped)
}
