package utils

import (
	"caprep/database"
	"caprep/models"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PUBLISH-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartPublishScheduler runs the scheduled-publish sweep every minute. The
// first sweep runs immediately so papers that came due while the server was
// down get published on startup.
func StartPublishScheduler() {
	c := cron.New()
	if _, err := c.AddFunc("@every 1m", processScheduledTestPapers); err != nil {
		log.Fatalf("Failed to start publish scheduler: %v", err)
	}
	c.Start()

	processScheduledTestPapers()
}

// processScheduledTestPapers publishes test papers whose scheduled time has passed
func processScheduledTestPapers() {
	db := database.Database.Db
	now := time.Now()

	var papers []models.TestPaper
	if err := db.Scopes(models.Visible).
		Where("is_published = ? AND scheduled_publish_at IS NOT NULL AND scheduled_publish_at <= ?", false, now).
		Find(&papers).Error; err != nil {
		logScheduler("Error fetching due test papers: " + err.Error())
		return
	}

	for i := range papers {
		paper := &papers[i]
		paper.IsPublished = true
		if err := db.Save(paper).Error; err != nil {
			logScheduler(fmt.Sprintf("Error publishing test paper %d: %v", paper.ID, err))
			continue
		}
		logScheduler(fmt.Sprintf("Test paper %d (%s) auto-published", paper.ID, paper.Name))

		go SendPushNotification(PushMessage{
			Title: "New Test Paper Available",
			Body:  fmt.Sprintf("Test Paper: %s is now live.", paper.Name),
			Data: map[string]string{
				"type":        "TEST_PAPER_PUBLISHED",
				"testPaperId": fmt.Sprint(paper.ID),
				"topicId":     fmt.Sprint(paper.TopicID),
			},
		})
	}
}
