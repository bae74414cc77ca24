package utils

import (
	"caprep/config"
	"log"

	"github.com/go-resty/resty/v2"
)

const fcmSendURL = "https://fcm.googleapis.com/fcm/send"

// PushMessage is a topic broadcast sent to every subscribed device
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// SendPushNotification delivers a topic broadcast through FCM. Callers run
// it in a goroutine; create paths must never block on or fail because of
// delivery, so failures are only logged.
func SendPushNotification(msg PushMessage) {
	if config.AppConfig.FCMServerKey == "" {
		log.Println("Push notification skipped: FCM_SERVER_KEY is not set")
		return
	}

	payload := map[string]interface{}{
		"to": "/topics/" + config.AppConfig.FCMTopic,
		"notification": map[string]string{
			"title": msg.Title,
			"body":  msg.Body,
		},
		"data":     msg.Data,
		"priority": "high",
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "key="+config.AppConfig.FCMServerKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(fcmSendURL)
	if err != nil {
		log.Printf("Failed to send push notification: %v", err)
		return
	}
	if resp.StatusCode() != 200 {
		log.Printf("Push notification rejected: %s", resp.String())
	}
}
