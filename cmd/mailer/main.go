package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"lakehire/internal/config"
	"lakehire/internal/mail"
)

// The mailer consumes mail events from Kafka and delivers them over SMTP.
// It runs as its own process so slow SMTP conversations never sit on an API
// request path.
func main() {
	cfg := config.Load()

	sender := mail.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom, cfg.MailFromName)
	consumer := mail.NewConsumer(cfg.KafkaBroker, cfg.KafkaMailTopic, cfg.KafkaGroupID, sender)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("mailer consuming topic=%s broker=%s", cfg.KafkaMailTopic, cfg.KafkaBroker)
	consumer.Listen(ctx)
	log.Println("mailer stopped")
}
