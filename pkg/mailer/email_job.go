package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending mail.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
