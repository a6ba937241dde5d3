package mailer

import "fmt"

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
type EmailJob struct {
	To       string `json:"to"`
	Subject  string `json:"subject,omitempty"`
	Text     string `json:"text,omitempty"`
	HTML     string `json:"html,omitempty"`
	Template string `json:"template,omitempty"` // currently only "welcome"
	Name     string `json:"name,omitempty"`
}

const TemplateWelcome = "welcome"

// RenderWelcome fills in the welcome template for a freshly registered user.
func RenderWelcome(name string) (subject, text, html string) {
	subject = "Welcome to JobTrail"
	text = fmt.Sprintf("Hi %s,\n\nYour JobTrail account is ready. Start tracking your job applications today.\n", name)
	html = fmt.Sprintf("<p>Hi %s,</p><p>Your JobTrail account is ready. Start tracking your job applications today.</p>", name)
	return subject, text, html
}
