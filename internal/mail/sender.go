package mail

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// Sender renders and delivers mail over SMTP with STARTTLS.
type Sender struct {
	host     string
	port     string
	user     string
	password string
	from     string
	fromName string
}

// NewSender creates an SMTP sender.
func NewSender(host, port, user, password, from, fromName string) *Sender {
	return &Sender{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

// Send renders the event's template and delivers it to every recipient.
// Delivery is best effort per recipient; the first failure aborts the rest.
func (s *Sender) Send(event Event) error {
	subject, body, err := render(event)
	if err != nil {
		return err
	}

	for _, to := range event.To {
		msg := s.compose(to, subject, body)
		if err := s.sendSMTP(to, []byte(msg)); err != nil {
			return fmt.Errorf("send to %s: %w", to, err)
		}
		log.Printf("mailer: sent type=%s to=%s", event.Type, to)
	}
	return nil
}

func (s *Sender) compose(to, subject, htmlBody string) string {
	fromHeader := fmt.Sprintf("%s <%s>", s.fromName, s.from)
	return strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")
}

func (s *Sender) sendSMTP(to string, msg []byte) error {
	addr := net.JoinHostPort(s.host, s.port)

	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	// deadline covers the whole SMTP conversation
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}
	if s.user != "" {
		auth := smtp.PlainAuth("", s.user, s.password, s.host)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}

	if err := c.Mail(s.from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

var verificationTmpl = template.Must(template.New("verification").Parse(`
<p>Hi {{.Name}},</p>
<p>Your verification code is <strong>{{.OTP}}</strong>. It expires in 15 minutes.</p>
`))

var approvedTmpl = template.Must(template.New("approved").Parse(`
<p>Hi {{.Name}},</p>
<p>Your account has been approved. You can now sign in and use the marketplace.</p>
`))

var rejectedTmpl = template.Must(template.New("rejected").Parse(`
<p>Hi {{.Name}},</p>
<p>Unfortunately your account was not approved.{{if .Reason}} Reason: {{.Reason}}{{end}}</p>
`))

var broadcastTmpl = template.Must(template.New("broadcast").Parse(`
<p>{{.Message}}</p>
{{if .CTAURL}}<p><a href="{{.CTAURL}}">{{if .CTAText}}{{.CTAText}}{{else}}Open{{end}}</a></p>{{end}}
`))

func render(event Event) (subject, body string, err error) {
	var tmpl *template.Template
	switch event.Type {
	case EventVerification:
		subject = "Verify your email"
		tmpl = verificationTmpl
	case EventUserApproved:
		subject = "Your account was approved"
		tmpl = approvedTmpl
	case EventUserRejected:
		subject = "Your account review"
		tmpl = rejectedTmpl
	case EventBroadcast:
		subject = event.Subject
		tmpl = broadcastTmpl
	default:
		return "", "", fmt.Errorf("unknown mail event type %q", event.Type)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, event); err != nil {
		return "", "", fmt.Errorf("render %s template: %w", event.Type, err)
	}
	return subject, buf.String(), nil
}
