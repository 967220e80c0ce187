package publish

import (
	"strings"

	"github.com/rohanthewiz/serr"
	"github.com/wneessen/go-mail"
)

// SMTPConfig is the outbound mail configuration from the environment.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// EmailRequest describes one page delivery.
type EmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// EmailHTML sends the rendered page as an HTML attachment.
func EmailHTML(cfg SMTPConfig, req EmailRequest, filename, htmlContent string) error {
	msg := mail.NewMsg()
	if err := msg.From(cfg.From); err != nil {
		return serr.Wrap(err, "invalid sender address", "from", cfg.From)
	}
	if err := msg.To(req.To); err != nil {
		return serr.Wrap(err, "invalid recipient address", "to", req.To)
	}

	subject := req.Subject
	if subject == "" {
		subject = "Your landing page export"
	}
	msg.Subject(subject)

	body := req.Message
	if body == "" {
		body = "Your exported landing page is attached."
	}
	msg.SetBodyString(mail.TypeTextPlain, body)

	msg.AttachReader(filename, strings.NewReader(htmlContent))

	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Pass),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return serr.Wrap(err, "failed to create mail client", "host", cfg.Host)
	}

	if err := client.DialAndSend(msg); err != nil {
		return serr.Wrap(err, "failed to send email", "to", req.To)
	}
	return nil
}
