// Package mail delivers one-time passwords to recipients. The SMTP
// implementation is a synchronous, blocking collaborator with no retries;
// a failed send is reported to the caller and nothing else.
package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// Sender hands a one-time code to a recipient.
type Sender interface {
	Send(ctx context.Context, code, recipient string) error
}

// SMTPSender delivers codes over SMTP with STARTTLS and PLAIN auth.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	period   time.Duration
}

// SMTPOptions carries connection settings for NewSMTPSender. Period is the
// code lifetime quoted in the message body.
type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Period   time.Duration
}

func NewSMTPSender(opts SMTPOptions) *SMTPSender {
	return &SMTPSender{
		host:     opts.Host,
		port:     opts.Port,
		username: opts.Username,
		password: opts.Password,
		from:     opts.From,
		period:   opts.Period,
	}
}

func (s *SMTPSender) Send(ctx context.Context, code, recipient string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("set sender %s: %w", s.from, err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("set recipient %s: %w", recipient, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, Body(code, s.period))

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send to %s: %w", recipient, err)
	}
	return nil
}

const subject = "Your OTP Code"

// Body renders the plain-text message carrying the code.
func Body(code string, period time.Duration) string {
	return fmt.Sprintf("Your OTP code is: %s\n\nThis code will expire in %d seconds.", code, int(period.Seconds()))
}
