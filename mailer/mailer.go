// path: mailer/mailer.go
package mailer

import (
	"fmt"
	"io"
	"log"
	"net/url"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	router "github.com/nicholas-fedor/shoutrrr/pkg/router"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"
)

// Sender delivers a plain-text notification. Delivery failure is never fatal
// to the caller's own work; submissions stay saved and reports stay built.
type Sender interface {
	Send(subject, body string) error
}

// SMTPSender sends mail through shoutrrr's smtp service.
type SMTPSender struct {
	to     string
	sender *router.ServiceRouter
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender builds the sender once. The from address doubles as the SMTP
// username (Resend convention, password is the API key).
func NewSMTPSender(host string, port int, from, password, to string) (*SMTPSender, error) {
	if from == "" || password == "" {
		return nil, fmt.Errorf("email sender credentials not set")
	}
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("usestarttls", "yes")
	u := url.URL{
		Scheme:   "smtp",
		User:     url.UserPassword(from, password),
		Host:     fmt.Sprintf("%s:%d", host, port),
		Path:     "/",
		RawQuery: q.Encode(),
	}

	s, err := shoutrrr.CreateSender(u.String())
	if err != nil {
		return nil, fmt.Errorf("create smtp sender: %w", err)
	}
	s.SetLogger(log.New(io.Discard, "", 0))
	return &SMTPSender{to: to, sender: s}, nil
}

func (m *SMTPSender) Send(subject, body string) error {
	params := stypes.Params{}
	params.SetTitle(subject)
	errs := m.sender.Send(body, &params)
	for _, e := range errs {
		if e != nil {
			return fmt.Errorf("send mail to %s: %w", m.to, e)
		}
	}
	return nil
}
