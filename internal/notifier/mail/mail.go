// Package mail dispatches share notifications over SMTP. Dispatch is
// one-shot: success means the transport accepted the message, failures are
// wrapped and never retried here.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"qrvault/internal/domain/qrcode"

	"golang.org/x/exp/slog"
	gomail "gopkg.in/gomail.v2"
)

const subject = "Shared QR Code"

var bodyTmpl = template.Must(template.New("share").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333; text-align: center;">QR Code Shared With You</h1>
  <p style="color: #666;">A QR code has been shared with you for: <strong>{{.SourceText}}</strong></p>
  <div style="text-align: center; margin: 20px 0;">
    <img src="{{.Image}}" alt="QR Code" style="max-width: 300px; border: 1px solid #ddd; padding: 10px; border-radius: 8px;"/>
  </div>
  <p style="color: #888; text-align: center; font-size: 12px;">
    This QR code was shared via qrvault
  </p>
</div>`))

// Dialer is the outbound SMTP transport.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Notifier struct {
	dialer Dialer
	from   string
	log    *slog.Logger
}

func New(host string, port int, username, password, from string, log *slog.Logger) *Notifier {
	return &Notifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		log:    log.With("component", "mail_notifier"),
	}
}

// Notify sends exactly one message carrying the record's source text and
// rendered image to the recipient.
func (n *Notifier) Notify(_ context.Context, recipient string, code qrcode.QRCode) error {
	body, err := renderBody(code)
	if err != nil {
		return fmt.Errorf("render share mail: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", qrcode.ErrDispatch, err)
	}

	n.log.Debug("share mail dispatched", "qr_code_id", code.ID)
	return nil
}

func renderBody(code qrcode.QRCode) (string, error) {
	var buf bytes.Buffer
	err := bodyTmpl.Execute(&buf, struct {
		SourceText string
		// template.URL keeps html/template from mangling the data URL.
		Image template.URL
	}{
		SourceText: code.SourceText,
		Image:      template.URL(code.ImageDataURL),
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
