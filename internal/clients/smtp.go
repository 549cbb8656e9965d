package clients

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"

	"auja/internal/config"
	"auja/internal/domain"
)

// implicitTLSPort triggers SMTPS instead of STARTTLS.
const implicitTLSPort = 465

type smtpNotifier struct {
	sender     string
	recipients []string
	cc         []string
	sendFn     func(m ...*gomail.Message) error
}

func NewSMTPNotifier(cfg *config.Config) domain.Notifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	dialer.SSL = cfg.SMTPPort == implicitTLSPort

	return &smtpNotifier{
		sender:     cfg.Sender,
		recipients: cfg.Recipients,
		cc:         cfg.CC,
		sendFn:     dialer.DialAndSend,
	}
}

// Send delivers the report in a single dial-and-send. Either the whole
// send succeeds or the run fails; there is no per-recipient tracking.
func (n *smtpNotifier) Send(ctx context.Context, report *domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.sender)
	m.SetHeader("To", n.recipients...)
	if len(n.cc) > 0 {
		m.SetHeader("Cc", n.cc...)
	}
	m.SetHeader("Subject", report.Subject)
	m.SetBody("text/html", report.Body)

	if err := n.sendFn(m); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDelivery, err)
	}

	log.WithFields(log.Fields{
		"recipients": len(n.recipients),
		"cc":         len(n.cc),
	}).Info("report delivered")

	return nil
}
