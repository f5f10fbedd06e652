package gateway_mail

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/logger"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
	"github.com/opengovsg/FormSG-sub009/internal/utils"
	"github.com/opengovsg/FormSG-sub009/services/verification"
)

const defaultOtpLifetime = 10 * time.Minute

// MailGateway delivers OTPs over SMTP
type MailGateway struct {
	cfg         models.SMTPConfig
	otpLifetime time.Duration
}

// NewMailGateway creates a mail gateway for cfg. otpLifetime is quoted in
// the message body.
func NewMailGateway(cfg models.SMTPConfig, otpLifetime time.Duration) *MailGateway {
	if otpLifetime <= 0 {
		otpLifetime = defaultOtpLifetime
	}
	return &MailGateway{cfg: cfg, otpLifetime: otpLifetime}
}

// SendOtp emails otp to recipient
func (g *MailGateway) SendOtp(ctx context.Context, recipient, otp string, form *models.Form) error {
	if !utils.IsValidEmail(recipient) {
		return fmt.Errorf("%w: invalid recipient", verification.ErrMailSend)
	}

	msg, err := g.buildMessage(recipient, otp, form)
	if err != nil {
		return fmt.Errorf("%w: %v", verification.ErrMailSend, err)
	}

	if g.cfg.DryRun {
		logger.InfoCtx(ctx, "Mail dry run",
			logger.String("recipient", utils.MaskEmail(recipient)),
			logger.String("form_id", form.ID))
		return nil
	}

	client, err := mail.NewClient(g.cfg.Host, g.clientOptions()...)
	if err != nil {
		return fmt.Errorf("%w: creating mail client: %v", verification.ErrMailSend, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		logger.ErrorCtx(ctx, "Failed to send OTP email",
			logger.String("recipient", utils.MaskEmail(recipient)),
			logger.Err(err))
		return fmt.Errorf("%w: %v", verification.ErrMailSend, err)
	}
	return nil
}

func (g *MailGateway) buildMessage(recipient, otp string, form *models.Form) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if g.cfg.FromName != "" {
		if err := msg.FromFormat(g.cfg.FromName, g.cfg.From); err != nil {
			return nil, fmt.Errorf("setting from address: %w", err)
		}
	} else if err := msg.From(g.cfg.From); err != nil {
		return nil, fmt.Errorf("setting from address: %w", err)
	}

	if err := msg.To(recipient); err != nil {
		return nil, fmt.Errorf("setting to address: %w", err)
	}

	title := form.Title
	if title == "" {
		title = "your form"
	}
	msg.Subject(fmt.Sprintf("Your OTP for submitting %s", title))
	msg.SetBodyString(mail.TypeTextPlain, g.body(title, otp))
	return msg, nil
}

func (g *MailGateway) body(title, otp string) string {
	return fmt.Sprintf(
		"You are currently submitting %s.\n\nYour OTP is %s. It will expire in %s. Please use this to verify your submission.\n\nIf your OTP does not work, please request for a new OTP.\n",
		title, otp, formatLifetime(g.otpLifetime))
}

func (g *MailGateway) clientOptions() []mail.Option {
	opts := []mail.Option{mail.WithPort(g.cfg.Port)}

	if g.cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
		if g.cfg.Port == 465 {
			opts = append(opts, mail.WithSSL())
		}
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if g.cfg.Username != "" && g.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(g.cfg.Username),
			mail.WithPassword(g.cfg.Password),
		)
	}
	return opts
}

// formatLifetime renders whole minutes as "10 minutes" and anything else
// as a Go duration.
func formatLifetime(d time.Duration) string {
	if d%time.Minute != 0 {
		return d.String()
	}
	minutes := int(d / time.Minute)
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}
