package adapter

import (
	"context"
	"fmt"

	"github.com/ebazar/auth-service/internal/config"
	"github.com/ebazar/auth-service/internal/logger"
	"github.com/go-resty/resty/v2"
)

// mailMessage is the JSON body posted to the mail gateway.
type mailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	OTP     string `json:"otp"`
}

// mailGateway is the HTTP implementation of [OTPSender]. It posts the OTP
// message to an external mail-delivery service; templating and the actual
// SMTP hop happen on the gateway side.
type mailGateway struct {
	client     *resty.Client
	gatewayURL string
	sender     string
	logger     *logger.Logger
}

// NewMailGateway constructs an [OTPSender] that talks to the configured
// mail gateway over HTTP.
func NewMailGateway(cfg config.Mail, logger *logger.Logger) OTPSender {
	logger.Debug().Str("gateway", cfg.GatewayURL).Msg("creating mail gateway client")
	return &mailGateway{
		client:     resty.New(),
		gatewayURL: cfg.GatewayURL,
		sender:     cfg.Sender,
		logger:     logger,
	}
}

// SendOTP posts the recovery message to the mail gateway.
//
// Any transport failure or non-2xx gateway response is normalised to
// [ErrOTPDeliveryFailed] with the underlying cause wrapped for operators.
func (m *mailGateway) SendOTP(ctx context.Context, email, otp string) error {
	log := logger.FromContext(ctx)

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(mailMessage{
			From:    m.sender,
			To:      email,
			Subject: "Ebazar PASSWORD RECOVERY",
			OTP:     otp,
		}).
		Post(m.gatewayURL)
	if err != nil {
		log.Err(err).Str("func", "*mailGateway.SendOTP").Msg("mail gateway request failed")
		return fmt.Errorf("%w: %w", ErrOTPDeliveryFailed, err)
	}

	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("func", "*mailGateway.SendOTP").Msg("mail gateway rejected message")
		return fmt.Errorf("%w: gateway returned status %d", ErrOTPDeliveryFailed, resp.StatusCode())
	}

	return nil
}
