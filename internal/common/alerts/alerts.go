// internal/common/alerts/alerts.go
package alerts

import (
	"context"
	"fmt"
	"time"

	"fitplan-engine/internal/common/config"
	"fitplan-engine/internal/common/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// Interfaces over the AWS clients so tests can substitute fakes.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Alerter delivers operator alerts for configuration defects that must
// not degrade silently, like an exhausted catalog cell.
type Alerter struct {
	cfg       config.AlertsConfig
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func New(ctx context.Context, cfg config.AlertsConfig, log logger.Logger) (*Alerter, error) {
	a := &Alerter{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "alerts"}),
	}

	if !cfg.Email.Enabled && !cfg.SNS.Enabled {
		return a, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	a.sesClient = ses.NewFromConfig(awsCfg)
	a.snsClient = sns.NewFromConfig(awsCfg)

	return a, nil
}

// NewWithClients wires pre-built clients, used by tests.
func NewWithClients(cfg config.AlertsConfig, log logger.Logger, sesClient SESService, snsClient SNSService) *Alerter {
	return &Alerter{
		cfg:       cfg,
		logger:    log.WithFields(map[string]interface{}{"component": "alerts"}),
		sesClient: sesClient,
		snsClient: snsClient,
	}
}

// OperatorAlert sends subject/body to every enabled channel. Delivery
// failures are logged and swallowed: alerting must never take the
// service down with it.
func (a *Alerter) OperatorAlert(ctx context.Context, subject, body string) {
	sent := false

	if a.cfg.Email.Enabled && a.sesClient != nil {
		if err := a.sendEmail(ctx, subject, body); err != nil {
			a.logger.Error("alert email send failed", map[string]interface{}{
				"error":   err.Error(),
				"subject": subject,
			})
		} else {
			sent = true
		}
	}

	if a.cfg.SNS.Enabled && a.snsClient != nil {
		if err := a.publishSNS(ctx, subject, body); err != nil {
			a.logger.Error("alert SNS publish failed", map[string]interface{}{
				"error":   err.Error(),
				"subject": subject,
			})
		} else {
			sent = true
		}
	}

	if !sent {
		a.logger.Warn("operator alert had no delivery channel", map[string]interface{}{
			"subject": subject,
			"body":    body,
		})
	}
}

func (a *Alerter) sendEmail(ctx context.Context, subject, body string) error {
	_, err := a.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(a.cfg.Email.FromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{a.cfg.Email.ToEmail},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
	})
	return err
}

func (a *Alerter) publishSNS(ctx context.Context, subject, body string) error {
	_, err := a.snsClient.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(a.cfg.SNS.TopicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(fmt.Sprintf("[%s] %s", time.Now().UTC().Format(time.RFC3339), body)),
	})
	return err
}
