// internal/common/alerts/alerts_test.go
package alerts

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitplan-engine/internal/common/config"
	"fitplan-engine/internal/common/logger"
)

// ==========================================
// Test Fixtures
// ==========================================

type fakeSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)
	return &ses.SendEmailOutput{}, f.err
}

type fakeSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (f *fakeSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, params)
	return &sns.PublishOutput{}, f.err
}

func alertsConfig(email, snsEnabled bool) config.AlertsConfig {
	var cfg config.AlertsConfig
	cfg.AWS.Region = "us-east-1"
	cfg.Email.Enabled = email
	cfg.Email.FromEmail = "alerts@example.com"
	cfg.Email.ToEmail = "oncall@example.com"
	cfg.SNS.Enabled = snsEnabled
	cfg.SNS.TopicARN = "arn:aws:sns:us-east-1:123456789012:ops"
	return cfg
}

// ==========================================
// OperatorAlert Tests
// ==========================================

func TestOperatorAlert_DeliversToEnabledChannels(t *testing.T) {
	sesClient := &fakeSES{}
	snsClient := &fakeSNS{}
	a := NewWithClients(alertsConfig(true, true), logger.NewTestLogger(t), sesClient, snsClient)

	a.OperatorAlert(context.Background(), "catalog exhausted", "no beginner exercises for Legs")

	require.Len(t, sesClient.inputs, 1)
	assert.Equal(t, "oncall@example.com", sesClient.inputs[0].Destination.ToAddresses[0])
	assert.Equal(t, "catalog exhausted", *sesClient.inputs[0].Message.Subject.Data)

	require.Len(t, snsClient.inputs, 1)
	assert.Contains(t, *snsClient.inputs[0].Message, "no beginner exercises for Legs")
}

func TestOperatorAlert_SkipsDisabledChannels(t *testing.T) {
	sesClient := &fakeSES{}
	snsClient := &fakeSNS{}
	a := NewWithClients(alertsConfig(false, true), logger.NewTestLogger(t), sesClient, snsClient)

	a.OperatorAlert(context.Background(), "subject", "body")

	assert.Empty(t, sesClient.inputs)
	assert.Len(t, snsClient.inputs, 1)
}

func TestOperatorAlert_DeliveryFailureDoesNotPanic(t *testing.T) {
	sesClient := &fakeSES{err: fmt.Errorf("ses throttled")}
	snsClient := &fakeSNS{err: fmt.Errorf("topic gone")}
	a := NewWithClients(alertsConfig(true, true), logger.NewNoOpLogger(), sesClient, snsClient)

	assert.NotPanics(t, func() {
		a.OperatorAlert(context.Background(), "subject", "body")
	})
}

func TestNew_NoChannelsEnabledSkipsAWS(t *testing.T) {
	a, err := New(context.Background(), config.AlertsConfig{}, logger.NewTestLogger(t))

	require.NoError(t, err)
	require.NotNil(t, a)
	assert.NotPanics(t, func() {
		a.OperatorAlert(context.Background(), "subject", "body")
	})
}
