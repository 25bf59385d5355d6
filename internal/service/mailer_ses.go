package service

import (
	"context"
	"fmt"
	"log/slog"

	"hiredesk/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESMailer delivers through AWS SES instead of a raw SMTP relay.
type SESMailer struct {
	client *sesv2.Client
}

// NewSESMailer builds the SES client, choosing the credential source from
// configuration: explicit static credentials, or the SDK default chain for
// IAM-role deployments.
func NewSESMailer(cfg *config.Config) (*SESMailer, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Mailer.SES.Region),
	}

	switch cfg.Mailer.SES.AuthType {
	case "static_credentials":
		if cfg.Mailer.SES.AccessKeyID == "" || cfg.Mailer.SES.SecretAccessKey == "" {
			return nil, fmt.Errorf("SES auth_type is static_credentials but access key id or secret is missing")
		}
		creds := credentials.NewStaticCredentialsProvider(
			cfg.Mailer.SES.AccessKeyID,
			cfg.Mailer.SES.SecretAccessKey,
			"",
		)
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	case "iam_role":
		// Default chain resolves the role credentials.
	default:
		slog.Warn("unknown SES auth type, falling back to default credential chain",
			"auth_type", cfg.Mailer.SES.AuthType,
		)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SESMailer{client: sesv2.NewFromConfig(awsCfg)}, nil
}

func (m *SESMailer) Send(ctx context.Context, cfg *config.SMTPConfig, to, subject, body string) (string, error) {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%q <%s>", cfg.FromName, cfg.From)),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to send email via SES: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
