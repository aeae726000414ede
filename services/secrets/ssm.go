package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

type ssmAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SSM reads decrypted parameters from AWS Systems Manager Parameter Store
type SSM struct {
	client ssmAPI
}

// NewSSM source using the default credential chain
func NewSSM(ctx context.Context, region string) (*SSM, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SSM{client: ssm.NewFromConfig(cfg)}, nil
}

// Secret is the decrypted value of parameter name
func (s *SSM) Secret(ctx context.Context, name string) (string, error) {
	out, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	var notFound *types.ParameterNotFound
	if errors.As(err, &notFound) {
		return "", fmt.Errorf("ssm %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("ssm %s: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("ssm %s: %w", name, ErrNotFound)
	}
	return *out.Parameter.Value, nil
}
