package aws

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	cwlTypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/dell-inventory-report-go/internal/domain/repository"
)

// AWSRepositoryImpl implementa o AWSRepository com cache de clientes.
type AWSRepositoryImpl struct {
	cfgCache    map[string]aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewAWSRepository cria uma nova implementação do AWSRepository.
func NewAWSRepository() repository.AWSRepository {
	return &AWSRepositoryImpl{
		cfgCache:    make(map[string]aws.Config),
		clientCache: make(map[string]interface{}),
	}
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profileName(profile), err)
	}

	r.cfgCache[profile] = cfg
	return cfg, nil
}

func (r *AWSRepositoryImpl) getServiceClient(ctx context.Context, profile, service string) (interface{}, error) {
	cacheKey := fmt.Sprintf("%s-%s", profile, service)

	r.mu.Lock()
	if client, ok := r.clientCache[cacheKey]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return nil, err
	}

	var client interface{}
	switch service {
	case "sts":
		client = sts.NewFromConfig(cfg)
	case "s3":
		client = s3.NewFromConfig(cfg)
	case "logs":
		client = cloudwatchlogs.NewFromConfig(cfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	r.mu.Lock()
	r.clientCache[cacheKey] = client
	r.mu.Unlock()

	return client, nil
}

// GetAccountID confirma as credenciais AWS e retorna o ID da conta.
func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context, profile string) (string, error) {
	client, err := r.getServiceClient(ctx, profile, "sts")
	if err != nil {
		return "", err
	}

	output, err := client.(*sts.Client).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to get caller identity for profile %s: %w", profileName(profile), err)
	}

	return aws.ToString(output.Account), nil
}

// UploadFile envia um arquivo local para s3://bucket/key.
func (r *AWSRepositoryImpl) UploadFile(ctx context.Context, profile, bucket, key, filePath string) (string, error) {
	client, err := r.getServiceClient(ctx, profile, "s3")
	if err != nil {
		return "", err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("error opening %s for upload: %w", filePath, err)
	}
	defer file.Close()

	_, err = client.(*s3.Client).PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType(filePath)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to s3://%s/%s: %w", filePath, bucket, key, err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}

// PutFailureEvents grava as mensagens no log group, criando o stream se preciso.
func (r *AWSRepositoryImpl) PutFailureEvents(ctx context.Context, profile, logGroup, logStream string, messages []string) error {
	if len(messages) == 0 {
		return nil
	}

	c, err := r.getServiceClient(ctx, profile, "logs")
	if err != nil {
		return err
	}
	client := c.(*cloudwatchlogs.Client)

	_, err = client.CreateLogStream(ctx, &cloudwatchlogs.CreateLogStreamInput{
		LogGroupName:  aws.String(logGroup),
		LogStreamName: aws.String(logStream),
	})
	if err != nil {
		var exists *cwlTypes.ResourceAlreadyExistsException
		if !errors.As(err, &exists) {
			return fmt.Errorf("failed to create log stream %s/%s: %w", logGroup, logStream, err)
		}
	}

	now := time.Now().UnixMilli()
	events := make([]cwlTypes.InputLogEvent, 0, len(messages))
	for _, msg := range messages {
		events = append(events, cwlTypes.InputLogEvent{
			Message:   aws.String(msg),
			Timestamp: aws.Int64(now),
		})
	}

	_, err = client.PutLogEvents(ctx, &cloudwatchlogs.PutLogEventsInput{
		LogGroupName:  aws.String(logGroup),
		LogStreamName: aws.String(logStream),
		LogEvents:     events,
	})
	if err != nil {
		return fmt.Errorf("failed to put log events to %s/%s: %w", logGroup, logStream, err)
	}

	return nil
}

func profileName(profile string) string {
	if profile == "" {
		return "default"
	}
	return profile
}
