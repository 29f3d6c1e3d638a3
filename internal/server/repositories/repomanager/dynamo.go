package repomanager

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/verifeed/verifeed/internal/server/repositories/identities"
	"github.com/verifeed/verifeed/internal/server/repositories/posts"
	"github.com/verifeed/verifeed/internal/server/repositories/quarantine"
)

// DynamoOptions configures the DynamoDB-backed record store. Empty
// credentials fall back to the SDK's default provider chain; a non-empty
// BaseEndpoint points the client at a local DynamoDB.
type DynamoOptions struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	Tables       Tables
}

type DynamoManager struct {
	identities *identities.DynamoRepository
	quarantine *quarantine.DynamoRepository
	posts      *posts.DynamoRepository
}

func NewDynamoManager(ctx context.Context, opts DynamoOptions) (*DynamoManager, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
	})

	return &DynamoManager{
		identities: identities.NewDynamoRepository(client, opts.Tables.Identities),
		quarantine: quarantine.NewDynamoRepository(client, opts.Tables.Quarantine),
		posts:      posts.NewDynamoRepository(client, opts.Tables.Posts),
	}, nil
}

func (m *DynamoManager) Identities() identities.Repository { return m.identities }
func (m *DynamoManager) Quarantine() quarantine.Repository { return m.quarantine }
func (m *DynamoManager) Posts() posts.Repository           { return m.posts }

// Close is a no-op: the DynamoDB client holds no pooled resources of its own.
func (m *DynamoManager) Close() error { return nil }
