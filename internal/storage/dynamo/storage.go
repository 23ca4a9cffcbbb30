package dynamo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/repository"
)

// Client is the subset of the DynamoDB API the storage relies on.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Options configures the connection. Endpoint is only set for local DynamoDB.
type Options struct {
	Table    string
	Region   string
	Endpoint string
}

const (
	defaultRegion      = "us-east-1"
	healthCheckTimeout = 2 * time.Second
	// DynamoDB rejects transactions with more actions than this.
	maxTransactItems = 100
)

var errReadOnly = errors.New("dynamo: write in read-only transaction")

type document struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// Storage keeps one item per document key in a DynamoDB table.
type Storage struct {
	client Client
	table  string
	logger *slog.Logger
	now    func() time.Time
}

var _ repository.DocumentStore = (*Storage)(nil)

var loadConfig = func(ctx context.Context, opts Options) (aws.Config, error) {
	region := opts.Region
	if region == "" {
		region = defaultRegion
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if opts.Endpoint != "" {
		// Local DynamoDB ignores credentials but the SDK still signs requests.
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

// New connects to DynamoDB and verifies the table is reachable.
func New(ctx context.Context, opts Options, logger *slog.Logger) (*Storage, error) {
	if opts.Table == "" {
		return nil, errors.New("dynamo: table name is required")
	}
	cfg, err := loadConfig(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	storage := NewWithClient(client, opts.Table, logger)
	if err := storage.HealthCheck(ctx); err != nil {
		return nil, err
	}
	return storage, nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client Client, table string, logger *slog.Logger) *Storage {
	return &Storage{client: client, table: table, logger: logger, now: time.Now}
}

// View runs fn with strongly consistent reads and no writes.
func (s *Storage) View(ctx context.Context, fn func(repository.DocumentTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(&documentTx{storage: s, readOnly: true})
}

// Update stages every write made by fn and commits them in one
// TransactWriteItems call once fn returns without error.
func (s *Storage) Update(ctx context.Context, fn func(repository.DocumentTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &documentTx{storage: s, staged: map[string]*[]byte{}}
	if err := fn(tx); err != nil {
		return err
	}
	return s.commit(ctx, tx)
}

func (s *Storage) commit(ctx context.Context, tx *documentTx) error {
	if len(tx.order) == 0 {
		return nil
	}
	if len(tx.order) > maxTransactItems {
		return fmt.Errorf("dynamo: %d writes exceed transaction limit", len(tx.order))
	}

	stamp := s.now().UTC().Format(time.RFC3339Nano)
	items := make([]types.TransactWriteItem, 0, len(tx.order))
	for _, key := range tx.order {
		value := tx.staged[key]
		if value == nil {
			items = append(items, types.TransactWriteItem{Delete: &types.Delete{
				TableName: aws.String(s.table),
				Key:       keyOf(key),
			}})
			continue
		}
		av, err := attributevalue.MarshalMap(document{Key: key, Value: string(*value), UpdatedAt: stamp})
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName: aws.String(s.table),
			Item:      av,
		}})
	}

	if _, err := s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return fmt.Errorf("commit documents: %w", err)
	}
	s.logger.Debug("documents committed", slog.Int("items", len(items)))
	return nil
}

func keyOf(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"key": &types.AttributeValueMemberS{Value: key}}
}

func (s *Storage) get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            keyOf(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if len(out.Item) == 0 {
		return nil, domainErrors.ErrNotFound
	}

	var doc document
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return []byte(doc.Value), nil
}

// HealthCheck describes the table.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	if _, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.table)}); err != nil {
		return fmt.Errorf("describe table %s: %w", s.table, err)
	}
	return nil
}

// Close is a no-op; the SDK client holds no long-lived connections of its own.
func (s *Storage) Close() {}

type documentTx struct {
	storage  *Storage
	readOnly bool
	// nil value marks a staged delete.
	staged map[string]*[]byte
	order  []string
}

func (t *documentTx) Read(ctx context.Context, key string) ([]byte, error) {
	if value, ok := t.staged[key]; ok {
		if value == nil {
			return nil, domainErrors.ErrNotFound
		}
		return append([]byte(nil), (*value)...), nil
	}
	return t.storage.get(ctx, key)
}

func (t *documentTx) Write(_ context.Context, key string, value []byte) error {
	if t.readOnly {
		return errReadOnly
	}
	copied := append([]byte(nil), value...)
	t.stage(key, &copied)
	return nil
}

func (t *documentTx) Delete(_ context.Context, key string) error {
	if t.readOnly {
		return errReadOnly
	}
	t.stage(key, nil)
	return nil
}

func (t *documentTx) stage(key string, value *[]byte) {
	if _, ok := t.staged[key]; !ok {
		t.order = append(t.order, key)
	}
	t.staged[key] = value
}
