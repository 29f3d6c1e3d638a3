// Package config handles configuration for the gateway server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the VeriFeed server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - RecordStoreBackend: record store implementation, "dynamodb" or "sqlite".
//   - SQLitePath: database file path for the sqlite backend.
//   - AWSRegion / AWSAccessKey / AWSSecretKey: shared AWS settings; empty
//     credentials fall back to the SDK's default chain.
//   - S3BaseEndpoint / DynamoBaseEndpoint: override endpoints for
//     S3-compatible or DynamoDB-compatible local backends.
//   - ProfileBucket / PostsBucket: object storage bucket names.
//   - IdentitiesTable / QuarantineTable / PostsTable: record store tables.
//   - ClassifierEndpoint / ClassifierModel: TensorFlow Serving location.
//   - ClassifierTimeout: per-prediction request deadline.
type Config struct {
	EndpointAddrHTTP   string
	RecordStoreBackend string
	SQLitePath         string
	AWSRegion          string
	AWSAccessKey       string
	AWSSecretKey       string
	S3BaseEndpoint     string
	DynamoBaseEndpoint string
	ProfileBucket      string
	PostsBucket        string
	IdentitiesTable    string
	QuarantineTable    string
	PostsTable         string
	ClassifierEndpoint string
	ClassifierModel    string
	ClassifierTimeout  time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values target a local stack and should be overridden in prod.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.RecordStoreBackend = "dynamodb"
	c.SQLitePath = "verifeed.db"
	c.AWSRegion = "us-east-1"
	c.AWSAccessKey = ""
	c.AWSSecretKey = ""
	c.S3BaseEndpoint = ""
	c.DynamoBaseEndpoint = ""
	c.ProfileBucket = "news1-bucket"
	c.PostsBucket = "feedsbuck"
	c.IdentitiesTable = "registrations"
	c.QuarantineTable = "fake_registrations"
	c.PostsTable = "posts"
	c.ClassifierEndpoint = "http://127.0.0.1:8501"
	c.ClassifierModel = "xception"
	c.ClassifierTimeout = 30 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
