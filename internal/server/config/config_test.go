package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddrHTTP, ":8000")
	assert.Equal(t, c.RecordStoreBackend, "dynamodb")
	assert.Equal(t, c.SQLitePath, "verifeed.db")
	assert.Equal(t, c.AWSRegion, "us-east-1")
	assert.Equal(t, c.AWSAccessKey, "")
	assert.Equal(t, c.AWSSecretKey, "")
	assert.Equal(t, c.S3BaseEndpoint, "")
	assert.Equal(t, c.DynamoBaseEndpoint, "")
	assert.Equal(t, c.ProfileBucket, "news1-bucket")
	assert.Equal(t, c.PostsBucket, "feedsbuck")
	assert.Equal(t, c.IdentitiesTable, "registrations")
	assert.Equal(t, c.QuarantineTable, "fake_registrations")
	assert.Equal(t, c.PostsTable, "posts")
	assert.Equal(t, c.ClassifierEndpoint, "http://127.0.0.1:8501")
	assert.Equal(t, c.ClassifierModel, "xception")
	assert.Equal(t, c.ClassifierTimeout, 30*time.Second)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddrHTTP, ":8000")
	assert.Equal(t, c.RecordStoreBackend, "dynamodb")
	assert.Equal(t, c.ProfileBucket, "news1-bucket")
	assert.Equal(t, c.PostsBucket, "feedsbuck")
	assert.Equal(t, c.IdentitiesTable, "registrations")
	assert.Equal(t, c.QuarantineTable, "fake_registrations")
	assert.Equal(t, c.PostsTable, "posts")
	assert.Equal(t, c.ClassifierModel, "xception")
	assert.Equal(t, c.ClassifierTimeout, 30*time.Second)
}
