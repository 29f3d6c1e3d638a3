package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-b", "sqlite", "-f", "feed.db",
			"-g", "eu-west-1", "-u", "key", "-p", "secret",
			"-s", "http://127.0.0.1:9000", "-d", "http://127.0.0.1:8001",
			"-P", "profiles", "-U", "uploads",
			"-e", "http://clf:8501", "-m", "mymodel", "-t", "5",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrHTTP:   "127.0.0.1:9090",
				RecordStoreBackend: "sqlite",
				SQLitePath:         "feed.db",
				AWSRegion:          "eu-west-1",
				AWSAccessKey:       "key",
				AWSSecretKey:       "secret",
				S3BaseEndpoint:     "http://127.0.0.1:9000",
				DynamoBaseEndpoint: "http://127.0.0.1:8001",
				ProfileBucket:      "profiles",
				PostsBucket:        "uploads",
				ClassifierEndpoint: "http://clf:8501",
				ClassifierModel:    "mymodel",
				ClassifierTimeout:  5 * time.Second,
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
