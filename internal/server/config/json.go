package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/verifeed/verifeed/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// The classifier timeout is expressed as an integer number of seconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its non-empty fields are copied into the runtime
// Config struct, so a partial file overrides only what it names.
type JsonConfig struct {
	EndpointAddrHTTP   string `json:"endpoint_addr_http"`
	RecordStoreBackend string `json:"record_store_backend"`
	SQLitePath         string `json:"sqlite_path"`
	AWSRegion          string `json:"aws_region"`
	AWSAccessKey       string `json:"aws_access_key"`
	AWSSecretKey       string `json:"aws_secret_key"`
	S3BaseEndpoint     string `json:"s3_base_endpoint"`
	DynamoBaseEndpoint string `json:"dynamo_base_endpoint"`
	ProfileBucket      string `json:"profile_bucket"`
	PostsBucket        string `json:"posts_bucket"`
	IdentitiesTable    string `json:"identities_table"`
	QuarantineTable    string `json:"quarantine_table"`
	PostsTable         string `json:"posts_table"`
	ClassifierEndpoint string `json:"classifier_endpoint"`
	ClassifierModel    string `json:"classifier_model"`
	ClassifierTimeout  int    `json:"classifier_timeout_seconds"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags. If
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	overlay(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	overlay(&config.RecordStoreBackend, c.RecordStoreBackend)
	overlay(&config.SQLitePath, c.SQLitePath)
	overlay(&config.AWSRegion, c.AWSRegion)
	overlay(&config.AWSAccessKey, c.AWSAccessKey)
	overlay(&config.AWSSecretKey, c.AWSSecretKey)
	overlay(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	overlay(&config.DynamoBaseEndpoint, c.DynamoBaseEndpoint)
	overlay(&config.ProfileBucket, c.ProfileBucket)
	overlay(&config.PostsBucket, c.PostsBucket)
	overlay(&config.IdentitiesTable, c.IdentitiesTable)
	overlay(&config.QuarantineTable, c.QuarantineTable)
	overlay(&config.PostsTable, c.PostsTable)
	overlay(&config.ClassifierEndpoint, c.ClassifierEndpoint)
	overlay(&config.ClassifierModel, c.ClassifierModel)
	if c.ClassifierTimeout > 0 {
		config.ClassifierTimeout = time.Duration(c.ClassifierTimeout) * time.Second
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
