package config

import (
	"flag"
	"os"
	"time"

	"github.com/verifeed/verifeed/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-b string   record store backend, "dynamodb" or "sqlite"
//	-f string   sqlite database file path
//	-g string   AWS region
//	-u string   AWS access key id
//	-p string   AWS secret access key
//	-s string   S3 base endpoint (empty for AWS)
//	-d string   DynamoDB base endpoint (empty for AWS)
//	-P string   profile image bucket
//	-U string   post image bucket
//	-e string   classifier endpoint (TensorFlow Serving base URL)
//	-m string   classifier model name
//	-t int      classifier request timeout, seconds
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The timeout flag is accepted as an integer in seconds and then converted
//     to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-f", "-g", "-u", "-p", "-s", "-d", "-P", "-U", "-e", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.RecordStoreBackend, "b", config.RecordStoreBackend, "record store backend")
	fs.StringVar(&config.SQLitePath, "f", config.SQLitePath, "sqlite database file")
	fs.StringVar(&config.AWSRegion, "g", config.AWSRegion, "AWS region")
	fs.StringVar(&config.AWSAccessKey, "u", config.AWSAccessKey, "AWS access key id")
	fs.StringVar(&config.AWSSecretKey, "p", config.AWSSecretKey, "AWS secret access key")
	fs.StringVar(&config.S3BaseEndpoint, "s", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.DynamoBaseEndpoint, "d", config.DynamoBaseEndpoint, "DynamoDB base endpoint")
	fs.StringVar(&config.ProfileBucket, "P", config.ProfileBucket, "profile image bucket")
	fs.StringVar(&config.PostsBucket, "U", config.PostsBucket, "post image bucket")
	fs.StringVar(&config.ClassifierEndpoint, "e", config.ClassifierEndpoint, "classifier endpoint")
	fs.StringVar(&config.ClassifierModel, "m", config.ClassifierModel, "classifier model name")

	classifierTimeout := fs.Int("t", int(config.ClassifierTimeout.Seconds()), "classifier_timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ClassifierTimeout = time.Duration(*classifierTimeout) * time.Second
}
