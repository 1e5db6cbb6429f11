package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-path log file path
//	-c/-config json file path with configs
func ParseFlags() *ClientConfig {
	cfg, _ := parseFlags(os.Args[1:])
	return cfg
}

func parseFlags(args []string) (*ClientConfig, error) {
	var serverAddress string
	var requestTimeout time.Duration
	var logPath string
	var jsonConfigPath string

	fs := flag.NewFlagSet("yoga-client", flag.ContinueOnError)
	fs.StringVar(&serverAddress, "a", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logPath, "log-path", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return &ClientConfig{}, err
	}

	return &ClientConfig{
		Server: ServerConn{
			Address:        serverAddress,
			RequestTimeout: requestTimeout,
		},
		Logs: Logs{
			Path: logPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
