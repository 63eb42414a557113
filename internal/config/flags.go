package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
	set  bool
}

// ParseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d storage DSN
//	-prefix key prefix, "/"-separated
//	-max-read-keys keys per bulk read
//	-api-prefix HTTP path prefix
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-token access token
//	-token-file token file relative to XDG_RUNTIME_DIR
//	-port-file port file relative to XDG_RUNTIME_DIR
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var dsn, prefix, apiPrefix string
	var maxReadKeys int
	var requestTimeout time.Duration
	var token, tokenFile, portFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("conf-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&dsn, "d", "", "Storage DSN")
	fs.StringVar(&prefix, "prefix", "", "Key prefix, segments separated by /")
	fs.IntVar(&maxReadKeys, "max-read-keys", 0, "Keys per bulk read")
	fs.StringVar(&apiPrefix, "api-prefix", "", "HTTP path prefix")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&token, "token", "", "Access token")
	fs.StringVar(&tokenFile, "token-file", "", "Token file relative to XDG_RUNTIME_DIR")
	fs.StringVar(&portFile, "port-file", "", "Port file relative to XDG_RUNTIME_DIR")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Token:     token,
			TokenFile: tokenFile,
			PortFile:  portFile,
		},
		Storage: Storage{
			DSN:         dsn,
			Prefix:      splitPrefix(prefix),
			MaxReadKeys: maxReadKeys,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			APIPrefix:      apiPrefix,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, nil
}

func splitPrefix(s string) []string {
	s = strings.Trim(s, "/")
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}

// String returns a canonical host:port string, or "" if the flag was not set.
func (a *NetAddress) String() string {
	if !a.set {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be an IP address or "localhost";
// port 0 asks the system for a free port.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 0 || port > 65535 {
		return errors.New("port number must be in range 0..65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	a.set = true
	return nil
}
