package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrInvalidPort is returned for port file content that is not a decimal
// integer in 1..65535.
var ErrInvalidPort = errors.New("invalid port")

// WritePortFile publishes the server's bound port.
func WritePortFile(path string, port int) error {
	return writeRuntimeFile(path, strconv.Itoa(port)+"\n")
}

// ReadPortFile reads a port written by [WritePortFile]. Surrounding
// whitespace is ignored.
func ReadPortFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("error reading port file: %w", err)
	}

	return ParsePort(string(data))
}

// ParsePort parses s as a TCP port in 1..65535.
func ParsePort(s string) (int, error) {
	s = strings.TrimSpace(s)

	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, s)
	}
	return port, nil
}
