package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/MKhiriev/conf-keeper/internal/adapter"
	"github.com/MKhiriev/conf-keeper/internal/config"
	"github.com/MKhiriev/conf-keeper/internal/logger"
	"github.com/MKhiriev/conf-keeper/internal/utils"
)

// Frontend runs one CLI invocation against a conf server.
type Frontend struct {
	cfg config.CLIConfig
	out io.Writer

	logger *logger.Logger
}

func NewFrontend(cfg config.CLIConfig, out io.Writer, logger *logger.Logger) *Frontend {
	return &Frontend{cfg: cfg, out: out, logger: logger}
}

// Run executes args (without the program name). Results and help go to the
// Frontend's writer; failures are returned, never printed.
func (f *Frontend) Run(ctx context.Context, args []string) error {
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}

	root := f.rootCommand()
	root.SetArgs(args)
	root.SetOut(f.out)
	root.SetErr(f.out)

	return root.ExecuteContext(ctx)
}

// client builds an API client from the port file. The token is read later,
// once per request.
func (f *Frontend) client() (adapter.ConfAdapter, error) {
	if f.cfg.RuntimeDir == "" {
		return nil, &BadInputError{Reason: "runtime directory is not set (XDG_RUNTIME_DIR)"}
	}

	port, err := utils.ReadPortFile(f.cfg.PortPath())
	if err != nil {
		return nil, &BadInputError{Reason: "cannot determine server port", Err: err}
	}

	host := f.cfg.Host
	if host == "" {
		host = config.DefaultHost
	}
	baseURL := "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + f.cfg.APIPrefix
	f.logger.Debug().Str("base_url", baseURL).Msg("conf client created")

	return adapter.NewConfClient(baseURL, f.readToken, f.logger), nil
}

func (f *Frontend) readToken(context.Context) (string, error) {
	token, err := utils.ReadTokenFile(f.cfg.TokenPath())
	if err != nil {
		return "", &BadInputError{Reason: "cannot read access token", Err: err}
	}
	return token, nil
}

func (f *Frontend) print(payload map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}
