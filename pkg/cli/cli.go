// Package cli provides the command-line interface for uiauto.
package cli

import (
	"fmt"
	"os"

	"github.com/devicelab-dev/uiauto/pkg/config"
	"github.com/devicelab-dev/uiauto/pkg/logger"
	"github.com/devicelab-dev/uiauto/pkg/rpc"
	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "port",
		Usage:   "Forwarded TCP port of the automation server",
		Value:   9008,
		EnvVars: []string{"UIAUTO_PORT"},
	},
	&cli.StringFlag{
		Name:    "socket",
		Usage:   "Unix socket path of the automation server (overrides --port)",
		EnvVars: []string{"UIAUTO_SOCKET"},
	},
	&cli.StringFlag{
		Name:    "config",
		Usage:   "Path to workspace uiauto.yaml",
		EnvVars: []string{"UIAUTO_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "log-file",
		Usage:   "Log file path (defaults to stderr warnings only)",
		EnvVars: []string{"UIAUTO_LOG"},
	},

	// Selector criteria, combinable into one chain root.
	&cli.StringFlag{
		Name:  "text",
		Usage: "Match elements by text",
	},
	&cli.StringFlag{
		Name:  "res",
		Usage: "Match elements by resource id",
	},
	&cli.StringFlag{
		Name:  "clazz",
		Usage: "Match elements by class name",
	},
	&cli.StringFlag{
		Name:  "desc",
		Usage: "Match elements by content description",
	},
	&cli.StringFlag{
		Name:  "pkg",
		Usage: "Match elements by package name",
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "uiauto",
		Usage:   "Drive the on-device UI automation service from the command line",
		Version: Version,
		Description: `uiauto addresses elements declaratively and issues one RPC per
operation against an already-forwarded automation server.

Examples:
  uiauto --text OK exists
  uiauto --res android:id/title text
  uiauto --text OK click --x 5 --y 10
  uiauto --text Loading wait --gone --timeout 5s
  uiauto --res id/list scroll --direction DOWN --until-text Advanced`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			existsCommand,
			textCommand,
			infoCommand,
			clickCommand,
			waitCommand,
			scrollCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads config, wires logging and builds the RPC client shared by all
// commands. The loaded config is returned so commands can pick up defaults
// like waitTimeoutMs.
func setup(c *cli.Context) (*rpc.Client, *config.Config, error) {
	cfg := &config.Config{}
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	logPath := c.String("log-file")
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if logPath != "" {
		if err := logger.Init(logPath); err != nil {
			return nil, nil, err
		}
	}

	socket := c.String("socket")
	if socket == "" {
		socket = cfg.Socket
	}
	if socket != "" {
		client := rpc.NewClient(socket)
		if logPath != "" {
			client.SetLogPath(logPath)
		}
		return client, cfg, nil
	}

	port := c.Int("port")
	if cfg.Port != 0 && !c.IsSet("port") {
		port = cfg.Port
	}
	client := rpc.NewClientTCP(port)
	if logPath != "" {
		client.SetLogPath(logPath)
	}
	return client, cfg, nil
}
