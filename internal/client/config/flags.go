package config

import (
	"flag"
	"os"
)

func parseFlags(config *Config) {
	fs := flag.NewFlagSet("client", flag.ExitOnError)

	endpoint := fs.String("a", config.ServerEndpointAddr, "server endpoint address")
	fs.Parse(os.Args[1:])

	config.ServerEndpointAddr = *endpoint
}
