// Package cli implements the conf command-line front end.
//
// The command tree is built with cobra. Verbs are positional:
//
//	conf get <key>
//	conf set <key> <value>
//	conf help
//
// The server is located through the runtime port file and authenticated
// with the runtime token file, both resolved from [config.CLIConfig].
package cli
