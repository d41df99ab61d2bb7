// Command lexbool classifies its arguments as boolean tokens.
//
// Usage:
//
//	lexbool [-tokens FILE] [-env-prefix PREFIX] TOKEN [TOKEN...]
//
// Each argument is parsed against the configured token sets and printed as
// "true" or "false". Unrecognized tokens are reported on stderr and the
// command exits non-zero.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	lexbool "github.com/museun/lexical-bool"
)

func main() {
	tokensFile := flag.String("tokens", "", "path to a token-set file (TOML, JSON, or YAML)")
	envPrefix := flag.String("env-prefix", "LEXBOOL_", "prefix for TRUTHY_VALUES / FALSEY_VALUES environment variables")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("lexbool: ")

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: lexbool [-tokens FILE] [-env-prefix PREFIX] TOKEN [TOKEN...]")
		os.Exit(2)
	}

	builder := lexbool.NewBuilder().WithEnvPrefix(*envPrefix)
	if *tokensFile != "" {
		builder = builder.WithFile(*tokensFile)
	}

	scope, err := builder.Build()
	if err != nil && !errors.Is(err, lexbool.ErrTokenFileNotFound) {
		log.Fatal(err)
	}

	exitCode := 0
	for _, arg := range flag.Args() {
		b, err := scope.Parse(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitCode = 1
			continue
		}
		fmt.Println(b)
	}
	os.Exit(exitCode)
}
