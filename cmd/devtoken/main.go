// Command devtoken mints a bearer token signed with the configured secret,
// standing in for the identity provider during local development.
package main

import (
	"flag"
	"fmt"
	"os"

	"group-decision/pkg/config"
	"group-decision/pkg/utils"
)

func main() {
	userID := flag.String("user", "", "User id to put in the token subject (required)")
	name := flag.String("name", "", "Display name claim")
	avatar := flag.String("avatar", "", "Avatar claim")
	test := flag.Bool("test", false, "Use config.test.yaml instead of config.yaml")
	flag.Parse()

	load := config.Init
	if *test {
		load = config.InitTest
	}
	if err := load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		flag.Usage()
		os.Exit(2)
	}

	token, err := utils.GenerateToken(*userID, *name, *avatar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
