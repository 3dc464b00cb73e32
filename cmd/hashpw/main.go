// hashpw prints the bcrypt hash for a password, for seeding users through
// config.yaml. The password comes from the first argument or, when absent,
// from a stdin prompt.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dugout-server-go/internal/domain/auth"
)

func main() {
	password := ""
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "read password: %v\n", err)
			os.Exit(1)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		fmt.Fprintln(os.Stderr, "usage: hashpw [password] [cost]")
		os.Exit(2)
	}

	cost := auth.DefaultBcryptCost
	if len(os.Args) > 2 {
		parsed, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid cost %q: %v\n", os.Args[2], err)
			os.Exit(2)
		}
		cost = parsed
	}

	hash, err := auth.NewPasswordHasher(cost).Hash(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
