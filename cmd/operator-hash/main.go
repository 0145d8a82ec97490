// Command operator-hash reads the operator password from stdin and prints
// the bcrypt hash to put into OPERATOR_PASSWORD_HASH.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"venue-desk/internal/pkg/password"
)

func main() {
	cost := flag.Int("cost", password.DefaultCost, "bcrypt cost")
	flag.Parse()

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(os.Stderr, "read password:", err)
		os.Exit(1)
	}

	hash, err := password.HashPasswordWithCost(strings.TrimRight(line, "\r\n"), *cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
