// genhash prints bcrypt hashes for seeding interviewer password_hash values,
// using the same cost the API signs up with.
//
//	go run ./scripts/genhash.go <password> [password...]
package main

import (
	"fmt"
	"os"

	"interview-tracker/config"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [password...]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	for _, pass := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), cfg.BcryptCost)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		fmt.Println(string(hash))
	}
}
