package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ahmedw/folio/adapters/hasher"
)

var (
	hashSalt       string
	hashIterations int
)

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Derive the admin password digest",
	Long: `Derive the admin password digest to put in the configuration.

The digest is deterministic for a given password and salt, so the same
salt must be configured on the server (auth.password_salt). The password
is read from stdin and never stored.

Examples:
  folio hash --salt "my-long-random-salt"
  FOLIO_PASSWORD_SALT=... folio hash`,
	RunE: runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().StringVar(&hashSalt, "salt", "", "password salt (defaults to FOLIO_PASSWORD_SALT)")
	hashCmd.Flags().IntVar(&hashIterations, "iterations", hasher.DefaultIterations, "PBKDF2 iteration count")
}

func runHash(cmd *cobra.Command, args []string) error {
	salt := hashSalt
	if salt == "" {
		salt = os.Getenv("FOLIO_PASSWORD_SALT")
	}
	if salt == "" {
		return fmt.Errorf("a salt is required: pass --salt or set FOLIO_PASSWORD_SALT")
	}

	password, err := readPassword()
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	h, err := hasher.NewPBKDF2(salt, hashIterations)
	if err != nil {
		return err
	}
	digest, err := h.Hash(password)
	if err != nil {
		return err
	}

	fmt.Println(digest)
	return nil
}

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// Piped input
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
