package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/server"
	"github.com/dmitrijs2005/pomokeeper/internal/server/auth"
	"github.com/dmitrijs2005/pomokeeper/internal/server/config"
	"golang.org/x/term"
)

var readPassword = term.ReadPassword

func main() {

	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if err := hashPassword(os.Stderr, os.Stdout); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}

// hashPassword prompts for a password without echo and prints its bcrypt
// hash, ready to be used as APP_PASSWORD.
func hashPassword(prompt, out io.Writer) error {
	fmt.Fprint(prompt, "Password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(prompt)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(pw)

	if len(pw) == 0 {
		return fmt.Errorf("empty password")
	}

	hash, err := auth.HashPassword(pw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}
