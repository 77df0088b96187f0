// Command bcrypt-hash creates and checks bcrypt password hashes.
//
// Usage:
//
//	bcrypt-hash [-config file] [-rounds n] [-prefix p] [-v] hash
//	bcrypt-hash [-config file] [-v] check <hash>
//
// The password is read from standard input: without echo when stdin is a
// terminal, otherwise the first line. Settings come from -config and the
// BCRYPT_* environment variables.
//
// check exits 0 when the password matches, 1 when it does not and 2 on
// any error.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/hasbyte1/go-bcrypt/config"
	"github.com/hasbyte1/go-bcrypt/hashing"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitError    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bcrypt-hash", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath string
		rounds     int
		prefix     string
		verbose    bool
	)
	fs.StringVar(&configPath, "config", "", "path to a config file (yaml, json or toml)")
	fs.IntVar(&rounds, "rounds", 0, "cost factor for hash, overriding bcrypt_log_rounds")
	fs.StringVar(&prefix, "prefix", "", "version prefix for hash, overriding bcrypt_hash_prefix")
	fs.BoolVar(&verbose, "v", false, "log debug output to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: bcrypt-hash [flags] hash")
		fmt.Fprintln(stderr, "       bcrypt-hash [flags] check <hash>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	src, err := loadConfig(configPath)
	if err != nil {
		logger.Error("load config failed", "path", configPath, "err", err)
		return exitError
	}
	h := hashing.New(src.Hashing(), hashing.WithLogger(logger))

	switch fs.Arg(0) {
	case "hash":
		if fs.NArg() != 1 {
			fs.Usage()
			return exitError
		}
		var opts []hashing.GenerateOption
		if rounds != 0 {
			opts = append(opts, hashing.WithRounds(rounds))
		}
		if prefix != "" {
			opts = append(opts, hashing.WithPrefix(prefix))
		}
		return runHash(h, opts, stdin, stdout, stderr, logger)
	case "check":
		if fs.NArg() != 2 {
			fs.Usage()
			return exitError
		}
		return runCheck(h, fs.Arg(1), stdin, stdout, stderr, logger)
	default:
		fs.Usage()
		return exitError
	}
}

func loadConfig(path string) (*config.Viper, error) {
	if path == "" {
		return config.New(), nil
	}
	return config.Load(path)
}

func runHash(h *hashing.Hasher, opts []hashing.GenerateOption, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) int {
	password, err := readPassword(stdin, stderr)
	if err != nil {
		logger.Error("read password failed", "err", err)
		return exitError
	}

	hash, err := h.GenerateBytes(password, opts...)
	if err != nil {
		logger.Error("hash failed", "err", err)
		return exitError
	}
	logger.Debug("password hashed", "hash_prefix", hash[:7])

	fmt.Fprintln(stdout, hash)
	return exitOK
}

func runCheck(h *hashing.Hasher, hash string, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) int {
	password, err := readPassword(stdin, stderr)
	if err != nil {
		logger.Error("read password failed", "err", err)
		return exitError
	}

	ok, err := h.VerifyBytes([]byte(hash), password)
	if err != nil {
		logger.Error("check failed", "err", err)
		return exitError
	}
	if !ok {
		fmt.Fprintln(stdout, "mismatch")
		return exitMismatch
	}
	fmt.Fprintln(stdout, "ok")
	return exitOK
}

// readPassword prompts without echo when stdin is a terminal and otherwise
// reads a single line, without its line terminator.
func readPassword(stdin io.Reader, prompt io.Writer) ([]byte, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		defer fmt.Fprintln(prompt)
		return term.ReadPassword(int(f.Fd()))
	}

	line, err := bufio.NewReader(stdin).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return bytes.TrimRight(line, "\r\n"), nil
}
