// Package verifymac recomputes a revealed commitment so a player can check the
// computer did not change its number after committing.
package verifymac

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/fairdice/internal/commitment"
	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
)

// ErrMismatch indicates the MAC does not match the key and value.
var ErrMismatch = apperrors.New(apperrors.CodeCommitmentMismatch, "commitment mismatch")

// Config holds the revealed values to check.
type Config struct {
	Key   string
	Value int64
	MAC   string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Key, "key", "", "revealed key in hex (the KEY= value)")
	fs.Int64Var(&cfg.Value, "value", 0, "revealed number")
	fs.StringVar(&cfg.MAC, "mac", "", "commitment shown before the choice (the HMAC= value)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run recomputes the MAC, writes it with the verdict to out and returns
// ErrMismatch when it differs from cfg.MAC.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	key, err := hex.DecodeString(strings.TrimSpace(cfg.Key))
	if err != nil || len(key) == 0 {
		return apperrors.WrapWithMetadata(apperrors.CodeCommitmentInvalidKey, "key must be non-empty hex",
			map[string]string{"Key": cfg.Key}, err)
	}
	mac := strings.TrimSpace(cfg.MAC)
	if mac == "" {
		return errors.New("mac is required")
	}

	computed := commitment.Compute(key, cfg.Value)
	if _, err := fmt.Fprintf(out, "HMAC=%s\n", computed); err != nil {
		return err
	}
	if !commitment.Verify(key, cfg.Value, mac) {
		if _, err := fmt.Fprintln(out, "mismatch"); err != nil {
			return err
		}
		return ErrMismatch
	}
	_, err = fmt.Fprintln(out, "match")
	return err
}
