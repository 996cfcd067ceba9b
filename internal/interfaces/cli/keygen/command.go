// Package keygen writes a fresh RS256 signing key.
package keygen

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/warden-inc/warden/internal/infrastructure/auth"
)

var (
	output string
	bits   int
	force  bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA private key for signing tokens",
		Long:  `Generate a PKCS#8 PEM encoded RSA private key. Point auth.jwt.private_key at the written file.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&output, "output", "o", "jwt_private.pem", "File to write the key to; \"-\" writes to stdout")
	cmd.Flags().IntVarP(&bits, "bits", "b", 2048, "RSA key size in bits")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	return writeKey(cmd, output, bits, force)
}

func writeKey(cmd *cobra.Command, path string, size int, overwrite bool) error {
	key, err := auth.GenerateRSAKey(size)
	if err != nil {
		return err
	}
	encoded, err := auth.EncodePrivateKeyPEM(key)
	if err != nil {
		return err
	}

	if path == "-" {
		_, err := cmd.OutOrStdout().Write(encoded)
		return err
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(encoded); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d-bit key to %s\n", size, path)
	return nil
}
