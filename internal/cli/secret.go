package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/petal/internal/db"
	"github.com/opencode-ai/petal/internal/keychain"
	"github.com/opencode-ai/petal/internal/vault"
)

var (
	secretGetDefault string
	secretGetRaw     bool
	secretSetJSON    bool
)

func init() {
	rootCmd.AddCommand(secretCmd)
	secretCmd.AddCommand(secretGetCmd)
	secretCmd.AddCommand(secretSetCmd)
	secretCmd.AddCommand(secretRmCmd)
	secretCmd.AddCommand(secretListCmd)

	secretGetCmd.Flags().StringVar(&secretGetDefault, "default", "", "value printed when the key is missing or unreadable")
	secretGetCmd.Flags().BoolVar(&secretGetRaw, "raw", false, "print the stored JSON instead of a string value")
	secretSetCmd.Flags().BoolVar(&secretSetJSON, "json", false, "store VALUE as raw JSON instead of a string")
}

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage values in the device keystore",
	Long:  "Values are sealed with this device's key and are only readable on this device.",
}

var secretGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a stored value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openKeychain(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		out := cmd.OutOrStdout()
		if secretGetRaw {
			fallback := json.RawMessage("null")
			if secretGetDefault != "" {
				fallback = json.RawMessage(secretGetDefault)
			}
			value := keychain.NewStored(args[0], fallback).Get()
			fmt.Fprintln(out, string(value))
			return nil
		}

		fmt.Fprintln(out, keychain.NewStored(args[0], secretGetDefault).Get())
		return nil
	},
}

var secretSetCmd = &cobra.Command{
	Use:   "set KEY [VALUE]",
	Short: "Store a value",
	Long:  "Store a value. Without VALUE it is prompted for on a terminal, or read from stdin.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := readSecretValue(cmd.InOrStdin(), cmd.ErrOrStderr(), args[1:])
		if err != nil {
			return err
		}

		store, err := openKeychain(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		key := args[0]
		var want []byte
		if secretSetJSON {
			if !json.Valid([]byte(value)) {
				return fmt.Errorf("value is not valid JSON")
			}
			raw := json.RawMessage(value)
			keychain.NewStored(key, json.RawMessage("null")).Set(raw)
			want = raw
		} else {
			keychain.NewStored(key, "").Set(value)
			want, _ = json.Marshal(value)
		}

		// Stored swallows write failures; confirm the value landed.
		got, err := store.repo.Get(cmd.Context(), key, keychain.AccessibleWhenUnlockedThisDeviceOnly)
		if err != nil {
			return fmt.Errorf("failed to store %s: %w", key, err)
		}
		if !jsonEqual(got, want) {
			return fmt.Errorf("failed to store %s", key)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "stored %s\n", key)
		return nil
	},
}

var secretRmCmd = &cobra.Command{
	Use:   "rm KEY",
	Short: "Delete a stored value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openKeychain(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.repo.Delete(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, keychain.ErrItemNotFound) {
				return fmt.Errorf("no value stored under %s", args[0])
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
		return nil
	},
}

var secretListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openKeychain(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		items, err := store.repo.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No stored values.")
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, []string{
				item.Key,
				item.Accessibility.String(),
				formatYesNo(item.Synchronizable),
				item.UpdatedAt.Local().Format(time.RFC3339),
			})
		}
		return writeTable(cmd.OutOrStdout(), []string{"KEY", "ACCESSIBILITY", "SYNC", "UPDATED"}, rows)
	},
}

type keychainHandle struct {
	database *db.DB
	repo     *db.KeychainRepository
	previous keychain.Backend
}

// Close locks the repository, restores the process-wide backend that was
// installed before openKeychain and closes the database.
func (h *keychainHandle) Close() error {
	h.repo.Lock()
	keychain.SetStandard(h.previous)
	return h.database.Close()
}

// openKeychain opens the configured keystore, unlocks it with the device key
// and installs it as the process-wide keychain backend.
func openKeychain(ctx context.Context) (*keychainHandle, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := GetConfig()
	if cfg == nil {
		return nil, errors.New("configuration not loaded")
	}

	database, err := db.Open(cfg.Keychain.Path)
	if err != nil {
		return nil, err
	}
	if _, err := database.MigrateUp(ctx); err != nil {
		database.Close()
		return nil, err
	}

	key, err := vault.LoadOrCreateDeviceKey(cfg.Vault.Path)
	if err != nil {
		database.Close()
		return nil, err
	}

	repo := db.NewKeychainRepository(database)
	err = repo.Unlock(key)
	key.Zero()
	if err != nil {
		database.Close()
		return nil, err
	}

	previous := keychain.Standard()
	keychain.SetStandard(repo)

	return &keychainHandle{database: database, repo: repo, previous: previous}, nil
}

// readSecretValue takes the value from args, a hidden prompt on a terminal,
// or the first line of in.
func readSecretValue(in io.Reader, prompt io.Writer, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if f, ok := in.(*os.File); ok && IsInteractive() && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Value: ")
		data, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read value: %w", err)
		}
		return string(data), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read value: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" && errors.Is(err, io.EOF) {
		return "", errors.New("no value provided")
	}
	return line, nil
}

func jsonEqual(a, b []byte) bool {
	var va, vb any
	if json.Unmarshal(a, &va) != nil || json.Unmarshal(b, &vb) != nil {
		return false
	}
	ja, _ := json.Marshal(va)
	jb, _ := json.Marshal(vb)
	return string(ja) == string(jb)
}
