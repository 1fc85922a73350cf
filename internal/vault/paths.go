// Package vault manages the device-bound key that seals keystore items.
package vault

import (
	"os"
	"path/filepath"
)

const deviceKeyFile = "device.key"

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// ConfigDir returns the petal configuration directory.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "petal")
}

// DefaultVaultPath returns the default vault directory path.
func DefaultVaultPath() string {
	return filepath.Join(ConfigDir(), "vault")
}

// DefaultKeychainPath returns the default keystore database path.
func DefaultKeychainPath() string {
	return filepath.Join(ConfigDir(), "keychain.db")
}

// DeviceKeyPath returns the device key location within a vault.
func DeviceKeyPath(vaultPath string) string {
	return filepath.Join(vaultPath, deviceKeyFile)
}
