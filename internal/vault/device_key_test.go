package vault

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLoadOrCreateDeviceKey(t *testing.T) {
	vaultPath := filepath.Join(t.TempDir(), "vault")

	first, err := LoadOrCreateDeviceKey(vaultPath)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	info, err := os.Stat(DeviceKeyPath(vaultPath))
	if err != nil {
		t.Fatalf("stat key: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("key file perm = %o, want 600", perm)
	}
	if info.Size() != DeviceKeySize {
		t.Errorf("key file size = %d, want %d", info.Size(), DeviceKeySize)
	}
	dirInfo, err := os.Stat(vaultPath)
	if err != nil {
		t.Fatalf("stat vault: %v", err)
	}
	if perm := dirInfo.Mode().Perm(); perm != 0700 {
		t.Errorf("vault perm = %o, want 700", perm)
	}

	second, err := LoadOrCreateDeviceKey(vaultPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	sealed, err := first.Seal([]byte("secret"), []byte("aad"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	opened, err := second.Open(sealed, []byte("aad"))
	if err != nil {
		t.Fatalf("reloaded key should open sealed value: %v", err)
	}
	if string(opened) != "secret" {
		t.Errorf("Open = %q, want secret", opened)
	}
}

func TestLoadOrCreateDeviceKeyConcurrent(t *testing.T) {
	vaultPath := filepath.Join(t.TempDir(), "vault")

	const workers = 8
	keys := make([]*DeviceKey, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keys[i], errs[i] = LoadOrCreateDeviceKey(vaultPath)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("worker %d: %v", i, err)
		}
	}

	sealed, err := keys[0].Seal([]byte("x"), nil)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	for i, key := range keys[1:] {
		if _, err := key.Open(sealed, nil); err != nil {
			t.Errorf("worker %d loaded a different key: %v", i+1, err)
		}
	}
}

func TestLoadRejectsCorruptKeyFile(t *testing.T) {
	vaultPath := t.TempDir()
	if err := os.WriteFile(DeviceKeyPath(vaultPath), []byte("short"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadOrCreateDeviceKey(vaultPath); !errors.Is(err, ErrInvalidDeviceKey) {
		t.Errorf("expected ErrInvalidDeviceKey, got %v", err)
	}
}

func TestSealOpen(t *testing.T) {
	key, err := GenerateDeviceKey()
	if err != nil {
		t.Fatalf("GenerateDeviceKey: %v", err)
	}
	plaintext := []byte(`{"token":"abc"}`)
	aad := []byte("auth.session\x00when_unlocked_this_device_only")

	sealed, err := key.Seal(plaintext, aad)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Contains(sealed, plaintext) {
		t.Fatal("sealed output contains plaintext")
	}

	again, err := key.Seal(plaintext, aad)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Equal(sealed, again) {
		t.Error("sealing twice should use different nonces")
	}

	opened, err := key.Open(sealed, aad)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Errorf("Open = %q, want %q", opened, plaintext)
	}
}

func TestOpenFailures(t *testing.T) {
	key, _ := GenerateDeviceKey()
	otherDevice, _ := GenerateDeviceKey()

	sealed, err := key.Seal([]byte("value"), []byte("a"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	tampered := append([]byte(nil), sealed...)
	tampered[len(tampered)-1] ^= 0xFF

	tests := []struct {
		name   string
		key    *DeviceKey
		sealed []byte
		aad    []byte
		want   error
	}{
		{"other device", otherDevice, sealed, []byte("a"), ErrOpenFailed},
		{"wrong aad", key, sealed, []byte("b"), ErrOpenFailed},
		{"tampered", key, tampered, []byte("a"), ErrOpenFailed},
		{"too short", key, sealed[:8], []byte("a"), ErrSealedTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.key.Open(tt.sealed, tt.aad); !errors.Is(err, tt.want) {
				t.Errorf("Open error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestZero(t *testing.T) {
	key, _ := GenerateDeviceKey()
	key.Zero()

	if _, err := key.Seal([]byte("x"), nil); !errors.Is(err, ErrKeyZeroed) {
		t.Errorf("Seal after Zero = %v, want ErrKeyZeroed", err)
	}
	if _, err := key.Open(make([]byte, 64), nil); !errors.Is(err, ErrKeyZeroed) {
		t.Errorf("Open after Zero = %v, want ErrKeyZeroed", err)
	}
}

func TestNewDeviceKeyCopiesSecret(t *testing.T) {
	secret := bytes.Repeat([]byte{7}, DeviceKeySize)
	key, err := NewDeviceKey(secret)
	if err != nil {
		t.Fatalf("NewDeviceKey: %v", err)
	}
	sealed, _ := key.Seal([]byte("v"), nil)

	secret[0] = 0
	if _, err := key.Open(sealed, nil); err != nil {
		t.Errorf("key should not alias caller secret: %v", err)
	}
}

func TestDefaultPaths(t *testing.T) {
	if path := DefaultVaultPath(); !filepath.IsAbs(path) || !strings.HasSuffix(path, filepath.Join(".config", "petal", "vault")) {
		t.Errorf("DefaultVaultPath = %q", path)
	}
	if path := DefaultKeychainPath(); !strings.HasSuffix(path, filepath.Join(".config", "petal", "keychain.db")) {
		t.Errorf("DefaultKeychainPath = %q", path)
	}
	if got := DeviceKeyPath("/v"); got != filepath.Join("/v", "device.key") {
		t.Errorf("DeviceKeyPath = %q", got)
	}
}
