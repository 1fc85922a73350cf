package vault

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// DeviceKeySize is the length of the raw device secret.
const DeviceKeySize = 32

const sealInfo = "petal keychain seal v1"

// Device key errors.
var (
	ErrInvalidDeviceKey = errors.New("invalid device key")
	ErrSealedTooShort   = errors.New("sealed value too short")
	ErrOpenFailed       = errors.New("sealed value could not be opened")
	ErrKeyZeroed        = errors.New("device key has been wiped")
)

// DeviceKey is a secret generated on this device. It is never exported, so
// values sealed with it cannot be opened anywhere else.
type DeviceKey struct {
	mu     sync.RWMutex
	secret []byte
}

// NewDeviceKey wraps an existing secret.
func NewDeviceKey(secret []byte) (*DeviceKey, error) {
	if len(secret) != DeviceKeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidDeviceKey, DeviceKeySize, len(secret))
	}
	return &DeviceKey{secret: append([]byte(nil), secret...)}, nil
}

// GenerateDeviceKey returns a fresh random key.
func GenerateDeviceKey() (*DeviceKey, error) {
	secret := make([]byte, DeviceKeySize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate device key: %w", err)
	}
	return &DeviceKey{secret: secret}, nil
}

// LoadOrCreateDeviceKey reads the device key from the vault, creating the
// vault directory (0700) and key file (0600) on first use.
func LoadOrCreateDeviceKey(vaultPath string) (*DeviceKey, error) {
	path := DeviceKeyPath(vaultPath)

	data, err := os.ReadFile(path)
	if err == nil {
		key, err := NewDeviceKey(data)
		zero(data)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read device key: %w", err)
	}

	if err := os.MkdirAll(vaultPath, 0700); err != nil {
		return nil, fmt.Errorf("failed to create vault directory: %w", err)
	}

	key, err := GenerateDeviceKey()
	if err != nil {
		return nil, err
	}

	// Write to a temp file and hard-link it into place so a concurrent
	// reader never sees a partially written key.
	tmp, err := os.CreateTemp(vaultPath, deviceKeyFile+".*")
	if err != nil {
		return nil, fmt.Errorf("failed to create device key: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(key.secret); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write device key: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to write device key: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return nil, fmt.Errorf("failed to restrict device key: %w", err)
	}
	if err := os.Link(tmp.Name(), path); err != nil {
		if os.IsExist(err) {
			key.Zero()
			return LoadOrCreateDeviceKey(vaultPath)
		}
		return nil, fmt.Errorf("failed to install device key: %w", err)
	}

	if err := os.Chmod(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to restrict vault directory: %w", err)
	}
	return key, nil
}

// Seal encrypts plaintext and binds it to aad. The output is the random nonce
// followed by the ciphertext.
func (k *DeviceKey) Seal(plaintext, aad []byte) ([]byte, error) {
	aead, err := k.aead()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plaintext, aad), nil
}

// Open decrypts a value produced by Seal with the same aad.
func (k *DeviceKey) Open(sealed, aad []byte) ([]byte, error) {
	aead, err := k.aead()
	if err != nil {
		return nil, err
	}
	if len(sealed) < aead.NonceSize()+aead.Overhead() {
		return nil, ErrSealedTooShort
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrOpenFailed
	}
	return plaintext, nil
}

// Clone returns an independent copy of the key. Zeroing either key leaves
// the other intact.
func (k *DeviceKey) Clone() (*DeviceKey, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.secret == nil {
		return nil, ErrKeyZeroed
	}
	return NewDeviceKey(k.secret)
}

// Zero wipes the secret. The key is unusable afterwards.
func (k *DeviceKey) Zero() {
	k.mu.Lock()
	defer k.mu.Unlock()
	zero(k.secret)
	k.secret = nil
}

func (k *DeviceKey) aead() (cipher.AEAD, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.secret == nil {
		return nil, ErrKeyZeroed
	}

	derived := make([]byte, chacha20poly1305.KeySize)
	defer zero(derived)
	if _, err := io.ReadFull(hkdf.New(sha256.New, k.secret, nil, []byte(sealInfo)), derived); err != nil {
		return nil, fmt.Errorf("failed to derive seal key: %w", err)
	}
	return chacha20poly1305.NewX(derived)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
