package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/opencode-ai/petal/internal/keychain"
	"github.com/opencode-ai/petal/internal/vault"
)

// KeychainItem describes a stored item without its value.
type KeychainItem struct {
	ID             string
	Key            string
	Accessibility  keychain.Accessibility
	Synchronizable bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// KeychainRepository is a SQLite keystore. Values are sealed with the device
// key and bound to their key and accessibility, so a copied database is
// unreadable on another device and rows cannot be swapped. The repository
// starts locked; Unlock supplies the device key.
type KeychainRepository struct {
	db *DB

	mu  sync.RWMutex
	key *vault.DeviceKey
}

// NewKeychainRepository creates a locked KeychainRepository.
func NewKeychainRepository(db *DB) *KeychainRepository {
	return &KeychainRepository{db: db}
}

// Unlock makes items readable and writable with key. The repository keeps its
// own copy of key, so the caller's key is unaffected by a later Lock.
func (r *KeychainRepository) Unlock(key *vault.DeviceKey) error {
	own, err := key.Clone()
	if err != nil {
		return fmt.Errorf("failed to unlock keychain: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.key != nil {
		r.key.Zero()
	}
	r.key = own
	return nil
}

// Lock wipes the repository's copy of the device key. Reads and writes fail with
// keychain.ErrLocked until the next Unlock.
func (r *KeychainRepository) Lock() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.key != nil {
		r.key.Zero()
		r.key = nil
	}
}

// IsLocked reports whether the repository has no device key.
func (r *KeychainRepository) IsLocked() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.key == nil
}

// Get returns the value stored under key. Items stored with a different
// accessibility are not found.
func (r *KeychainRepository) Get(ctx context.Context, key string, access keychain.Accessibility) ([]byte, error) {
	if err := keychain.CheckRequest(key, access); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.key == nil {
		return nil, keychain.ErrLocked
	}

	var sealed []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT sealed_value FROM keychain_items
		WHERE item_key = ? AND accessibility = ?
	`, key, string(access)).Scan(&sealed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, keychain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to read keychain item: %w", err)
	}

	data, err := r.key.Open(sealed, itemAAD(key, access))
	if err != nil {
		return nil, fmt.Errorf("failed to open keychain item %q: %w", key, err)
	}
	return data, nil
}

// Put stores data under key, replacing any existing item.
func (r *KeychainRepository) Put(ctx context.Context, data []byte, key string, access keychain.Accessibility) error {
	if err := keychain.CheckRequest(key, access); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.key == nil {
		return keychain.ErrLocked
	}

	sealed, err := r.key.Seal(data, itemAAD(key, access))
	if err != nil {
		return fmt.Errorf("failed to seal keychain item: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO keychain_items (
			id, item_key, accessibility, synchronizable, sealed_value, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(item_key) DO UPDATE SET
			accessibility = excluded.accessibility,
			synchronizable = excluded.synchronizable,
			sealed_value = excluded.sealed_value,
			updated_at = excluded.updated_at
	`,
		uuid.New().String(),
		key,
		string(access),
		boolToInt(access.Synchronizable()),
		sealed,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to write keychain item: %w", err)
	}
	return nil
}

// Delete removes the item under key.
func (r *KeychainRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return keychain.ErrInvalidKey
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM keychain_items WHERE item_key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete keychain item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete keychain item: %w", err)
	}
	if affected == 0 {
		return keychain.ErrItemNotFound
	}
	return nil
}

// List returns metadata for every item, ordered by key. It works while locked.
func (r *KeychainRepository) List(ctx context.Context) ([]*KeychainItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, item_key, accessibility, synchronizable, created_at, updated_at
		FROM keychain_items
		ORDER BY item_key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query keychain items: %w", err)
	}
	defer rows.Close()

	var items []*KeychainItem
	for rows.Next() {
		item, err := scanKeychainItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating keychain items: %w", err)
	}
	return items, nil
}

// SyncableKeys returns the keys a sync mechanism would be allowed to copy.
func (r *KeychainRepository) SyncableKeys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT item_key FROM keychain_items WHERE synchronizable = 1 ORDER BY item_key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query syncable items: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan syncable item: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating syncable items: %w", err)
	}
	return keys, nil
}

// Data implements keychain.Backend.
func (r *KeychainRepository) Data(key string, access keychain.Accessibility) ([]byte, error) {
	return r.Get(context.Background(), key, access)
}

// SetData implements keychain.Backend.
func (r *KeychainRepository) SetData(data []byte, key string, access keychain.Accessibility) error {
	return r.Put(context.Background(), data, key, access)
}

func scanKeychainItem(rows *sql.Rows) (*KeychainItem, error) {
	var (
		item           KeychainItem
		access         string
		synchronizable int
		createdAt      string
		updatedAt      string
	)
	if err := rows.Scan(&item.ID, &item.Key, &access, &synchronizable, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan keychain item: %w", err)
	}

	item.Accessibility = keychain.Accessibility(access)
	item.Synchronizable = synchronizable != 0

	var err error
	if item.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if item.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return &item, nil
}

// itemAAD binds a sealed value to its key and accessibility.
func itemAAD(key string, access keychain.Accessibility) []byte {
	return []byte(key + "\x00" + string(access))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ keychain.Backend = (*KeychainRepository)(nil)
