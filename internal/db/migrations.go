package db

type migration struct {
	version int
	name    string
	up      string
}

var migrations = []migration{
	{
		version: 1,
		name:    "keychain_items",
		up: `
			CREATE TABLE keychain_items (
				id TEXT PRIMARY KEY,
				item_key TEXT NOT NULL UNIQUE,
				accessibility TEXT NOT NULL,
				synchronizable INTEGER NOT NULL DEFAULT 0,
				sealed_value BLOB NOT NULL,
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL
			);
			CREATE INDEX idx_keychain_items_synchronizable ON keychain_items (synchronizable);
		`,
	},
}
