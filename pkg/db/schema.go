package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

-- SEO metadata records. record_id preserves the configured order, which
-- decides the winner when several records match one page.
CREATE TABLE IF NOT EXISTS seo_metadata (
    record_id INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_type TEXT NOT NULL,
    owner_id TEXT,               -- NULL for singleton pages (home, search)
    data TEXT NOT NULL,          -- JSON object, key order preserved
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_seo_metadata_owner ON seo_metadata(owner_type, owner_id);
`
