// ABOUTME: SQLite schema for long-term conversation memory
// ABOUTME: One row per remembered message, per session
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Remembered conversation messages
CREATE TABLE IF NOT EXISTS turns (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    role TEXT NOT NULL CHECK (role IN ('user', 'ai')),
    content TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id, created_at);
`
