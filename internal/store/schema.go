package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    mode            TEXT NOT NULL,
    arv             REAL,
    rehab           REAL,
    purchase        REAL,
    no_rehab_value  REAL,
    category        TEXT NOT NULL,
    created_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenarios_created ON scenarios(created_at);
CREATE INDEX IF NOT EXISTS idx_scenarios_name ON scenarios(name);
`
