package mysql

const createKVSQL = `
CREATE TABLE IF NOT EXISTS kv (
  k          VARCHAR(191) NOT NULL PRIMARY KEY,
  v          JSON         NOT NULL,
  expires_at DATETIME(3)  NULL,
  updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  KEY kv_expires_at (expires_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

const upsertKVSQL = `
INSERT INTO kv (k, v, expires_at)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
  v          = VALUES(v),
  expires_at = VALUES(expires_at)
`

// Expired rows are treated as absent; purgeExpiredSQL removes them lazily.
const getKVSQL = `
SELECT v FROM kv
WHERE k = ? AND (expires_at IS NULL OR expires_at > ?)
`

const deleteKVSQL = `DELETE FROM kv WHERE k = ?`

const purgeExpiredSQL = `DELETE FROM kv WHERE expires_at IS NOT NULL AND expires_at <= ?`
