package catalogRepo

import (
	"context"
	"fmt"

	"file-catalog/internal/model/catalogInfo"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is satisfied by *pgxpool.Pool and *pgx.Conn.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS catalog_items (
	id               TEXT PRIMARY KEY,
	position         BIGSERIAL,
	name             TEXT NOT NULL,
	last_updated     TEXT NOT NULL,
	visibility       TEXT NOT NULL,
	subscribed       BOOLEAN NOT NULL DEFAULT FALSE,
	last_downloaded  TEXT,
	current_version  TEXT NOT NULL,
	distribution_url TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS catalog_versions (
	item_id     TEXT NOT NULL REFERENCES catalog_items(id) ON DELETE CASCADE,
	id          TEXT NOT NULL,
	position    INT NOT NULL,
	filename    TEXT NOT NULL,
	upload_date TEXT NOT NULL,
	file_size   TEXT NOT NULL,
	is_current  BOOLEAN NOT NULL,
	PRIMARY KEY (item_id, id)
);
CREATE TABLE IF NOT EXISTS catalog_item_users (
	item_id  TEXT NOT NULL REFERENCES catalog_items(id) ON DELETE CASCADE,
	user_id  TEXT NOT NULL,
	position INT NOT NULL,
	PRIMARY KEY (item_id, user_id)
);`

// CatalogRepository persists catalog items so the store survives restarts.
type CatalogRepository struct {
	db DB
}

func New(db DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate catalog schema: %w", err)
	}
	return nil
}

// LoadItems returns all items in insertion order.
func (r *CatalogRepository) LoadItems(ctx context.Context) ([]catalogInfo.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, last_updated, visibility, subscribed, last_downloaded, current_version, distribution_url
		 FROM catalog_items ORDER BY position`)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalogInfo.Item, error) {
		var it catalogInfo.Item
		var lastDownloaded *string
		err := row.Scan(&it.ID, &it.Name, &it.LastUpdated, &it.Visibility, &it.Subscribed,
			&lastDownloaded, &it.CurrentVersion, &it.DistributionURL)
		if lastDownloaded != nil {
			d := catalogInfo.Date(*lastDownloaded)
			it.LastDownloaded = &d
		}
		it.RestrictedTo = []string{}
		it.Versions = []catalogInfo.Version{}
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	index := make(map[string]int, len(items))
	for i, it := range items {
		index[it.ID] = i
	}

	rows, err = r.db.Query(ctx,
		`SELECT item_id, id, filename, upload_date, file_size, is_current
		 FROM catalog_versions ORDER BY item_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var itemID string
		var v catalogInfo.Version
		if err := rows.Scan(&itemID, &v.ID, &v.Filename, &v.UploadDate, &v.FileSize, &v.IsCurrent); err != nil {
			return nil, err
		}
		if i, ok := index[itemID]; ok {
			items[i].Versions = append(items[i].Versions, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load versions: %w", err)
	}

	rows, err = r.db.Query(ctx,
		`SELECT item_id, user_id FROM catalog_item_users ORDER BY item_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var itemID, userID string
		if err := rows.Scan(&itemID, &userID); err != nil {
			return nil, err
		}
		if i, ok := index[itemID]; ok {
			items[i].RestrictedTo = append(items[i].RestrictedTo, userID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load restricted users: %w", err)
	}
	return items, nil
}

// SaveItem upserts an item and replaces its versions and user list.
func (r *CatalogRepository) SaveItem(ctx context.Context, it catalogInfo.Item) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var lastDownloaded *string
	if it.LastDownloaded != nil {
		s := string(*it.LastDownloaded)
		lastDownloaded = &s
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO catalog_items (id, name, last_updated, visibility, subscribed, last_downloaded, current_version, distribution_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name,
		   last_updated = EXCLUDED.last_updated,
		   visibility = EXCLUDED.visibility,
		   subscribed = EXCLUDED.subscribed,
		   last_downloaded = EXCLUDED.last_downloaded,
		   current_version = EXCLUDED.current_version,
		   distribution_url = EXCLUDED.distribution_url`,
		it.ID, it.Name, string(it.LastUpdated), string(it.Visibility), it.Subscribed,
		lastDownloaded, it.CurrentVersion, it.DistributionURL)
	if err != nil {
		return fmt.Errorf("upsert item %s: %w", it.ID, err)
	}

	if _, err = tx.Exec(ctx, "DELETE FROM catalog_versions WHERE item_id = $1", it.ID); err != nil {
		return err
	}
	for pos, v := range it.Versions {
		_, err = tx.Exec(ctx,
			`INSERT INTO catalog_versions (item_id, id, position, filename, upload_date, file_size, is_current)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.ID, v.ID, pos, v.Filename, string(v.UploadDate), v.FileSize, v.IsCurrent)
		if err != nil {
			return fmt.Errorf("insert version %s: %w", v.ID, err)
		}
	}

	if _, err = tx.Exec(ctx, "DELETE FROM catalog_item_users WHERE item_id = $1", it.ID); err != nil {
		return err
	}
	for pos, userID := range it.RestrictedTo {
		_, err = tx.Exec(ctx,
			`INSERT INTO catalog_item_users (item_id, user_id, position) VALUES ($1, $2, $3)`,
			it.ID, userID, pos)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *CatalogRepository) DeleteItem(ctx context.Context, itemID string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM catalog_items WHERE id = $1", itemID)
	return err
}
