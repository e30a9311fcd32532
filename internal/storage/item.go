package storage

import (
	"time"

	"github.com/google/uuid"

	"slidebuilder/internal/domain"
)

const itemColumns = `id, page_id, item_type, pos_left, pos_top, width, height, is_locked, created_at, updated_at`

// ItemStore implements domain.ItemStore using SQLite.
type ItemStore struct {
	db *DB
}

func NewItemStore(db *DB) *ItemStore {
	return &ItemStore{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner, it *domain.Item) error {
	return row.Scan(&it.ID, &it.PageID, &it.ItemType, &it.Left, &it.Top, &it.Width, &it.Height, &it.IsLocked, &it.CreatedAt, &it.UpdatedAt)
}

func (s *ItemStore) CreateItem(it *domain.Item) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	now := time.Now()
	it.CreatedAt = now
	it.UpdatedAt = now
	_, err := s.db.conn.Exec(
		`INSERT INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.PageID, it.ItemType, it.Left, it.Top, it.Width, it.Height, it.IsLocked, it.CreatedAt, it.UpdatedAt,
	)
	return err
}

func (s *ItemStore) GetItem(id string) (*domain.Item, error) {
	it := &domain.Item{}
	row := s.db.conn.QueryRow(`SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	if err := scanItem(row, it); err != nil {
		return nil, notFound("get item", err)
	}
	return it, nil
}

// ListItems returns the items of a page in creation order. Callers apply the
// page's z-order on top.
func (s *ItemStore) ListItems(pageID string) ([]domain.Item, error) {
	rows, err := s.db.conn.Query(
		`SELECT `+itemColumns+` FROM items WHERE page_id = ? ORDER BY created_at ASC, rowid ASC`,
		pageID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *ItemStore) UpdateItem(it *domain.Item) error {
	it.UpdatedAt = time.Now()
	_, err := s.db.conn.Exec(
		`UPDATE items SET item_type = ?, pos_left = ?, pos_top = ?, width = ?, height = ?, is_locked = ?, updated_at = ? WHERE id = ?`,
		it.ItemType, it.Left, it.Top, it.Width, it.Height, it.IsLocked, it.UpdatedAt, it.ID,
	)
	return err
}

func (s *ItemStore) DeleteItem(id string) error {
	_, err := s.db.conn.Exec(`DELETE FROM items WHERE id = ?`, id)
	return err
}
