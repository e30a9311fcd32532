package storage

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"slidebuilder/internal/domain"
)

// PageStore implements domain.PageStore using SQLite.
type PageStore struct {
	db *DB
}

func NewPageStore(db *DB) *PageStore {
	return &PageStore{db: db}
}

func (s *PageStore) CreatePage(p *domain.Page) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Items == "" {
		p.Items = "[]"
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := s.db.conn.Exec(
		`INSERT INTO pages (id, name, width, height, items_json, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Width, p.Height, p.Items, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (s *PageStore) GetPage(id string) (*domain.Page, error) {
	p := &domain.Page{}
	err := s.db.conn.QueryRow(
		`SELECT id, name, width, height, items_json, created_at, updated_at FROM pages WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Width, &p.Height, &p.Items, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, notFound("get page", err)
	}
	return p, nil
}

func (s *PageStore) ListPages() ([]domain.Page, error) {
	rows, err := s.db.conn.Query(`SELECT id, name, width, height, items_json, created_at, updated_at FROM pages ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []domain.Page{}
	for rows.Next() {
		var p domain.Page
		if err := rows.Scan(&p.ID, &p.Name, &p.Width, &p.Height, &p.Items, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// UpdatePageItems stores a new serialized z-order for the page.
func (s *PageStore) UpdatePageItems(id, items string) error {
	res, err := s.db.conn.Exec(
		`UPDATE pages SET items_json = ?, updated_at = ? WHERE id = ?`,
		items, time.Now(), id,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("update page items", ErrNotFound)
	}
	return nil
}

// DeletePage removes a page and all of its items.
func (s *PageStore) DeletePage(id string) error {
	tx, err := s.db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM items WHERE page_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM pages WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// RemoveItem deletes an item and drops its id from the page's stored order
// in one transaction, so the order never keeps an id whose row is gone.
func (s *PageStore) RemoveItem(pageID, itemID string) error {
	tx, err := s.db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var items string
	if err := tx.QueryRow(`SELECT items_json FROM pages WHERE id = ?`, pageID).Scan(&items); err != nil {
		return notFound("remove item", err)
	}
	order, err := domain.ParseOrder(items)
	if err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	order = slices.DeleteFunc(order, func(id string) bool { return id == itemID })
	serialized, err := order.Serialize()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM items WHERE id = ? AND page_id = ?`, itemID, pageID); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	if _, err := tx.Exec(
		`UPDATE pages SET items_json = ?, updated_at = ? WHERE id = ?`,
		serialized, time.Now(), pageID,
	); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	return tx.Commit()
}

// Fingerprint summarizes the state of a page and its items. It changes
// whenever the page's order or any of its items is written, created or
// removed, including by another process sharing the database.
func (s *PageStore) Fingerprint(id string) (string, error) {
	var pageUpdated string
	err := s.db.conn.QueryRow(`SELECT COALESCE(updated_at, '') FROM pages WHERE id = ?`, id).Scan(&pageUpdated)
	if err != nil {
		return "", notFound("fingerprint page", err)
	}
	var count int
	var itemsUpdated string
	err = s.db.conn.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(updated_at), '') FROM items WHERE page_id = ?`, id,
	).Scan(&count, &itemsUpdated)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s|%d:%s", pageUpdated, count, itemsUpdated), nil
}
