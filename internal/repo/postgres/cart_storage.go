package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CartStorage удовлетворяет интерфейсу CartStorage.
var _ ports.CartStorage = (*CartStorage)(nil)

// CartStorage — долговременное хранилище сериализованных корзин на Postgres
// (pgxpool). Одна строка на ключ корзины, payload — jsonb со списком позиций.
type CartStorage struct {
	pool *pgxpool.Pool
}

// NewCartStorage — конструктор CartStorage.
func NewCartStorage(pool *pgxpool.Pool) *CartStorage { return &CartStorage{pool: pool} }

// Load — сохранённые позиции по ключу корзины.
// Отсутствующая или повреждённая запись — это пустая корзина (nil, nil), не ошибка:
// корзина не должна ломаться из-за мусора в хранилище.
func (s *CartStorage) Load(ctx context.Context, cartKey string) ([]domain.CartLine, error) {
	if cartKey == "" {
		return nil, nil
	}

	var payload []byte
	err := s.pool.QueryRow(ctx, `
		SELECT payload FROM cart_storage WHERE cart_key = $1
	`, cartKey).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %q: %w", cartKey, err)
	}

	var cartLines []domain.CartLine
	if err := json.Unmarshal(payload, &cartLines); err != nil {
		// Повреждённый payload: считаем корзину пустой, следующая мутация перезапишет запись.
		return nil, nil
	}
	return cartLines, nil
}

// Save — идемпотентный upsert позиций по ключу корзины.
func (s *CartStorage) Save(ctx context.Context, cartKey string, cartLines []domain.CartLine) error {
	if cartKey == "" {
		return errors.New("cart_key is required")
	}

	payload, err := json.Marshal(cartLines)
	if err != nil {
		return fmt.Errorf("marshal cart %q: %w", cartKey, err)
	}

	if _, err := s.pool.Exec(ctx, `
		INSERT INTO cart_storage (cart_key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (cart_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = now()
	`, cartKey, payload); err != nil {
		return fmt.Errorf("upsert cart %q: %w", cartKey, err)
	}
	return nil
}

// Delete — удаляет запись корзины; отсутствие записи не ошибка.
func (s *CartStorage) Delete(ctx context.Context, cartKey string) error {
	if cartKey == "" {
		return nil
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM cart_storage WHERE cart_key = $1`, cartKey); err != nil {
		return fmt.Errorf("delete cart %q: %w", cartKey, err)
	}
	return nil
}
