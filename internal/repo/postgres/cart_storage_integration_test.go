//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	pgrepo "github.com/Gunvolt24/wb_cart/internal/repo/postgres"
	"github.com/Gunvolt24/wb_cart/internal/testutil"
)

func startStorage(t *testing.T) (*pgrepo.CartStorage, context.Context) {
	t.Helper()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	// миграции
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctxTest, cancelTest := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancelTest)

	pool, err := pgxpool.New(ctxTest, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pgrepo.NewCartStorage(pool), ctxTest
}

// 1) Сохранение и загрузка корзины (round-trip)
func TestCartStorage_SaveAndLoad_TC(t *testing.T) {
	t.Parallel()

	storage, ctx := startStorage(t)

	key := testutil.UniqCartKey()
	want := testutil.MakeLines(3)
	want[1].Variant = "M"
	want[1].Quantity = 2

	require.NoError(t, storage.Save(ctx, key, want))

	got, err := storage.Load(ctx, key)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// 2) Повторный Save перезаписывает запись (upsert)
func TestCartStorage_SaveIsUpsert_TC(t *testing.T) {
	t.Parallel()

	storage, ctx := startStorage(t)

	key := testutil.UniqCartKey()
	require.NoError(t, storage.Save(ctx, key, testutil.MakeLines(2)))

	want := testutil.MakeLines(1)
	require.NoError(t, storage.Save(ctx, key, want))

	got, err := storage.Load(ctx, key)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// 3) Отсутствующая запись — пустая корзина, не ошибка
func TestCartStorage_LoadMissing_TC(t *testing.T) {
	t.Parallel()

	storage, ctx := startStorage(t)

	got, err := storage.Load(ctx, testutil.UniqCartKey())
	require.NoError(t, err)
	require.Nil(t, got)
}

// 4) Delete удаляет запись; повторный Delete — no-op
func TestCartStorage_Delete_TC(t *testing.T) {
	t.Parallel()

	storage, ctx := startStorage(t)

	key := testutil.UniqCartKey()
	require.NoError(t, storage.Save(ctx, key, testutil.MakeLines(1)))
	require.NoError(t, storage.Delete(ctx, key))
	require.NoError(t, storage.Delete(ctx, key))

	got, err := storage.Load(ctx, key)
	require.NoError(t, err)
	require.Nil(t, got)
}
