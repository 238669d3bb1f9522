package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ProductMemoryRepository はスライス1本のインメモリ実装。
// 検索・削除は線形走査。Listは挿入順を保つ。
type ProductMemoryRepository struct {
	mu       sync.Mutex
	products []model.Product
}

// DI（seedはコピーして持つ）
func NewProductMemoryRepository(seed []model.Product) *ProductMemoryRepository {
	products := make([]model.Product, len(seed))
	copy(products, seed)
	return &ProductMemoryRepository{products: products}
}

// 全件のスナップショットを返す
func (r *ProductMemoryRepository) List(ctx context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// IDで商品を取得
func (r *ProductMemoryRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

// 商品の作成（ID重複は拒否）
func (r *ProductMemoryRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.ID == p.ID {
			return model.Product{}, repo.ErrDuplicateID
		}
	}
	r.products = append(r.products, p)
	return p, nil
}

// 部分更新：送られてきたフィールドだけを既存レコードへ上書き
func (r *ProductMemoryRepository) Update(ctx context.Context, id int64, patch model.ProductUpdate) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			updated := patch.ApplyTo(p)
			r.products[i] = updated
			return updated, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

// 商品削除
func (r *ProductMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}
