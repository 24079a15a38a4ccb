// Package store holds the contract's single owned root state value: the
// durable brand mapping and product sequence, together with the byte-usage
// accounting the storage meter settles against.
package store

import (
	"encoding/json"
	"fmt"

	"circularchain/model"
)

// Object type prefixes keep brand and product entries in distinct key
// spaces, and their lengths count toward measured byte usage.
const (
	brandObjectType   = "Brand"
	productObjectType = "Product"
)

// Ledger is the entity store. It is exclusively owned by the contract;
// every accessor returns copies so no state can be aliased across calls.
type Ledger struct {
	brands   map[string]model.Brand
	products []model.Product

	// Serialized-entry byte sizes, tracked incrementally so Usage is O(1).
	brandSizes   map[string]uint64
	productSizes []uint64
	usage        uint64
}

// NewLedger returns an empty ledger with zero byte usage.
func NewLedger() *Ledger {
	return &Ledger{
		brands:     make(map[string]model.Brand),
		brandSizes: make(map[string]uint64),
	}
}

// Usage reports the total persisted bytes attributable to the ledger.
// The storage meter snapshots this immediately before and after each
// mutation within the same call.
func (l *Ledger) Usage() uint64 {
	return l.usage
}

func brandKey(brandID string) string {
	return brandObjectType + ":" + brandID
}

// productKey uses a fixed-width index encoding so that shifting entries
// after a removal never changes key lengths, keeping the incremental
// size accounting exact.
func productKey(index int) string {
	return productObjectType + ":" + fmt.Sprintf("%016x", index)
}

// entrySize measures a stored entry the way it is persisted: key bytes
// plus JSON value bytes.
func entrySize(key string, value interface{}) (uint64, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return 0, fmt.Errorf("failed to measure entry '%s': %w", key, err)
	}
	return uint64(len(key)) + uint64(len(raw)), nil
}

// --- Brands ---

// GetBrand returns a copy of the brand for the given ID, if present.
func (l *Ledger) GetBrand(brandID string) (model.Brand, bool) {
	b, ok := l.brands[brandID]
	return b, ok
}

// PutBrand inserts or replaces the brand stored under brandID.
func (l *Ledger) PutBrand(brandID string, b model.Brand) error {
	size, err := entrySize(brandKey(brandID), b)
	if err != nil {
		return err
	}
	l.usage -= l.brandSizes[brandID]
	l.usage += size
	l.brands[brandID] = b
	l.brandSizes[brandID] = size
	return nil
}

// RemoveBrand deletes and returns the brand stored under brandID.
func (l *Ledger) RemoveBrand(brandID string) (model.Brand, bool) {
	b, ok := l.brands[brandID]
	if !ok {
		return model.Brand{}, false
	}
	l.usage -= l.brandSizes[brandID]
	delete(l.brands, brandID)
	delete(l.brandSizes, brandID)
	return b, true
}

// Brands returns a snapshot copy of the full brand mapping.
func (l *Ledger) Brands() map[string]model.Brand {
	out := make(map[string]model.Brand, len(l.brands))
	for id, b := range l.brands {
		out[id] = b
	}
	return out
}

// --- Products ---

// ProductCount returns the length of the product sequence.
func (l *Ledger) ProductCount() uint64 {
	return uint64(len(l.products))
}

// GetProduct returns a copy of the product at the given position.
func (l *Ledger) GetProduct(index uint64) (model.Product, bool) {
	if index >= uint64(len(l.products)) {
		return model.Product{}, false
	}
	return l.products[index].Clone(), true
}

// Products returns a snapshot copy of the full product sequence.
func (l *Ledger) Products() []model.Product {
	out := make([]model.Product, len(l.products))
	for i := range l.products {
		out[i] = l.products[i].Clone()
	}
	return out
}

// FindProductByID returns the position of the first product with the
// given ProductID.
func (l *Ledger) FindProductByID(productID string) (uint64, bool) {
	for i := range l.products {
		if l.products[i].ProductID == productID {
			return uint64(i), true
		}
	}
	return 0, false
}

// AppendProduct inserts a product at the tail of the sequence.
func (l *Ledger) AppendProduct(p model.Product) error {
	size, err := entrySize(productKey(len(l.products)), p)
	if err != nil {
		return err
	}
	l.products = append(l.products, p.Clone())
	l.productSizes = append(l.productSizes, size)
	l.usage += size
	return nil
}

// ReplaceProduct overwrites the product stored at index in place.
func (l *Ledger) ReplaceProduct(index uint64, p model.Product) error {
	if index >= uint64(len(l.products)) {
		return fmt.Errorf("no product at index %d", index)
	}
	size, err := entrySize(productKey(int(index)), p)
	if err != nil {
		return err
	}
	l.usage -= l.productSizes[index]
	l.usage += size
	l.products[index] = p.Clone()
	l.productSizes[index] = size
	return nil
}

// RemoveProduct deletes and returns the product at index, preserving the
// order of the remaining products.
func (l *Ledger) RemoveProduct(index uint64) (model.Product, bool) {
	if index >= uint64(len(l.products)) {
		return model.Product{}, false
	}
	removed := l.products[index]
	l.usage -= l.productSizes[index]
	l.products = append(l.products[:index], l.products[index+1:]...)
	l.productSizes = append(l.productSizes[:index], l.productSizes[index+1:]...)
	return removed, true
}

// InsertProduct places a product back at the given position, shifting
// later products up by one. It exists so operations can undo a removal
// when settlement fails after the mutation.
func (l *Ledger) InsertProduct(index uint64, p model.Product) error {
	if index > uint64(len(l.products)) {
		return fmt.Errorf("cannot insert product at index %d, length %d", index, len(l.products))
	}
	size, err := entrySize(productKey(int(index)), p)
	if err != nil {
		return err
	}
	l.products = append(l.products, model.Product{})
	copy(l.products[index+1:], l.products[index:])
	l.products[index] = p.Clone()
	l.productSizes = append(l.productSizes, 0)
	copy(l.productSizes[index+1:], l.productSizes[index:])
	l.productSizes[index] = size
	l.usage += size
	return nil
}
