// Package catalog loads the default medicine catalog and the seed shops.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"

	"medmarket/internal/domain"
)

//go:embed seed.yaml
var seedYAML []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type medicineDoc struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Stock int64  `yaml:"stock"`
}

type shopDoc struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Address   string   `yaml:"address"`
	OwnerName string   `yaml:"owner_name"`
	Status    string   `yaml:"status"`
	Markup    string   `yaml:"markup"`
	Inventory []string `yaml:"inventory"`
}

type document struct {
	Medicines []medicineDoc `yaml:"medicines"`
	Shops     []shopDoc     `yaml:"shops"`
}

// Catalog каталог по умолчанию и стартовые аптеки
type Catalog struct {
	medicines []domain.Medicine
	shops     []domain.Shop
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(seedYAML))
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{}
	byID := make(map[string]domain.Medicine, len(doc.Medicines))
	for _, md := range doc.Medicines {
		if md.ID == "" || md.Name == "" {
			return nil, fmt.Errorf("%w: medicine needs id and name", ErrInvalidCatalog)
		}
		if _, dup := byID[md.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate medicine %s", ErrInvalidCatalog, md.ID)
		}
		price, err := decimal.NewFromString(md.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: medicine %s price: %v", ErrInvalidCatalog, md.ID, err)
		}
		if price.IsNegative() || md.Stock < 0 {
			return nil, fmt.Errorf("%w: medicine %s has negative price or stock", ErrInvalidCatalog, md.ID)
		}
		m := domain.Medicine{ID: md.ID, Name: md.Name, Price: price, Stock: md.Stock}
		byID[m.ID] = m
		c.medicines = append(c.medicines, m)
	}

	for _, sd := range doc.Shops {
		shop, err := buildShop(sd, byID)
		if err != nil {
			return nil, err
		}
		c.shops = append(c.shops, shop)
	}
	return c, nil
}

func buildShop(sd shopDoc, byID map[string]domain.Medicine) (domain.Shop, error) {
	if sd.Name == "" {
		return domain.Shop{}, fmt.Errorf("%w: shop %q needs a name", ErrInvalidCatalog, sd.ID)
	}
	status := domain.ShopStatusPending
	if sd.Status != "" {
		st, err := domain.ParseShopStatus(sd.Status)
		if err != nil {
			return domain.Shop{}, fmt.Errorf("%w: shop %s: %v", ErrInvalidCatalog, sd.Name, err)
		}
		status = st
	}
	markup := decimal.NewFromInt(1)
	if sd.Markup != "" {
		m, err := decimal.NewFromString(sd.Markup)
		if err != nil || !m.IsPositive() {
			return domain.Shop{}, fmt.Errorf("%w: shop %s markup %q", ErrInvalidCatalog, sd.Name, sd.Markup)
		}
		markup = m
	}

	inv := make([]domain.Medicine, 0, len(sd.Inventory))
	for _, id := range sd.Inventory {
		m, ok := byID[id]
		if !ok {
			return domain.Shop{}, fmt.Errorf("%w: shop %s references unknown medicine %s", ErrInvalidCatalog, sd.Name, id)
		}
		m.Price = m.Price.Mul(markup).Round(2)
		inv = append(inv, m)
	}
	return domain.Shop{
		ID:        sd.ID,
		Name:      sd.Name,
		Address:   sd.Address,
		OwnerName: sd.OwnerName,
		Status:    status,
		Inventory: inv,
	}, nil
}

// Medicines returns a fresh copy of the default catalog, used as a new shop's inventory.
func (c *Catalog) Medicines() []domain.Medicine {
	return domain.CloneInventory(c.medicines)
}

// Shops returns the seed shops. Each call returns independent copies.
func (c *Catalog) Shops() []domain.Shop {
	out := make([]domain.Shop, len(c.shops))
	for i, s := range c.shops {
		out[i] = s.Clone()
	}
	return out
}
