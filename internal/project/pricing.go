package project

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/modernheim/dressroom/internal/model"
)

// LoadPriceTable reads a TOML price list and applies it on top of the
// default table. Keys absent from the file keep their list prices, so a
// dealer override only needs to name the parts it discounts.
func LoadPriceTable(path string) (model.PriceTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.PriceTable{}, err
	}
	prices := model.DefaultPrices()
	if err := toml.Unmarshal(data, &prices); err != nil {
		return model.PriceTable{}, fmt.Errorf("failed to parse price list: %w", err)
	}
	return prices, nil
}

// SavePriceTable writes a full price table as TOML, useful as a
// starting point for dealer overrides.
func SavePriceTable(path string, prices model.PriceTable) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(prices); err != nil {
		return fmt.Errorf("failed to encode price list: %w", err)
	}
	return nil
}
