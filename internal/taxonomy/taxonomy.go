// Package taxonomy defines the category and transfer-type sets the metrics
// are aggregated over. The sets are fixed per deployment: the built-in
// defaults match the source feed, and a YAML file can swap them without
// touching the scoring logic.
package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/daniyar-b/bank-recommender-api/internal/domain"
)

// Taxonomy maps raw feed labels to the fixed groups the metrics track.
// Matching is exact (case- and script-sensitive).
type Taxonomy struct {
	Version string `yaml:"version"`

	Groups map[domain.CategoryGroup][]string `yaml:"groups"`

	TransferTypes struct {
		FX          []string `yaml:"fx"`
		Gold        []string `yaml:"gold"`
		Investments []string `yaml:"investments"`
	} `yaml:"transfer_types"`
}

// Default returns the built-in taxonomy of the source feed.
func Default() *Taxonomy {
	t := &Taxonomy{
		Version: "2025-09",
		Groups: map[domain.CategoryGroup][]string{
			domain.GroupTravel:     {"Travel", "Hotels", "Taxi"},
			domain.GroupRestaurant: {"Cafes & Restaurants"},
			domain.GroupOnline:     {"Food at Home", "Movies at Home", "Games at Home"},
			domain.GroupLuxury:     {"Jewelry", "Cosmetics & Perfumes"},
		},
	}
	t.TransferTypes.FX = []string{domain.TransferTypeFXBuy, domain.TransferTypeFXSell}
	t.TransferTypes.Gold = []string{domain.TransferTypeGoldBuyOut, domain.TransferTypeGoldSellIn}
	t.TransferTypes.Investments = []string{domain.TransferTypeInvestOut, domain.TransferTypeInvestIn}
	return t
}

// Load reads a taxonomy from a YAML file. An empty path yields the default
// taxonomy; a missing file is an error so a misconfigured path does not
// silently fall back to defaults.
func Load(path string) (*Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}

	t := &Taxonomy{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}

	if len(t.Groups) == 0 {
		return nil, fmt.Errorf("taxonomy %s defines no category groups", path)
	}

	return t, nil
}

// GroupOf resolves a raw category label to its group. Categories outside
// every group return ok=false.
func (t *Taxonomy) GroupOf(category string) (domain.CategoryGroup, bool) {
	for group, categories := range t.Groups {
		for _, c := range categories {
			if c == category {
				return group, true
			}
		}
	}
	return "", false
}

// InGroup reports whether a category belongs to the given group.
func (t *Taxonomy) InGroup(group domain.CategoryGroup, category string) bool {
	for _, c := range t.Groups[group] {
		if c == category {
			return true
		}
	}
	return false
}

// IsFX reports whether a transfer type is a foreign-exchange operation.
func (t *Taxonomy) IsFX(transferType string) bool {
	return contains(t.TransferTypes.FX, transferType)
}

// IsGold reports whether a transfer type is a gold operation.
func (t *Taxonomy) IsGold(transferType string) bool {
	return contains(t.TransferTypes.Gold, transferType)
}

// IsInvestment reports whether a transfer type is an investment operation.
func (t *Taxonomy) IsInvestment(transferType string) bool {
	return contains(t.TransferTypes.Investments, transferType)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
