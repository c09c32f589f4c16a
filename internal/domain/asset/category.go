package asset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory marks a category tag outside the closed set below.
// Batch sync treats it as a per-item skip, never a batch failure.
var ErrUnknownCategory = errors.New("unknown record category")

// Class splits assets into the two tracked families. Engines are keyed
// by serial number, generators by code.
type Class string

const (
	ClassEngine    Class = "engine"
	ClassGenerator Class = "generator"
)

// Category enumerates every kind of maintenance event the workshop
// records. The wire names match what the offline client sends.
type Category string

const (
	EngineSupplyCategory     Category = "eng_supply"
	EngineIssueCategory      Category = "eng_issue"
	EngineRehabCategory      Category = "eng_rehab"
	EngineCheckCategory      Category = "eng_check"
	EngineUploadCategory     Category = "eng_upload"
	EngineLatheCategory      Category = "eng_lathe"
	EnginePumpCategory       Category = "eng_pump"
	EngineElectricalCategory Category = "eng_electrical"
	GeneratorSupplyCategory  Category = "gen_supply"
	GeneratorIssueCategory   Category = "gen_issue"
	GeneratorInspectCategory Category = "gen_inspect"
	SparePartCategory        Category = "spare"
)

// Categories lists every known category in stable display order.
func Categories() []Category {
	return []Category{
		EngineSupplyCategory,
		EngineIssueCategory,
		EngineRehabCategory,
		EngineCheckCategory,
		EngineUploadCategory,
		EngineLatheCategory,
		EnginePumpCategory,
		EngineElectricalCategory,
		GeneratorSupplyCategory,
		GeneratorIssueCategory,
		GeneratorInspectCategory,
		SparePartCategory,
	}
}

// ParseCategory maps a wire tag onto the closed category set.
func ParseCategory(raw string) (Category, error) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	switch Category(tag) {
	case EngineSupplyCategory, EngineIssueCategory, EngineRehabCategory,
		EngineCheckCategory, EngineUploadCategory, EngineLatheCategory,
		EnginePumpCategory, EngineElectricalCategory,
		GeneratorSupplyCategory, GeneratorIssueCategory,
		GeneratorInspectCategory, SparePartCategory:
		return Category(tag), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
}

// Class reports which asset family a category belongs to. Spare parts
// follow the asset they were consumed on, so they carry no class of
// their own and report the zero value.
func (c Category) Class() Class {
	switch c {
	case EngineSupplyCategory, EngineIssueCategory, EngineRehabCategory,
		EngineCheckCategory, EngineUploadCategory, EngineLatheCategory,
		EnginePumpCategory, EngineElectricalCategory:
		return ClassEngine
	case GeneratorSupplyCategory, GeneratorIssueCategory, GeneratorInspectCategory:
		return ClassGenerator
	default:
		return ""
	}
}

// Short returns the group name the lookup view uses for this category.
func (c Category) Short() string {
	switch c {
	case EngineSupplyCategory, GeneratorSupplyCategory:
		return "supply"
	case EngineIssueCategory, GeneratorIssueCategory:
		return "issue"
	case EngineRehabCategory:
		return "rehab"
	case EngineCheckCategory:
		return "check"
	case EngineUploadCategory:
		return "upload"
	case EngineLatheCategory:
		return "lathe"
	case EnginePumpCategory:
		return "pump"
	case EngineElectricalCategory:
		return "electrical"
	case GeneratorInspectCategory:
		return "inspect"
	case SparePartCategory:
		return "spares"
	default:
		return string(c)
	}
}
