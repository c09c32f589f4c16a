package tracking

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"shoptrack/internal/domain/asset"
	"shoptrack/internal/errs"
)

// fieldAliases maps field names older client versions used onto the
// canonical column names. Applied after camelCase normalization, so
// one entry covers both spellings.
var fieldAliases = map[string]string{
	"desc":       "description",
	"etype":      "kind",
	"edate":      "work_date",
	"g_type":     "gen_type",
	"rehab_up_d": "rehab_up_date",
}

// decodeRecord turns a loose field map into the typed record for the
// category. The switch is exhaustive over the closed category set.
func decodeRecord(cat asset.Category, fields map[string]any) (asset.Record, error) {
	normalized := make(map[string]any, len(fields))
	for k, v := range fields {
		key := snakeCase(strings.TrimSpace(k))
		if canonical, ok := fieldAliases[key]; ok {
			if _, taken := normalized[canonical]; taken {
				continue
			}
			key = canonical
		}
		normalized[key] = v
	}

	raw, err := json.Marshal(normalized)
	if err != nil {
		return nil, errs.Wrap(err, "encode record fields")
	}

	switch cat {
	case asset.EngineSupplyCategory:
		var r asset.EngineSupply
		return decodeInto(raw, &r)
	case asset.EngineIssueCategory:
		var r asset.EngineIssue
		return decodeInto(raw, &r)
	case asset.EngineRehabCategory:
		var r asset.EngineRehab
		return decodeInto(raw, &r)
	case asset.EngineCheckCategory:
		var r asset.EngineCheck
		return decodeInto(raw, &r)
	case asset.EngineUploadCategory:
		var r asset.EngineUpload
		return decodeInto(raw, &r)
	case asset.EngineLatheCategory:
		var r asset.EngineLathe
		return decodeInto(raw, &r)
	case asset.EnginePumpCategory:
		var r asset.EnginePump
		return decodeInto(raw, &r)
	case asset.EngineElectricalCategory:
		var r asset.EngineElectrical
		return decodeInto(raw, &r)
	case asset.GeneratorSupplyCategory:
		var r asset.GeneratorSupply
		return decodeInto(raw, &r)
	case asset.GeneratorIssueCategory:
		var r asset.GeneratorIssue
		return decodeInto(raw, &r)
	case asset.GeneratorInspectCategory:
		var r asset.GeneratorInspect
		return decodeInto(raw, &r)
	case asset.SparePartCategory:
		var r asset.SparePart
		return decodeInto(raw, &r)
	default:
		return nil, asset.ErrUnknownCategory
	}
}

func decodeInto[T asset.Record](raw []byte, dst *T) (asset.Record, error) {
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, fmt.Errorf("%w: decode record fields: %v", asset.ErrInvalidRecord, err)
	}
	return *dst, nil
}

// snakeCase folds the camelCase names older clients sent (engineType,
// prevSite, supDate) onto the canonical snake_case wire names.
func snakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 && s[i-1] != '_' {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
