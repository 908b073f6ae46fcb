// Package catalog loads asset definitions from YAML catalogs.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/bnema/tamago/internal/application"
	"github.com/bnema/tamago/internal/domain"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "https://tamago.local/schemas/catalog.schema.json"

//go:embed catalog.schema.json
var schemaJSON []byte

var errEmptyCatalog = errors.New("catalog has no assets")

type Entry struct {
	ID              domain.AssetID           `json:"id"`
	CatalogRef      string                   `json:"catalog_ref,omitempty"`
	EquippableGroup domain.EquippableGroupID `json:"equippable_group,omitempty"`
	URI             string                   `json:"uri"`
	Parts           []domain.PartID          `json:"parts,omitempty"`
}

func (e Entry) Definition() domain.AssetDefinition {
	return domain.AssetDefinition{
		ID:                e.ID,
		CatalogRef:        e.CatalogRef,
		EquippableGroupID: e.EquippableGroup,
		URI:               e.URI,
		PartIDs:           append([]domain.PartID(nil), e.Parts...),
	}
}

type Catalog struct {
	Assets []Entry `json:"assets"`
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("load catalog schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return schema, nil
}

func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes YAML, validates it against the embedded schema and
// rejects entries whose part lists repeat ids.
func Parse(data []byte) (Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog yaml: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON value types.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return Catalog{}, fmt.Errorf("encode catalog: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return Catalog{}, err
	}
	if err := schema.Validate(doc); err != nil {
		return Catalog{}, domain.Errorf(domain.KindInvalidArgument, "catalog does not match schema: %v", err)
	}

	var cat Catalog
	if err := json.Unmarshal(encoded, &cat); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog entries: %w", err)
	}
	if len(cat.Assets) == 0 {
		return Catalog{}, errEmptyCatalog
	}
	for _, entry := range cat.Assets {
		if err := entry.Definition().Validate(); err != nil {
			return Catalog{}, fmt.Errorf("asset %d: %w", entry.ID, err)
		}
	}

	return cat, nil
}

// Definer is the registry write used by Import.
type Definer interface {
	DefineAsset(ctx context.Context, cmd application.DefineAssetCommand) error
}

type Report struct {
	Defined  []domain.AssetID
	Existing []domain.AssetID
}

// Processed counts the entries handled so far.
func (r Report) Processed() int {
	return len(r.Defined) + len(r.Existing)
}

// Progress receives the running report after each entry.
type Progress func(report Report)

// Import defines every entry in order. Ids that are already defined are
// reported and left untouched; any other failure stops the import.
func Import(ctx context.Context, definer Definer, caller domain.AccountID, cat Catalog) (Report, error) {
	return ImportWithProgress(ctx, definer, caller, cat, nil)
}

func ImportWithProgress(ctx context.Context, definer Definer, caller domain.AccountID, cat Catalog, progress Progress) (Report, error) {
	var report Report
	for _, entry := range cat.Assets {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		err := definer.DefineAsset(ctx, application.DefineAssetCommand{
			Caller: caller,
			Asset:  entry.Definition(),
		})
		switch {
		case err == nil:
			report.Defined = append(report.Defined, entry.ID)
		case errors.Is(err, domain.ErrAssetExists):
			report.Existing = append(report.Existing, entry.ID)
		default:
			return report, fmt.Errorf("define asset %d: %w", entry.ID, err)
		}
		if progress != nil {
			progress(report)
		}
	}

	return report, nil
}
