package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Load parses and validates all embedded catalog files.
func Load() (*Catalog, error) {
	var banks banksFile
	if err := loadFile("data/banks.yaml", &banks); err != nil {
		return nil, err
	}
	var docs documentsFile
	if err := loadFile("data/documents.yaml", &docs); err != nil {
		return nil, err
	}
	var assetDocs assetDocsFile
	if err := loadFile("data/asset_documents.yaml", &assetDocs); err != nil {
		return nil, err
	}
	var closing closingFile
	if err := loadFile("data/closing.yaml", &closing); err != nil {
		return nil, err
	}
	var bundles bundlesFile
	if err := loadFile("data/bundles.yaml", &bundles); err != nil {
		return nil, err
	}

	c := &Catalog{
		Banks:             banks.Banks,
		DefaultReplyValue: banks.DefaultReplyValue,
		Documents:         docs.Documents,
		AssetDocuments:    assetDocs.AssetDocuments,
		Closing:           closing.Categories,
		Bundles:           bundles.Bundles,
	}

	if errs := Validate(c); len(errs) > 0 {
		return nil, fmt.Errorf("catalog validation: %v", errs[0])
	}
	return c, nil
}

// MustLoad is Load for wiring paths where a broken embedded catalog is a
// programming error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func loadFile(name string, out any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}
