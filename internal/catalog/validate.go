package catalog

import "fmt"

// Validate checks structural invariants of a loaded catalog: non-empty
// catalogs, unique non-empty ids, positive valuations, and a default court
// bundle. Returns all violations found.
func Validate(c *Catalog) []error {
	var errs []error

	if len(c.Banks) == 0 {
		errs = append(errs, fmt.Errorf("banks: catalog is empty"))
	}
	if c.DefaultReplyValue <= 0 {
		errs = append(errs, fmt.Errorf("banks: default_reply_value must be positive"))
	}
	seen := map[string]bool{}
	for _, b := range c.Banks {
		if b.ID == "" || b.Name == "" {
			errs = append(errs, fmt.Errorf("banks: entry missing id or name"))
			continue
		}
		if seen[b.ID] {
			errs = append(errs, fmt.Errorf("banks: duplicate id %q", b.ID))
		}
		seen[b.ID] = true
	}

	if len(c.Documents) == 0 {
		errs = append(errs, fmt.Errorf("documents: catalog is empty"))
	}
	seen = map[string]bool{}
	for _, d := range c.Documents {
		if d.ID == "" || d.Name == "" {
			errs = append(errs, fmt.Errorf("documents: entry missing id or name"))
			continue
		}
		if seen[d.ID] {
			errs = append(errs, fmt.Errorf("documents: duplicate id %q", d.ID))
		}
		seen[d.ID] = true
		if d.Conditional != nil && (d.Conditional.Field == "" || d.Conditional.Value == "") {
			errs = append(errs, fmt.Errorf("documents: %s has incomplete conditional clause", d.ID))
		}
	}

	seen = map[string]bool{}
	for _, a := range c.AssetDocuments {
		if a.ID == "" || a.Name == "" {
			errs = append(errs, fmt.Errorf("asset_documents: entry missing id or name"))
			continue
		}
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("asset_documents: duplicate id %q", a.ID))
		}
		seen[a.ID] = true
		if a.Value <= 0 {
			errs = append(errs, fmt.Errorf("asset_documents: %s has non-positive value", a.ID))
		}
		if a.Institution == "" || a.AccountType == "" {
			errs = append(errs, fmt.Errorf("asset_documents: %s missing presentation labels", a.ID))
		}
	}

	seen = map[string]bool{}
	for _, cat := range c.Closing {
		if len(cat.Items) == 0 {
			errs = append(errs, fmt.Errorf("closing: category %q has no items", cat.ID))
		}
		for _, item := range cat.Items {
			if item.ID == "" || item.Name == "" {
				errs = append(errs, fmt.Errorf("closing: item in %q missing id or name", cat.ID))
				continue
			}
			if seen[item.ID] {
				errs = append(errs, fmt.Errorf("closing: duplicate item id %q", item.ID))
			}
			seen[item.ID] = true
		}
	}

	if len(c.Bundles["default"]) == 0 {
		errs = append(errs, fmt.Errorf("bundles: default bundle is missing or empty"))
	}
	for path, docs := range c.Bundles {
		for _, d := range docs {
			if d.ID == "" || d.Name == "" {
				errs = append(errs, fmt.Errorf("bundles: %s entry missing id or name", path))
			}
		}
	}

	return errs
}
