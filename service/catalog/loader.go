package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// numberToStringHook turns numeric ids and option values into their decimal text.
func numberToStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		switch f.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return fmt.Sprint(data), nil
		}
		return data, nil
	}
}

// Parse decodes the embedded products JSON. The page treats a malformed catalog as
// an empty one, so callers may ignore the error after logging it; the returned
// slice is never nil. Records that do not fit the Product shape are skipped.
func Parse(data []byte) ([]catalogEntity.Product, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []catalogEntity.Product{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw []map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return []catalogEntity.Product{}, fmt.Errorf("catalog: parse: %w", err)
	}

	products := make([]catalogEntity.Product, 0, len(raw))
	for i, rec := range raw {
		if rec == nil {
			continue
		}
		p, err := decodeProduct(rec)
		if err != nil {
			log.Printf("catalog: skipping product #%d: %v", i, err)
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func decodeProduct(rec map[string]interface{}) (catalogEntity.Product, error) {
	var p catalogEntity.Product
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       numberToStringHook(),
		Result:           &p,
		TagName:          "mapstructure",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return p, err
	}
	if err := dec.Decode(rec); err != nil {
		return catalogEntity.Product{}, err
	}
	return p, nil
}

// LoadFile reads and parses a catalog file. A missing file yields an empty catalog
// together with the error.
func LoadFile(path string) ([]catalogEntity.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return []catalogEntity.Product{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}
