package save

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Migrate rewrites a raw save document in older layouts into the current
// schema. Documents without a version field are version 1.
func Migrate(raw []byte) ([]byte, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("invalid JSON document")
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return nil, fmt.Errorf("save document must be an object")
	}

	version := 1
	if v := gjson.GetBytes(raw, "version"); v.Exists() {
		version = int(v.Int())
	}
	if version > Version {
		return nil, fmt.Errorf("save version %d is newer than %d", version, Version)
	}

	if version < 2 {
		var err error
		if raw, err = migrateV1(raw); err != nil {
			return nil, fmt.Errorf("migrate v%d: %w", version, err)
		}
	}
	return sjson.SetBytes(raw, "version", Version)
}

// migrateV1 normalizes the loosely typed fields older writers produced.
func migrateV1(raw []byte) ([]byte, error) {
	var err error

	// Inventory and Spells were once written as objects.
	if raw, err = pairsFromObject(raw, "Inventory"); err != nil {
		return nil, err
	}
	if raw, err = pairsFromObject(raw, "Spells"); err != nil {
		return nil, err
	}

	if lvl := gjson.GetBytes(raw, "Traits.Level"); lvl.Type == gjson.String {
		n, convErr := strconv.Atoi(strings.TrimSpace(lvl.Str))
		if convErr != nil {
			return nil, fmt.Errorf("Traits.Level %q: %w", lvl.Str, convErr)
		}
		if raw, err = sjson.SetBytes(raw, "Traits.Level", n); err != nil {
			return nil, err
		}
	}

	// The quest target was stored as a [name, level, loot] tuple or null.
	qm := gjson.GetBytes(raw, "questmonster")
	switch {
	case qm.IsArray():
		var parts []string
		qm.ForEach(func(_, v gjson.Result) bool {
			parts = append(parts, v.String())
			return true
		})
		raw, err = sjson.SetBytes(raw, "questmonster", strings.Join(parts, "|"))
	case qm.Type == gjson.Null && qm.Exists():
		raw, err = sjson.SetBytes(raw, "questmonster", "")
	}
	if err != nil {
		return nil, err
	}

	for _, key := range []string{"birthstamp", "stamp"} {
		if v := gjson.GetBytes(raw, key); v.Type == gjson.Null && v.Exists() {
			if raw, err = sjson.SetBytes(raw, key, 0); err != nil {
				return nil, err
			}
		}
	}
	return raw, nil
}

// pairsFromObject turns {"a": x, "b": y} at path into [["a", x], ["b", y]],
// sorted by key with Gold first.
func pairsFromObject(raw []byte, path string) ([]byte, error) {
	obj := gjson.GetBytes(raw, path)
	if !obj.IsObject() {
		return raw, nil
	}
	type pair struct {
		key string
		val any
	}
	var pairs []pair
	obj.ForEach(func(k, v gjson.Result) bool {
		pairs = append(pairs, pair{key: k.String(), val: v.Value()})
		return true
	})
	sort.SliceStable(pairs, func(i, j int) bool {
		if (pairs[i].key == "Gold") != (pairs[j].key == "Gold") {
			return pairs[i].key == "Gold"
		}
		return pairs[i].key < pairs[j].key
	})
	out := make([][]any, len(pairs))
	for i, p := range pairs {
		out[i] = []any{p.key, p.val}
	}
	return sjson.SetBytes(raw, path, out)
}
