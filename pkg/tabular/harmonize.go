package tabular

import "slices"

// Harmonize maps heterogeneous source column names onto the canonical
// schema. Only columns present in the alias map are renamed; absent
// aliases are a no-op, never an error. When a rename would collide with
// an existing canonical column, the canonical column wins and the aliased
// one is dropped. The input dataset is never mutated.
func Harmonize(d Dataset, aliases map[string]string) Dataset {
	if len(aliases) == 0 {
		return d.Clone()
	}

	out := Dataset{
		Columns: make([]string, 0, len(d.Columns)),
		Rows:    make([]Row, 0, len(d.Rows)),
	}

	renames := make(map[string]string, len(aliases))
	for _, col := range d.Columns {
		canonical, ok := aliases[col]
		if !ok {
			out.Columns = append(out.Columns, col)
			continue
		}
		if slices.Contains(d.Columns, canonical) || slices.Contains(out.Columns, canonical) {
			// Canonical column already exists; drop the alias.
			continue
		}
		renames[col] = canonical
		out.Columns = append(out.Columns, canonical)
	}

	for _, row := range d.Rows {
		newRow := make(Row, len(row))
		for k, v := range row {
			if canonical, ok := renames[k]; ok {
				newRow[canonical] = v
				continue
			}
			if _, dropped := aliases[k]; dropped && !slices.Contains(out.Columns, k) {
				continue
			}
			newRow[k] = v
		}
		out.Rows = append(out.Rows, newRow)
	}

	return out
}
