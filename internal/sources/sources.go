// Package sources loads the three restaurant datasets from disk and
// binds each to its default column schema.
package sources

import (
	"os"
	"slices"

	"github.com/agentstation/restomap/pkg/errors"
	"github.com/agentstation/restomap/pkg/reconcile"
	"github.com/agentstation/restomap/pkg/tabular"
)

// ID represents the identifier of an input dataset.
type ID string

// String returns the string representation of a dataset name.
func (id ID) String() string {
	return string(id)
}

// Known dataset names.
const (
	MatchedID ID = "matched"
	ESBID     ID = "esb"
	JakartaID ID = "jakarta"
)

// IDs returns all dataset identifiers in pipeline order.
func IDs() []ID {
	return []ID{MatchedID, ESBID, JakartaID}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Schema returns the default column schema for the dataset.
func (id ID) Schema() reconcile.Schema {
	switch id {
	case MatchedID:
		return reconcile.MatchedSchema()
	case ESBID:
		return reconcile.ESBSchema()
	case JakartaID:
		return reconcile.JakartaSchema()
	default:
		return reconcile.Schema{Dataset: id.String()}
	}
}

// Load reads a CSV file into a tabular dataset. The file's header row
// becomes the column list; no harmonization or cleaning is applied.
func Load(path string) (tabular.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return tabular.Dataset{}, errors.NewIOError("open", path, err)
	}
	defer f.Close()

	d, err := tabular.ReadCSV(f)
	if err != nil {
		return tabular.Dataset{}, errors.WrapParse("csv", path, err)
	}
	return d, nil
}

// LoadAll reads the three input files in pipeline order. Any failure
// aborts the load; per-dataset degradation happens later, during
// reconciliation, not here.
func LoadAll(matchedPath, esbPath, jakartaPath string) (matched, esb, jakarta tabular.Dataset, err error) {
	if matched, err = Load(matchedPath); err != nil {
		return
	}
	if esb, err = Load(esbPath); err != nil {
		return
	}
	jakarta, err = Load(jakartaPath)
	return
}
