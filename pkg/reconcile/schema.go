package reconcile

// Schema describes how one source dataset maps onto its canonical shape:
// the alias map fed to the harmonizer and the coordinate field names fed
// to the cleaner.
type Schema struct {
	Dataset  string
	Aliases  map[string]string
	LatField string
	LonField string
}

// MatchedSchema returns the default schema for the pre-matched input.
// The comprehensive match file carries ESB-suffixed columns plus the
// Jakarta-side restaurant name when present.
func MatchedSchema() Schema {
	return Schema{
		Dataset: "matched",
		Aliases: map[string]string{
			"brandName_esb":  ColBrandName,
			"branchName_esb": ColBranchName,
			"latitude_esb":   ColLatitude,
			"longitude_esb":  ColLongitude,
			"Nama Restoran":  ColRestaurantName,
			"nama_restoran":  ColRestaurantName,
		},
		LatField: ColLatitude,
		LonField: ColLongitude,
	}
}

// ESBSchema returns the default schema for the full ESB listing.
func ESBSchema() Schema {
	return Schema{
		Dataset: "esb",
		Aliases: map[string]string{
			"brandName":  ColBrandName,
			"branchName": ColBranchName,
			"latitude":   ColLat,
			"longitude":  ColLon,
			"cityName":   ColCityName,
		},
		LatField: ColLat,
		LonField: ColLon,
	}
}

// JakartaSchema returns the default schema for the full Jakarta listing.
func JakartaSchema() Schema {
	return Schema{
		Dataset: "jakarta",
		Aliases: map[string]string{
			"Nama Restoran": ColRestaurantName,
			"nama_restoran": ColRestaurantName,
			"latitude":      ColLat,
			"longitude":     ColLon,
			"Pricing":       ColPricing,
		},
		LatField: ColLat,
		LonField: ColLon,
	}
}
