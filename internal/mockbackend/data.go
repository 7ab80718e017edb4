package mockbackend

type store struct {
	Code               string `json:"code"`
	StoreCode          string `json:"store_code"`
	StoreName          string `json:"store_name"`
	Locale             string `json:"locale"`
	BaseCurrencyCode   string `json:"base_currency_code"`
	SecureBaseMediaURL string `json:"secure_base_media_url"`
	IsDefaultStore     bool   `json:"is_default_store"`
}

var stores = []store{
	{
		Code:             "default",
		StoreCode:        "default",
		StoreName:        "Default Store View",
		Locale:           "en_US",
		BaseCurrencyCode: "USD",
		IsDefaultStore:   true,
	},
	{
		Code:             "fr",
		StoreCode:        "fr",
		StoreName:        "French Store View",
		Locale:           "fr_FR",
		BaseCurrencyCode: "EUR",
	},
}

type namedType struct {
	Name string `json:"name"`
}

type schemaType struct {
	Kind          string      `json:"kind"`
	Name          string      `json:"name"`
	PossibleTypes []namedType `json:"possibleTypes"`
}

// schemaTypes is a trimmed catalog schema: two abstract types, the rest
// concrete with a null possibleTypes.
var schemaTypes = []schemaType{
	{Kind: "OBJECT", Name: "Query"},
	{Kind: "OBJECT", Name: "StoreConfig"},
	{
		Kind: "INTERFACE",
		Name: "ProductInterface",
		PossibleTypes: []namedType{
			{Name: "SimpleProduct"},
			{Name: "ConfigurableProduct"},
			{Name: "BundleProduct"},
		},
	},
	{Kind: "OBJECT", Name: "SimpleProduct"},
	{Kind: "OBJECT", Name: "ConfigurableProduct"},
	{Kind: "OBJECT", Name: "BundleProduct"},
	{
		Kind: "UNION",
		Name: "CmsBlockOrPage",
		PossibleTypes: []namedType{
			{Name: "CmsBlock"},
			{Name: "CmsPage"},
		},
	},
	{Kind: "OBJECT", Name: "CmsBlock"},
	{Kind: "OBJECT", Name: "CmsPage"},
	{Kind: "SCALAR", Name: "String"},
}
