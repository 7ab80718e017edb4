package graphql

// Operation names, used for logging and metrics.
const (
	OpStoreConfig     = "getStoreConfigData"
	OpMediaURL        = "getMediaURL"
	OpAvailableStores = "getAvailableStoresConfigData"
	OpSchemaTypes     = "getSchemaTypes"
	OpUnionTypes      = "getUnionAndInterfaceTypes"
)

const storeConfigQuery = `query getStoreConfigData {
  storeConfig {
    code
    store_code
    store_name
    locale
    base_currency_code
    secure_base_media_url
  }
}`

const mediaURLQuery = `query getMediaURL {
  storeConfig {
    secure_base_media_url
  }
}`

const availableStoresQuery = `query getAvailableStoresConfigData {
  availableStores {
    code
    store_code
    store_name
    locale
    base_currency_code
    secure_base_media_url
    is_default_store
  }
}`

const schemaTypesQuery = `query getSchemaTypes {
  __schema {
    types {
      kind
      name
      possibleTypes {
        name
      }
    }
  }
}`
