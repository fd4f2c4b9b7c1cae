package constants

const (
	ViperKeyHTTPAddr       = "http.addr"
	ViperKeyDatabaseDSN    = "database.dsn"
	ViperKeyWarehouseTable = "warehouse.table"
	ViperKeyRowLimit       = "warehouse.row_limit"
	ViperKeyCORSOrigins    = "http.cors_origins"
)

const DefaultRowLimit = 1000
