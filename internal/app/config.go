package app

import (
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// DataDir is the working directory holding every persisted file.
	DataDir string `envconfig:"POS_DATA_DIR" default:"."`

	StoreName string `envconfig:"POS_STORE_NAME" default:"VerdePOS"`

	InventoryFile string `envconfig:"POS_INVENTORY_FILE" default:"inventory.txt"`
	LedgerFile    string `envconfig:"POS_LEDGER_FILE" default:"ventas.txt"`
	SequenceFile  string `envconfig:"POS_SEQUENCE_FILE" default:"ultima_factura.txt"`
	PurchaseFile  string `envconfig:"POS_PURCHASE_FILE" default:"pedido.txt"`

	DailyDir           string `envconfig:"POS_DAILY_DIR" default:"diario"`
	PendingOrdersDir   string `envconfig:"POS_PENDING_DIR" default:"pedidos pendientes"`
	AcceptedOrdersDir  string `envconfig:"POS_ACCEPTED_DIR" default:"pedidos aceptados"`
	InvoiceDir         string `envconfig:"POS_INVOICE_DIR" default:"facturas"`
	DeliveryInvoiceDir string `envconfig:"POS_DELIVERY_INVOICE_DIR" default:"facturas_domicilios"`

	LowStockThreshold int `envconfig:"POS_LOW_STOCK_THRESHOLD" default:"5"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path resolves a file or directory name inside the data directory.
func (c *Config) Path(name string) string {
	return filepath.Join(c.DataDir, name)
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
