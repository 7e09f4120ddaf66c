package vendus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexInt is an integer field the API sends either as a JSON number or as a
// numeric string. Null and "" decode to 0.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = 0

		return nil
	}

	raw := string(data)

	if len(data) > 0 && data[0] == '"' {
		err := json.Unmarshal(data, &raw)
		if err != nil {
			return fmt.Errorf("parsing integer %s: %w", string(data), err)
		}

		raw = strings.TrimSpace(raw)
		if raw == "" {
			*n = 0

			return nil
		}
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing integer %s: %w", string(data), err)
	}

	*n = FlexInt(value)

	return nil
}

// Client represents a customer record (/clients).
type Client struct {
	ID                int64  `json:"id"                           yaml:"id"`
	FiscalID          string `json:"fiscal_id,omitempty"          yaml:"fiscal_id,omitempty"`
	ExternalReference string `json:"external_reference,omitempty" yaml:"external_reference,omitempty"`
	Name              string `json:"name"                         yaml:"name"`
	Address           string `json:"address,omitempty"            yaml:"address,omitempty"`
	PostalCode        string `json:"postalcode,omitempty"         yaml:"postalcode,omitempty"`
	City              string `json:"city,omitempty"               yaml:"city,omitempty"`
	Country           string `json:"country,omitempty"            yaml:"country,omitempty"`
	Phone             string `json:"phone,omitempty"              yaml:"phone,omitempty"`
	Mobile            string `json:"mobile,omitempty"             yaml:"mobile,omitempty"`
	Email             string `json:"email,omitempty"              yaml:"email,omitempty"`
	Website           string `json:"website,omitempty"            yaml:"website,omitempty"`
	Notes             string `json:"notes,omitempty"              yaml:"notes,omitempty"`
	Status            string `json:"status,omitempty"             yaml:"status,omitempty"`
	PriceGroup        *int64 `json:"price_group,omitempty"        yaml:"price_group,omitempty"`
	SendEmail         string `json:"send_email,omitempty"         yaml:"send_email,omitempty"`
}

// Product represents a catalogue item (/products).
type Product struct {
	ID           int64           `json:"id"                      yaml:"id"`
	Reference    string          `json:"reference,omitempty"     yaml:"reference,omitempty"`
	Barcode      string          `json:"barcode,omitempty"       yaml:"barcode,omitempty"`
	SupplierCode string          `json:"supplier_code,omitempty" yaml:"supplier_code,omitempty"`
	Title        string          `json:"title"                   yaml:"title"`
	Description  string          `json:"description,omitempty"   yaml:"description,omitempty"`
	UnitID       FlexInt         `json:"unit_id,omitempty"       yaml:"unit_id,omitempty"`
	TypeID       string          `json:"type_id,omitempty"       yaml:"type_id,omitempty"`
	ClassID      string          `json:"class_id,omitempty"      yaml:"class_id,omitempty"`
	TaxID        string          `json:"tax_id,omitempty"        yaml:"tax_id,omitempty"`
	CategoryID   FlexInt         `json:"category_id,omitempty"   yaml:"category_id,omitempty"`
	BrandID      FlexInt         `json:"brand_id,omitempty"      yaml:"brand_id,omitempty"`
	GrossPrice   decimal.Decimal `json:"gross_price"             yaml:"gross_price"`
	SupplyPrice  decimal.Decimal `json:"supply_price"            yaml:"supply_price"`
	Stock        decimal.Decimal `json:"stock"                   yaml:"stock"`
	StockControl FlexInt         `json:"stock_control,omitempty" yaml:"stock_control,omitempty"`
	Status       string          `json:"status,omitempty"        yaml:"status,omitempty"`
}

// Unit represents a product measurement unit (/products/units).
type Unit struct {
	ID      int64  `json:"id"      yaml:"id"`
	Title   string `json:"title"   yaml:"title"`
	Default bool   `json:"default" yaml:"default"`
}

// Document represents an invoice, receipt or other fiscal document (/documents).
type Document struct {
	ID                int64             `json:"id"                           yaml:"id"`
	Number            string            `json:"number"                       yaml:"number"`
	Type              string            `json:"type"                         yaml:"type"`
	Date              string            `json:"date,omitempty"               yaml:"date,omitempty"`
	SystemTime        string            `json:"system_time,omitempty"        yaml:"system_time,omitempty"`
	LocalTime         string            `json:"local_time,omitempty"         yaml:"local_time,omitempty"`
	ExternalReference string            `json:"external_reference,omitempty" yaml:"external_reference,omitempty"`
	AmountGross       decimal.Decimal   `json:"amount_gross"                 yaml:"amount_gross"`
	AmountNet         decimal.Decimal   `json:"amount_net"                   yaml:"amount_net"`
	Hash              string            `json:"hash,omitempty"               yaml:"hash,omitempty"`
	Status            string            `json:"status,omitempty"             yaml:"status,omitempty"`
	Client            *DocumentClient   `json:"client,omitempty"             yaml:"client,omitempty"`
	Items             []DocumentItem    `json:"items,omitempty"              yaml:"items,omitempty"`
	Payments          []DocumentPayment `json:"payments,omitempty"           yaml:"payments,omitempty"`
}

// DocumentClient is the customer summary embedded in a document.
type DocumentClient struct {
	ID       int64  `json:"id"                  yaml:"id"`
	FiscalID string `json:"fiscal_id,omitempty" yaml:"fiscal_id,omitempty"`
	Name     string `json:"name,omitempty"      yaml:"name,omitempty"`
}

// DocumentItem is a document line.
type DocumentItem struct {
	ID          int64           `json:"id,omitempty"        yaml:"id,omitempty"`
	Reference   string          `json:"reference,omitempty" yaml:"reference,omitempty"`
	Title       string          `json:"title"               yaml:"title"`
	Qty         decimal.Decimal `json:"qty"                 yaml:"qty"`
	GrossPrice  decimal.Decimal `json:"gross_price"         yaml:"gross_price"`
	AmountGross decimal.Decimal `json:"amount_gross"        yaml:"amount_gross"`
	AmountNet   decimal.Decimal `json:"amount_net"          yaml:"amount_net"`
}

// DocumentPayment is a payment applied to a document.
type DocumentPayment struct {
	ID     int64           `json:"id"              yaml:"id"`
	Title  string          `json:"title,omitempty" yaml:"title,omitempty"`
	Amount decimal.Decimal `json:"amount"          yaml:"amount"`
}

// PaymentMethod represents an accepted payment method (/documents/paymentmethods).
type PaymentMethod struct {
	ID     int64  `json:"id"               yaml:"id"`
	Title  string `json:"title"            yaml:"title"`
	Type   string `json:"type,omitempty"   yaml:"type,omitempty"`
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
}

// Page is one page of a paginated list. Total is the item count reported by
// the X-Paginator-Items response header, across all pages.
type Page[T any] struct {
	Data  []T `json:"data"  yaml:"data"`
	Total int `json:"total" yaml:"total"`
}
