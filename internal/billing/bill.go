package billing

import (
	"bytes"
	"text/template"

	"trishaw-backend/internal/models"
)

// Formatting only. The bill consumes one resolved (sale, vehicle) pair and
// carries no business rules.

const billTemplate = `==============================================
           THREE-WHEELER SALES BILL
==============================================
Bill No    : {{.Sale.ID}}
Sale Date  : {{.Sale.SaleDate}}

VEHICLE
  Model        : {{.Vehicle.ModelName}}
  Year         : {{if .Vehicle.Year}}{{.Vehicle.Year}}{{else}}-{{end}}
  Registration : {{orDash .Vehicle.Registration}}
  Chassis No   : {{orDash .Vehicle.ChassisNo}}
  Engine No    : {{orDash .Vehicle.EngineNo}}
  Color        : {{orDash .Vehicle.Color}}

BUYER
  Name    : {{.Sale.BuyerName}}
  Address : {{.Sale.BuyerAddress}}
  NIC     : {{.Sale.BuyerNIC}}
  Phone   : {{.Sale.BuyerPhone}}

PAYMENT
  Method        : {{.Sale.Method}}
  Selling Price : {{.Sale.SellingPrice.StringFixed 2}}
{{- if .Sale.Notes}}

Notes: {{.Sale.Notes}}
{{- end}}

----------------------------------------------
   Buyer signature          Seller signature
==============================================
`

var billTmpl = template.Must(template.New("bill").Funcs(template.FuncMap{
	"orDash": func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	},
}).Parse(billTemplate))

type billData struct {
	Sale    models.Sale
	Vehicle models.Vehicle
}

// FormatBill renders the printable plaintext receipt for one resolved sale.
func FormatBill(sale models.Sale, vehicle models.Vehicle) (string, error) {
	var buf bytes.Buffer
	if err := billTmpl.Execute(&buf, billData{Sale: sale, Vehicle: vehicle}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
