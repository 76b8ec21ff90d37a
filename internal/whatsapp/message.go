// Package whatsapp renders a finalized selection into the text payload
// and deep link handed to the vendor's WhatsApp number.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bigpasteldabel/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// Formatter builds order messages for a single vendor.
type Formatter struct {
	number     string
	vendorName string
}

// NewFormatter creates a formatter for the given WhatsApp number
// (digits only, country code included) and vendor display name.
func NewFormatter(number, vendorName string) *Formatter {
	return &Formatter{number: number, vendorName: vendorName}
}

// OrderInfo carries the customer-facing fields of an order into the
// message template.
type OrderInfo struct {
	CustomerName    string
	DeliveryAddress string
	CouponCode      string
	PaymentMethod   string
}

// Message renders the human-readable order text.
func (f *Formatter) Message(lines []models.OrderLine, subtotal decimal.Decimal, info OrderInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Olá, %s! Gostaria de fazer o seguinte pedido:\n\n", f.vendorName)
	fmt.Fprintf(&b, "*Cliente:* %s\n", info.CustomerName)
	fmt.Fprintf(&b, "*Endereço para Entrega:*\n%s\n\n", info.DeliveryAddress)

	b.WriteString("*Itens do Pedido:*\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "- %dx %s (%s cada)\n", line.Quantity, line.DisplayName, FormatBRL(line.UnitPrice))
	}

	fmt.Fprintf(&b, "\n*Total do Pedido:* %s\n", FormatBRL(subtotal))
	if info.CouponCode != "" {
		fmt.Fprintf(&b, "*Cupom:* %s\n", strings.ToUpper(info.CouponCode))
	}

	payment := info.PaymentMethod
	if payment == "" {
		payment = "Não informada"
	}
	fmt.Fprintf(&b, "*Forma de Pagamento:* %s\n\n", payment)

	b.WriteString("Aguardo a confirmação e o tempo estimado para entrega. Obrigado!")
	return b.String()
}

// Link returns the wa.me deep link carrying the message.
func (f *Formatter) Link(message string) string {
	return "https://wa.me/" + f.number + "?text=" + url.QueryEscape(message)
}

// FormatBRL renders an amount as Brazilian currency, e.g. "R$ 17,00".
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + strings.Replace(amount.StringFixed(2), ".", ",", 1)
}
