package order

import (
	"fmt"
	"net/url"
	"strings"
)

// Message renders a human-readable order summary for the restaurant, in the
// format expected by WhatsApp (asterisk bold markers, newline separated).
// Pure rendering: no state, no failure modes.
func Message(restaurantName string, o *Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Novo Pedido - %s*\n\n", restaurantName)
	fmt.Fprintf(&b, "*Cliente:* %s\n", o.ClientName)
	fmt.Fprintf(&b, "*Telefone:* %s\n", o.ClientPhone)
	if o.ClientAddress != "" {
		fmt.Fprintf(&b, "*Endereço:* %s\n", o.ClientAddress)
	}
	b.WriteString("*Itens do Pedido:*\n")

	for _, line := range o.Lines {
		fmt.Fprintf(&b, "- %dx %s (R$ %.2f)", line.Quantity, line.ItemName, line.UnitPrice)
		if line.Observations != "" {
			fmt.Fprintf(&b, "\n  *Obs:* %s", line.Observations)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n*Total:* R$ %.2f", o.Total)
	if o.Observations != "" {
		fmt.Fprintf(&b, "\n\n*Observações Gerais:* %s", o.Observations)
	}
	fmt.Fprintf(&b, "\n\n*Status:* %s", o.Status)

	return b.String()
}

// WhatsAppURL renders the order summary into a wa.me deep link for the
// restaurant's phone number.
func WhatsAppURL(phone, restaurantName string, o *Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(Message(restaurantName, o)))
}
