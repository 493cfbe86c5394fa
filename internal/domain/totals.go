package domain

// PricingRules — правила расчёта доставки: ступенчатая функция от суммы.
type PricingRules struct {
	FreeShippingThreshold int // от этой суммы (включительно) доставка бесплатна
	ShippingFee           int // фиксированная стоимость доставки ниже порога
}

// Totals — производные суммы корзины.
type Totals struct {
	Subtotal     int `json:"subtotal"`
	ShippingCost int `json:"shipping_cost"`
	GrandTotal   int `json:"grand_total"`
}

// Totals — пересчитывает суммы по текущим позициям при каждом вызове.
// Никакого кэширования: кэшированная сумма разъезжается с позициями.
func (c *Cart) Totals(rules PricingRules) Totals {
	subtotal := 0
	for i := range c.lines {
		subtotal += c.lines[i].Product.Price * c.lines[i].Quantity
	}

	shipping := 0
	if subtotal > 0 && subtotal < rules.FreeShippingThreshold {
		shipping = rules.ShippingFee
	}

	return Totals{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		GrandTotal:   subtotal + shipping,
	}
}
