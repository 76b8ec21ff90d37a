package models

import "github.com/shopspring/decimal"

// DefaultAppData returns the bundled catalog used when no persisted
// snapshot can be loaded. It mirrors the vendor's printed menu.
func DefaultAppData() AppData {
	p17 := decimal.RequireFromString("17.00")
	p20 := decimal.RequireFromString("20.00")
	zero := decimal.RequireFromString("0.00")

	items := []MenuItem{
		// Pastéis salgados
		{ID: "pastel_queijo", Name: "QUEIJO", Description: "Mussarela de primeira qualidade.", Price: p17, Category: "pasteis_salgados", ItemType: ItemTypeComposable, IsAvailable: true},
		{ID: "pastel_queijo_presunto", Name: "QUEIJO C/ PRESUNTO", Description: "Mussarela e presunto sadia.", Price: p17, Category: "pasteis_salgados", ItemType: ItemTypeComposable, IsAvailable: true},
		{ID: "pastel_carne", Name: "CARNE", Description: "Carne moída temperada.", Price: p17, Category: "pasteis_salgados", ItemType: ItemTypeComposable, IsAvailable: true},
		{ID: "pastel_carne_queijo", Name: "CARNE C/ QUEIJO", Description: "Carne moída e mussarela.", Price: p17, Category: "pasteis_salgados", ItemType: ItemTypeComposable, IsAvailable: true},
		{ID: "pastel_frango", Name: "FRANGO", Description: "Frango desfiado e temperado.", Price: p17, Category: "pasteis_salgados", ItemType: ItemTypeComposable, IsAvailable: true},
		{ID: "pastel_frango_queijo", Name: "FRANGO C/ QUEIJO", Description: "Frango desfiado com mussarela.", Price: p17, Category: "pasteis_salgados", ItemType: ItemTypeComposable, IsAvailable: true},
		{ID: "pastel_calabresa_queijo", Name: "CALABRESA C/ QUEIJO", Description: "Calabresa fatiada com mussarela.", Price: p17, Category: "pasteis_salgados", ItemType: ItemTypeComposable, IsAvailable: true},
		{ID: "pastel_napolitano", Name: "NAPOLITANO", Description: "Queijo, presunto, tomate e orégano.", Price: p17, Category: "pasteis_salgados", ItemType: ItemTypeComposable, IsAvailable: true},

		// Especial
		{ID: "pastel_camarao_cremoso", Name: "CAMARÃO CREMOSO", Description: "Camarões selecionados com creme especial.", Price: p20, Category: "especial", ItemType: ItemTypeComposable, IsAvailable: true},

		// Pastéis doces
		{ID: "pastel_banana_queijo", Name: "BANANA C/ QUEIJO", Description: "Banana nanica com mussarela.", Price: p17, Category: "pasteis_doces", ItemType: ItemTypeComposable, IsAvailable: true},
		{ID: "pastel_banana_chocolate", Name: "BANANA C/ CHOCOLATE", Description: "Banana com chocolate ao leite.", Price: p17, Category: "pasteis_doces", ItemType: ItemTypeComposable, IsAvailable: true},
		{ID: "pastel_banana_acucar_canela", Name: "BANANA C/ AÇÚCAR E CANELA", Description: "Banana polvilhada com açúcar e canela.", Price: p17, Category: "pasteis_doces", ItemType: ItemTypeComposable, IsAvailable: true},
		{ID: "pastel_queijo_chocolate", Name: "QUEIJO C/ CHOCOLATE", Description: "Mussarela com chocolate ao leite.", Price: p17, Category: "pasteis_doces", ItemType: ItemTypeComposable, IsAvailable: true},
		{ID: "pastel_romeu_julieta_limao", Name: "ROMEU E JULIETA C/ RASPAS DE LIMÃO", Description: "Goiabada, mussarela e raspas de limão.", Price: p17, Category: "pasteis_doces", ItemType: ItemTypeComposable, IsAvailable: true},

		// Bebidas
		{ID: "bebida_coca_lata", Name: "COCA-COLA LATA", Description: "Refrigerante Coca-Cola lata 350ml.", Price: decimal.RequireFromString("6.00"), Category: "bebidas", ItemType: ItemTypeStandalone, IsAvailable: true},
		{ID: "bebida_guarana_lata", Name: "GUARANÁ ANTARCTICA LATA", Description: "Refrigerante Guaraná Antarctica lata 350ml.", Price: decimal.RequireFromString("5.50"), Category: "bebidas", ItemType: ItemTypeStandalone, IsAvailable: true},

		// Bordas
		{ID: "borda_cheddar", Name: "CHEDDAR", Description: "Borda recheada com cheddar cremoso.", Price: zero, Category: "borda_option", ItemType: ItemTypeTopping, IsAvailable: true},
		{ID: "borda_catupiry", Name: "CATUPIRY", Description: "Borda recheada com Catupiry original.", Price: zero, Category: "borda_option", ItemType: ItemTypeTopping, IsAvailable: true},
		{ID: "borda_chocolate", Name: "CHOCOLATE", Description: "Borda recheada com chocolate ao leite.", Price: zero, Category: "borda_option", ItemType: ItemTypeTopping, IsAvailable: true},
	}

	coupons := []Coupon{
		{
			ID:           "coupon_bemvindo10",
			Code:         "BEMVINDO10",
			Description:  "10% de desconto no primeiro pedido.",
			DiscountType: DiscountPercentage,
			Value:        decimal.RequireFromString("10"),
			IsActive:     true,
		},
	}

	return AppData{MenuItems: items, Coupons: coupons}
}
