package repository

// Demo seed for the mock catalog path. The records intentionally mix
// the field spellings seen across real feeds; the normalizer is the
// only place that knows about the variants.

var seedVendors = []map[string]any{
	{"id": 1, "name": "TechWorld", "logo_url": "https://cdn.example.com/logos/techworld.png", "rating": 4.6, "certification": "gold", "payment_methods": []any{"card", "paypal", "cash"}},
	{"id": 2, "name": "GadgetHub", "logo": "https://cdn.example.com/logos/gadgethub.png", "rating": 4.2, "payment_methods": []any{"card"}},
	{"id": 3, "name": "ElectroMart", "logoUrl": "https://cdn.example.com/logos/electromart.png", "rating": 3.9, "certification": "silver", "address": []any{"12 Market St", "94 Harbor Ave"}},
	{"id": 4, "name": "BudgetBytes", "logo": "https://cdn.example.com/logos/budgetbytes.png", "rating": 4.0},
}

var seedCategories = []map[string]any{
	{"id": 1, "name": "Computers"},
	{"id": 2, "name": "Laptops", "parent_id": 1},
	{"id": 3, "name": "Desktop PCs", "parentId": 1},
	{"id": 4, "name": "Mobile Phones"},
	{"id": 5, "name": "Smartphones", "parent_id": 4},
	{"id": 6, "name": "Audio"},
	{"id": 7, "name": "Headphones & Earbuds", "parent_id": 6},
}

var seedProducts = []map[string]any{
	{
		"id":    "7b0d67a2-52b8-4f58-8c6a-1f1f30e7a401",
		"title": "AeroBook 14 Pro",
		"brand": "Nimbus", "model": "AB14-2024",
		"description":  "14-inch ultrabook with a 120Hz display.",
		"image":        "https://cdn.example.com/p/aerobook-14.jpg",
		"images":       []any{"https://cdn.example.com/p/aerobook-14.jpg", "https://cdn.example.com/p/aerobook-14-side.jpg"},
		"category_ids": []any{1, 2},
		"rating":       4.7, "review_count": 312,
		"specs": map[string]any{"RAM": "16 GB", "Storage": "512 GB SSD", "Weight": "1.2 kg"},
		"prices": []any{
			map[string]any{"vendor_id": 1, "price": 1099.0, "shipping_cost": 0.0, "in_stock": true},
			map[string]any{"vendorId": 2, "price": 1149.0, "discountPrice": 999.0, "shippingCost": 4.9, "inStock": true},
			map[string]any{"vendor_id": 3, "price": 1049.0, "in_stock": false},
		},
	},
	{
		"_id":  "3f1c2b44-9a7e-4f0d-b1c9-6a2e85c10b02",
		"name": "Pulse X5",
		"brand": "Voltra", "model": "PX5",
		"description": "6.4-inch smartphone, 5000 mAh battery.",
		"imageUrl":    "https://cdn.example.com/p/pulse-x5.jpg",
		"categories":  []any{4, 5},
		"rating":      4.3, "reviewCount": 845,
		"specifications": map[string]any{"Display": "6.4\" OLED", "Battery": "5000 mAh"},
		"offers": []any{
			map[string]any{"vendor_id": 2, "price": 429.0, "discount_price": 379.0, "shipping": 2.5, "in_stock": true},
			map[string]any{"vendor_id": 4, "price": 399.0, "in_stock": true},
			map[string]any{"vendor_id": 1, "price": 419.0, "in_stock": false},
		},
	},
	{
		"id":    "58e9a7a8-0df6-4f4f-9f3c-dd0a4f9b2c03",
		"title": "SoundCore ANC 700",
		"brand": "Aural", "model": "SC-700",
		"description":  "Over-ear noise-cancelling headphones.",
		"image_url":    "https://cdn.example.com/p/soundcore-700.jpg",
		"category_ids": []any{6, 7},
		"rating":       4.5, "reviews": 120,
		"specs": map[string]any{"Driver": "40 mm", "Battery": "30 h"},
		"prices": []any{
			map[string]any{"vendor_id": 3, "price": 199.0, "discount_price": 119.0, "in_stock": true},
			map[string]any{"vendor_id": 4, "price": 189.0, "in_stock": false},
		},
	},
	{
		"id":    "9c64f3d1-2f7b-4d47-8d5b-5a8b1f0cdd04",
		"title": "Tower G2 Gaming Desktop",
		"brand": "Nimbus", "model": "TG2",
		"description":  "Mid-tower gaming PC, RTX graphics.",
		"image":        "https://cdn.example.com/p/tower-g2.jpg",
		"category_ids": []any{1, 3},
		"rating":       4.1, "review_count": 58,
		"prices": []any{
			map[string]any{"vendor_id": 1, "price": 1599.0, "in_stock": false},
		},
	},
	{
		// A feed row with no pricing yet: the product lists without a
		// price and without a buy box.
		"id":    "d2a1c9f7-61f2-4a9e-8c3d-7e5b9a0fbe05",
		"title": "EarDot Mini",
		"brand": "Aural", "model": "ED-1",
		"description":  "True wireless earbuds.",
		"category_ids": []any{6, 7},
		"rating":       3.8, "review_count": 12,
	},
}
