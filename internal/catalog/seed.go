package catalog

import "github.com/DhruvsOLaNkiI/Minimal-store/internal/domain"

var seedProducts = []domain.Product{
	{
		ID:          "1",
		Name:        "Minimalist Watch",
		Price:       299,
		Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30",
		Description: "Elegant timepiece with premium leather strap",
		Details:     "This minimalist watch features a clean dial design, premium leather strap, and precise Japanese movement. Perfect for both casual and formal occasions.",
	},
	{
		ID:          "2",
		Name:        "Leather Wallet",
		Price:       129,
		Image:       "https://images.unsplash.com/photo-1627123424574-724758594e93",
		Description: "Handcrafted genuine leather bifold wallet",
		Details:     "Crafted from full-grain leather, this wallet features multiple card slots, a bill compartment, and RFID protection technology.",
	},
	{
		ID:          "3",
		Name:        "Silk Scarf",
		Price:       189,
		Image:       "https://images.unsplash.com/photo-1584917865442-de89df76afd3",
		Description: "Pure silk scarf with artistic pattern",
		Details:     "Made from 100% pure silk, this scarf features a unique artistic pattern. The lightweight fabric drapes beautifully and adds elegance to any outfit.",
	},
	{
		ID:          "4",
		Name:        "Gold Bracelet",
		Price:       459,
		Image:       "https://images.unsplash.com/photo-1573408301185-9146fe634ad0",
		Description: "18k gold-plated minimalist bracelet",
		Details:     "This elegant bracelet is plated with 18k gold and features a minimalist design. Perfect for everyday wear or special occasions.",
	},
}

var seedTrending = []string{"1", "2"}

var seedPromotions = []domain.Promotion{
	{
		ID:          1,
		Title:       "Summer Sale",
		Description: "Up to 50% off on selected items",
		Image:       "https://images.unsplash.com/photo-1500673922987-e212871fec22",
	},
	{
		ID:          2,
		Title:       "New Collection",
		Description: "Check out our latest arrivals",
		Image:       "https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07",
	},
}
