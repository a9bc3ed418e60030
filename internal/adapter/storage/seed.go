package storage

import "github.com/cocoa-apparel/storefront/internal/core/domain"

// Seed data for the default in-memory catalog. Prices are whole LKR.
// Category product counts are seed artifacts: the service recomputes them.

func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "1", Name: "Neon Dreams Oversized Tee", Price: 4500,
			Category: "anime", Subcategory: "oversized",
			Image:       "/oversized-black-tshirt-anime-inspired-neon-graphic.jpg",
			Description: "A premium oversized tee featuring anime-inspired neon graphics. Made from 100% cotton for ultimate comfort.",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Black", "White", "Navy"},
			Tags:        []string{"anime", "oversized", "neon"},
			IsNew:       true, Rating: 4.8, Reviews: 124,
		},
		{
			ID: "2", Name: "Idol Wave Crop Hoodie", Price: 6800, OriginalPrice: 8500,
			Category: "kpop", Subcategory: "hoodies",
			Image:       "/cropped-hoodie-kpop-inspired-streetwear-pink-accen.jpg",
			Description: "K-pop inspired cropped hoodie with signature wave design. Perfect for concerts and everyday wear.",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Black", "Pink", "Lavender"},
			Tags:        []string{"kpop", "hoodie", "cropped"},
			Rating:      4.9, Reviews: 89,
		},
		{
			ID: "3", Name: "Pixel Warrior Jersey", Price: 5500,
			Category: "gaming", Subcategory: "basic",
			Image:       "/gaming-jersey-tshirt-pixel-art-dark-theme.jpg",
			Description: "Rep your gamer status with this pixel art inspired jersey. Moisture-wicking fabric for long gaming sessions.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Purple", "Green"},
			Tags:        []string{"gaming", "jersey", "pixel"},
			IsNew:       true, Rating: 4.7, Reviews: 67,
		},
		{
			ID: "4", Name: "Sakura Spirit Tee", Price: 4200,
			Category: "anime", Subcategory: "basic",
			Image:       "/japanese-cherry-blossom-tshirt-anime-aesthetic.jpg",
			Description: "Delicate sakura-inspired design celebrating Japanese anime culture. Soft cotton blend.",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"White", "Black", "Pink"},
			Tags:        []string{"anime", "sakura", "japanese"},
			Rating:      4.6, Reviews: 156,
		},
		{
			ID: "5", Name: "Seoul Nights Hoodie", Price: 7800,
			Category: "kpop", Subcategory: "hoodies",
			Image:       "/korean-streetwear-hoodie-neon-city-lights.jpg",
			Description: "Premium heavyweight hoodie with Seoul city lights graphic. Korean street style at its finest.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Gray"},
			Tags:        []string{"kpop", "hoodie", "seoul"},
			IsLimited:   true, Rating: 4.9, Reviews: 203,
		},
		{
			ID: "6", Name: "Boss Level Oversized", Price: 4800,
			Category: "gaming", Subcategory: "oversized",
			Image:       "/gaming-oversized-tshirt-boss-level-graphic-dark.jpg",
			Description: "Show everyone you are on boss level. Ultra-soft oversized fit with gaming-inspired graphics.",
			Sizes:       []string{"M", "L", "XL", "XXL"},
			Colors:      []string{"Black", "Charcoal"},
			Tags:        []string{"gaming", "oversized", "boss"},
			Rating:      4.5, Reviews: 78,
		},
		{
			ID: "7", Name: "Mecha Core Tee", Price: 4400,
			Category: "anime", Subcategory: "basic",
			Image:       "/mecha-robot-anime-tshirt-dark-industrial.jpg",
			Description: "Inspired by classic mecha anime. Industrial-style graphics on premium cotton.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "White", "Red"},
			Tags:        []string{"anime", "mecha", "robot"},
			Rating:      4.7, Reviews: 92,
		},
		{
			ID: "8", Name: "Bias Wrecker Crop", Price: 3800, OriginalPrice: 4800,
			Category: "kpop", Subcategory: "basic",
			Image:       "/cropped-tshirt-kpop-fan-streetwear.jpg",
			Description: "For when your bias changes every comeback. Cropped fit, bold statement.",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Black", "White", "Purple"},
			Tags:        []string{"kpop", "cropped", "fan"},
			IsNew:       true, Rating: 4.8, Reviews: 145,
		},
		{
			ID: "9", Name: "Cyber Punk Oversized", Price: 5200,
			Category: "gaming", Subcategory: "oversized",
			Image:       "/gaming-inspired-streetwear-neon-aesthetic.jpg",
			Description: "Futuristic cyber punk design for gamers who live in the future. Oversized comfort fit.",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Black", "Neon Green"},
			Tags:        []string{"gaming", "cyberpunk", "oversized"},
			Rating:      4.6, Reviews: 58,
		},
		{
			ID: "10", Name: "Anime Eyes Hoodie", Price: 7200,
			Category: "anime", Subcategory: "hoodies",
			Image:       "/streetwear-hoodie-dark-aesthetic.jpg",
			Description: "Iconic anime eyes design on a premium heavyweight hoodie. Cozy and expressive.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "White"},
			Tags:        []string{"anime", "hoodie", "eyes"},
			IsNew:       true, Rating: 4.9, Reviews: 187,
		},
		{
			ID: "11", Name: "Stage Presence Tee", Price: 4000,
			Category: "kpop", Subcategory: "basic",
			Image:       "/kpop-inspired-fashion-dark-aesthetic.jpg",
			Description: "Designed for those who command attention. K-pop inspired with bold graphics.",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Black", "Pink", "White"},
			Tags:        []string{"kpop", "stage", "idol"},
			Rating:      4.5, Reviews: 112,
		},
		{
			ID: "12", Name: "Retro Console Tee", Price: 4200,
			Category: "gaming", Subcategory: "basic",
			Image:       "/exclusive-limited-edition-streetwear.jpg",
			Description: "Nostalgic retro gaming vibes on modern streetwear. For the OG gamers.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Gray", "Red"},
			Tags:        []string{"gaming", "retro", "console"},
			IsLimited:   true, Rating: 4.8, Reviews: 94,
		},
	}
}

func SeedCategories() []domain.Category {
	return []domain.Category{
		{
			ID: "1", Name: "Anime", Slug: "anime",
			Image:       "/anime-inspired-streetwear-dark-aesthetic.jpg",
			Description: "Express your love for Japanese animation",
			ProductCount: 24,
		},
		{
			ID: "2", Name: "K-Pop", Slug: "kpop",
			Image:       "/kpop-inspired-fashion-dark-aesthetic.jpg",
			Description: "Inspired by Korean pop culture",
			ProductCount: 18,
		},
		{
			ID: "3", Name: "Gaming", Slug: "gaming",
			Image:       "/gaming-inspired-streetwear-neon-aesthetic.jpg",
			Description: "Level up your style",
			ProductCount: 21,
		},
		{
			ID: "4", Name: "Oversized", Slug: "oversized",
			Image:       "/oversized-streetwear-tshirt-dark.jpg",
			Description: "Comfort meets style",
			ProductCount: 32,
		},
		{
			ID: "5", Name: "Hoodies", Slug: "hoodies",
			Image:       "/streetwear-hoodie-dark-aesthetic.jpg",
			Description: "Stay cozy, stay cool",
			ProductCount: 15,
		},
		{
			ID: "6", Name: "Limited Drops", Slug: "limited",
			Image:       "/exclusive-limited-edition-streetwear.jpg",
			Description: "Exclusive releases",
			ProductCount: 8,
		},
	}
}
