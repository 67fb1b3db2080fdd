package catalog

// AdminSeed is the short catalog the admin console falls back to when
// the products key was never written. The storefront ships a fuller
// one, see StorefrontSeed; both target the same store key.
func AdminSeed() []Product {
	return []Product{
		{ID: 101, Name: "Chocolate Truffle Cake", Price: 550, Description: "Rich chocolate layer cake (500g).", Image: "https://images.unsplash.com/photo-1578985545062-69928b1d9587?auto=format&fit=crop&w=800&q=80", Category: "cakes"},
		{ID: 102, Name: "Red Velvet Cake", Price: 600, Description: "Classic red velvet with cream cheese (500g).", Image: "https://images.unsplash.com/photo-1616541823729-00fe0aacd32c?auto=format&fit=crop&w=800&q=80", Category: "cakes"},
		{ID: 201, Name: "Sourdough Loaf", Price: 120, Description: "Artisanal sourdough bread.", Image: "https://images.unsplash.com/photo-1585478564381-e0df37348039?auto=format&fit=crop&w=800&q=80", Category: "breads"},
	}
}

// StorefrontSeed is the full default catalog shown to customers.
func StorefrontSeed() []Product {
	return []Product{
		{ID: 101, Name: "Chocolate Truffle Cake", Price: 550, Description: "Rich chocolate layer cake (500g).", Image: "https://images.unsplash.com/photo-1578985545062-69928b1d9587?auto=format&fit=crop&w=800&q=80", Category: "cakes"},
		{ID: 102, Name: "Red Velvet Cake", Price: 600, Description: "Classic red velvet with cream cheese (500g).", Image: "https://images.unsplash.com/photo-1616541823729-00fe0aacd32c?auto=format&fit=crop&w=800&q=80", Category: "cakes"},
		{ID: 103, Name: "Black Forest Cake", Price: 500, Description: "Chocolate sponge with cherries (500g).", Image: "https://images.unsplash.com/photo-1606890737304-57a1ca8a5b62?auto=format&fit=crop&w=800&q=80", Category: "cakes"},
		{ID: 104, Name: "Pineapple Cake", Price: 450, Description: "Fresh cream pineapple cake (500g).", Image: "https://images.unsplash.com/photo-1506459225024-1428097a7e18?auto=format&fit=crop&w=800&q=80", Category: "cakes"},
		{ID: 105, Name: "Fruit Cake", Price: 550, Description: "Loaded with fresh seasonal fruits (500g).", Image: "https://images.unsplash.com/photo-1488477304112-4944851de03d?auto=format&fit=crop&w=800&q=80", Category: "cakes"},
		{ID: 201, Name: "Sourdough Loaf", Price: 120, Description: "Artisanal sourdough bread.", Image: "https://images.unsplash.com/photo-1549931319-a545dcf3bc73?auto=format&fit=crop&w=800&q=80", Category: "breads"},
		{ID: 202, Name: "Whole Wheat Bread", Price: 45, Description: "Healthy whole wheat sliced bread.", Image: "https://images.unsplash.com/photo-1509440159596-0249088772ff?auto=format&fit=crop&w=800&q=80", Category: "breads"},
		{ID: 203, Name: "Multigrain Bread", Price: 60, Description: "Rich with 7 grains and seeds.", Image: "https://images.unsplash.com/photo-1598373182133-52452f7691f5?auto=format&fit=crop&w=800&q=80", Category: "breads"},
		{ID: 204, Name: "Burger Buns", Price: 40, Description: "Pack of 4 soft burger buns.", Image: "https://images.unsplash.com/photo-1558230044-8d4e414c9f13?auto=format&fit=crop&w=800&q=80", Category: "breads"},
		{ID: 301, Name: "Croissant", Price: 80, Description: "Buttery flaky croissant.", Image: "https://images.unsplash.com/photo-1555507036-ab1f4038808a?auto=format&fit=crop&w=800&q=80", Category: "pastries"},
		{ID: 302, Name: "Blueberry Muffin", Price: 60, Description: "Soft muffin with fresh blueberries.", Image: "https://images.unsplash.com/photo-1558401367-94467f57d977?auto=format&fit=crop&w=800&q=80", Category: "pastries"},
		{ID: 303, Name: "Chocolate Eclair", Price: 70, Description: "Filled with cream and topped with chocolate.", Image: "https://images.unsplash.com/photo-1612203985729-70726954388c?auto=format&fit=crop&w=800&q=80", Category: "pastries"},
		{ID: 304, Name: "Fruit Tart", Price: 90, Description: "Crunchy tart with custard and fruits.", Image: "https://images.unsplash.com/photo-1567171466295-4afa63d45416?auto=format&fit=crop&w=800&q=80", Category: "pastries"},
		{ID: 401, Name: "Choco Chip Cookies", Price: 150, Description: "Pack of 6 chewy cookies.", Image: "https://images.unsplash.com/photo-1499636138143-bd649043ea52?auto=format&fit=crop&w=800&q=80", Category: "cookies"},
		{ID: 402, Name: "Oatmeal Raisin", Price: 140, Description: "Healthy oats and raisin cookies.", Image: "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?auto=format&fit=crop&w=800&q=80", Category: "cookies"},
		{ID: 403, Name: "Macarons", Price: 350, Description: "Box of 5 assorted macarons.", Image: "https://images.unsplash.com/photo-1569864358642-9d1684040f43?auto=format&fit=crop&w=800&q=80", Category: "cookies"},
		{ID: 404, Name: "Butter Cookies", Price: 120, Description: "Classic melt-in-mouth butter cookies.", Image: "https://images.unsplash.com/photo-1590080875515-8a3a8dc5735e?auto=format&fit=crop&w=800&q=80", Category: "cookies"},
	}
}
