package content

// Default collections for a store that has never been written.
// Seed ids are fixed, not minted per call: List falls back to the seed
// whenever the store cannot serve the key, and a held id must still
// resolve to the same entry on the next read.

func GallerySeed() []GalleryImage {
	return []GalleryImage{
		{ID: "1f0d8a3e-5c7b-4e9d-8a21-3b6f4c9e7d10", Src: "https://images.unsplash.com/photo-1517433670267-08bbd4be890f?auto=format&fit=crop&w=800&q=80"},
		{ID: "2a9c4e7f-1b3d-4c6a-9e85-7d2f8b4a6c11", Src: "https://images.unsplash.com/photo-1551024601-bec0273e132e?auto=format&fit=crop&w=800&q=80"},
		{ID: "3c7e1f5b-9d2a-4b8e-a4f6-1c9d3e7b5a12", Src: "https://images.unsplash.com/photo-1509440159596-0249088772ff?auto=format&fit=crop&w=800&q=80"},
		{ID: "4e5a9d3c-7f1b-4d2c-b8e4-9a6c1f3d7e13", Src: "https://images.unsplash.com/photo-1588196749597-9ff075ee6b5b?auto=format&fit=crop&w=800&q=80"},
	}
}

func BlogSeed() []BlogPost {
	return []BlogPost{
		{ID: "5b3f7c1e-2d9a-4f6b-8c2d-5e1a9f4b7c20", Title: "Secrets of a Perfect Sourdough", Summary: "Learn the science behind the crust and crumb.", Content: "Full content here...", Image: "https://images.unsplash.com/photo-1585478259715-876acc5be8eb?auto=format&fit=crop&w=800&q=80", Date: "Feb 5, 2026"},
		{ID: "6d1a5e9c-4b7f-4a3e-9d61-8c4e2b7f1a21", Title: "Why Eggless Baking is Trending", Summary: "Discover how we make cakes fluffy without eggs.", Content: "Full content here...", Image: "https://images.unsplash.com/photo-1550617931-e17a7b70dce2?auto=format&fit=crop&w=800&q=80", Date: "Feb 3, 2026"},
		{ID: "7f9c3b5d-6e1a-4c8f-ae37-2b9d6f1c4e22", Title: "Top 5 Pastry Pairings", Summary: "The best coffees to match with our croissants.", Content: "Full content here...", Image: "https://images.unsplash.com/photo-1555507036-ab1f4038808a?auto=format&fit=crop&w=800&q=80", Date: "Feb 1, 2026"},
		{ID: "8a7e5d1f-3c9b-4e6d-b1a9-4f7c3e9b6d23", Title: "Summer Fruit Cake Festival", Summary: "Get ready for the season's freshest bakes.", Content: "Full content here...", Image: "https://images.unsplash.com/photo-1488477304112-4944851de03d?auto=format&fit=crop&w=800&q=80", Date: "Jan 28, 2026"},
		{ID: "9c5b1f7a-8d3e-4b2c-8f45-6a1e9d3b7f24", Title: "The History of Gyan Bakery", Summary: "How we grew from a small kitchen to your favorite bakery.", Content: "Full content here...", Image: "https://images.unsplash.com/photo-1517433670267-08bbd4be890f?auto=format&fit=crop&w=800&q=80", Date: "Jan 25, 2026"},
	}
}

func ReviewSeed() []Review {
	return []Review{
		{ID: "a1e9d7b3-5f2c-4d8a-9b63-7e4a1c8f5d30", Name: "Rahul S.", Rating: 5, Comment: "The Choco Truffle is out of this world! Highly recommend."},
		{ID: "b3c7f1e5-9a4d-4f6e-ad28-1f6b9e4c7a31", Name: "Priya M.", Rating: 5, Comment: "Best sourdough in the city. Fresh and authentic."},
		{ID: "c5a1b9f7-2e6d-4a3c-b7f1-8d2a5c9e3b32", Name: "James B.", Rating: 4, Comment: "Love the atmosphere and the snacks. Great service!"},
		{ID: "d7f5c3a9-4b8e-4e1f-9c84-3a7d1f6e9b33", Name: "Ananya K.", Rating: 5, Comment: "Best eggless options I've ever found. So soft!"},
		{ID: "e9b3a7c1-6d4f-4c5b-8e26-5c9f3a7d1e34", Name: "Vikram R.", Rating: 5, Comment: "Ordered a custom cake for my daughter's birthday. Perfect!"},
	}
}

func VideoSeed() []Video {
	return []Video{
		{ID: "f1d7e5b9-8c2a-4b6d-a9e3-7f1c4b8d2a40", Title: "Artisanal Bread Baking", Src: "https://www.youtube.com/watch?v=2T9pP6nN07M", Type: VideoTypeURL},
		{ID: "0c3a9f7d-1e5b-4d8c-b2f6-9e3a7c5f1d41", Title: "Perfect Cake Frosting", Src: "https://www.youtube.com/watch?v=kYv_8E4A0sI", Type: VideoTypeURL},
		{ID: "1e5c7b3f-9a8d-4f2e-8d97-4b6f9a2e5c42", Title: "Morning in the Bakery", Src: "https://www.youtube.com/watch?v=Xv6S3E2R7_I", Type: VideoTypeURL},
		{ID: "2a7f9d5b-3c1e-4e4a-9f52-6d8b3e1a7c43", Title: "Chocolate Cookie Magic", Src: "https://www.youtube.com/watch?v=Jv2D6VvS9g8", Type: VideoTypeURL},
		{ID: "3c9e1b7d-5f4a-4a6c-ab18-2e7d5c9f3b44", Title: "French Pastry Masterclass", Src: "https://www.youtube.com/watch?v=l_LqB6tJ-qQ", Type: VideoTypeURL},
	}
}
