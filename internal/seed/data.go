package seed

import "quickeats/internal/domain"

var demoRestaurants = []domain.Restaurant{
	{
		ID:           "1",
		Name:         "Hana Chicken",
		Image:        "https://images.unsplash.com/photo-1626082927389-6cd097cdc6ec",
		Rating:       4.8,
		Reviews:      289,
		DeliveryTime: "15 mins",
		Distance:     "2 km",
		PriceRange:   "$5 - $50",
		Tags:         []string{"Freeship", "Near you", "Deal $1"},
		Categories:   []string{"Fried Chicken"},
		Location:     domain.Coordinate{Lat: 10.8231, Lng: 106.6297},
		Address:      "123 Nguyen Hue Street, District 1, HCMC",
	},
	{
		ID:           "2",
		Name:         "Bamsu Restaurant",
		Image:        "https://images.unsplash.com/photo-1555939594-58d7cb561ad1",
		Rating:       4.1,
		Reviews:      156,
		DeliveryTime: "35 mins",
		Distance:     "4.5 km",
		PriceRange:   "$10 - $60",
		Tags:         []string{"Freeship", "Near you"},
		Categories:   []string{"Chicken Salad", "Sandwich", "Desserts"},
		Location:     domain.Coordinate{Lat: 10.7769, Lng: 106.7009},
		Address:      "456 Le Lai Street, District 1, HCMC",
	},
	{
		ID:           "3",
		Name:         "B'Fresh Coffee",
		Image:        "https://images.unsplash.com/photo-1509042239860-f550ce710b93",
		Rating:       4.5,
		Reviews:      342,
		DeliveryTime: "30 mins",
		Distance:     "3.2 km",
		PriceRange:   "$3 - $20",
		Tags:         []string{"Freeship", "Near you"},
		Categories:   []string{"Coffee", "Drink"},
		Location:     domain.Coordinate{Lat: 10.7626, Lng: 106.6820},
		Address:      "789 Pasteur Street, District 3, HCMC",
	},
	{
		ID:           "4",
		Name:         "Loran Seafood",
		Image:        "https://images.unsplash.com/photo-1559339352-11d035aa65de",
		Rating:       4.7,
		Reviews:      198,
		DeliveryTime: "30 mins",
		Distance:     "5 km",
		PriceRange:   "$15 - $80",
		Tags:         []string{"Deal $1"},
		Categories:   []string{"Seafood"},
		Location:     domain.Coordinate{Lat: 10.7891, Lng: 106.6946},
		Address:      "321 Hai Ba Trung Street, District 1, HCMC",
	},
	{
		ID:           "5",
		Name:         "Laura Green",
		Image:        "https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
		Rating:       4.2,
		Reviews:      267,
		DeliveryTime: "20 mins",
		Distance:     "1.8 km",
		PriceRange:   "$8 - $35",
		Tags:         []string{"Deal $1", "-25%"},
		Categories:   []string{"Healthy", "Salad"},
		Location:     domain.Coordinate{Lat: 10.7733, Lng: 106.6982},
		Address:      "654 Vo Van Tan Street, District 3, HCMC",
	},
}

var demoCategories = []domain.Category{
	{ID: "c1", Name: "Rice", Icon: "🍚", Color: "#E3F2FD"},
	{ID: "c2", Name: "Healthy", Icon: "🥗", Color: "#F3E5F5"},
	{ID: "c3", Name: "Drink", Icon: "🧃", Color: "#E1F5FE"},
	{ID: "c4", Name: "Fastfood", Icon: "🍔", Color: "#FFF3E0"},
	{ID: "c5", Name: "Seafood", Icon: "🦞", Color: "#FCE4EC"},
	{ID: "c6", Name: "Dessert", Icon: "🍰", Color: "#FFF9C4"},
}

var demoMenuItems = []domain.MenuItem{
	{
		ID:           "m1",
		RestaurantID: "1",
		Name:         "Fried Chicken",
		Description:  "Crispy fried wings, thigh",
		Image:        "https://images.unsplash.com/photo-1626082927389-6cd097cdc6ec",
		PriceCents:   1500,
		Rating:       4.5,
		Reviews:      99,
		Category:     "Main Course",
		Sizes: []domain.Size{
			{ID: "s1", Name: "S", PriceCents: 0},
			{ID: "s2", Name: "M", PriceCents: 500},
			{ID: "s3", Name: "L", PriceCents: 1000},
		},
		Toppings: []domain.Topping{
			{ID: "t1", Name: "Corn", PriceCents: 200},
			{ID: "t2", Name: "Cheese Cheddar", PriceCents: 500},
			{ID: "t3", Name: "Salted egg", PriceCents: 1000},
		},
		SpicyLevels: []domain.SpicyLevel{
			{ID: "sp1", Name: "No", Icon: "😊"},
			{ID: "sp2", Name: "Hot", Icon: "🌶️"},
			{ID: "sp3", Name: "Very hot", Icon: "🔥"},
		},
	},
	{
		ID:           "m2",
		RestaurantID: "1",
		Name:         "Chicken Salad",
		Description:  "Fresh salad with grilled chicken",
		Image:        "https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
		PriceCents:   1500,
		Rating:       4.5,
		Reviews:      39,
		Category:     "Salad",
	},
	{
		ID:           "m3",
		RestaurantID: "1",
		Name:         "Spicy Chicken",
		Description:  "Hot and spicy fried chicken",
		Image:        "https://images.unsplash.com/photo-1598103442097-8b74394b95c6",
		PriceCents:   1500,
		Rating:       4.5,
		Reviews:      99,
		Category:     "Main Course",
	},
	{
		ID:           "m4",
		RestaurantID: "1",
		Name:         "Fried Potatos",
		Description:  "Crispy golden french fries",
		Image:        "https://images.unsplash.com/photo-1573080496219-bb080dd4f877",
		PriceCents:   1500,
		Rating:       4.5,
		Reviews:      99,
		Category:     "Side Dish",
	},
	{
		ID:           "m5",
		RestaurantID: "1",
		Name:         "Saute Chicken Rice",
		Description:  "Sauté chicken, Rice",
		Image:        "https://images.unsplash.com/photo-1512058564366-18510be2db19",
		PriceCents:   1500,
		Rating:       4.5,
		Reviews:      99,
		Category:     "Main Course",
	},
	{
		ID:           "m6",
		RestaurantID: "1",
		Name:         "Chicken Burger",
		Description:  "Fried chicken, Cheese & Burger",
		Image:        "https://images.unsplash.com/photo-1568901346375-23c9450c58cd",
		PriceCents:   1500,
		Rating:       4.5,
		Reviews:      99,
		Category:     "Burger",
	},
	{
		ID:           "m7",
		RestaurantID: "1",
		Name:         "Fried Chicken & Potatos",
		Description:  "Combo meal with chicken and fries",
		Image:        "https://images.unsplash.com/photo-1562967914-608f82629710",
		PriceCents:   2600,
		Rating:       4.5,
		Reviews:      39,
		Category:     "Combo",
	},
}

var demoVouchers = []domain.Voucher{
	{
		ID:          "v1",
		Title:       "10% Discount",
		Description: "Get 10% off on your order",
		Badge:       "- 10%",
		Icon:        "🎫",
		Kind:        domain.VoucherPercentage,
		Value:       10,
	},
	{
		ID:          "v2",
		Title:       "Free Shipping",
		Description: "No delivery fee",
		Badge:       "-$1 shipping fee",
		Icon:        "🛵",
		Kind:        domain.VoucherFreeShip,
		Value:       100,
	},
	{
		ID:          "v3",
		Title:       "E-wallet Discount",
		Description: "Pay with e-wallet to get discount",
		Badge:       "-10% for E-wallet",
		Icon:        "💳",
		Kind:        domain.VoucherPercentage,
		Value:       10,
	},
	{
		ID:            "v4",
		Title:         "Big Order Discount",
		Description:   "For orders over $50",
		Badge:         "- 30% for bill over $50",
		Icon:          "📱",
		Kind:          domain.VoucherPercentage,
		Value:         30,
		MinOrderCents: 5000,
	},
}
