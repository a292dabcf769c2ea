package seed

type productSeed struct {
	name        string
	category    string
	price       int64
	unit        string
	imageURL    string
	description string
}

type couponSeedEntry struct {
	code               string
	discountPercentage int
	minOrderAmount     int64
	maxUses            int
}

// catalogSeed is the demo storefront catalog.
var catalogSeed = []productSeed{
	// Fruits
	{"Fresh Apples", "fruits", 120, "1kg", "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=300&h=200&fit=crop", "Fresh red apples"},
	{"Bananas", "fruits", 60, "1kg", "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=300&h=200&fit=crop", "Ripe yellow bananas"},
	{"Oranges", "fruits", 100, "1kg", "https://images.unsplash.com/photo-1547514701-42782101795e?w=300&h=200&fit=crop", "Juicy oranges"},
	{"Grapes", "fruits", 150, "500g", "https://images.unsplash.com/photo-1537640538966-79f369143f8f?w=300&h=200&fit=crop", "Sweet grapes"},
	{"Strawberries", "fruits", 200, "250g", "https://images.unsplash.com/photo-1518635017498-87f514b751ba?w=300&h=200&fit=crop", "Fresh strawberries"},
	{"Mangoes", "fruits", 180, "1kg", "https://www.metropolisindia.com/upgrade/blog/upload/25/05/benefits-of-mangoes1747828357.webp", "Sweet mangoes"},
	{"Pineapple", "fruits", 80, "1 piece", "https://images.unsplash.com/photo-1589820296156-2454bb8a6ad1?w=300&h=200&fit=crop", "Fresh pineapple"},
	{"Watermelon", "fruits", 40, "1kg", "https://images.unsplash.com/photo-1587049352846-4a222e784d38?w=300&h=200&fit=crop", "Juicy watermelon"},

	// Vegetables
	{"Carrots", "vegetables", 40, "500g", "https://images.unsplash.com/photo-1445282768818-728615cc910a?w=300&h=200&fit=crop", "Fresh orange carrots"},
	{"Tomatoes", "vegetables", 80, "1kg", "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?w=300&h=200&fit=crop", "Fresh red tomatoes"},
	{"Onions", "vegetables", 30, "1kg", "https://images.unsplash.com/photo-1508747703725-719777637510?w=300&h=200&fit=crop", "Fresh onions"},
	{"Potatoes", "vegetables", 25, "1kg", "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=300&h=200&fit=crop", "Fresh potatoes"},
	{"Broccoli", "vegetables", 60, "500g", "https://images.unsplash.com/photo-1628773822503-930a7eaecf80?w=300&h=200&fit=crop", "Fresh broccoli"},
	{"Spinach", "vegetables", 35, "250g", "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=300&h=200&fit=crop", "Fresh spinach leaves"},
	{"Bell Peppers", "vegetables", 70, "500g", "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83?w=300&h=200&fit=crop", "Colorful bell peppers"},
	{"Cauliflower", "vegetables", 45, "1 piece", "https://images.unsplash.com/photo-1594282486552-05b4d80fbb9f?w=300&h=200&fit=crop", "Fresh cauliflower"},

	// Dairy
	{"Milk", "dairy", 55, "1L", "https://nutritionsource.hsph.harvard.edu/wp-content/uploads/2024/11/AdobeStock_354060824-1024x683.jpeg", "Fresh cow milk"},
	{"Cheese", "dairy", 200, "250g", "https://images.unsplash.com/photo-1486297678162-eb2a19b0a32d?w=300&h=200&fit=crop", "Fresh cheese"},
	{"Yogurt", "dairy", 45, "500g", "https://img.freepik.com/free-vector/realistic-vector-icon-illustration-strawberry-yoghurt-jar-with-spoon-full-yogurt-isolated_134830-2521.jpg?semt=ais_hybrid&w=740&q=80", "Greek yogurt"},
	{"Butter", "dairy", 120, "200g", "https://images.unsplash.com/photo-1589985270826-4b7bb135bc9d?w=300&h=200&fit=crop", "Fresh butter"},
	{"Cream", "dairy", 80, "200ml", "https://www.realsimple.com/thmb/WIQw_c6ePyPKkXAGrFVB5hvMN_A=/1500x0/filters:no_upscale():max_bytes(150000):strip_icc()/make-sour-cream-2000-513d49b3aaba4708a67b19380cc32de6.jpg", "Heavy cream"},
	{"Ice Cream", "dairy", 150, "500ml", "https://images.unsplash.com/photo-1567206563064-6f60f40a2b57?w=300&h=200&fit=crop", "Vanilla ice cream"},
	{"Paneer", "dairy", 180, "250g", "https://chennaionlineshopping.in/image/cache/catalog/Products/panner/amul%20panner-800x800.jpg", "Fresh paneer"},
	{"Ghee", "dairy", 300, "500ml", "https://ueirorganic.com/cdn/shop/files/purecowghee.jpg?v=1689066451", "Pure cow ghee"},

	// Bakery
	{"Bread", "bakery", 35, "1 loaf", "https://assets.bonappetit.com/photos/5c62e4a3e81bbf522a9579ce/1:1/pass/milk-bread.jpg", "Whole wheat bread"},
	{"Croissant", "bakery", 25, "1 piece", "https://sugargeekshow.com/wp-content/uploads/2022/11/croissants_featured.jpg", "Buttery croissant"},
	{"Muffins", "bakery", 80, "4 pieces", "https://images.unsplash.com/photo-1607958996333-41aef7caefaa?w=300&h=200&fit=crop", "Blueberry muffins"},
	{"Cookies", "bakery", 60, "6 pieces", "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=300&h=200&fit=crop", "Chocolate cookies"},
	{"Donuts", "bakery", 120, "6 pieces", "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=300&h=200&fit=crop", "Glazed donuts"},
	{"Cake", "bakery", 400, "1 piece", "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=300&h=200&fit=crop", "Chocolate cake"},
	{"Bagels", "bakery", 90, "4 pieces", "https://www.tasteofhome.com/wp-content/uploads/2025/01/Homemade-Bagels_EXPS_TOHD25_15702_ChristineMa_9.jpg", "Fresh bagels"},
	{"Pastry", "bakery", 50, "1 piece", "https://krbakes.com/cdn/shop/articles/Top_10_Trending_Pastry_Cakes_You_Need_to_Try.webp?v=1739364407&width=1920", "Fruit pastry"},

	// Electronics
	{"Smartphone", "electronics", 15000, "1 piece", "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300&h=200&fit=crop", "Latest smartphone"},
	{"Headphones", "electronics", 2500, "1 piece", "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=200&fit=crop", "Wireless headphones"},
	{"Laptop", "electronics", 45000, "1 piece", "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=300&h=200&fit=crop", "Gaming laptop"},
	{"Smart Watch", "electronics", 8000, "1 piece", "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=200&fit=crop", "Fitness smart watch"},
	{"Tablet", "electronics", 20000, "1 piece", "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=300&h=200&fit=crop", "10-inch tablet"},
	{"Power Bank", "electronics", 1500, "1 piece", "https://i03.appmifile.com/333_item_in/08/07/2025/9047b35e12fa25cb45fc93a824a29e87.jpg", "10000mAh power bank"},
	{"Bluetooth Speaker", "electronics", 3000, "1 piece", "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=300&h=200&fit=crop", "Portable speaker"},
	{"Wireless Mouse", "electronics", 800, "1 piece", "https://m.media-amazon.com/images/I/51vMo-pHZ5L.jpg", "Ergonomic wireless mouse"},

	// Sports
	{"Football", "sports", 800, "1 piece", "https://images.unsplash.com/photo-1486286701208-1d58e9338013?w=300&h=200&fit=crop", "Professional football"},
	{"Cricket Bat", "sports", 1200, "1 piece", "https://dkpcricketonline.com/cdn/shop/collections/image_419d887e-bcd5-4469-9925-776dc84db52b.heic?v=1754925807&width=2400", "Professional cricket bat"},
	{"Cricket Ball", "sports", 300, "1 piece", "https://nwscdn.com/media/catalog/product/cache/h400xw400/c/r/cricket-club-ball-family_1.jpg", "Leather cricket ball"},
	{"Tennis Racket", "sports", 1500, "1 piece", "https://us.yonex.com/cdn/shop/files/CLP_Tennis_Ezone_D.jpg?v=1740757953&width=1500", "Professional tennis racket"},
	{"Basketball", "sports", 900, "1 piece", "https://static.nbastore.in/resized/900X900/1180/wilson-nba-mens-drv-pro-basketball-brown-brown-68dc39e5a64de.jpg?format=webp", "Professional basketball"},
	{"Badminton Racket", "sports", 800, "1 piece", "https://cdn.firstcry.com/education/2022/07/25185734/Essay-On-My-Favourite-Game-Badminton-10-Lines-Short-and-Long-Essay-For-Kids.jpg", "Lightweight badminton racket"},
	{"Table Tennis Paddle", "sports", 400, "1 piece", "https://m.media-amazon.com/images/I/81OnewcSyTL.jpg", "Professional table tennis paddle"},
	{"Volleyball", "sports", 600, "1 piece", "https://m.media-amazon.com/images/I/61pFab9tNeL.jpg", "Professional volleyball"},
	{"Yoga Mat", "sports", 600, "1 piece", "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=300&h=200&fit=crop", "Premium yoga mat"},
	{"Dumbbells", "sports", 2000, "1 pair", "https://www.vinexshop.com/Product-Images/Large/2150-Dumbbells-Iron.jpg", "Adjustable dumbbells"},
	{"Swimming Goggles", "sports", 350, "1 piece", "https://rukminim2.flixcart.com/image/356/352/xif0q/goggle/r/i/s/-original-imahe3kahqp5zyfy.jpeg?q=90&crop=false", "Anti-fog swimming goggles"},
	{"Boxing Gloves", "sports", 1800, "1 pair", "https://m.media-amazon.com/images/I/81MThv+hgeS.jpg", "Professional boxing gloves"},

	// Kids
	{"Teddy Bear", "kids", 500, "1 piece", "https://tse1.mm.bing.net/th/id/OIP.IQUsCBaKM8Ox51lI1XH5BAHaFR?pid=Api&P=0&h=180", "Soft teddy bear"},
	{"Building Blocks", "kids", 800, "1 set", "https://baybee.co.in/cdn/shop/files/71Z7Rwn2BGL._SL1500.jpg?v=1735995897", "Colorful building blocks"},
	{"Puzzle Game", "kids", 300, "1 piece", "https://images.unsplash.com/photo-1601987177651-8edfe6c20009?fm=jpg&q=60&w=3000", "Educational puzzle"},
	{"Remote Car", "kids", 1200, "1 piece", "https://www.daddydrones.in/image/cache/catalog/HOSPEED/HS16351/FRONT/image0-500x500.jpeg", "RC racing car"},

	// Beauty
	{"Face Cream", "beauty", 450, "50ml", "https://dr.rashel.in/cdn/shop/products/Vitamin_C_Face_Cream.jpg?v=1755964552", "Anti-aging face cream"},
	{"Lipstick", "beauty", 350, "1 piece", "https://images-static.nykaa.com/media/catalog/product/b/5/b560771773602685189_2.png?tr=w-500", "Matte lipstick"},
	{"Shampoo", "beauty", 250, "200ml", "https://barcodeprofessional.in/cdn/shop/files/01_7aaa4ca4-6c4e-44f7-816f-86b2f49489ef.jpg?v=1706353626", "Hair care shampoo"},
	{"Perfume", "beauty", 1500, "100ml", "https://images.pexels.com/photos/1961791/pexels-photo-1961791.jpeg?cs=srgb&fm=jpg", "Luxury perfume"},
	{"Foundation", "beauty", 800, "30ml", "https://media6.ppl-media.com/static/img/product/344732/ny-bae-3-in-1-primer-foundation-serum-warm-cashew-03-30-ml-82_1_display_1754664234_9f6773f8.jpg", "Liquid foundation"},
	{"Mascara", "beauty", 400, "1 piece", "https://www.lakmeindia.com/cdn/shop/files/29112_H-8901030859073_800x.jpg?v=1742202692", "Waterproof mascara"},
	{"Face Wash", "beauty", 200, "150ml", "https://www.pinkroot.in/cdn/shop/files/orange-face-wash-for-tan-removalor-pimple-control-100ml-pink-root-1.png?v=1725009761", "Gentle face wash"},
	{"Moisturizer", "beauty", 350, "100ml", "https://plumgoodness.com/cdn/shop/files/nia-gel-moodshot-website.jpg?v=1760599846&width=1214", "Daily moisturizer"},

	// Men's clothing
	{"Cotton T-Shirt", "mens-clothing", 299, "1 piece", "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300&h=200&fit=crop", "Comfortable cotton t-shirt"},
	{"Formal Shirt", "mens-clothing", 799, "1 piece", "https://images.unsplash.com/photo-1596362051514-4969f3688911?w=300&h=200&fit=crop", "Professional formal shirt"},
	{"Denim Jeans", "mens-clothing", 1299, "1 piece", "https://images.unsplash.com/photo-1542272604-787c62d465d1?w=300&h=200&fit=crop", "Classic blue denim jeans"},
	{"Casual Pants", "mens-clothing", 899, "1 piece", "https://images.unsplash.com/photo-1473080169858-d828d75f7979?w=300&h=200&fit=crop", "Comfortable casual pants"},
	{"Polo Shirt", "mens-clothing", 599, "1 piece", "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=300&h=200&fit=crop", "Classic polo shirt"},
	{"Jacket", "mens-clothing", 2499, "1 piece", "https://images.unsplash.com/photo-1551028719-00167b16ebc5?w=300&h=200&fit=crop", "Stylish winter jacket"},
	{"Shorts", "mens-clothing", 499, "1 piece", "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=300&h=200&fit=crop", "Comfortable shorts"},
	{"Sweater", "mens-clothing", 1199, "1 piece", "https://images.unsplash.com/photo-1556821552-5f63b1c2c723?w=300&h=200&fit=crop", "Cozy wool sweater"},

	// Women's clothing
	{"Women T-Shirt", "womens-clothing", 349, "1 piece", "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300&h=200&fit=crop", "Stylish women t-shirt"},
	{"Women Jeans", "womens-clothing", 1399, "1 piece", "https://images.unsplash.com/photo-1542272604-787c62d465d1?w=300&h=200&fit=crop", "Trendy women jeans"},
	{"Saree", "womens-clothing", 1999, "1 piece", "https://images.unsplash.com/photo-1609122416994-94deaf6c3e3f?w=300&h=200&fit=crop", "Traditional saree"},
	{"Kurti", "womens-clothing", 799, "1 piece", "https://images.unsplash.com/photo-1609122416994-94deaf6c3e3f?w=300&h=200&fit=crop", "Ethnic kurti"},
	{"Dress", "womens-clothing", 1299, "1 piece", "https://images.unsplash.com/photo-1595777707802-221b42c0bbb2?w=300&h=200&fit=crop", "Elegant dress"},
	{"Leggings", "womens-clothing", 499, "1 piece", "https://images.unsplash.com/photo-1506529082632-401017062e57?w=300&h=200&fit=crop", "Comfortable leggings"},
	{"Skirt", "womens-clothing", 899, "1 piece", "https://images.unsplash.com/photo-1612336307429-8a88e8d08dbb?w=300&h=200&fit=crop", "Stylish skirt"},
	{"Blazer", "womens-clothing", 2199, "1 piece", "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=300&h=200&fit=crop", "Professional blazer"},

	// Kids clothing
	{"Kids T-Shirt", "kids-clothing", 249, "1 piece", "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300&h=200&fit=crop", "Colorful kids t-shirt"},
	{"Kids Jeans", "kids-clothing", 699, "1 piece", "https://images.unsplash.com/photo-1542272604-787c62d465d1?w=300&h=200&fit=crop", "Durable kids jeans"},
	{"Kids Dress", "kids-clothing", 599, "1 piece", "https://images.unsplash.com/photo-1595777707802-221b42c0bbb2?w=300&h=200&fit=crop", "Pretty kids dress"},
	{"Kids Shorts", "kids-clothing", 399, "1 piece", "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=300&h=200&fit=crop", "Comfortable kids shorts"},
	{"Kids Jacket", "kids-clothing", 1299, "1 piece", "https://images.unsplash.com/photo-1551028719-00167b16ebc5?w=300&h=200&fit=crop", "Warm kids jacket"},
	{"Kids Sweater", "kids-clothing", 699, "1 piece", "https://images.unsplash.com/photo-1556821552-5f63b1c2c723?w=300&h=200&fit=crop", "Cozy kids sweater"},
	{"Kids Shoes", "kids-clothing", 799, "1 pair", "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=300&h=200&fit=crop", "Comfortable kids shoes"},
	{"Kids Socks", "kids-clothing", 199, "3 pairs", "https://images.unsplash.com/photo-1556821552-5f63b1c2c723?w=300&h=200&fit=crop", "Colorful kids socks"},
}

// couponSeed is the demo promotional-code set.
var couponSeed = []couponSeedEntry{
	{code: "SAVE10", discountPercentage: 10, minOrderAmount: 100, maxUses: 100},
	{code: "WELCOME20", discountPercentage: 20, minOrderAmount: 200, maxUses: 50},
	{code: "BIGDEAL", discountPercentage: 15, minOrderAmount: 500, maxUses: 25},
}
