package domain

// Product is a catalog entry. Products are defined in code and never
// persisted.
type Product struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
	Image  string  `json:"image"`
}

var catalog = []Product{
	{ID: 1, Name: "Polaroid Go Instant Camera", Color: "Black", Rating: 4.7, Price: 129.99, Image: "/assets/camera1.png"},
	{ID: 2, Name: "Polaroid Now i-Type Instant Camera", Color: "Yellow", Rating: 4.5, Price: 149.99, Image: "/assets/camera2.png"},
	{ID: 3, Name: "Polaroid Go Generation 2 Instant Camera", Color: "White", Rating: 4.8, Price: 159.99, Image: "/assets/camera3.png"},
	{ID: 4, Name: "Fujifilm Instax Mini 12", Color: "Mint Green", Rating: 4.6, Price: 114.99, Image: "/assets/camera4.jpg"},
	{ID: 5, Name: "Fujifilm Instax Square SQ1", Color: "Terracotta Orange", Rating: 4.7, Price: 129.99, Image: "/assets/camera5.jpg"},
	{ID: 6, Name: "Kodak Printomatic Instant Camera", Color: "Blue", Rating: 4.4, Price: 59.99, Image: "/assets/camera6.jpg"},
	{ID: 7, Name: "Canon Ivy Cliq+2", Color: "Rose Gold", Rating: 4.5, Price: 149.99, Image: "/assets/camera7.jpg"},
	{ID: 8, Name: "Fujifilm Instax Mini 99", Color: "Matte Black", Rating: 4.9, Price: 199.00, Image: "/assets/camera8.jpg"},
	{ID: 9, Name: "Polaroid Supercolor SX-70 Land Camera", Color: "Vintage Brown", Rating: 4.8, Price: 289.99, Image: "/assets/camera9.jpg"},
}

// DefaultCatalog returns a copy of the built-in camera catalog.
func DefaultCatalog() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}
