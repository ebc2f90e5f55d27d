package catalog

import (
	"github.com/avasin/brewmart/internal/models"
	"github.com/shopspring/decimal"
)

// SampleProducts is the fixed seed written whenever the persisted catalog is
// absent or empty at load time. Order matters: it is the display order.
var SampleProducts = []models.Product{
	{
		Id:          "1",
		Title:       "Premium Arabica Blend",
		Price:       decimal.New(1299, -2),
		Description: "Single-origin coffee from the highlands of Ethiopia with fruity notes and medium roast",
		Category:    models.CategoryCoffee,
		Image:       "/Slider/Coffee 1.jpg",
	},
	{
		Id:          "2",
		Title:       "Dark Roast Espresso",
		Price:       decimal.New(1399, -2),
		Description: "Bold and rich dark roast perfect for espresso machines and strong coffee lovers",
		Category:    models.CategoryCoffee,
		Image:       "/Slider/Coffee 2.webp",
	},
	{
		Id:          "3",
		Title:       "Easy Pour Sampler Pack",
		Price:       decimal.New(1499, -2),
		Description: "Convenient pre-portioned coffee packets for easy brewing without equipment",
		Category:    models.CategoryCoffee,
		Image:       "/Slider/Coffee 3.webp",
	},
	{
		Id:          "4",
		Title:       "Birthday Special Party Pours",
		Price:       decimal.New(1599, -2),
		Description: "Delicate, complex, and experimental coffee blend for special celebrations",
		Category:    models.CategoryCoffee,
		Image:       "/Slider/Coffee 4.webp",
	},
	{
		Id:          "5",
		Title:       "Cold Brew Concentrate",
		Price:       decimal.New(1199, -2),
		Description: "Smooth and refreshing cold brew concentrate ready to serve over ice",
		Category:    models.CategoryCoffee,
		Image:       "/Slider/Coffee 5.webp",
	},
	{
		Id:          "6",
		Title:       "Vienna Roast Premium",
		Price:       decimal.New(1349, -2),
		Description: "Classic Vienna roast with rich chocolate and nutty undertones",
		Category:    models.CategoryCoffee,
		Image:       "/Slider/Coffee 6.webp",
	},
	{
		Id:          "7",
		Title:       "Summer Essentials Bundle",
		Price:       decimal.New(3499, -2),
		Description: "Complete set of summer coffee essentials including iced coffee and brewing supplies",
		Category:    models.CategoryBundle,
		Image:       "/Slider/Coffee 7.webp",
	},
	{
		Id:          "8",
		Title:       "Artisan Estate Roast",
		Price:       decimal.New(1449, -2),
		Description: "Single-origin coffee from a sustainable farm with balanced, smooth flavor profile",
		Category:    models.CategoryCoffee,
		Image:       "/Slider/Coffee 8.webp",
	},
}
