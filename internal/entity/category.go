package entity

// CategoryUnsetKey is the placeholder the client form starts with. It must
// never reach persistence.
const CategoryUnsetKey = "category"

type Category struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Categories is the fixed catalog, in display order. Category breakdowns
// iterate this order, not data order.
var Categories = []Category{
	{Key: "purchases", Name: "Compras", Icon: "shopping-bag", Color: "#5636D3"},
	{Key: "food", Name: "Alimentação", Icon: "coffee", Color: "#FF872C"},
	{Key: "salary", Name: "Salário", Icon: "dollar-sign", Color: "#12A454"},
	{Key: "car", Name: "Carro", Icon: "car", Color: "#E83F5B"},
	{Key: "leisure", Name: "Lazer", Icon: "heart", Color: "#26195C"},
	{Key: "studies", Name: "Estudos", Icon: "book", Color: "#9C001A"},
}

func CategoryByKey(key string) (Category, bool) {
	for _, category := range Categories {
		if category.Key == key {
			return category, true
		}
	}
	return Category{}, false
}

func IsValidCategoryKey(key string) bool {
	_, ok := CategoryByKey(key)
	return ok
}
