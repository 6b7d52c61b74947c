// Package vocab 提供食材詞彙表與耆那飲食限制表
// 所有表在套件初始化後不可變更，可安全並行讀取
package vocab

// 食材分類詞彙，含英文與常見印地語名稱
// 來源為精選清單，非完整本體論；以召回率優先

var vegetables = []string{
	"onion", "tomato", "potato", "garlic", "ginger", "carrot", "beetroot",
	"capsicum", "bell pepper", "cabbage", "cauliflower", "broccoli",
	"spinach", "palak", "methi", "fenugreek", "coriander", "cilantro",
	"curry leaves", "mint", "pudina", "beans", "peas", "corn",
	"cucumber", "radish", "turnip", "pumpkin", "bottle gourd", "lauki",
	"bitter gourd", "karela", "ridge gourd", "turai", "eggplant", "brinjal",
	"okra", "bhindi", "mushroom", "zucchini", "lettuce", "celery",
	"spring onion", "leek", "sweet potato", "yam", "colocasia", "arbi",
}

var spices = []string{
	"turmeric", "haldi", "cumin", "jeera", "coriander", "dhaniya",
	"chilli", "chili", "red chilli", "green chilli", "kashmiri chilli",
	"black pepper", "white pepper", "cardamom", "elaichi", "cinnamon",
	"dalchini", "clove", "laung", "bay leaf", "tej patta", "star anise",
	"fennel", "saunf", "fenugreek", "methi", "mustard", "sarson", "rai",
	"asafoetida", "hing", "nutmeg", "jaiphal", "mace", "javitri",
	"carom seeds", "ajwain", "nigella", "kalonji", "sesame", "til",
	"poppy seeds", "khus khus", "garam masala", "chaat masala",
	"pav bhaji masala", "chole masala", "biryani masala", "tandoori masala",
	"curry powder", "sambhar powder", "rasam powder", "chilli powder",
	"coriander powder", "cumin powder", "turmeric powder", "ginger powder",
	"garlic powder", "dried mango", "amchur", "dried pomegranate", "anardana",
	"saffron", "kesar", "vanilla", "oregano", "basil", "thyme", "rosemary",
	"paprika", "cayenne",
}

var grainsPulses = []string{
	"rice", "basmati rice", "sona masoori", "brown rice", "jasmine rice",
	"wheat", "flour", "atta", "maida", "all purpose flour", "whole wheat",
	"semolina", "sooji", "rava", "besan", "gram flour", "chickpea flour",
	"corn flour", "cornstarch", "rice flour", "ragi", "finger millet",
	"jowar", "sorghum", "bajra", "pearl millet", "oats", "quinoa",
	"dal", "lentil", "moong dal", "mung dal", "toor dal", "arhar dal",
	"chana dal", "masoor dal", "urad dal", "chickpea", "kabuli chana",
	"black chickpea", "kala chana", "rajma", "kidney beans", "black beans",
	"white beans", "pinto beans", "soybean", "peanut", "groundnut",
	"almond", "badam", "cashew", "kaju", "walnut", "akhrot", "pistachio",
	"pista", "raisin", "kishmish", "dates", "khajoor", "coconut", "nariyal",
}

var dairyProducts = []string{
	"milk", "doodh", "cream", "heavy cream", "fresh cream", "whipping cream",
	"butter", "makhan", "ghee", "clarified butter", "paneer", "cottage cheese",
	"cheese", "cheddar", "mozzarella", "parmesan", "cream cheese",
	"curd", "yogurt", "dahi", "buttermilk", "chaas", "khoya", "mawa",
	"condensed milk", "evaporated milk", "milk powder", "malai",
}

var proteins = []string{
	"chicken", "mutton", "lamb", "goat", "beef", "pork", "fish", "machli",
	"prawn", "shrimp", "crab", "salmon", "tuna", "pomfret", "rohu",
	"egg", "anda", "tofu", "soya chunks", "soy", "tempeh",
}

var oilsFats = []string{
	"oil", "tel", "mustard oil", "coconut oil", "olive oil", "sunflower oil",
	"vegetable oil", "sesame oil", "groundnut oil", "peanut oil",
	"ghee", "butter", "margarine", "lard",
}

var sweeteners = []string{
	"sugar", "chini", "jaggery", "gur", "brown sugar", "honey", "shahad",
	"maple syrup", "corn syrup", "stevia", "artificial sweetener",
	"palm sugar", "coconut sugar", "date syrup",
}

var saucesCondiments = []string{
	"tomato sauce", "ketchup", "soy sauce", "vinegar", "sirka",
	"tamarind", "imli", "lemon", "nimbu", "lime", "orange", "pomegranate",
	"tomato paste", "tomato puree", "chilli sauce", "hot sauce",
	"worcestershire sauce", "fish sauce", "oyster sauce", "hoisin sauce",
	"mayonnaise", "mustard sauce", "pickle", "achar", "chutney",
}

var breadsPasta = []string{
	"bread", "pav", "bun", "roti", "chapati", "naan", "paratha",
	"puri", "bhatura", "kulcha", "pasta", "macaroni", "spaghetti",
	"noodles", "vermicelli", "seviyan", "couscous",
}

var beverages = []string{
	"water", "pani", "tea", "chai", "coffee", "juice", "coconut water",
	"stock", "broth", "vegetable stock", "chicken stock", "bone broth",
}

var others = []string{
	"salt", "namak", "baking soda", "baking powder", "yeast", "gelatin",
	"agar agar", "corn", "cornmeal", "breadcrumbs", "panko",
	"chocolate", "cocoa", "coffee powder", "tea leaves",
}

// foodIngredients 合併所有分類後的查詢集合
var foodIngredients = buildFoodSet()

func buildFoodSet() map[string]struct{} {
	categories := [][]string{
		vegetables, spices, grainsPulses, dairyProducts,
		proteins, oilsFats, sweeteners, saucesCondiments,
		breadsPasta, beverages, others,
	}

	set := make(map[string]struct{})
	for _, category := range categories {
		for _, term := range category {
			set[term] = struct{}{}
		}
	}
	return set
}

// FoodTermCount 回傳詞彙表大小（監控與測試用）
func FoodTermCount() int {
	return len(foodIngredients)
}
