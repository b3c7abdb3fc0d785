package ingredients

import "strings"

// phraseSet is a curated list of lowercase phrases. A candidate matches when any
// phrase appears as a substring of the lowercased candidate; containment rather
// than word-boundary matching is deliberate ("raw sugar cookies" matches "sugar"),
// and the lists are curated to keep false positives rare.
type phraseSet []string

func (ps phraseSet) matches(lower string) bool {
	for _, p := range ps {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// Flagged categories: ingredients the guidelines say to avoid.

var addedSugars = phraseSet{
	// Direct sugars
	"sugar", "cane sugar", "brown sugar", "raw sugar", "turbinado sugar",
	"powdered sugar", "confectioners sugar", "invert sugar", "coconut sugar",
	"demerara sugar", "muscovado sugar", "panela", "jaggery", "sucanat",
	"organic sugar", "evaporated cane juice", "cane juice crystals",

	// Syrups
	"high fructose corn syrup", "hfcs", "corn syrup", "maple syrup",
	"agave syrup", "agave nectar", "rice syrup", "brown rice syrup",
	"golden syrup", "malt syrup", "refiner's syrup", "sorghum syrup",
	"tapioca syrup", "glucose syrup", "glucose-fructose syrup",
	"isoglucose", "carob syrup", "yacon syrup",

	// -ose endings (chemical sugars)
	"glucose", "fructose", "dextrose", "sucrose", "maltose", "lactose",
	"galactose", "trehalose", "isomaltulose", "polydextrose",

	// Concentrates and extracts
	"fruit juice concentrate", "grape juice concentrate",
	"apple juice concentrate", "pear juice concentrate",
	"date syrup", "date paste", "honey",
	"concentrated fruit juice", "fruit juice from concentrate",

	// Other forms
	"molasses", "blackstrap molasses", "caramel", "dextrin", "maltodextrin",
	"barley malt", "malt extract", "ethyl maltol", "crystalline fructose",
	"florida crystals", "d-ribose", "mannose", "tagatose",
}

var industrialOils = phraseSet{
	// Seed/vegetable oils (industrial extraction)
	"vegetable oil", "soybean oil", "canola oil", "rapeseed oil",
	"corn oil", "sunflower oil", "safflower oil", "cottonseed oil",
	"grapeseed oil", "rice bran oil", "peanut oil", "sesame oil",

	// Hydrogenated variants (trans fats)
	"hydrogenated oil", "partially hydrogenated oil",
	"hydrogenated vegetable oil", "partially hydrogenated soybean oil",
	"hydrogenated cottonseed oil", "hydrogenated palm oil",
	"shortening", "margarine", "interesterified oil",

	// Blends and generic terms
	"vegetable oil blend", "frying oil", "cooking oil",
	"oil blend", "seed oil", "refined oil",

	// Specific industrial variants
	"high oleic sunflower oil", "high oleic canola oil",
	"expeller pressed canola oil", "refined soybean oil",
	"brominated vegetable oil", "bvo",
}

// Oils generally considered acceptable under real-food guidelines. Counted
// toward the whole-food ratio, never penalized.
var acceptableFats = phraseSet{
	"olive oil", "extra virgin olive oil", "avocado oil",
	"coconut oil", "butter", "ghee", "lard", "tallow", "duck fat",
	"palm oil", // controversial but not industrial-extracted
}

var artificialPreservatives = phraseSet{
	// BHA/BHT family (antioxidants)
	"bha", "butylated hydroxyanisole", "bht", "butylated hydroxytoluene",
	"tbhq", "tertiary butylhydroquinone", "propyl gallate",

	// Benzoates
	"sodium benzoate", "potassium benzoate", "benzoic acid",
	"benzyl benzoate",

	// Sorbates
	"potassium sorbate", "sodium sorbate", "sorbic acid",
	"calcium sorbate",

	// Sulfites (allergen)
	"sodium sulfite", "sodium bisulfite", "sodium metabisulfite",
	"potassium bisulfite", "sulfur dioxide", "sulfites",
	"potassium metabisulfite",

	// Nitrates/nitrites (processed meats)
	"sodium nitrate", "sodium nitrite", "potassium nitrate",
	"potassium nitrite", "celery powder", // hidden nitrate source

	// Propionates
	"calcium propionate", "sodium propionate", "propionic acid",

	// EDTA family
	"edta", "disodium edta", "calcium disodium edta",
	"tetrasodium edta",

	// Parabens
	"methylparaben", "propylparaben", "ethylparaben",

	// Other preservatives
	"sodium erythorbate", "erythorbic acid", "natamycin",
	"nisin", "lysozyme", "hexamine",
}

var artificialFlavors = phraseSet{
	"artificial flavor", "artificial flavors", "artificial flavoring",
	"artificially flavored", "natural and artificial flavors",
	"flavor enhancer", "msg", "monosodium glutamate",
	"disodium inosinate", "disodium guanylate", "autolyzed yeast extract",
}

var artificialColors = phraseSet{
	// FD&C Red dyes
	"red 40", "red no. 40", "allura red", "fd&c red 40", "e129",
	"red 3", "erythrosine", "fd&c red 3", "e127",
	"red 2", "amaranth", "e123",

	// FD&C Yellow dyes
	"yellow 5", "tartrazine", "fd&c yellow 5", "e102",
	"yellow 6", "sunset yellow", "fd&c yellow 6", "e110",

	// FD&C Blue dyes
	"blue 1", "brilliant blue", "fd&c blue 1", "e133",
	"blue 2", "indigo carmine", "fd&c blue 2", "e132",

	// FD&C Green dyes
	"green 3", "fast green", "fd&c green 3", "e143",

	// Caramel color (often industrially produced with ammonia)
	"caramel color", "caramel coloring", "e150", "e150a", "e150b",
	"e150c", "e150d", "class iv caramel",

	// Titanium dioxide (whitening, banned in the EU)
	"titanium dioxide", "e171",

	// Other synthetic colors
	"citrus red 2", "orange b", "carbon black",

	// Generic terms
	"artificial color", "artificial colors", "color added",
	"certified color", "dye", "synthetic color", "fd&c colors",
	"lake", "aluminum lake", // lake = insoluble dye
}

var refinedGrains = phraseSet{
	"enriched flour", "enriched wheat flour", "bleached flour",
	"bleached wheat flour", "white flour", "all-purpose flour",
	"enriched bleached flour", "semolina", "durum flour",
	"white rice", "white rice flour", "corn starch", "modified corn starch",
	"modified food starch", "modified starch",
}

// Whole foods: recognizable ingredients the guidelines encourage.

var wholeFoods = phraseSet{
	// Proteins - meat
	"chicken", "beef", "pork", "lamb", "turkey", "duck", "venison",
	"bison", "veal", "goat", "rabbit", "chicken breast", "ground beef",
	"steak", "bacon", "ham", "sausage",

	// Proteins - seafood
	"fish", "salmon", "tuna", "cod", "halibut", "tilapia", "trout",
	"sardines", "anchovies", "mackerel", "shrimp", "prawns", "crab",
	"lobster", "scallops", "mussels", "clams", "oysters", "squid",

	// Proteins - eggs
	"eggs", "egg", "egg whites", "egg yolks", "whole eggs",

	// Dairy
	"milk", "whole milk", "cream", "heavy cream", "half and half",
	"butter", "cheese", "cheddar", "mozzarella", "parmesan", "feta",
	"yogurt", "greek yogurt", "cottage cheese", "sour cream",
	"cream cheese", "ricotta", "gouda", "swiss cheese", "brie",
	"whey", "buttermilk", "kefir",

	// Vegetables
	"tomato", "tomatoes", "onion", "onions", "garlic", "carrot", "carrots",
	"celery", "bell pepper", "peppers", "broccoli", "spinach", "kale",
	"lettuce", "cabbage", "zucchini", "squash", "potato", "potatoes",
	"sweet potato", "mushrooms", "mushroom", "corn", "peas", "beans",
	"green beans", "cucumber", "cauliflower", "asparagus", "eggplant",
	"artichoke", "beets", "brussels sprouts", "bok choy", "arugula",
	"radish", "turnip", "parsnip", "leek", "shallot", "scallion",
	"green onion", "jalapeno", "serrano", "poblano", "habanero",

	// Fruits
	"apple", "apples", "banana", "bananas", "orange", "oranges",
	"lemon", "lemons", "lime", "limes", "berries", "strawberries",
	"blueberries", "raspberries", "blackberries", "cranberries",
	"grapes", "mango", "pineapple", "papaya", "guava", "passion fruit",
	"peach", "peaches", "pear", "pears", "watermelon", "avocado",
	"cantaloupe", "honeydew", "kiwi", "pomegranate", "fig", "dates",
	"plum", "apricot", "cherry", "cherries", "grapefruit", "tangerine",
	"clementine", "coconut", "raisins", "prunes",

	// Whole grains
	"whole wheat", "whole grain", "oats", "rolled oats", "steel cut oats",
	"brown rice", "wild rice", "quinoa", "barley", "buckwheat", "millet",
	"whole wheat flour", "oat flour", "farro", "spelt", "amaranth",
	"teff", "sorghum", "rye", "whole rye",

	// Nuts and seeds
	"almonds", "walnuts", "pecans", "cashews", "peanuts", "pistachios",
	"macadamia", "hazelnuts", "brazil nuts", "pine nuts",
	"sunflower seeds", "pumpkin seeds", "chia seeds", "flax seeds",
	"flaxseed", "sesame seeds", "hemp seeds", "poppy seeds",

	// Legumes
	"black beans", "kidney beans", "chickpeas", "garbanzo beans",
	"lentils", "pinto beans", "navy beans", "cannellini beans",
	"lima beans", "edamame", "split peas", "black eyed peas",

	// Herbs (fresh and dried)
	"basil", "oregano", "thyme", "rosemary", "sage", "mint", "parsley",
	"cilantro", "dill", "chives", "tarragon", "marjoram", "bay leaf",
	"bay leaves", "lemongrass", "chervil",

	// Spices
	"salt", "sea salt", "kosher salt", "pepper", "black pepper",
	"white pepper", "cumin", "paprika", "smoked paprika", "cinnamon",
	"turmeric", "ginger", "nutmeg", "cloves", "allspice", "cardamom",
	"coriander", "fennel", "anise", "star anise", "mustard seed",
	"cayenne", "chili powder", "curry powder", "garam masala",
	"saffron", "vanilla", "vanilla extract", "vanilla bean",

	// Simple condiments/ingredients
	"water", "olive oil", "extra virgin olive oil", "avocado oil",
	"coconut oil", "vinegar", "apple cider vinegar", "balsamic vinegar",
	"red wine vinegar", "white wine vinegar", "rice vinegar",
	"lemon juice", "lime juice", "tomato paste", "mustard",
	"dijon mustard", "tamari", "coconut aminos", "fish sauce",

	// Cocoa/chocolate (unsweetened)
	"cocoa", "cocoa powder", "cacao", "cacao nibs", "unsweetened chocolate",
}

// Additional flagged categories tracked for classification but not penalized
// by the tier scorer.

var artificialSweeteners = phraseSet{
	// Common artificial sweeteners
	"aspartame", "sucralose", "saccharin", "acesulfame potassium",
	"acesulfame k", "ace-k", "neotame", "advantame",

	// Sugar alcohols (less problematic but still processed)
	"erythritol", "xylitol", "sorbitol", "mannitol", "maltitol",
	"isomalt", "lactitol", "hydrogenated starch hydrolysate",

	// Branded names
	"splenda", "equal", "sweet'n low", "nutrasweet",

	// Stevia extracts (highly processed form)
	"stevia extract", "reb a", "rebaudioside",
}

var emulsifiersStabilizers = phraseSet{
	// Common emulsifiers (may affect gut microbiome)
	"soy lecithin", "lecithin", "sunflower lecithin",
	"mono and diglycerides", "monoglycerides", "diglycerides",
	"polysorbate 60", "polysorbate 80", "polysorbate 20",
	"sorbitan monostearate", "sodium stearoyl lactylate",
	"datem", "diacetyl tartaric acid ester",

	// Gums and thickeners
	"xanthan gum", "guar gum", "locust bean gum", "carob bean gum",
	"gellan gum", "carrageenan", "agar", "pectin",
	"cellulose gum", "carboxymethyl cellulose", "methylcellulose",

	// Starches
	"modified corn starch", "modified food starch", "modified starch",
	"modified tapioca starch", "resistant starch",
}
