package activity

// Activity is one curated recommendation
type Activity struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// cityCatalog holds curated activities per destination city. Keys are
// lowercase city names.
var cityCatalog = map[string][]Activity{
	"paris": {
		{Name: "Louvre Museum", Category: "cultural", Duration: "3-4 hours", Price: "$$", Description: "World's largest art museum, home of the Mona Lisa"},
		{Name: "Eiffel Tower Summit", Category: "cultural", Duration: "2 hours", Price: "$$", Description: "Panoramic views from the iconic iron tower"},
		{Name: "Seine River Cruise", Category: "outdoor", Duration: "1 hour", Price: "$$", Description: "See the city's landmarks from the water"},
		{Name: "Montmartre Walking Tour", Category: "outdoor", Duration: "2-3 hours", Price: "$", Description: "Cobbled streets, artists' square and Sacré-Cœur"},
		{Name: "Le Marais Food Tour", Category: "food", Duration: "3 hours", Price: "$$$", Description: "Falafel, pastries and cheese in the historic quarter"},
		{Name: "Wine Tasting in Saint-Germain", Category: "food", Duration: "2 hours", Price: "$$$", Description: "Guided tasting of French regional wines"},
		{Name: "Galeries Lafayette", Category: "shopping", Duration: "2-3 hours", Price: "$$$", Description: "Grand department store under a stained-glass dome"},
		{Name: "Latin Quarter Jazz Club", Category: "nightlife", Duration: "3 hours", Price: "$$", Description: "Live jazz in a medieval cellar"},
	},
	"tokyo": {
		{Name: "Senso-ji Temple", Category: "cultural", Duration: "2 hours", Price: "Free", Description: "Tokyo's oldest temple in historic Asakusa"},
		{Name: "Meiji Shrine", Category: "cultural", Duration: "1-2 hours", Price: "Free", Description: "Forest shrine dedicated to Emperor Meiji"},
		{Name: "Shinjuku Gyoen Stroll", Category: "outdoor", Duration: "2 hours", Price: "$", Description: "Japanese, French and English gardens in one park"},
		{Name: "Mount Takao Hike", Category: "outdoor", Duration: "half day", Price: "$", Description: "Forest trails and city views an hour from the center"},
		{Name: "Tsukiji Outer Market Breakfast", Category: "food", Duration: "2 hours", Price: "$$", Description: "Fresh sushi and street food stalls"},
		{Name: "Ramen Tasting in Shinjuku", Category: "food", Duration: "2 hours", Price: "$$", Description: "Compare tonkotsu, shoyu and miso bowls"},
		{Name: "Ginza Shopping District", Category: "shopping", Duration: "3 hours", Price: "$$$", Description: "Flagship stores and department-store food halls"},
		{Name: "Golden Gai Bar Hopping", Category: "nightlife", Duration: "3 hours", Price: "$$", Description: "Tiny themed bars in narrow post-war alleys"},
	},
	"new york": {
		{Name: "Metropolitan Museum of Art", Category: "cultural", Duration: "3-4 hours", Price: "$$", Description: "Five thousand years of art on Museum Mile"},
		{Name: "Broadway Show", Category: "cultural", Duration: "3 hours", Price: "$$$$", Description: "A musical or play in the theater district"},
		{Name: "Central Park Bike Loop", Category: "outdoor", Duration: "2 hours", Price: "$$", Description: "Ride past the lake, the Mall and Bethesda Terrace"},
		{Name: "Brooklyn Bridge Walk", Category: "outdoor", Duration: "1-2 hours", Price: "Free", Description: "Cross the East River on the wooden promenade"},
		{Name: "Greenwich Village Food Tour", Category: "food", Duration: "3 hours", Price: "$$$", Description: "Pizza, bagels and hidden speakeasies"},
		{Name: "Chelsea Market Tasting", Category: "food", Duration: "2 hours", Price: "$$", Description: "Food hall in the old Nabisco factory"},
		{Name: "Fifth Avenue Shopping", Category: "shopping", Duration: "3 hours", Price: "$$$$", Description: "Flagship stores from Bryant Park to Central Park"},
		{Name: "Rooftop Bars of Manhattan", Category: "nightlife", Duration: "3 hours", Price: "$$$", Description: "Skyline cocktails in Midtown"},
	},
	"london": {
		{Name: "British Museum", Category: "cultural", Duration: "3 hours", Price: "Free", Description: "The Rosetta Stone and world antiquities"},
		{Name: "Tower of London", Category: "cultural", Duration: "3 hours", Price: "$$$", Description: "Crown Jewels and a thousand years of history"},
		{Name: "Hyde Park Boating", Category: "outdoor", Duration: "1-2 hours", Price: "$$", Description: "Pedal boats on the Serpentine"},
		{Name: "South Bank Walk", Category: "outdoor", Duration: "2 hours", Price: "Free", Description: "Riverside path from the Eye to Tower Bridge"},
		{Name: "Borough Market Tasting", Category: "food", Duration: "2 hours", Price: "$$", Description: "London's oldest food market"},
		{Name: "Afternoon Tea", Category: "food", Duration: "2 hours", Price: "$$$", Description: "Scones and sandwiches in a classic hotel"},
		{Name: "Covent Garden Boutiques", Category: "shopping", Duration: "2-3 hours", Price: "$$$", Description: "Market halls, crafts and street performers"},
		{Name: "West End Pub Crawl", Category: "nightlife", Duration: "3 hours", Price: "$$", Description: "Historic pubs around Soho"},
	},
	"dubai": {
		{Name: "Burj Khalifa Observation Deck", Category: "cultural", Duration: "2 hours", Price: "$$$", Description: "Views from the world's tallest building"},
		{Name: "Dubai Museum & Al Fahidi", Category: "cultural", Duration: "2 hours", Price: "$", Description: "Old Dubai's wind-tower quarter"},
		{Name: "Desert Safari", Category: "outdoor", Duration: "half day", Price: "$$$", Description: "Dune bashing, camels and a Bedouin camp dinner"},
		{Name: "Kite Beach Morning", Category: "outdoor", Duration: "3 hours", Price: "Free", Description: "Swim and watersports with Burj Al Arab views"},
		{Name: "Al Seef Emirati Dinner", Category: "food", Duration: "2 hours", Price: "$$", Description: "Traditional dishes on the creek"},
		{Name: "Global Village Food Stalls", Category: "food", Duration: "3 hours", Price: "$$", Description: "Street food from ninety countries"},
		{Name: "Gold & Spice Souks", Category: "shopping", Duration: "2 hours", Price: "$$", Description: "Haggle in Deira's covered markets"},
		{Name: "Dubai Marina Night Cruise", Category: "nightlife", Duration: "2 hours", Price: "$$$", Description: "Dinner dhow among the skyscrapers"},
	},
	"barcelona": {
		{Name: "Sagrada Família", Category: "cultural", Duration: "2 hours", Price: "$$$", Description: "Gaudí's unfinished basilica"},
		{Name: "Gothic Quarter Tour", Category: "cultural", Duration: "2-3 hours", Price: "$", Description: "Roman walls and medieval lanes"},
		{Name: "Park Güell", Category: "outdoor", Duration: "2 hours", Price: "$$", Description: "Mosaic terraces above the city"},
		{Name: "Barceloneta Beach Day", Category: "outdoor", Duration: "half day", Price: "Free", Description: "City beach with seafood chiringuitos"},
		{Name: "La Boqueria Tapas Crawl", Category: "food", Duration: "3 hours", Price: "$$$", Description: "Market stalls and tapas bars off La Rambla"},
		{Name: "Paella Cooking Class", Category: "food", Duration: "3 hours", Price: "$$$", Description: "Cook and eat with a local chef"},
		{Name: "Passeig de Gràcia", Category: "shopping", Duration: "2-3 hours", Price: "$$$", Description: "Modernist facades and designer stores"},
		{Name: "Flamenco Evening", Category: "nightlife", Duration: "2 hours", Price: "$$", Description: "Live flamenco in a historic tablao"},
	},
	"rome": {
		{Name: "Colosseum & Forum", Category: "cultural", Duration: "3-4 hours", Price: "$$$", Description: "The arena and heart of ancient Rome"},
		{Name: "Vatican Museums", Category: "cultural", Duration: "3-4 hours", Price: "$$$", Description: "The Sistine Chapel and Raphael rooms"},
		{Name: "Villa Borghese Gardens", Category: "outdoor", Duration: "2 hours", Price: "Free", Description: "Rowboats and pine-shaded paths"},
		{Name: "Appian Way by Bike", Category: "outdoor", Duration: "half day", Price: "$$", Description: "Ancient road, aqueducts and catacombs"},
		{Name: "Trastevere Food Tour", Category: "food", Duration: "3 hours", Price: "$$$", Description: "Supplì, carbonara and gelato across the river"},
		{Name: "Pasta Making Class", Category: "food", Duration: "3 hours", Price: "$$$", Description: "Hand-rolled pasta with a Roman cook"},
		{Name: "Via del Corso", Category: "shopping", Duration: "2 hours", Price: "$$", Description: "Shopping spine from Piazza del Popolo"},
		{Name: "Campo de' Fiori Nightlife", Category: "nightlife", Duration: "3 hours", Price: "$$", Description: "Aperitivo and bars around the old market square"},
	},
	"sydney": {
		{Name: "Opera House Tour", Category: "cultural", Duration: "1-2 hours", Price: "$$$", Description: "Backstage at the sails"},
		{Name: "Art Gallery of NSW", Category: "cultural", Duration: "2 hours", Price: "Free", Description: "Australian and Aboriginal art by the Domain"},
		{Name: "Bondi to Coogee Walk", Category: "outdoor", Duration: "2-3 hours", Price: "Free", Description: "Clifftop path linking famous beaches"},
		{Name: "Harbour Bridge Climb", Category: "outdoor", Duration: "3 hours", Price: "$$$$", Description: "Summit the arch at dawn or dusk"},
		{Name: "Sydney Fish Market", Category: "food", Duration: "2 hours", Price: "$$", Description: "Oysters and grilled seafood at the wharf"},
		{Name: "Chinatown Night Markets", Category: "food", Duration: "2 hours", Price: "$", Description: "Dumplings and street snacks on Friday nights"},
		{Name: "The Rocks Markets", Category: "shopping", Duration: "2 hours", Price: "$$", Description: "Craft stalls under the bridge approach"},
		{Name: "Darling Harbour Evening", Category: "nightlife", Duration: "3 hours", Price: "$$", Description: "Waterfront bars and fireworks"},
	},
	"amsterdam": {
		{Name: "Rijksmuseum", Category: "cultural", Duration: "3 hours", Price: "$$$", Description: "Rembrandt and the Dutch Golden Age"},
		{Name: "Anne Frank House", Category: "cultural", Duration: "1-2 hours", Price: "$$", Description: "The secret annex on the Prinsengracht"},
		{Name: "Canal Ring by Bike", Category: "outdoor", Duration: "2-3 hours", Price: "$", Description: "Ride the seventeenth-century canal belt"},
		{Name: "Vondelpark Picnic", Category: "outdoor", Duration: "2 hours", Price: "Free", Description: "The city's favorite green space"},
		{Name: "Jordaan Cheese & Stroopwafel Tour", Category: "food", Duration: "3 hours", Price: "$$$", Description: "Tastings through the old quarter"},
		{Name: "Indonesian Rijsttafel", Category: "food", Duration: "2 hours", Price: "$$$", Description: "Dozens of small dishes, a Dutch tradition"},
		{Name: "Nine Streets Boutiques", Category: "shopping", Duration: "2 hours", Price: "$$$", Description: "Vintage and designer shops between canals"},
		{Name: "Paradiso Concert", Category: "nightlife", Duration: "3 hours", Price: "$$", Description: "Live music in a converted church"},
	},
	"bangkok": {
		{Name: "Grand Palace & Wat Phra Kaew", Category: "cultural", Duration: "3 hours", Price: "$$", Description: "Royal compound and the Emerald Buddha"},
		{Name: "Wat Arun at Sunset", Category: "cultural", Duration: "1-2 hours", Price: "$", Description: "Porcelain-studded temple of dawn"},
		{Name: "Chao Phraya Longtail Ride", Category: "outdoor", Duration: "2 hours", Price: "$$", Description: "Canals and stilt houses of Thonburi"},
		{Name: "Lumpini Park Morning", Category: "outdoor", Duration: "2 hours", Price: "Free", Description: "Tai chi, monitor lizards and paddle boats"},
		{Name: "Chinatown Street Food Crawl", Category: "food", Duration: "3 hours", Price: "$", Description: "Yaowarat's legendary night stalls"},
		{Name: "Thai Cooking Class", Category: "food", Duration: "4 hours", Price: "$$", Description: "Market visit then cook four classic dishes"},
		{Name: "Chatuchak Weekend Market", Category: "shopping", Duration: "3-4 hours", Price: "$", Description: "Fifteen thousand stalls of everything"},
		{Name: "Rooftop Bar on Silom", Category: "nightlife", Duration: "2 hours", Price: "$$$", Description: "Cocktails above the city lights"},
	},
}

// genericPool holds fallback activities by category for destinations not
// in the curated catalog.
var genericPool = map[string][]Activity{
	"cultural": {
		{Name: "City History Museum", Category: "cultural", Duration: "2-3 hours", Price: "$$", Description: "The story of the city from its founding"},
		{Name: "Old Town Walking Tour", Category: "cultural", Duration: "2 hours", Price: "$", Description: "Guided walk through the historic center"},
		{Name: "Main Cathedral Visit", Category: "cultural", Duration: "1 hour", Price: "Free", Description: "The city's principal church and its art"},
		{Name: "Local Art Gallery", Category: "cultural", Duration: "2 hours", Price: "$", Description: "Works by regional artists"},
	},
	"outdoor": {
		{Name: "Central Park Stroll", Category: "outdoor", Duration: "2 hours", Price: "Free", Description: "The city's main green space"},
		{Name: "Scenic Viewpoint Hike", Category: "outdoor", Duration: "half day", Price: "Free", Description: "The best panorama within reach of the center"},
		{Name: "Bike Rental & City Loop", Category: "outdoor", Duration: "3 hours", Price: "$", Description: "See the sights on two wheels"},
	},
	"food": {
		{Name: "Local Food Market", Category: "food", Duration: "2 hours", Price: "$", Description: "Regional produce and street snacks"},
		{Name: "Traditional Restaurant Dinner", Category: "food", Duration: "2 hours", Price: "$$", Description: "Classic local dishes"},
		{Name: "Street Food Crawl", Category: "food", Duration: "3 hours", Price: "$", Description: "The stalls locals queue for"},
	},
	"shopping": {
		{Name: "Main Shopping Street", Category: "shopping", Duration: "2-3 hours", Price: "$$", Description: "The city's principal retail stretch"},
		{Name: "Artisan Craft Market", Category: "shopping", Duration: "2 hours", Price: "$", Description: "Handmade goods and souvenirs"},
	},
	"nightlife": {
		{Name: "Old Quarter Bar Hopping", Category: "nightlife", Duration: "3 hours", Price: "$$", Description: "A night out where the locals go"},
	},
	"relaxation": {
		{Name: "Day Spa Afternoon", Category: "relaxation", Duration: "3 hours", Price: "$$$", Description: "Unwind between sightseeing days"},
	},
}

// genericMix defines how many activities of each category make up the
// fallback recommendation set.
var genericMix = []struct {
	category string
	count    int
}{
	{"cultural", 3},
	{"outdoor", 2},
	{"food", 2},
	{"shopping", 1},
}
