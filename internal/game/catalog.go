package game

// Job is a repeatable side gig: energy in, money out.
type Job struct {
	ID         string
	Name       string
	EnergyCost int
	Pay        float64
	MinLevel   int
}

// Jobs is the static job board, ordered by required career level.
var Jobs = []Job{
	{ID: "street_performer", Name: "Street Performer", EnergyCost: 20, Pay: 50, MinLevel: 1},
	{ID: "delivery", Name: "Food Delivery", EnergyCost: 30, Pay: 120, MinLevel: 1},
	{ID: "bar_gig", Name: "Bar Gig", EnergyCost: 25, Pay: 200, MinLevel: 2},
	{ID: "studio_assist", Name: "Studio Assistant", EnergyCost: 35, Pay: 350, MinLevel: 3},
	{ID: "ghostwriting", Name: "Ghostwriting", EnergyCost: 40, Pay: 800, MinLevel: 4},
	{ID: "feature_verse", Name: "Feature Verse", EnergyCost: 30, Pay: 2500, MinLevel: 5},
	{ID: "brand_endorsement", Name: "Brand Endorsement", EnergyCost: 20, Pay: 10000, MinLevel: 6},
}

// JobByID looks up a job, returning false if unknown.
func JobByID(id string) (Job, bool) {
	for _, j := range Jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}

// ShopItem is a purchasable item. Fame and reputation perks apply once
// at purchase.
type ShopItem struct {
	ID        string
	Name      string
	Price     float64
	FameBonus int
	RepBonus  int
}

// ShopItems is the static shop catalog, cheapest first.
var ShopItems = []ShopItem{
	{ID: "mic", Name: "Studio Microphone", Price: 300},
	{ID: "chain", Name: "Gold Chain", Price: 1500, FameBonus: 1},
	{ID: "wardrobe", Name: "Designer Wardrobe", Price: 5000, FameBonus: 2},
	{ID: "watch", Name: "Luxury Watch", Price: 20000, FameBonus: 3},
	{ID: "car", Name: "Sports Car", Price: 90000, FameBonus: 5},
	{ID: "charity", Name: "Charity Benefit", Price: 10000, RepBonus: 5},
	{ID: "penthouse", Name: "Penthouse", Price: 500000, FameBonus: 8},
}

// ShopItemByID looks up a shop item, returning false if unknown.
func ShopItemByID(id string) (ShopItem, bool) {
	for _, it := range ShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}

// Venue is a concert location.
type Venue struct {
	ID          string
	Name        string
	Capacity    int64
	TicketPrice float64
	MinLevel    int
}

// Venues is the static venue ladder, smallest room first.
var Venues = []Venue{
	{ID: "open_mic", Name: "Open Mic Night", Capacity: 50, TicketPrice: 5, MinLevel: 1},
	{ID: "dive_bar", Name: "Dive Bar", Capacity: 150, TicketPrice: 10, MinLevel: 2},
	{ID: "club", Name: "Night Club", Capacity: 600, TicketPrice: 25, MinLevel: 3},
	{ID: "theater", Name: "City Theater", Capacity: 2500, TicketPrice: 45, MinLevel: 4},
	{ID: "arena", Name: "Sports Arena", Capacity: 18000, TicketPrice: 80, MinLevel: 6},
	{ID: "stadium", Name: "Stadium", Capacity: 65000, TicketPrice: 120, MinLevel: 7},
}

// VenueByID looks up a venue, returning false if unknown.
func VenueByID(id string) (Venue, bool) {
	for _, v := range Venues {
		if v.ID == id {
			return v, true
		}
	}
	return Venue{}, false
}
