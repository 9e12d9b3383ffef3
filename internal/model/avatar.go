package model

// AvatarItem is one cosmetic avatar in the shop catalog. Prices are in
// stars; purchases are simulated and never charged.
type AvatarItem struct {
	ID    string
	Emoji string
	Name  string
	Stars int
}

// AvatarCatalog lists the purchasable avatars in display order.
var AvatarCatalog = []AvatarItem{
	{ID: "avatar-sunglasses", Emoji: "🕶️", Name: "В очках", Stars: 50},
	{ID: "avatar-rocket", Emoji: "🚀", Name: "Ракета", Stars: 100},
}

// AvatarByID returns a catalog item by id.
func AvatarByID(id string) (AvatarItem, bool) {
	for _, item := range AvatarCatalog {
		if item.ID == id {
			return item, true
		}
	}
	return AvatarItem{}, false
}
