package family

var starSigns = map[string]string{
	"Saket":   "Cancer",
	"Komal":   "Scorpio",
	"Bunny":   "Virgo",
	"Daddy":   "Sagittarius",
	"Mummy":   "Libra",
	"Vishket": "Aquarius",
	"Aniket":  "Leo",
}

// StarSignOf looks up the star sign for a member name. Names are matched
// exactly.
func StarSignOf(name string) (string, bool) {
	sign, ok := starSigns[name]
	return sign, ok
}

// AssignStarSign sets m.StarSign from the lookup table and returns m itself.
// Unknown names leave the field as it was.
func AssignStarSign(m *Member) *Member {
	if sign, ok := StarSignOf(m.Name); ok {
		m.StarSign = sign
	}
	return m
}
