package stats

import "math"

// BaseAttribute is the starting value of every skill before bonuses.
const BaseAttribute = 65

// Profile is the six-attribute skill profile of a player plus the
// aggregate rating.
type Profile struct {
	Shot    int
	Pass    int
	Dribble int
	Speed   int
	Defense int
	Jump    int
	Rating  int
}

// bonus is a fixed set of attribute increments applied on top of the base.
type bonus struct {
	Shot    int
	Pass    int
	Dribble int
	Speed   int
	Defense int
	Jump    int
}

// Closed specialty catalog. Keys are the exact tags stored on players.
var specialtyBonuses = map[string]bonus{
	"Tiro":      {Shot: 3, Dribble: 1, Speed: 1},
	"Pase":      {Pass: 3, Dribble: 1, Speed: 1},
	"Dribling":  {Dribble: 3, Pass: 1, Speed: 1},
	"Velocidad": {Speed: 3, Dribble: 2},
	"Defensa":   {Defense: 3, Jump: 1, Speed: 1},
	"Rebote":    {Jump: 3, Defense: 2},
	"Fisico":    {Defense: 2, Jump: 2, Speed: 1},
}

// Closed signature-move catalog.
var moveBonuses = map[string]bonus{
	"Triple":     {Shot: 2},
	"Volcadas":   {Jump: 3, Speed: 2},
	"Tapa":       {Defense: 2, Jump: 2},
	"Asistencia": {Pass: 2, Dribble: 1},
	"Cruce":      {Dribble: 2, Speed: 1},
	"Fadeaway":   {Shot: 2, Jump: 1},
	"Gancho":     {Shot: 2, Defense: 1},
}

// Specialties returns the valid specialty tags.
func Specialties() []string {
	tags := make([]string, 0, len(specialtyBonuses))
	for tag := range specialtyBonuses {
		tags = append(tags, tag)
	}
	return tags
}

// Moves returns the valid signature-move tags.
func Moves() []string {
	tags := make([]string, 0, len(moveBonuses))
	for tag := range moveBonuses {
		tags = append(tags, tag)
	}
	return tags
}

// GenerateProfile builds a skill profile from a specialty and a signature
// move. Both bonus sources apply independently on top of the base value.
// An unrecognized tag contributes no bonus. The rating is the
// round-half-to-even mean of the six attributes.
func GenerateProfile(specialty, move string) Profile {
	p := Profile{
		Shot:    BaseAttribute,
		Pass:    BaseAttribute,
		Dribble: BaseAttribute,
		Speed:   BaseAttribute,
		Defense: BaseAttribute,
		Jump:    BaseAttribute,
	}

	p.apply(specialtyBonuses[specialty])
	p.apply(moveBonuses[move])

	sum := p.Shot + p.Pass + p.Dribble + p.Speed + p.Defense + p.Jump
	p.Rating = int(math.RoundToEven(float64(sum) / 6.0))

	return p
}

func (p *Profile) apply(b bonus) {
	p.Shot += b.Shot
	p.Pass += b.Pass
	p.Dribble += b.Dribble
	p.Speed += b.Speed
	p.Defense += b.Defense
	p.Jump += b.Jump
}
