package models

// Game represents a game in the catalog.
type Game struct {
	ID       int64    `json:"id" example:"1"`
	Title    string   `json:"titulo" example:"Celeste"`
	Platform string   `json:"plataforma" example:"Switch"`
	Genre    string   `json:"genero" example:"Platformer"`
	Year     *int     `json:"ano,omitempty" example:"2018"`
	Rating   *float64 `json:"nota,omitempty" example:"9"`
}

// Clone returns a deep copy so callers can't reach stored numeric fields.
func (g Game) Clone() Game {
	out := g
	if g.Year != nil {
		y := *g.Year
		out.Year = &y
	}
	if g.Rating != nil {
		r := *g.Rating
		out.Rating = &r
	}
	return out
}
