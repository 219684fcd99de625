package catalog

// SampleGames is the starting collection, oldest first.
func SampleGames() []GameInput {
	return []GameInput{
		{
			Title:    Text("The Witcher 3"),
			Platform: Text("PC"),
			Genre:    Text("RPG"),
			Year:     Number(2015),
			Rating:   Number(10),
		},
		{
			Title:    Text("Hades"),
			Platform: Text("Switch"),
			Genre:    Text("Roguelike"),
			Year:     Number(2020),
			Rating:   Number(9.5),
		},
	}
}
